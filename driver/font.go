package driver

// TextAlign is the horizontal alignment of a text run relative to its
// anchor point.
type TextAlign int

// Text alignments.
const (
	AlignLeft TextAlign = iota
	AlignRight
	AlignCenter
)

// TextParams positions and styles one text run.
type TextParams struct {
	// X and Y are the anchor in framebuffer pixels; Y is the baseline.
	X, Y float32

	// Scale multiplies the font size.
	Scale float32

	// Color is packed 0xRRGGBBAA.
	Color uint32

	Align TextAlign

	// DropX and DropY offset a drop shadow in pixels. DropMod scales the
	// shadow color and DropAlpha its opacity. A zero offset disables it.
	DropX, DropY float32
	DropMod      float32
	DropAlpha    float32

	// FullScreen reports whether coordinates span the whole framebuffer
	// rather than the game viewport.
	FullScreen bool
}

// HasShadow reports whether p requests a drop shadow.
func (p TextParams) HasShadow() bool {
	return p.DropX != 0 || p.DropY != 0
}

// Font is a font instance created by a driver's FontInitFirst. It is
// owned by the caller until Close.
type Font interface {
	// Backend names the font backend that produced the font.
	Backend() string

	// Size returns the nominal size in pixels.
	Size() float32

	// LineHeight returns the distance between baselines in pixels.
	LineHeight() float32

	// Width returns the advance width of text at the given scale.
	Width(text string, scale float32) float32

	// RenderMsg draws text with the given parameters.
	RenderMsg(text string, p TextParams)

	// Close releases the font.
	Close() error
}
