package software

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
	"github.com/gogpu/menugfx/internal/slogx"
)

// Ident is the name the software driver registers under.
const Ident = "software"

// MaxTextureSize is the largest texture edge the driver keeps. Larger
// images are downsampled on upload.
const MaxTextureSize = 4096

// fontBackends is the order in which font backends are tried.
var fontBackends = []string{"harfbuzz", "opentype", "bitmap"}

func init() {
	driver.Register(driver.Descriptor{
		Ident:            Ident,
		Type:             driver.TypeGeneric,
		HandlesTransform: false,
		New:              func() driver.Driver { return New() },
	})
}

// Record is a copy of one dispatched draw together with the state it
// was drawn under.
type Record struct {
	Draw     driver.Draw
	Clip     image.Rectangle
	Blend    bool
	Pipeline bool
}

// TextRecord is one rendered text run.
type TextRecord struct {
	Text   string
	Params driver.TextParams
}

type texture struct {
	img    *image.RGBA
	filter driver.Filter
}

// Driver rasterizes draws into an *image.RGBA on the CPU.
//
// It is compatible with every video driver and does not handle
// transforms, so callers hand it vertices that are already rotated and
// scaled. Every draw is recorded, which makes the driver useful as a
// reference in tests.
type Driver struct {
	log *slog.Logger

	target *image.RGBA
	owned  bool

	width, height int
	mvp           gfxmath.Mat4

	clip    image.Rectangle
	clipped bool
	blend   int

	textures map[driver.Texture]*texture
	nextTex  driver.Texture

	draws []Record
	texts []TextRecord
}

// New creates an unprobed software driver.
func New() *Driver {
	return &Driver{
		log:      slogx.Nop(),
		mvp:      gfxmath.Identity(),
		textures: make(map[driver.Texture]*texture),
	}
}

// SetLogger sets the driver's logger. nil restores silence.
func (r *Driver) SetLogger(l *slog.Logger) { r.log = slogx.OrNop(l) }

// Ident implements driver.Driver.
func (r *Driver) Ident() string { return Ident }

// Type implements driver.Driver.
func (r *Driver) Type() driver.Type { return driver.TypeGeneric }

// HandlesTransform implements driver.Driver.
func (r *Driver) HandlesTransform() bool { return false }

// Probe accepts any video driver. When ctx.Device is an *image.RGBA the
// driver draws into it; otherwise it allocates its own target.
func (r *Driver) Probe(ctx driver.ProbeContext) error {
	if !driver.TypeGeneric.Compatible(ctx.VideoDriver) {
		return driver.ErrIncompatible
	}
	switch dev := ctx.Device.(type) {
	case nil:
		r.owned = true
		r.resize(ctx.Width, ctx.Height)
	case *image.RGBA:
		r.target = dev
		r.owned = false
		b := dev.Bounds()
		r.setSize(b.Dx(), b.Dy())
	default:
		return fmt.Errorf("%w: unsupported device %T", driver.ErrIncompatible, ctx.Device)
	}
	r.log.Debug("software: probed", "width", r.width, "height", r.height, "owned", r.owned)
	return nil
}

// Image returns the render target.
func (r *Driver) Image() *image.RGBA { return r.target }

// Draws returns the draws recorded since the last Reset.
func (r *Driver) Draws() []Record { return r.draws }

// Texts returns the text runs recorded since the last Reset.
func (r *Driver) Texts() []TextRecord { return r.texts }

// Clip returns the active scissor rectangle and whether one is set.
func (r *Driver) Clip() (image.Rectangle, bool) { return r.clip, r.clipped }

// BlendDepth returns the number of unmatched BlendBegin calls.
func (r *Driver) BlendDepth() int { return r.blend }

// Reset forgets recorded draws and text runs.
func (r *Driver) Reset() {
	r.draws = r.draws[:0]
	r.texts = r.texts[:0]
}

// Draw implements driver.Driver.
func (r *Driver) Draw(d *driver.Draw, width, height int) {
	if d == nil {
		return
	}
	r.resize(width, height)
	r.record(d, false)
	r.rasterize(d)
}

// DrawPipeline records the effect. The software driver has no shader
// effects; a draw that carries geometry is filled flat instead.
func (r *Driver) DrawPipeline(d *driver.Draw, width, height int) {
	if d == nil {
		return
	}
	r.resize(width, height)
	r.record(d, true)
	if d.VertexCount > 0 {
		r.rasterize(d)
	}
}

func (r *Driver) rasterize(d *driver.Draw) {
	if r.target == nil {
		return
	}
	tex := r.textures[d.Texture]
	clip := r.bounds()
	blend := r.blend > 0
	d.Triangles(func(a, b, c int) {
		fillTriangle(r.target, clip, vertexOf(d, a), vertexOf(d, b), vertexOf(d, c), tex, blend)
	})
}

func (r *Driver) record(d *driver.Draw, pipeline bool) {
	rec := Record{
		Draw:     *d,
		Clip:     r.bounds(),
		Blend:    r.blend > 0,
		Pipeline: pipeline,
	}
	rec.Draw.Vertex = slices.Clone(d.Vertex)
	rec.Draw.TexCoord = slices.Clone(d.TexCoord)
	if d.Matrix != nil {
		m := *d.Matrix
		rec.Draw.Matrix = &m
	}
	r.draws = append(r.draws, rec)
}

// BlendBegin implements driver.Driver. Calls nest.
func (r *Driver) BlendBegin() { r.blend++ }

// BlendEnd implements driver.Driver.
func (r *Driver) BlendEnd() {
	if r.blend > 0 {
		r.blend--
	}
}

// DefaultMVP returns a top-left origin orthographic projection for the
// current target size.
func (r *Driver) DefaultMVP() *gfxmath.Mat4 { return &r.mvp }

// DefaultVertices implements driver.Driver.
func (r *Driver) DefaultVertices() []float32 { return driver.UnitVertices() }

// DefaultTexCoords implements driver.Driver.
func (r *Driver) DefaultTexCoords() []float32 { return driver.UnitTexCoords() }

// ScissorBegin clips drawing to the given rectangle.
func (r *Driver) ScissorBegin(width, height, x, y, w, h int) {
	r.resize(width, height)
	r.clip = image.Rect(x, y, x+w, y+h)
	r.clipped = true
}

// ScissorEnd implements driver.Driver.
func (r *Driver) ScissorEnd(width, height int) {
	r.resize(width, height)
	r.clip = image.Rectangle{}
	r.clipped = false
}

// LoadTexture implements driver.TextureLoader.
func (r *Driver) LoadTexture(img image.Image, filter driver.Filter) (driver.Texture, error) {
	if img == nil {
		return 0, fmt.Errorf("software: nil image")
	}
	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("software: empty image %v", b)
	}

	w, h := b.Dx(), b.Dy()
	if w > MaxTextureSize || h > MaxTextureSize {
		s := float64(MaxTextureSize) / float64(max(w, h))
		w, h = max(1, int(float64(w)*s)), max(1, int(float64(h)*s))
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	} else {
		scalerFor(filter).Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		r.log.Debug("software: texture downsampled", "from", b.Size(), "to", dst.Bounds().Size())
	}

	r.nextTex++
	r.textures[r.nextTex] = &texture{img: dst, filter: filter}
	return r.nextTex, nil
}

// UnloadTexture implements driver.TextureLoader.
func (r *Driver) UnloadTexture(t driver.Texture) { delete(r.textures, t) }

// TextureImage returns the pixels behind a texture handle.
func (r *Driver) TextureImage(t driver.Texture) (*image.RGBA, bool) {
	tex, ok := r.textures[t]
	if !ok {
		return nil, false
	}
	return tex.img, true
}

// Close releases all textures.
func (r *Driver) Close() error {
	clear(r.textures)
	r.Reset()
	return nil
}

func scalerFor(f driver.Filter) xdraw.Scaler {
	switch f {
	case driver.FilterNearest, driver.FilterMipmapNearest:
		return xdraw.NearestNeighbor
	case driver.FilterMipmapLinear:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

// resize reallocates an owned target when the framebuffer size changes.
func (r *Driver) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.owned && (r.target == nil || r.target.Bounds().Dx() != width || r.target.Bounds().Dy() != height) {
		r.target = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	if r.width != width || r.height != height {
		r.setSize(width, height)
	}
}

func (r *Driver) setSize(width, height int) {
	r.width, r.height = width, height
	r.mvp = gfxmath.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// bounds returns the rectangle draws are clipped to.
func (r *Driver) bounds() image.Rectangle {
	var full image.Rectangle
	if r.target != nil {
		full = r.target.Bounds()
	}
	if r.clipped {
		return r.clip.Intersect(full)
	}
	return full
}
