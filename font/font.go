package font

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/menugfx/internal/cache"
)

// Font errors.
var (
	// ErrNoBackend is returned when no requested backend could open the font.
	ErrNoBackend = errors.New("font: no usable backend")

	// ErrUnknownBackend is returned for backend names that are not registered.
	ErrUnknownBackend = errors.New("font: unknown backend")

	// ErrNoData is returned by backends that need font data when none
	// could be read.
	ErrNoData = errors.New("font: no font data")
)

// Backend names.
const (
	BackendHarfbuzz = "harfbuzz"
	BackendOpenType = "opentype"
	BackendBitmap   = "bitmap"
)

// MinSize is the smallest font size a backend is asked for.
const MinSize = 2

// advanceCacheSize bounds the number of measured strings kept per face.
// Menus re-measure the same labels every frame.
const advanceCacheSize = 512

// opener creates a Face from raw font data at a pixel size. data is nil
// when the font file could not be read.
type opener func(data []byte, size float64) (*Face, error)

var backends = map[string]opener{
	BackendHarfbuzz: openHarfbuzz,
	BackendOpenType: openOpenType,
	BackendBitmap:   openBitmap,
}

// Face is an opened font at a fixed pixel size.
//
// A Face created with threaded set may be used from several goroutines;
// otherwise it must stay on one.
type Face struct {
	backend string
	size    float64

	// scale converts the raster face's native metrics to size. It is 1
	// for scalable backends.
	scale float64

	face   xfont.Face
	shaper *shaper

	advances *cache.Cache[string, float64]
}

// InitFirst opens the font at path with the first backend in names that
// succeeds. An empty path selects the embedded Go Regular font. Sizes
// below MinSize are raised to MinSize.
func InitFirst(names []string, path string, size float64, threaded bool) (*Face, error) {
	if size < MinSize {
		size = MinSize
	}

	data, readErr := readFont(path)

	errs := []error{ErrNoBackend}
	for _, name := range names {
		open, ok := backends[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownBackend, name))
			continue
		}
		f, err := open(data, size)
		if err != nil {
			if data == nil && readErr != nil {
				err = errors.Join(err, readErr)
			}
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if threaded {
			f.face = &lockedFace{face: f.face}
			if f.shaper != nil {
				f.shaper.locked = true
			}
		}
		f.advances = cache.New[string, float64](advanceCacheSize)
		return f, nil
	}
	return nil, errors.Join(errs...)
}

func readFont(path string) ([]byte, error) {
	if path == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: read %s: %w", path, err)
	}
	return data, nil
}

// Backend returns the name of the backend that opened the face.
func (f *Face) Backend() string { return f.backend }

// Size returns the pixel size the face was opened at.
func (f *Face) Size() float64 { return f.size }

// Scale returns the factor between the raster face's native size and
// Size. Bitmap faces render at their native size.
func (f *Face) Scale() float64 { return f.scale }

// Raster returns the x/image face used to rasterize glyphs.
func (f *Face) Raster() xfont.Face { return f.face }

// LineHeight returns the distance between consecutive baselines.
func (f *Face) LineHeight() float64 {
	return fixedToFloat(f.face.Metrics().Height) * f.scale
}

// Ascent returns the distance from the baseline to the top of a line.
func (f *Face) Ascent() float64 {
	return fixedToFloat(f.face.Metrics().Ascent) * f.scale
}

// Advance returns the advance width of text in pixels.
func (f *Face) Advance(text string) float64 {
	if text == "" {
		return 0
	}
	if f.advances != nil {
		if w, ok := f.advances.Get(text); ok {
			return w
		}
	}
	w := f.measure(text)
	if f.advances != nil {
		f.advances.Set(text, w)
	}
	return w
}

func (f *Face) measure(text string) float64 {
	if f.shaper != nil {
		return f.shaper.advance(text, f.size)
	}
	return fixedToFloat(xfont.MeasureString(f.face, text)) * f.scale
}

// Close releases the face.
func (f *Face) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	if f.advances != nil {
		f.advances.Clear()
	}
	return err
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// lockedFace serializes access to a face that is not safe for
// concurrent use.
type lockedFace struct {
	mu   sync.Mutex
	face xfont.Face
}

func (l *lockedFace) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Close()
}

func (l *lockedFace) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Glyph(dot, r)
}

func (l *lockedFace) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.GlyphBounds(r)
}

func (l *lockedFace) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.GlyphAdvance(r)
}

func (l *lockedFace) Kern(r0, r1 rune) fixed.Int26_6 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Kern(r0, r1)
}

func (l *lockedFace) Metrics() xfont.Metrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Metrics()
}
