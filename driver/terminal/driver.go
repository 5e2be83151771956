package terminal

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/term"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
	"github.com/gogpu/menugfx/internal/slogx"
)

// Ident is the name the terminal driver registers under.
const Ident = "terminal"

// thumbSize bounds the edge of the copy kept per texture. A cell never
// needs more detail.
const thumbSize = 64

func init() {
	driver.Register(driver.Descriptor{
		Ident:            Ident,
		Type:             driver.TypeTerminal,
		HandlesTransform: false,
		New:              func() driver.Driver { return New() },
	})
}

// Screen is the part of tcell.Screen the driver draws through.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Driver paints draws into the cells of a Screen.
type Driver struct {
	log *slog.Logger

	screen Screen
	owned  tcell.Screen

	width, height int
	mvp           gfxmath.Mat4

	cols, rows int
	cells      []gfxmath.Color

	clip    image.Rectangle
	clipped bool
	blend   int

	textures map[driver.Texture]*image.RGBA
	nextTex  driver.Texture
}

// New creates an unprobed terminal driver.
func New() *Driver {
	return &Driver{
		log:      slogx.Nop(),
		mvp:      gfxmath.Identity(),
		textures: make(map[driver.Texture]*image.RGBA),
	}
}

// SetLogger sets the driver's logger. nil restores silence.
func (r *Driver) SetLogger(l *slog.Logger) { r.log = slogx.OrNop(l) }

// Ident implements driver.Driver.
func (r *Driver) Ident() string { return Ident }

// Type implements driver.Driver.
func (r *Driver) Type() driver.Type { return driver.TypeTerminal }

// HandlesTransform implements driver.Driver.
func (r *Driver) HandlesTransform() bool { return false }

// PreferredPrim implements driver.TopologyPreferrer.
func (r *Driver) PreferredPrim() driver.Prim { return driver.PrimTriangles }

// Probe accepts the terminal video driver. ctx.Device may carry a
// Screen; otherwise the driver opens its own, which requires stdout to
// be a terminal.
func (r *Driver) Probe(ctx driver.ProbeContext) error {
	if !driver.TypeTerminal.Compatible(ctx.VideoDriver) {
		return driver.ErrIncompatible
	}
	switch dev := ctx.Device.(type) {
	case Screen:
		r.screen = dev
	case nil:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("%w: stdout is not a terminal", driver.ErrIncompatible)
		}
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("terminal: init screen: %w", err)
		}
		r.screen, r.owned = s, s
	default:
		return fmt.Errorf("%w: unsupported device %T", driver.ErrIncompatible, ctx.Device)
	}
	r.resize(ctx.Width, ctx.Height)
	r.log.Debug("terminal: probed", "cols", r.cols, "rows", r.rows, "owned", r.owned != nil)
	return nil
}

// Present shows everything drawn so far.
func (r *Driver) Present() {
	if r.screen != nil {
		r.screen.Show()
	}
}

// Cell returns the background color painted into cell x, y.
func (r *Driver) Cell(x, y int) (gfxmath.Color, bool) {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return gfxmath.Color{}, false
	}
	return r.cells[y*r.cols+x], true
}

// Grid returns the screen size in cells.
func (r *Driver) Grid() (cols, rows int) { return r.cols, r.rows }

// Draw implements driver.Driver.
func (r *Driver) Draw(d *driver.Draw, width, height int) {
	if d == nil {
		return
	}
	r.resize(width, height)
	r.fill(d)
}

// DrawPipeline implements driver.Driver. There are no effects in a
// terminal; geometry that comes with the draw is filled flat.
func (r *Driver) DrawPipeline(d *driver.Draw, width, height int) {
	if d == nil {
		return
	}
	r.resize(width, height)
	if d.VertexCount == 0 {
		r.log.Debug("terminal: pipeline skipped", "id", d.PipelineID)
		return
	}
	r.fill(d)
}

// BlendBegin implements driver.Driver. Calls nest.
func (r *Driver) BlendBegin() { r.blend++ }

// BlendEnd implements driver.Driver.
func (r *Driver) BlendEnd() {
	if r.blend > 0 {
		r.blend--
	}
}

// DefaultMVP implements driver.Driver.
func (r *Driver) DefaultMVP() *gfxmath.Mat4 { return &r.mvp }

// DefaultVertices implements driver.Driver.
func (r *Driver) DefaultVertices() []float32 { return driver.UnitVertices() }

// DefaultTexCoords implements driver.Driver.
func (r *Driver) DefaultTexCoords() []float32 { return driver.UnitTexCoords() }

// ScissorBegin implements driver.Driver.
func (r *Driver) ScissorBegin(width, height, x, y, w, h int) {
	r.resize(width, height)
	r.clip = image.Rect(x, y, x+w, y+h)
	r.clipped = true
}

// ScissorEnd implements driver.Driver.
func (r *Driver) ScissorEnd(width, height int) {
	r.resize(width, height)
	r.clipped = false
}

// LoadTexture keeps a small copy of img to sample cell colors from.
func (r *Driver) LoadTexture(img image.Image, filter driver.Filter) (driver.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return 0, fmt.Errorf("terminal: empty image")
	}
	b := img.Bounds()
	w, h := min(b.Dx(), thumbSize), min(b.Dy(), thumbSize)
	thumb := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, b, xdraw.Src, nil)

	r.nextTex++
	r.textures[r.nextTex] = thumb
	return r.nextTex, nil
}

// UnloadTexture implements driver.TextureLoader.
func (r *Driver) UnloadTexture(t driver.Texture) { delete(r.textures, t) }

// Close releases textures and finalizes a screen the driver opened.
func (r *Driver) Close() error {
	clear(r.textures)
	if r.owned != nil {
		r.owned.Fini()
		r.owned = nil
	}
	r.screen = nil
	return nil
}

// resize tracks the framebuffer size and the screen's cell grid.
func (r *Driver) resize(width, height int) {
	if width > 0 && height > 0 && (width != r.width || height != r.height) {
		r.width, r.height = width, height
		r.mvp = gfxmath.Ortho(0, float32(width), float32(height), 0, -1, 1)
	}
	if r.screen == nil {
		return
	}
	cols, rows := r.screen.Size()
	if cols != r.cols || rows != r.rows {
		r.cols, r.rows = cols, rows
		r.cells = make([]gfxmath.Color, max(cols*rows, 0))
	}
}

// cellSize returns the framebuffer pixels covered by one cell.
func (r *Driver) cellSize() (float32, float32) {
	if r.cols <= 0 || r.rows <= 0 || r.width <= 0 || r.height <= 0 {
		return 0, 0
	}
	return float32(r.width) / float32(r.cols), float32(r.height) / float32(r.rows)
}
