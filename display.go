package menugfx

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/menugfx/config"
	"github.com/gogpu/menugfx/driver"
)

// MenuDriverID identifies the menu implementation drawing through a
// Display. A few layout rules depend on it.
type MenuDriverID int

// Menu implementations.
const (
	MenuUnknown MenuDriverID = iota
	MenuRGUI
	MenuOzone
	MenuGLUI
	MenuXMB
	MenuXUI
	MenuStripes
)

var menuNames = [...]string{
	MenuUnknown: "unknown",
	MenuRGUI:    "rgui",
	MenuOzone:   "ozone",
	MenuGLUI:    "glui",
	MenuXMB:     "xmb",
	MenuXUI:     "xui",
	MenuStripes: "stripes",
}

// String returns the menu driver name.
func (id MenuDriverID) String() string {
	if id < 0 || int(id) >= len(menuNames) {
		return menuNames[MenuUnknown]
	}
	return menuNames[id]
}

// ParseMenuDriver returns the id for a menu driver name, ignoring case.
// "materialui" is accepted for glui. Unknown names yield MenuUnknown.
func ParseMenuDriver(name string) MenuDriverID {
	folded := cases.Fold().String(strings.TrimSpace(name))
	if folded == "materialui" {
		return MenuGLUI
	}
	for i, n := range menuNames {
		if n == folded {
			return MenuDriverID(i)
		}
	}
	return MenuUnknown
}

// CoordBatch accumulates the per-vertex data of every draw dispatched
// in a frame. BeginFrame clears it.
type CoordBatch struct {
	Vertex   []float32
	TexCoord []float32
	Color    []float32
}

// Len returns the number of vertices in the batch.
func (b *CoordBatch) Len() int { return len(b.Vertex) / 2 }

func (b *CoordBatch) reset() {
	b.Vertex = b.Vertex[:0]
	b.TexCoord = b.TexCoord[:0]
	b.Color = b.Color[:0]
}

func (b *CoordBatch) add(d *driver.Draw) {
	n := min(d.VertexCount, len(d.Vertex)/2)
	for i := 0; i < n; i++ {
		u, v := d.VertexTexCoord(i)
		c := d.VertexColor(i)
		b.Vertex = append(b.Vertex, d.Vertex[i*2], d.Vertex[i*2+1])
		b.TexCoord = append(b.TexCoord, u, v)
		b.Color = append(b.Color, c[:]...)
	}
}

// Display holds the drawing state of one menu surface and the driver
// bound to it.
//
// A Display is not safe for concurrent use; all drawing happens on the
// rendering goroutine.
type Display struct {
	opts     options
	settings config.Settings
	menuID   MenuDriverID

	drv driver.Driver

	width, height int
	pitch         int
	headerHeight  int

	batch CoordBatch
	dirty bool

	hasWindowed bool
	msgForce    bool

	white      driver.Texture
	whiteOwned bool

	scissorOpen bool

	dpi   dpiCache
	scale scaleCache
}

// New creates a Display with no driver bound.
func New(opts ...Option) *Display {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Display{opts: o}
	d.applySettings(o.settings)
	return d
}

// Settings returns the current settings.
func (d *Display) Settings() config.Settings { return d.settings }

// SetSettings replaces the settings, for example after a config reload.
func (d *Display) SetSettings(s config.Settings) {
	d.applySettings(s)
	d.dirty = true
}

func (d *Display) applySettings(s config.Settings) {
	d.settings = s
	d.menuID = d.opts.menuDriver
	if d.menuID == MenuUnknown {
		d.menuID = ParseMenuDriver(s.MenuDriver)
	}
	d.scale = scaleCache{}
}

// MenuDriver returns the active menu implementation.
func (d *Display) MenuDriver() MenuDriverID { return d.menuID }

// Driver returns the bound driver, or nil.
func (d *Display) Driver() driver.Driver { return d.drv }

func (d *Display) videoDriver() string {
	if d.opts.videoDriver != "" {
		return d.opts.videoDriver
	}
	return d.settings.VideoDriver
}

// InitFirstDriver binds the first driver compatible with the active
// video driver. Any previously bound driver is released first, so on
// failure the display is left unbound.
//
// A display driver named in settings is probed before the others.
func (d *Display) InitFirstDriver(threaded bool) error {
	d.unbind()

	ctx := d.probeContext(threaded)
	log := Logger()

	if name := d.settings.DisplayDriver; name != "" {
		drv, err := d.opts.registry.New(name)
		if err == nil {
			err = drv.Probe(ctx)
		}
		if err == nil {
			d.bind(drv)
			return nil
		}
		log.Warn("menugfx: preferred display driver unavailable", "driver", name, "err", err)
	}

	drv, err := d.opts.registry.InitFirst(ctx)
	if err != nil {
		log.Debug("menugfx: driver probe failed", "video_driver", ctx.VideoDriver, "err", err)
		return fmt.Errorf("%w: video driver %q: %w", ErrNoDriver, ctx.VideoDriver, err)
	}
	d.bind(drv)
	return nil
}

// BindDriver binds the driver registered under name without trying
// any other. The previous driver is released first.
func (d *Display) BindDriver(name string, threaded bool) error {
	d.unbind()
	drv, err := d.opts.registry.New(name)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
	if err := drv.Probe(d.probeContext(threaded)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNoDriver, name, err)
	}
	d.bind(drv)
	return nil
}

func (d *Display) probeContext(threaded bool) driver.ProbeContext {
	return driver.ProbeContext{
		VideoDriver: d.videoDriver(),
		Threaded:    threaded,
		Device:      d.opts.device,
		Width:       d.width,
		Height:      d.height,
	}
}

func (d *Display) bind(drv driver.Driver) {
	d.drv = drv
	trackBound(d, drv)
	d.initWhiteTexture()
	d.dirty = true
	Logger().Info("menugfx: display driver found", "driver", drv.Ident(), "type", drv.Type())
}

func (d *Display) unbind() {
	if d.drv == nil {
		return
	}
	if d.whiteOwned {
		d.UnloadTexture(d.white)
	}
	if c, ok := d.drv.(io.Closer); ok {
		if err := c.Close(); err != nil {
			Logger().Warn("menugfx: closing display driver", "driver", d.drv.Ident(), "err", err)
		}
	}
	trackBound(d, nil)
	d.drv = nil
	d.white, d.whiteOwned = 0, false
	d.scissorOpen = false
	d.dpi = dpiCache{}
	d.scale = scaleCache{}
}

// initWhiteTexture uploads the 1x1 white texture used by untextured
// draws when the driver can load textures.
func (d *Display) initWhiteTexture() {
	loader, ok := d.drv.(driver.TextureLoader)
	if !ok {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	tex, err := loader.LoadTexture(img, driver.FilterNearest)
	if err != nil {
		Logger().Warn("menugfx: white texture", "err", err)
		return
	}
	d.white, d.whiteOwned = tex, true
}

// Free releases the bound driver, closing it when it implements
// io.Closer. A Display dropped without Free stops receiving SetLogger
// updates once collected, but its driver is never closed.
func (d *Display) Free() { d.unbind() }

// DriverExists reports whether a display driver named name is
// registered. The comparison ignores case.
func (d *Display) DriverExists(name string) bool {
	return d.opts.registry.Exists(name)
}

// ValidateSettings checks the settings against the registry.
func (d *Display) ValidateSettings() error {
	return d.settings.Validate(d.opts.registry.Exists)
}

// SetWhiteTexture replaces the texture used for untextured draws.
func (d *Display) SetWhiteTexture(t driver.Texture) {
	if d.whiteOwned && d.white != t {
		d.UnloadTexture(d.white)
	}
	d.white, d.whiteOwned = t, false
}

// WhiteTexture returns the texture used for untextured draws.
func (d *Display) WhiteTexture() driver.Texture { return d.white }

// SetWidth sets the framebuffer width in pixels.
func (d *Display) SetWidth(w int) {
	if d.width != w {
		d.width = w
		d.dirty = true
	}
}

// SetHeight sets the framebuffer height in pixels.
func (d *Display) SetHeight(h int) {
	if d.height != h {
		d.height = h
		d.dirty = true
	}
}

// SetFramebufferPitch sets the framebuffer row stride in bytes.
func (d *Display) SetFramebufferPitch(pitch int) {
	if d.pitch != pitch {
		d.pitch = pitch
		d.dirty = true
	}
}

// FramebufferSize returns the framebuffer width and height.
func (d *Display) FramebufferSize() (width, height int) { return d.width, d.height }

// FramebufferPitch returns the framebuffer row stride in bytes.
func (d *Display) FramebufferPitch() int { return d.pitch }

// SetHeaderHeight sets the height of the menu header.
func (d *Display) SetHeaderHeight(h int) {
	if d.headerHeight != h {
		d.headerHeight = h
		d.dirty = true
	}
}

// HeaderHeight returns the height of the menu header.
func (d *Display) HeaderHeight() int { return d.headerHeight }

// HasWindowed reports whether the video output is windowed.
func (d *Display) HasWindowed() bool { return d.hasWindowed }

// SetHasWindowed records whether the video output is windowed.
func (d *Display) SetHasWindowed(v bool) {
	if d.hasWindowed != v {
		d.hasWindowed = v
		d.dirty = true
	}
}

// MsgForce reports whether on-screen messages must be drawn even when
// the menu is idle.
func (d *Display) MsgForce() bool { return d.msgForce }

// SetMsgForce sets the forced message flag.
func (d *Display) SetMsgForce(v bool) {
	if d.msgForce != v {
		d.msgForce = v
		d.dirty = true
	}
}

// Dirty reports whether something changed since the last ClearDirty.
func (d *Display) Dirty() bool { return d.dirty }

// MarkDirty forces the next UpdatePending to report a redraw.
func (d *Display) MarkDirty() { d.dirty = true }

// ClearDirty resets the dirty flag after a frame has been presented.
func (d *Display) ClearDirty() { d.dirty = false }

// BeginFrame starts a new frame by clearing the coordinate batch.
func (d *Display) BeginFrame() { d.batch.reset() }

// Batch returns the coordinates accumulated since BeginFrame.
func (d *Display) Batch() *CoordBatch { return &d.batch }
