package menugfx

import (
	"image"
	"log/slog"
	"slices"
	"testing"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
)

// mockDriver records every call made to it.
type mockDriver struct {
	ident     string
	typ       driver.Type
	transform bool
	probeErr  error

	calls     []string
	draws     []driver.Draw
	pipelines []driver.Draw
	scissor   [4]int
	closed    int
	logger    *slog.Logger
	mvp       gfxmath.Mat4
	probed    driver.ProbeContext
	font      *mockFont
}

func newMock(ident string) *mockDriver {
	return &mockDriver{
		ident: ident,
		typ:   driver.TypeGeneric,
		mvp:   gfxmath.Scale(2, 2, 1),
	}
}

func (m *mockDriver) Ident() string          { return m.ident }
func (m *mockDriver) Type() driver.Type      { return m.typ }
func (m *mockDriver) HandlesTransform() bool { return m.transform }

func (m *mockDriver) Probe(ctx driver.ProbeContext) error {
	m.probed = ctx
	if m.probeErr != nil {
		return m.probeErr
	}
	if !m.typ.Compatible(ctx.VideoDriver) {
		return driver.ErrIncompatible
	}
	return nil
}

func (m *mockDriver) Draw(d *driver.Draw, width, height int) {
	m.calls = append(m.calls, "draw")
	cp := *d
	cp.Vertex = slices.Clone(d.Vertex)
	cp.TexCoord = slices.Clone(d.TexCoord)
	m.draws = append(m.draws, cp)
}

func (m *mockDriver) DrawPipeline(d *driver.Draw, width, height int) {
	m.calls = append(m.calls, "pipeline")
	m.pipelines = append(m.pipelines, *d)
}

func (m *mockDriver) BlendBegin() { m.calls = append(m.calls, "blend_begin") }
func (m *mockDriver) BlendEnd()   { m.calls = append(m.calls, "blend_end") }

func (m *mockDriver) DefaultMVP() *gfxmath.Mat4   { return &m.mvp }
func (m *mockDriver) DefaultVertices() []float32  { return driver.UnitVertices() }
func (m *mockDriver) DefaultTexCoords() []float32 { return driver.UnitTexCoords() }

func (m *mockDriver) FontInitFirst(path string, size float32, threaded bool) (driver.Font, error) {
	m.calls = append(m.calls, "font")
	m.font = &mockFont{path: path, size: size}
	return m.font, nil
}

func (m *mockDriver) ScissorBegin(width, height, x, y, w, h int) {
	m.calls = append(m.calls, "scissor_begin")
	m.scissor = [4]int{x, y, w, h}
}

func (m *mockDriver) ScissorEnd(width, height int) {
	m.calls = append(m.calls, "scissor_end")
}

func (m *mockDriver) SetLogger(l *slog.Logger) { m.logger = l }

func (m *mockDriver) Close() error {
	m.closed++
	return nil
}

func (m *mockDriver) reset() {
	m.calls = nil
	m.draws = nil
	m.pipelines = nil
}

// listDriver prefers triangle lists.
type listDriver struct{ *mockDriver }

func (listDriver) PreferredPrim() driver.Prim { return driver.PrimTriangles }

// texDriver can load textures.
type texDriver struct {
	*mockDriver
	loaded   map[driver.Texture]image.Image
	unloaded []driver.Texture
	next     driver.Texture
}

func newTexDriver(ident string) *texDriver {
	return &texDriver{mockDriver: newMock(ident), loaded: make(map[driver.Texture]image.Image)}
}

func (t *texDriver) LoadTexture(img image.Image, filter driver.Filter) (driver.Texture, error) {
	t.next++
	t.loaded[t.next] = img
	return t.next, nil
}

func (t *texDriver) UnloadTexture(tex driver.Texture) {
	delete(t.loaded, tex)
	t.unloaded = append(t.unloaded, tex)
}

type mockFont struct {
	path   string
	size   float32
	closed bool
	runs   []driver.TextParams
	texts  []string
}

func (f *mockFont) Backend() string     { return "mock" }
func (f *mockFont) Size() float32       { return f.size }
func (f *mockFont) LineHeight() float32 { return f.size * 1.2 }
func (f *mockFont) Width(text string, scale float32) float32 {
	return float32(len(text)) * f.size / 2 * scale
}
func (f *mockFont) RenderMsg(text string, p driver.TextParams) {
	f.texts = append(f.texts, text)
	f.runs = append(f.runs, p)
}
func (f *mockFont) Close() error {
	f.closed = true
	return nil
}

// bind returns a 1920x1080 display bound to drv through a private
// registry, with the dirty flag cleared.
func bind(t *testing.T, drv driver.Driver, opts ...Option) *Display {
	t.Helper()
	reg := driver.NewRegistry()
	reg.Register(driver.Descriptor{
		Ident:            drv.Ident(),
		Type:             drv.Type(),
		HandlesTransform: drv.HandlesTransform(),
		New:              func() driver.Driver { return drv },
	})
	opts = append([]Option{WithRegistry(reg), WithVideoDriver("gl")}, opts...)
	d := New(opts...)
	d.SetWidth(1920)
	d.SetHeight(1080)
	if err := d.InitFirstDriver(false); err != nil {
		t.Fatalf("InitFirstDriver() error = %v", err)
	}
	d.ClearDirty()
	return d
}

func approx(a, b float32) bool {
	d := a - b
	return d > -1e-3 && d < 1e-3
}
