package webgpu

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
)

type fakeProvider struct {
	format gputypes.TextureFormat
	hal    any
}

func (p *fakeProvider) Device() gpucontext.Device             { return nil }
func (p *fakeProvider) Queue() gpucontext.Queue               { return nil }
func (p *fakeProvider) Adapter() gpucontext.Adapter           { return nil }
func (p *fakeProvider) SurfaceFormat() gputypes.TextureFormat { return p.format }
func (p *fakeProvider) HalDevice() any                        { return p.hal }

func (p *fakeProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "fake", Type: gpucontext.AdapterTypeSoftware}
}

type fakeModule struct{ label string }

func (m *fakeModule) Destroy() {}

type fakeDevice struct {
	created   []string
	destroyed int
	err       error
}

func (d *fakeDevice) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if d.err != nil {
		return nil, d.err
	}
	if len(desc.Source.SPIRV) == 0 {
		return nil, errors.New("no code")
	}
	d.created = append(d.created, desc.Label)
	return &fakeModule{label: desc.Label}, nil
}

func (d *fakeDevice) DestroyShaderModule(hal.ShaderModule) { d.destroyed++ }

func probed(t *testing.T, p *fakeProvider) *Driver {
	t.Helper()
	r := New("vulkan", driver.TypeVulkan)
	err := r.Probe(driver.ProbeContext{VideoDriver: "vulkan", Device: p, Width: 100, Height: 50})
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	return r
}

func quad(x, y, w, h float32, p driver.Prim) *driver.Draw {
	return &driver.Draw{
		Color:       gfxmath.HexToFloat(0xff0000, 1),
		Vertex:      driver.MapQuad(driver.UnitVertices(), x, y, w, h, p),
		TexCoord:    driver.MapQuad(driver.UnitTexCoords(), 0, 0, 1, 1, p),
		VertexCount: p.QuadVertexCount(),
		Prim:        p,
	}
}

func TestRegistered(t *testing.T) {
	for _, f := range Families {
		desc, ok := driver.DefaultRegistry().Lookup(f.Ident)
		if !ok {
			t.Errorf("%s not registered", f.Ident)
			continue
		}
		if !desc.HandlesTransform || desc.Type != f.Type {
			t.Errorf("%s: descriptor = %+v", f.Ident, desc)
		}
		if got := desc.New().Ident(); got != f.Ident {
			t.Errorf("%s: New().Ident() = %q", f.Ident, got)
		}
	}
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name   string
		video  string
		device any
		ok     bool
	}{
		{"provider", "vulkan", &fakeProvider{}, true},
		{"case insensitive", "Vulkan", &fakeProvider{}, true},
		{"other family", "metal", &fakeProvider{}, false},
		{"no device", "vulkan", nil, false},
		{"wrong device", "vulkan", image.NewRGBA(image.Rect(0, 0, 1, 1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("vulkan", driver.TypeVulkan).Probe(driver.ProbeContext{VideoDriver: tt.video, Device: tt.device})
			if tt.ok && err != nil {
				t.Errorf("Probe() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, driver.ErrIncompatible) {
				t.Errorf("Probe() error = %v, want ErrIncompatible", err)
			}
		})
	}
}

func TestProbeFormat(t *testing.T) {
	if got := probed(t, &fakeProvider{}).Format(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("headless Format() = %v, want RGBA8Unorm", got)
	}
	p := &fakeProvider{format: gputypes.TextureFormatBGRA8Unorm}
	if got := probed(t, p).Format(); got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format() = %v, want BGRA8Unorm", got)
	}
}

func TestDrawInterleaves(t *testing.T) {
	r := probed(t, &fakeProvider{})
	r.Draw(quad(10, 20, 30, 40, driver.PrimTriangleStrip), 100, 50)

	f := r.Frame()
	if f.VertexCount() != 4 || len(f.Batches) != 1 {
		t.Fatalf("vertices %d batches %d, want 4 and 1", f.VertexCount(), len(f.Batches))
	}
	want := []float32{10, 20, 0, 0, 1, 0, 0, 1}
	for i, v := range want {
		if f.Vertices[i] != v {
			t.Errorf("Vertices[%d] = %v, want %v", i, f.Vertices[i], v)
		}
	}
	last := f.Vertices[3*VertexStride : 3*VertexStride+4]
	if last[0] != 40 || last[1] != 60 || last[2] != 1 || last[3] != 1 {
		t.Errorf("last vertex = %v", last)
	}

	b := f.Batches[0]
	if b.Topology != gputypes.PrimitiveTopologyTriangleStrip {
		t.Errorf("Topology = %v, want strip", b.Topology)
	}
	if b.Matrix != gfxmath.Ortho(0, 100, 50, 0, -1, 1) {
		t.Errorf("Matrix = %v, want default projection", b.Matrix)
	}
	if b.Blended {
		t.Error("batch blended outside BlendBegin")
	}
}

func TestBatchMerging(t *testing.T) {
	r := probed(t, &fakeProvider{})
	r.Draw(quad(0, 0, 10, 10, driver.PrimTriangles), 100, 50)
	r.Draw(quad(10, 0, 10, 10, driver.PrimTriangles), 100, 50)
	if n := len(r.Frame().Batches); n != 1 {
		t.Fatalf("batches = %d, want 1 after two list draws", n)
	}
	if c := r.Frame().Batches[0].Count; c != 12 {
		t.Errorf("Count = %d, want 12", c)
	}

	textured := quad(20, 0, 10, 10, driver.PrimTriangles)
	textured.Texture = 7
	r.Draw(textured, 100, 50)

	r.BlendBegin()
	r.Draw(quad(30, 0, 10, 10, driver.PrimTriangles), 100, 50)
	r.BlendEnd()

	r.ScissorBegin(100, 50, 0, 0, 50, 25)
	r.Draw(quad(40, 0, 10, 10, driver.PrimTriangles), 100, 50)
	r.ScissorEnd(100, 50)

	m := gfxmath.Identity()
	custom := quad(50, 0, 10, 10, driver.PrimTriangles)
	custom.Matrix = &m
	r.Draw(custom, 100, 50)

	r.Draw(quad(0, 0, 10, 10, driver.PrimTriangleStrip), 100, 50)
	r.Draw(quad(0, 0, 10, 10, driver.PrimTriangleStrip), 100, 50)

	bs := r.Frame().Batches
	if len(bs) != 7 {
		t.Fatalf("batches = %d, want 7", len(bs))
	}
	if bs[1].Texture != 7 || bs[1].First != 12 {
		t.Errorf("texture batch = %+v", bs[1])
	}
	if !bs[2].Blended || bs[2].Blend != gputypes.BlendStateAlpha() {
		t.Errorf("blend batch = %+v", bs[2].State)
	}
	if bs[3].Scissor != image.Rect(0, 0, 50, 25) || !bs[3].Scissored {
		t.Errorf("scissor batch = %v scissored %v", bs[3].Scissor, bs[3].Scissored)
	}
	if bs[4].Scissored || !bs[4].Scissor.Empty() {
		t.Errorf("scissor after end = %v scissored %v", bs[4].Scissor, bs[4].Scissored)
	}
	if bs[4].Matrix != m {
		t.Errorf("custom matrix not kept: %v", bs[4].Matrix)
	}
}

func TestZeroAreaScissorClipsEverything(t *testing.T) {
	r := probed(t, &fakeProvider{})

	r.Draw(quad(0, 0, 10, 10, driver.PrimTriangles), 100, 50)
	r.ScissorBegin(100, 50, 0, 0, 0, 0)
	r.Draw(quad(0, 0, 100, 50, driver.PrimTriangles), 100, 50)
	r.ScissorEnd(100, 50)
	r.Draw(quad(0, 0, 10, 10, driver.PrimTriangles), 100, 50)

	bs := r.Frame().Batches
	if len(bs) != 3 {
		t.Fatalf("batches = %d, want 3", len(bs))
	}
	if bs[0].Scissored || bs[2].Scissored {
		t.Errorf("unclipped batches marked scissored: %v, %v", bs[0].Scissored, bs[2].Scissored)
	}
	clipped := bs[1]
	if !clipped.Scissored || !clipped.Scissor.Empty() {
		t.Errorf("clipped batch = %v scissored %v, want empty and scissored", clipped.Scissor, clipped.Scissored)
	}
	if clipped.First != 6 || clipped.Count != 6 {
		t.Errorf("clipped batch = first %d count %d, want 6 and 6", clipped.First, clipped.Count)
	}
}

func TestDrawComposesRotation(t *testing.T) {
	r := probed(t, &fakeProvider{})

	d := quad(10, 10, 10, 10, driver.PrimTriangleStrip)
	d.X, d.Y, d.Width, d.Height = 10, 10, 10, 10
	d.Rotation = math.Pi / 2
	d.ScaleFactor = 1
	r.Draw(d, 100, 50)

	b := r.Frame().Batches[0]
	want := gfxmath.Multiply(gfxmath.Ortho(0, 100, 50, 0, -1, 1), driver.AroundCentre(15, 15, math.Pi/2, 1))
	if !gfxmath.ApproxEqual(b.Matrix, want, 1e-5) {
		t.Errorf("Matrix = %v, want %v", b.Matrix, want)
	}
	if v := r.Frame().Vertices; v[0] != 10 || v[1] != 10 {
		t.Errorf("first vertex = (%v, %v), want untouched (10, 10)", v[0], v[1])
	}
}

func TestDrawSkipsDegenerate(t *testing.T) {
	r := probed(t, &fakeProvider{})
	r.Draw(nil, 100, 50)
	r.Draw(&driver.Draw{Vertex: []float32{0, 0, 1, 1}, VertexCount: 2, Prim: driver.PrimTriangles}, 100, 50)
	d := quad(0, 0, 1, 1, driver.PrimTriangles)
	d.Prim = driver.PrimNone
	r.Draw(d, 100, 50)
	if len(r.Frame().Batches) != 0 {
		t.Errorf("batches = %d, want 0", len(r.Frame().Batches))
	}
}

func TestDrawPipeline(t *testing.T) {
	dev := &fakeDevice{}
	r := probed(t, &fakeProvider{hal: dev})

	r.DrawPipeline(&driver.Draw{PipelineID: driver.PipelineRibbon, Color: gfxmath.White, PipelineActive: true}, 100, 50)
	r.DrawPipeline(&driver.Draw{PipelineID: driver.PipelineRibbonSimple, Color: gfxmath.White, PipelineActive: true}, 100, 50)
	r.DrawPipeline(&driver.Draw{PipelineID: driver.PipelineSnow, Color: gfxmath.White}, 100, 50)

	if len(dev.created) != 2 || dev.created[0] != "menugfx_ribbon" || dev.created[1] != "menugfx_snow" {
		t.Errorf("created modules = %v", dev.created)
	}

	bs := r.Frame().Batches
	if len(bs) != 3 {
		t.Fatalf("batches = %d, want 3", len(bs))
	}
	b := bs[0]
	if !b.IsPipeline || b.Pipeline != driver.PipelineRibbon || b.Count != 4 {
		t.Errorf("ribbon batch = %+v", b)
	}
	x, y := r.Frame().Vertices[3*VertexStride], r.Frame().Vertices[3*VertexStride+1]
	if x != 100 || y != 50 {
		t.Errorf("full-screen corner = (%v, %v), want (100, 50)", x, y)
	}
	if !approx(bs[1].Time, 2*frameStep) || bs[2].Time != bs[1].Time {
		t.Errorf("clock = %v, %v", bs[1].Time, bs[2].Time)
	}
	if code, ok := r.SPIRV(EffectRibbon); !ok || code[0] != 0x07230203 {
		t.Error("ribbon SPIR-V missing")
	}

	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if dev.destroyed != 2 {
		t.Errorf("destroyed = %d, want 2", dev.destroyed)
	}
}

func TestDrawPipelineModuleFailure(t *testing.T) {
	dev := &fakeDevice{err: errors.New("device lost")}
	r := probed(t, &fakeProvider{hal: dev})
	r.DrawPipeline(&driver.Draw{PipelineID: driver.PipelineBokeh}, 100, 50)
	r.DrawPipeline(&driver.Draw{PipelineID: driver.PipelineID(99)}, 100, 50)
	if len(r.Frame().Batches) != 0 {
		t.Errorf("batches = %d, want failed effects skipped", len(r.Frame().Batches))
	}
}

func TestShadersCompile(t *testing.T) {
	for _, effect := range []string{EffectRibbon, EffectSnow, EffectBokeh} {
		src, ok := ShaderSource(effect)
		if !ok {
			t.Fatalf("ShaderSource(%q) missing", effect)
		}
		code, err := CompileShader(src)
		if err != nil {
			t.Errorf("CompileShader(%s) error = %v", effect, err)
			continue
		}
		if len(code) < 5 || code[0] != 0x07230203 {
			t.Errorf("CompileShader(%s) did not produce SPIR-V", effect)
		}
	}
	if _, ok := ShaderSource("plasma"); ok {
		t.Error("ShaderSource(plasma) found")
	}
}

func TestEffect(t *testing.T) {
	tests := []struct {
		id   driver.PipelineID
		want string
	}{
		{driver.PipelineRibbon, EffectRibbon},
		{driver.PipelineRibbonSimple, EffectRibbon},
		{driver.PipelineSnowSimple, EffectSnow},
		{driver.PipelineSnow, EffectSnow},
		{driver.PipelineSnowflake, EffectSnow},
		{driver.PipelineBokeh, EffectBokeh},
	}
	for _, tt := range tests {
		if got, _ := Effect(tt.id); got != tt.want {
			t.Errorf("Effect(%v) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestLoadTexture(t *testing.T) {
	r := probed(t, &fakeProvider{})
	tex, err := r.LoadTexture(image.NewNRGBA(image.Rect(0, 0, 10000, 10)), driver.FilterLinear)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := r.Texture(tex)
	if !ok || got.Width != MaxTextureSize || got.Height != 8 || len(got.Pix) != MaxTextureSize*8*4 {
		t.Errorf("texture = %dx%d (%d bytes)", got.Width, got.Height, len(got.Pix))
	}
	r.UnloadTexture(tex)
	if _, ok := r.Texture(tex); ok {
		t.Error("texture still present after UnloadTexture")
	}
	if _, err := r.LoadTexture(image.NewRGBA(image.Rectangle{}), driver.FilterLinear); err == nil {
		t.Error("LoadTexture(empty) error = nil")
	}
}

func TestFontQueuesText(t *testing.T) {
	r := probed(t, &fakeProvider{})
	f, err := r.FontInitFirst("", 18, false)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if f.Backend() != "harfbuzz" {
		t.Errorf("Backend() = %q, want harfbuzz", f.Backend())
	}
	if f.Width("menu", 2) <= f.Width("menu", 1) {
		t.Error("Width does not grow with scale")
	}

	f.RenderMsg("Load Content", driver.TextParams{X: 5, Y: 30, Color: 0xffffffff})
	f.RenderMsg("", driver.TextParams{})
	texts := r.Frame().Texts
	if len(texts) != 1 || texts[0].Text != "Load Content" || texts[0].Face == nil {
		t.Errorf("queued texts = %+v", texts)
	}
}

func TestEndFrame(t *testing.T) {
	r := probed(t, &fakeProvider{})
	r.Draw(quad(0, 0, 10, 10, driver.PrimTriangles), 100, 50)
	f := r.EndFrame()
	if f.VertexCount() != 6 {
		t.Errorf("EndFrame().VertexCount() = %d, want 6", f.VertexCount())
	}
	if r.Frame().VertexCount() != 0 || len(r.Frame().Batches) != 0 {
		t.Error("EndFrame() did not start a new frame")
	}
}

func TestColumnMajor(t *testing.T) {
	m := gfxmath.Translate(3, 4, 0)
	cm := ColumnMajor(m)
	if cm[12] != 3 || cm[13] != 4 || cm[3] != 0 {
		t.Errorf("ColumnMajor(translate) = %v", cm)
	}
}

func approx(a, b float32) bool {
	d := a - b
	return d > -1e-5 && d < 1e-5
}
