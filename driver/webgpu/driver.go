package webgpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
	"github.com/gogpu/menugfx/internal/slogx"
)

// MaxTextureSize is the largest texture edge uploaded. Larger images
// are downsampled.
const MaxTextureSize = 8192

// frameStep advances the effect clock for each animated pipeline draw.
const frameStep = 1.0 / 60

// Families are the video drivers this package registers a display
// driver for.
var Families = []struct {
	Ident string
	Type  driver.Type
}{
	{"vulkan", driver.TypeVulkan},
	{"metal", driver.TypeMetal},
	{"d3d12", driver.TypeDirect3D12},
	{"glcore", driver.TypeOpenGLCore},
}

func init() {
	for _, f := range Families {
		driver.Register(driver.Descriptor{
			Ident:            f.Ident,
			Type:             f.Type,
			HandlesTransform: true,
			New:              func() driver.Driver { return New(f.Ident, f.Type) },
		})
	}
}

// Texture is an uploaded image waiting for the host to create the GPU
// texture.
type Texture struct {
	Width, Height int

	// Pix is tightly packed RGBA8.
	Pix    []byte
	Format gputypes.TextureFormat
	Filter driver.Filter
}

// Driver encodes draws for a host-owned WebGPU device.
type Driver struct {
	ident string
	typ   driver.Type
	log   *slog.Logger

	provider gpucontext.DeviceProvider
	format   gputypes.TextureFormat
	shaders  *shaderCache

	width, height int
	mvp           gfxmath.Mat4

	blend     int
	scissor   image.Rectangle
	scissored bool
	clock     float32

	frame Frame

	textures map[driver.Texture]*Texture
	nextTex  driver.Texture
}

// New creates an unprobed driver for one family.
func New(ident string, typ driver.Type) *Driver {
	return &Driver{
		ident:    ident,
		typ:      typ,
		log:      slogx.Nop(),
		mvp:      gfxmath.Identity(),
		shaders:  newShaderCache(),
		textures: make(map[driver.Texture]*Texture),
	}
}

// SetLogger sets the driver's logger. nil restores silence.
func (r *Driver) SetLogger(l *slog.Logger) { r.log = slogx.OrNop(l) }

// Ident implements driver.Driver.
func (r *Driver) Ident() string { return r.ident }

// Type implements driver.Driver.
func (r *Driver) Type() driver.Type { return r.typ }

// HandlesTransform implements driver.Driver. Draws carry their full
// matrix.
func (r *Driver) HandlesTransform() bool { return true }

// PreferredPrim asks for triangle lists, which batch.
func (r *Driver) PreferredPrim() driver.Prim { return driver.PrimTriangles }

// Probe requires the active video driver to be this driver's family
// and ctx.Device to be a gpucontext.DeviceProvider.
func (r *Driver) Probe(ctx driver.ProbeContext) error {
	if !r.typ.Compatible(ctx.VideoDriver) {
		return fmt.Errorf("%w: %s on %q", driver.ErrIncompatible, r.ident, ctx.VideoDriver)
	}
	provider, ok := ctx.Device.(gpucontext.DeviceProvider)
	if !ok {
		return fmt.Errorf("%w: %s needs a gpucontext.DeviceProvider, got %T",
			driver.ErrIncompatible, r.ident, ctx.Device)
	}

	r.provider = provider
	r.format = provider.SurfaceFormat()
	if r.format == gputypes.TextureFormatUndefined {
		r.format = gputypes.TextureFormatRGBA8Unorm
	}
	if hp, ok := ctx.Device.(halProvider); ok {
		if dev, ok := hp.HalDevice().(shaderDevice); ok && dev != nil {
			r.shaders.device = dev
		}
	}
	r.resize(ctx.Width, ctx.Height)

	info := provider.AdapterInfo()
	r.log.Debug("webgpu: probed",
		"ident", r.ident,
		"adapter", info.Name,
		"software", info.Type == gpucontext.AdapterTypeSoftware,
		"format", r.format,
		"hal", r.shaders.device != nil)
	return nil
}

// Provider returns the device provider the driver was probed with.
func (r *Driver) Provider() gpucontext.DeviceProvider { return r.provider }

// Format returns the color target format.
func (r *Driver) Format() gputypes.TextureFormat { return r.format }

// Frame returns the frame being recorded.
func (r *Driver) Frame() *Frame { return &r.frame }

// EndFrame hands over the recorded frame and starts a new one.
func (r *Driver) EndFrame() Frame {
	f := r.frame
	r.log.Debug("webgpu: frame", "stats", &f)
	r.frame = Frame{}
	return f
}

func (r *Driver) state(p driver.Prim, mvp gfxmath.Mat4, tex driver.Texture) State {
	st := State{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		Blend:     gputypes.BlendStateReplace(),
		Scissor:   r.scissor,
		Scissored: r.scissored,
		Texture:   tex,
		Matrix:    mvp,
	}
	if p == driver.PrimTriangleStrip {
		st.Topology = gputypes.PrimitiveTopologyTriangleStrip
	}
	if r.blend > 0 {
		st.Blend = gputypes.BlendStateAlpha()
		st.Blended = true
	}
	return st
}

// vertices interleaves d's positions, texture coordinates and colors.
func vertices(d *driver.Draw) []float32 {
	n := min(d.VertexCount, len(d.Vertex)/2)
	out := make([]float32, 0, n*VertexStride)
	for i := 0; i < n; i++ {
		u, v := d.VertexTexCoord(i)
		c := d.VertexColor(i)
		out = append(out, d.Vertex[i*2], d.Vertex[i*2+1], u, v, c[0], c[1], c[2], c[3])
	}
	return out
}

// Draw implements driver.Driver.
func (r *Driver) Draw(d *driver.Draw, width, height int) {
	if d == nil || d.Prim == driver.PrimNone || min(d.VertexCount, len(d.Vertex)/2) < 3 {
		return
	}
	r.resize(width, height)
	r.frame.push(r.state(d.Prim, d.MVP(r.mvp), d.Texture), vertices(d), 0)
}

// DrawPipeline queues an effect. A draw without vertices covers the
// whole framebuffer. Effects whose shader fails to build are skipped.
func (r *Driver) DrawPipeline(d *driver.Draw, width, height int) {
	if d == nil {
		return
	}
	r.resize(width, height)

	effect, ok := Effect(d.PipelineID)
	if !ok {
		r.log.Warn("webgpu: unknown pipeline", "id", d.PipelineID)
		return
	}
	if err := r.shaders.prepare(effect); err != nil {
		r.log.Warn("webgpu: effect unavailable", "effect", effect, "err", err)
		return
	}
	if d.PipelineActive {
		r.clock += frameStep
	}

	full := *d
	if d.VertexCount == 0 {
		full.Vertex = driver.MapQuad(driver.UnitVertices(), 0, 0, float32(r.width), float32(r.height), driver.PrimTriangleStrip)
		full.TexCoord = nil
		full.VertexCount = 4
		full.Prim = driver.PrimTriangleStrip
	}
	if full.Prim == driver.PrimNone {
		full.Prim = driver.PrimTriangleStrip
	}

	st := r.state(full.Prim, full.MVP(r.mvp), d.Texture)
	st.Pipeline = d.PipelineID
	st.IsPipeline = true
	r.frame.push(st, vertices(&full), r.clock)
}

// SPIRV returns the compiled code of an effect that has been drawn.
func (r *Driver) SPIRV(effect string) ([]uint32, bool) { return r.shaders.SPIRV(effect) }

// BlendBegin implements driver.Driver. Calls nest.
func (r *Driver) BlendBegin() { r.blend++ }

// BlendEnd implements driver.Driver.
func (r *Driver) BlendEnd() {
	if r.blend > 0 {
		r.blend--
	}
}

// DefaultMVP returns a top-left origin orthographic projection.
func (r *Driver) DefaultMVP() *gfxmath.Mat4 { return &r.mvp }

// DefaultVertices implements driver.Driver.
func (r *Driver) DefaultVertices() []float32 { return driver.UnitVertices() }

// DefaultTexCoords implements driver.Driver.
func (r *Driver) DefaultTexCoords() []float32 { return driver.UnitTexCoords() }

// ScissorBegin implements driver.Driver.
func (r *Driver) ScissorBegin(width, height, x, y, w, h int) {
	r.resize(width, height)
	r.scissor = image.Rect(x, y, x+w, y+h)
	r.scissored = true
}

// ScissorEnd implements driver.Driver.
func (r *Driver) ScissorEnd(width, height int) {
	r.resize(width, height)
	r.scissor = image.Rectangle{}
	r.scissored = false
}

// LoadTexture converts img to RGBA8 and keeps it for the host to
// upload.
func (r *Driver) LoadTexture(img image.Image, filter driver.Filter) (driver.Texture, error) {
	if img == nil {
		return 0, fmt.Errorf("webgpu: nil image")
	}
	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("webgpu: empty image %v", b)
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
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}

	r.nextTex++
	r.textures[r.nextTex] = &Texture{
		Width:  w,
		Height: h,
		Pix:    dst.Pix,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Filter: filter,
	}
	return r.nextTex, nil
}

// UnloadTexture implements driver.TextureLoader.
func (r *Driver) UnloadTexture(t driver.Texture) { delete(r.textures, t) }

// Texture returns the pixels behind a handle.
func (r *Driver) Texture(t driver.Texture) (*Texture, bool) {
	tex, ok := r.textures[t]
	return tex, ok
}

// Close releases shader modules and textures.
func (r *Driver) Close() error {
	r.shaders.destroy()
	clear(r.textures)
	r.frame.Reset()
	return nil
}

func (r *Driver) resize(width, height int) {
	if width > 0 && height > 0 && (width != r.width || height != r.height) {
		r.setSize(width, height)
	}
}

func (r *Driver) setSize(width, height int) {
	r.width, r.height = width, height
	r.mvp = gfxmath.Ortho(0, float32(width), float32(height), 0, -1, 1)
}
