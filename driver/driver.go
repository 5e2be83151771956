package driver

import (
	"errors"
	"image"

	"github.com/gogpu/menugfx/gfxmath"
)

// Common driver errors.
var (
	// ErrIncompatible is returned by Probe when the driver cannot run
	// against the active video driver or host device.
	ErrIncompatible = errors.New("driver: incompatible with active video driver")

	// ErrNotFound is returned when no registered driver matches a name.
	ErrNotFound = errors.New("driver: not found")

	// ErrNoDriver is returned when probing finds no working driver.
	ErrNoDriver = errors.New("driver: no compatible driver")
)

// Driver is the contract every display backend implements.
//
// A Driver turns backend-neutral Draw values into calls against one
// concrete graphics API. Drivers are created by the Registry and bound
// to a display only after Probe succeeds.
type Driver interface {
	// Ident returns the driver identifier (e.g. "vulkan", "software").
	Ident() string

	// Type returns the backend family tag.
	Type() Type

	// HandlesTransform reports whether the driver applies rotation and
	// scale itself. When false the caller pre-transforms vertices.
	HandlesTransform() bool

	// Probe checks that the driver can run in the given environment and
	// prepares it for drawing. It is called once before binding.
	Probe(ctx ProbeContext) error

	// Draw executes a single draw. It must not modify d's slices.
	Draw(d *Draw, width, height int)

	// DrawPipeline executes one of the driver's predefined effects,
	// selected by d.PipelineID.
	DrawPipeline(d *Draw, width, height int)

	// BlendBegin enables alpha blending for subsequent draws.
	BlendBegin()

	// BlendEnd disables blending enabled by the matching BlendBegin.
	BlendEnd()

	// DefaultMVP returns the default model-view-projection matrix. The
	// result is only valid until the next frame.
	DefaultMVP() *gfxmath.Mat4

	// DefaultVertices returns the unit-square vertex template used when
	// a draw supplies no vertices. Callers must not modify it.
	DefaultVertices() []float32

	// DefaultTexCoords returns the texture coordinate template used
	// when a draw supplies none. Callers must not modify it.
	DefaultTexCoords() []float32

	// FontInitFirst creates the first font backend compatible with this
	// driver. An empty path selects the built-in font.
	FontInitFirst(path string, size float32, threaded bool) (Font, error)

	// ScissorBegin restricts drawing to the given rectangle.
	ScissorBegin(width, height, x, y, w, h int)

	// ScissorEnd restores the full framebuffer clip region.
	ScissorEnd(width, height int)
}

// ProbeContext describes the environment a driver is probed against.
type ProbeContext struct {
	// VideoDriver is the ident of the active video driver ("vulkan",
	// "gl", ...). Drivers of a specific family only accept their own.
	VideoDriver string

	// Threaded reports whether the video driver runs on its own thread.
	Threaded bool

	// Device is an optional host-owned handle the driver draws through,
	// for example a gpucontext.DeviceProvider or a terminal screen.
	Device any

	// Width and Height are the current framebuffer dimensions.
	Width, Height int
}

// Filter selects how a texture is sampled.
type Filter int

const (
	// FilterLinear samples with bilinear filtering.
	FilterLinear Filter = iota
	// FilterNearest samples the nearest texel.
	FilterNearest
	// FilterMipmapLinear builds a mip chain and samples linearly.
	FilterMipmapLinear
	// FilterMipmapNearest builds a mip chain and samples the nearest texel.
	FilterMipmapNearest
)

// TextureLoader is implemented by drivers that can upload decoded
// images and hand back opaque texture handles.
type TextureLoader interface {
	LoadTexture(img image.Image, filter Filter) (Texture, error)
	UnloadTexture(t Texture)
}

// TopologyPreferrer is implemented by drivers that want quads emitted
// as triangle lists instead of strips.
type TopologyPreferrer interface {
	PreferredPrim() Prim
}
