package driver

import "github.com/gogpu/menugfx/gfxmath"

// Prim is the primitive topology of a draw.
type Prim int

// Primitive topologies.
const (
	PrimNone Prim = iota
	PrimTriangleStrip
	PrimTriangles
)

// String returns the topology name.
func (p Prim) String() string {
	switch p {
	case PrimTriangleStrip:
		return "triangle-strip"
	case PrimTriangles:
		return "triangles"
	default:
		return "none"
	}
}

// QuadVertexCount returns the number of vertices a quad needs in
// topology p: 4 for a strip, 6 for a triangle list, 0 otherwise.
func (p Prim) QuadVertexCount() int {
	switch p {
	case PrimTriangleStrip:
		return 4
	case PrimTriangles:
		return 6
	default:
		return 0
	}
}

// Texture is an opaque, backend-owned texture handle. Zero means none.
type Texture uintptr

// PipelineID selects a predefined backend effect.
type PipelineID uint32

// Predefined menu background effects.
const (
	PipelineRibbon PipelineID = iota
	PipelineRibbonSimple
	PipelineSnowSimple
	PipelineSnow
	PipelineBokeh
	PipelineSnowflake
)

// String returns the effect name.
func (id PipelineID) String() string {
	switch id {
	case PipelineRibbon:
		return "ribbon"
	case PipelineRibbonSimple:
		return "ribbon-simple"
	case PipelineSnowSimple:
		return "snow-simple"
	case PipelineSnow:
		return "snow"
	case PipelineBokeh:
		return "bokeh"
	case PipelineSnowflake:
		return "snowflake"
	default:
		return "unknown"
	}
}

// Draw is the backend-neutral description of one draw call.
//
// Vertex positions are framebuffer pixels with the origin at the top-left
// and y growing down. Mapping to device coordinates is the driver's job.
type Draw struct {
	// Color holds one color per corner.
	Color gfxmath.Quad

	// Vertex holds x,y pairs. TexCoord holds u,v pairs.
	Vertex   []float32
	TexCoord []float32

	// VertexCount is the number of vertices in Vertex.
	VertexCount int

	// Texture is the texture to sample, or zero for a solid fill.
	Texture Texture

	// Matrix is an optional base transform; nil means the driver
	// default. It never includes Rotation or ScaleFactor.
	Matrix *gfxmath.Mat4

	// X, Y, Width and Height describe the destination rectangle.
	X, Y          float32
	Width, Height float32

	// Rotation (radians) and ScaleFactor are applied around the centre
	// of the destination rectangle by drivers that handle transforms,
	// usually through MVP. Other drivers always see 0 and 1 here, with
	// the vertices already transformed.
	Rotation    float32
	ScaleFactor float32

	Prim Prim

	// PipelineID selects an effect for DrawPipeline. PipelineActive
	// reports whether the effect is animating.
	PipelineID     PipelineID
	PipelineActive bool

	// BackendData is passed through untouched to the driver.
	BackendData any
}

// MVP returns the matrix a driver that handles transforms draws d
// with: Matrix, or base when Matrix is nil, followed by Rotation and
// ScaleFactor about the centre of the destination rectangle.
func (d *Draw) MVP(base gfxmath.Mat4) gfxmath.Mat4 {
	if d.Matrix != nil {
		base = *d.Matrix
	}
	scale := d.ScaleFactor
	if scale == 0 {
		scale = 1
	}
	if d.Rotation == 0 && scale == 1 {
		return base
	}
	return gfxmath.Multiply(base, AroundCentre(d.X+d.Width/2, d.Y+d.Height/2, d.Rotation, scale))
}

// AroundCentre returns the pixel-space transform that scales, then
// rotates, about (cx, cy).
func AroundCentre(cx, cy, rotation, scale float32) gfxmath.Mat4 {
	m := gfxmath.Translate(-cx, -cy, 0)
	m = gfxmath.Multiply(gfxmath.Scale(scale, scale, 1), m)
	m = gfxmath.Multiply(gfxmath.RotateZ(rotation), m)
	return gfxmath.Multiply(gfxmath.Translate(cx, cy, 0), m)
}

// Triangles calls fn for each triangle of d as vertex indices, honouring
// the topology. Degenerate counts produce no calls.
func (d *Draw) Triangles(fn func(a, b, c int)) {
	n := d.VertexCount
	if n*2 > len(d.Vertex) {
		n = len(d.Vertex) / 2
	}
	switch d.Prim {
	case PrimTriangleStrip:
		for i := 0; i+2 < n; i++ {
			if i%2 == 0 {
				fn(i, i+1, i+2)
			} else {
				fn(i+1, i, i+2)
			}
		}
	case PrimTriangles:
		for i := 0; i+2 < n; i += 3 {
			fn(i, i+1, i+2)
		}
	}
}

// Bounds returns the axis-aligned bounding box of d's vertices.
func (d *Draw) Bounds() (minX, minY, maxX, maxY float32) {
	n := d.VertexCount
	if n*2 > len(d.Vertex) {
		n = len(d.Vertex) / 2
	}
	if n == 0 {
		return d.X, d.Y, d.X + d.Width, d.Y + d.Height
	}
	minX, minY = d.Vertex[0], d.Vertex[1]
	maxX, maxY = minX, minY
	for i := 1; i < n; i++ {
		x, y := d.Vertex[i*2], d.Vertex[i*2+1]
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return minX, minY, maxX, maxY
}

// Unit templates for a quad, in strip order top-left, top-right,
// bottom-left, bottom-right.
var (
	unitVertices  = []float32{0, 0, 1, 0, 0, 1, 1, 1}
	unitTexCoords = []float32{0, 0, 1, 0, 0, 1, 1, 1}
)

// UnitVertices returns the shared unit-square vertex template.
// Callers must not modify it.
func UnitVertices() []float32 { return unitVertices }

// UnitTexCoords returns the shared unit-square texture template.
// Callers must not modify it.
func UnitTexCoords() []float32 { return unitTexCoords }

// stripToList reorders the four strip corners into two triangles.
var stripToList = [6]int{0, 1, 2, 1, 3, 2}

// MapQuad maps a unit-square template (u,v pairs in strip order) onto
// the rectangle x, y, w, h and returns the vertices in topology p.
func MapQuad(template []float32, x, y, w, h float32, p Prim) []float32 {
	corners := make([]float32, 8)
	for i := 0; i < 4 && i*2+1 < len(template); i++ {
		corners[i*2] = x + template[i*2]*w
		corners[i*2+1] = y + template[i*2+1]*h
	}
	return Expand(corners, p)
}

// Expand converts four strip-ordered x,y pairs into topology p.
func Expand(corners []float32, p Prim) []float32 {
	if p != PrimTriangles {
		return corners
	}
	out := make([]float32, 0, 12)
	for _, i := range stripToList {
		out = append(out, corners[i*2], corners[i*2+1])
	}
	return out
}

// VertexColor returns the color of vertex i. Quads expanded into two
// triangles map back onto their original corners.
func (d *Draw) VertexColor(i int) gfxmath.Color {
	if d.Prim == PrimTriangles && d.VertexCount == 6 && i < 6 {
		return d.Color[stripToList[i]]
	}
	return d.Color.Corner(i)
}

// VertexTexCoord returns the texture coordinate of vertex i, falling back
// to the unit template when the draw has none.
func (d *Draw) VertexTexCoord(i int) (u, v float32) {
	tc := d.TexCoord
	if len(tc) < (i+1)*2 {
		tc = unitTexCoords
		if d.Prim == PrimTriangles && d.VertexCount == 6 && i < 6 {
			i = stripToList[i]
		}
		i %= 4
	}
	return tc[i*2], tc[i*2+1]
}
