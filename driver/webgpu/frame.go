package webgpu

import (
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/font"
	"github.com/gogpu/menugfx/gfxmath"
)

// VertexStride is the number of float32 values per vertex: position
// (x, y), texture coordinate (u, v) and color (r, g, b, a).
const VertexStride = 8

// State is the render state a batch is drawn with.
type State struct {
	Topology gputypes.PrimitiveTopology

	// Blend is the color target blend state. Blended reports whether
	// blending is on at all.
	Blend   gputypes.BlendState
	Blended bool

	// Scissor is the clip rectangle when Scissored is set. An empty
	// rectangle then clips everything.
	Scissor   image.Rectangle
	Scissored bool

	Texture driver.Texture

	// Matrix maps pixel positions to clip space, row-major.
	Matrix gfxmath.Mat4

	// Pipeline selects an effect shader when IsPipeline is set.
	Pipeline   driver.PipelineID
	IsPipeline bool
}

// Batch is a run of vertices in Frame.Vertices sharing one State.
type Batch struct {
	State

	// First and Count are in vertices, not floats.
	First, Count uint32

	// Time is the effect clock for pipeline batches, in seconds.
	Time float32
}

// TextRun is a text draw queued for the host's glyph renderer.
type TextRun struct {
	Text   string
	Params driver.TextParams
	Face   *font.Face
}

// Frame is everything drawn since the last EndFrame.
type Frame struct {
	Vertices []float32
	Batches  []Batch
	Texts    []TextRun
}

// VertexCount returns the number of vertices in the frame.
func (f *Frame) VertexCount() int { return len(f.Vertices) / VertexStride }

// Reset empties the frame, keeping its storage.
func (f *Frame) Reset() {
	f.Vertices = f.Vertices[:0]
	f.Batches = f.Batches[:0]
	f.Texts = f.Texts[:0]
}

// push appends verts drawn with st. Triangle lists extend the previous
// batch when the state matches; strips always start a new one.
func (f *Frame) push(st State, verts []float32, time float32) {
	first := uint32(f.VertexCount())
	count := uint32(len(verts) / VertexStride)
	f.Vertices = append(f.Vertices, verts...)

	if n := len(f.Batches); n > 0 && mergeable(&f.Batches[n-1], st) {
		f.Batches[n-1].Count += count
		return
	}
	f.Batches = append(f.Batches, Batch{State: st, First: first, Count: count, Time: time})
}

func mergeable(last *Batch, st State) bool {
	return st.Topology == gputypes.PrimitiveTopologyTriangleList &&
		!st.IsPipeline &&
		last.State == st
}

// LogValue implements slog.LogValuer.
func (f *Frame) LogValue() slog.Value {
	pipelines := 0
	for i := range f.Batches {
		if f.Batches[i].IsPipeline {
			pipelines++
		}
	}
	return slog.GroupValue(
		slog.Int("vertices", f.VertexCount()),
		slog.Int("batches", len(f.Batches)),
		slog.Int("pipelines", pipelines),
		slog.Int("texts", len(f.Texts)),
	)
}

// ColumnMajor returns m in the column-major layout WGSL uniforms use.
func ColumnMajor(m gfxmath.Mat4) [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}
