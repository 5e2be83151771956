package driver

import (
	"math"
	"testing"

	"github.com/gogpu/menugfx/gfxmath"
)

func TestPrimQuadVertexCount(t *testing.T) {
	tests := []struct {
		prim Prim
		want int
	}{
		{PrimNone, 0},
		{PrimTriangleStrip, 4},
		{PrimTriangles, 6},
	}
	for _, tt := range tests {
		if got := tt.prim.QuadVertexCount(); got != tt.want {
			t.Errorf("%v.QuadVertexCount() = %d, want %d", tt.prim, got, tt.want)
		}
	}
}

func TestMapQuad(t *testing.T) {
	got := MapQuad(UnitVertices(), 10, 20, 100, 50, PrimTriangleStrip)
	want := []float32{10, 20, 110, 20, 10, 70, 110, 70}
	if len(got) != len(want) {
		t.Fatalf("MapQuad() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MapQuad()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	list := MapQuad(UnitVertices(), 0, 0, 1, 1, PrimTriangles)
	if len(list) != 12 {
		t.Fatalf("MapQuad(triangles) len = %d, want 12", len(list))
	}
	// Second triangle starts at the top-right corner.
	if list[6] != 1 || list[7] != 0 {
		t.Errorf("triangle 2 first vertex = (%v, %v), want (1, 0)", list[6], list[7])
	}
}

func TestMapQuadDoesNotAliasTemplate(t *testing.T) {
	tmpl := UnitVertices()
	v := MapQuad(tmpl, 5, 5, 2, 2, PrimTriangleStrip)
	v[0] = 99
	if tmpl[0] != 0 {
		t.Error("MapQuad() result aliases the template")
	}
}

func TestDrawTriangles(t *testing.T) {
	tests := []struct {
		name  string
		prim  Prim
		count int
		want  int
	}{
		{"strip quad", PrimTriangleStrip, 4, 2},
		{"list quad", PrimTriangles, 6, 2},
		{"strip of 6", PrimTriangleStrip, 6, 4},
		{"none", PrimNone, 4, 0},
		{"too few", PrimTriangles, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Draw{Prim: tt.prim, VertexCount: tt.count, Vertex: make([]float32, tt.count*2)}
			n := 0
			d.Triangles(func(a, b, c int) { n++ })
			if n != tt.want {
				t.Errorf("Triangles() produced %d, want %d", n, tt.want)
			}
		})
	}
}

func TestDrawBounds(t *testing.T) {
	d := &Draw{
		Vertex:      []float32{5, 1, -3, 7, 2, 9},
		VertexCount: 3,
	}
	minX, minY, maxX, maxY := d.Bounds()
	if minX != -3 || minY != 1 || maxX != 5 || maxY != 9 {
		t.Errorf("Bounds() = (%v %v %v %v), want (-3 1 5 9)", minX, minY, maxX, maxY)
	}
}

func TestVertexColorExpanded(t *testing.T) {
	q := gfxmath.Quad{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 1, 1}}
	d := &Draw{Color: q, Prim: PrimTriangles, VertexCount: 6}
	want := []gfxmath.Color{q[0], q[1], q[2], q[1], q[3], q[2]}
	for i, w := range want {
		if got := d.VertexColor(i); got != w {
			t.Errorf("VertexColor(%d) = %v, want %v", i, got, w)
		}
	}

	strip := &Draw{Color: q, Prim: PrimTriangleStrip, VertexCount: 4}
	if strip.VertexColor(3) != q[3] {
		t.Errorf("strip VertexColor(3) = %v, want %v", strip.VertexColor(3), q[3])
	}
}

func TestVertexTexCoordFallback(t *testing.T) {
	d := &Draw{Prim: PrimTriangleStrip, VertexCount: 4}
	u, v := d.VertexTexCoord(3)
	if u != 1 || v != 1 {
		t.Errorf("VertexTexCoord(3) = (%v, %v), want (1, 1)", u, v)
	}
	d.TexCoord = []float32{0.5, 0.5, 0.75, 0.5, 0.5, 0.75, 0.75, 0.75}
	u, v = d.VertexTexCoord(1)
	if u != 0.75 || v != 0.5 {
		t.Errorf("VertexTexCoord(1) = (%v, %v), want (0.75, 0.5)", u, v)
	}
}

func TestDrawMVP(t *testing.T) {
	base := gfxmath.Scale(2, 2, 1)

	plain := &Draw{X: 10, Y: 10, Width: 10, Height: 10}
	if got := plain.MVP(base); got != base {
		t.Errorf("MVP() without transform = %v, want base", got)
	}

	// A quarter turn about (15, 15) takes (10, 10) to (20, 10), then
	// the base doubles it.
	d := &Draw{X: 10, Y: 10, Width: 10, Height: 10, Rotation: math.Pi / 2, ScaleFactor: 1}
	x, y := gfxmath.TransformPoint(d.MVP(base), 10, 10)
	if math.Abs(float64(x-40)) > 1e-4 || math.Abs(float64(y-20)) > 1e-4 {
		t.Errorf("MVP() maps (10,10) to (%v,%v), want (40,20)", x, y)
	}

	own := gfxmath.Identity()
	d = &Draw{Width: 10, Height: 10, ScaleFactor: 2, Matrix: &own}
	x, y = gfxmath.TransformPoint(d.MVP(base), 0, 0)
	if math.Abs(float64(x+5)) > 1e-4 || math.Abs(float64(y+5)) > 1e-4 {
		t.Errorf("MVP() with own matrix maps (0,0) to (%v,%v), want (-5,-5)", x, y)
	}
}
