package terminal

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
)

type vertex struct {
	x, y float32
	u, v float32
	c    gfxmath.Color
}

func vertexOf(d *driver.Draw, i int) vertex {
	u, v := d.VertexTexCoord(i)
	return vertex{x: d.Vertex[i*2], y: d.Vertex[i*2+1], u: u, v: v, c: d.VertexColor(i)}
}

func edge(a, b vertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// owns breaks ties for cell centres on a shared edge, so that a quad
// split in two paints each cell once.
func owns(w float32, a, b vertex) bool {
	if w != 0 {
		return w > 0
	}
	dy := b.y - a.y
	return dy < 0 || (dy == 0 && b.x > a.x)
}

func (r *Driver) fill(d *driver.Draw) {
	cw, ch := r.cellSize()
	if cw == 0 || r.screen == nil {
		return
	}
	tex := r.textures[d.Texture]
	d.Triangles(func(a, b, c int) {
		r.triangle(vertexOf(d, a), vertexOf(d, b), vertexOf(d, c), cw, ch, tex)
	})
}

// triangle paints every cell whose centre lies inside a, b, c.
func (r *Driver) triangle(a, b, c vertex, cw, ch float32, tex *image.RGBA) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	box := image.Rect(
		int(math.Floor(float64(min(a.x, b.x, c.x)/cw))),
		int(math.Floor(float64(min(a.y, b.y, c.y)/ch))),
		int(math.Ceil(float64(max(a.x, b.x, c.x)/cw))),
		int(math.Ceil(float64(max(a.y, b.y, c.y)/ch))),
	).Intersect(image.Rect(0, 0, r.cols, r.rows))

	for cy := box.Min.Y; cy < box.Max.Y; cy++ {
		py := (float32(cy) + 0.5) * ch
		for cx := box.Min.X; cx < box.Max.X; cx++ {
			px := (float32(cx) + 0.5) * cw
			if r.clipped && !r.inClip(cx, cy) {
				continue
			}
			w0 := edge(b, c, px, py)
			w1 := edge(c, a, px, py)
			w2 := edge(a, b, px, py)
			if !owns(w0, b, c) || !owns(w1, c, a) || !owns(w2, a, b) {
				continue
			}

			l0, l1, l2 := w0/area, w1/area, w2/area
			col := gfxmath.Color{
				a.c[0]*l0 + b.c[0]*l1 + c.c[0]*l2,
				a.c[1]*l0 + b.c[1]*l1 + c.c[1]*l2,
				a.c[2]*l0 + b.c[2]*l1 + c.c[2]*l2,
				a.c[3]*l0 + b.c[3]*l1 + c.c[3]*l2,
			}
			if tex != nil {
				col = col.Mul(sample(tex, a.u*l0+b.u*l1+c.u*l2, a.v*l0+b.v*l1+c.v*l2))
			}
			r.paint(cx, cy, col)
		}
	}
}

// paint sets the background of one cell. Blended draws composite over
// the cell's current color; others replace it.
func (r *Driver) paint(cx, cy int, col gfxmath.Color) {
	i := cy*r.cols + cx
	a := gfxmath.Clamp(col[3], 0, 1)
	dst := r.cells[i]
	keep := float32(0)
	if r.blend > 0 {
		keep = 1 - a
	}
	out := gfxmath.Color{1, 1, 1, 1}
	for k := 0; k < 3; k++ {
		out[k] = gfxmath.Clamp(col[k], 0, 1)*a + dst[k]*keep
	}
	r.cells[i] = out
	r.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(rgb(out)))
}

// sample returns the nearest texel at (u, v), unpremultiplied.
func sample(img *image.RGBA, u, v float32) gfxmath.Color {
	b := img.Bounds()
	x := b.Min.X + min(max(int(u*float32(b.Dx())), 0), b.Dx()-1)
	y := b.Min.Y + min(max(int(v*float32(b.Dy())), 0), b.Dy()-1)
	p := img.RGBAAt(x, y)
	if p.A == 0 {
		return gfxmath.Color{}
	}
	a := float32(p.A) / 255
	return gfxmath.Color{
		float32(p.R) / 255 / a,
		float32(p.G) / 255 / a,
		float32(p.B) / 255 / a,
		a,
	}
}

func rgb(c gfxmath.Color) tcell.Color {
	r, g, b, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
