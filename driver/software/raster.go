package software

import (
	"image"
	"math"

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
	return vertex{
		x: d.Vertex[i*2],
		y: d.Vertex[i*2+1],
		u: u,
		v: v,
		c: d.VertexColor(i),
	}
}

// edge returns twice the signed area of (a, b, (px, py)).
func edge(a, b vertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// owns applies a top-left style fill rule: a pixel centre lying exactly
// on an edge belongs to only one of the two triangles sharing it.
func owns(w float32, a, b vertex) bool {
	if w != 0 {
		return w > 0
	}
	dy := b.y - a.y
	return dy < 0 || (dy == 0 && b.x > a.x)
}

// fillTriangle scan-converts one triangle, sampling pixel centres.
func fillTriangle(dst *image.RGBA, clip image.Rectangle, a, b, c vertex, tex *texture, blend bool) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	box := image.Rect(
		int(math.Floor(float64(min(a.x, b.x, c.x)))),
		int(math.Floor(float64(min(a.y, b.y, c.y)))),
		int(math.Ceil(float64(max(a.x, b.x, c.x)))),
		int(math.Ceil(float64(max(a.y, b.y, c.y)))),
	).Intersect(clip)
	if box.Empty() {
		return
	}

	for py := box.Min.Y; py < box.Max.Y; py++ {
		fy := float32(py) + 0.5
		for px := box.Min.X; px < box.Max.X; px++ {
			fx := float32(px) + 0.5
			w0 := edge(b, c, fx, fy)
			w1 := edge(c, a, fx, fy)
			w2 := edge(a, b, fx, fy)
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
				u := a.u*l0 + b.u*l1 + c.u*l2
				v := a.v*l0 + b.v*l1 + c.v*l2
				col = col.Mul(sample(tex.img, u, v))
			}
			plot(dst, px, py, col, blend)
		}
	}
}

// sample returns the nearest texel at (u, v), unpremultiplied.
func sample(img *image.RGBA, u, v float32) gfxmath.Color {
	b := img.Bounds()
	x := b.Min.X + clampIndex(int(u*float32(b.Dx())), b.Dx())
	y := b.Min.Y + clampIndex(int(v*float32(b.Dy())), b.Dy())
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	if p[3] == 0 {
		return gfxmath.Color{}
	}
	a := float32(p[3]) / 255
	return gfxmath.Color{
		float32(p[0]) / 255 / a,
		float32(p[1]) / 255 / a,
		float32(p[2]) / 255 / a,
		a,
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// plot writes col at (x, y). With blend set the color is composited
// source-over; otherwise it replaces the pixel.
func plot(dst *image.RGBA, x, y int, col gfxmath.Color, blend bool) {
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]

	sa := gfxmath.Clamp(col[3], 0, 1)
	sr := gfxmath.Clamp(col[0], 0, 1) * sa
	sg := gfxmath.Clamp(col[1], 0, 1) * sa
	sb := gfxmath.Clamp(col[2], 0, 1) * sa

	if !blend {
		p[0], p[1], p[2], p[3] = unit8(sr), unit8(sg), unit8(sb), unit8(sa)
		return
	}

	inv := 1 - sa
	p[0] = unit8(sr + float32(p[0])/255*inv)
	p[1] = unit8(sg + float32(p[1])/255*inv)
	p[2] = unit8(sb + float32(p[2])/255*inv)
	p[3] = unit8(sa + float32(p[3])/255*inv)
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
