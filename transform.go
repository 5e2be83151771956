package menugfx

import (
	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
)

// RotateDraw describes a rotation, and optionally a scale, to compose
// with the driver's default projection.
type RotateDraw struct {
	// Matrix receives the result. It is written, never read.
	Matrix *gfxmath.Mat4

	Rotation float32

	ScaleX, ScaleY, ScaleZ float32
	ScaleEnable            bool
}

// RotateZ writes RotateZ(r.Rotation) × DefaultMVP into r.Matrix,
// premultiplied by the scale when r.ScaleEnable is set. With no driver
// bound the identity stands in for the default projection.
func (d *Display) RotateZ(r *RotateDraw) {
	if r == nil || r.Matrix == nil {
		return
	}
	m := gfxmath.Multiply(gfxmath.RotateZ(r.Rotation), d.defaultMVP())
	if r.ScaleEnable {
		m = gfxmath.Multiply(gfxmath.Scale(r.ScaleX, r.ScaleY, r.ScaleZ), m)
	}
	*r.Matrix = m
}

func (d *Display) defaultMVP() gfxmath.Mat4 {
	if d.drv != nil {
		if m := d.drv.DefaultMVP(); m != nil {
			return *m
		}
	}
	return gfxmath.Identity()
}

// applyTransform resolves dr's rotation and scale. Drivers that handle
// transforms get the raw values and compose them themselves (see
// driver.Draw.MVP); for the others the vertices are rotated and scaled
// here and the values reset.
func (d *Display) applyTransform(dr *driver.Draw) {
	if dr.ScaleFactor == 0 {
		dr.ScaleFactor = 1
	}
	if dr.Rotation == 0 && dr.ScaleFactor == 1 {
		return
	}
	if d.drv.HandlesTransform() {
		return
	}

	m := driver.AroundCentre(dr.X+dr.Width/2, dr.Y+dr.Height/2, dr.Rotation, dr.ScaleFactor)
	n := min(dr.VertexCount, len(dr.Vertex)/2)
	out := make([]float32, n*2)
	for i := 0; i < n; i++ {
		out[i*2], out[i*2+1] = gfxmath.TransformPoint(m, dr.Vertex[i*2], dr.Vertex[i*2+1])
	}
	dr.Vertex = out
	dr.Rotation = 0
	dr.ScaleFactor = 1
}
