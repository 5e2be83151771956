package gfxmath

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Mat4 is a 4x4 matrix in row-major order:
//
//	| m[0]  m[1]  m[2]  m[3]  |
//	| m[4]  m[5]  m[6]  m[7]  |
//	| m[8]  m[9]  m[10] m[11] |
//	| m[12] m[13] m[14] m[15] |
type Mat4 = f32.Mat4

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation about the Z axis (angle in radians).
func RotateZ(rad float32) Mat4 {
	sin, cos := math32.Sin(rad), math32.Cos(rad)
	return Mat4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns a non-uniform scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection mapping the given box onto
// normalized device coordinates.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl, tb, fn := right-left, top-bottom, far-near
	return Mat4{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(far + near) / fn,
		0, 0, 0, 1,
	}
}

// Multiply returns a × b.
func Multiply(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4]*b[c] +
				a[r*4+1]*b[4+c] +
				a[r*4+2]*b[8+c] +
				a[r*4+3]*b[12+c]
		}
	}
	return m
}

// TransformPoint applies m to the point (x, y, 0, 1).
func TransformPoint(m Mat4, x, y float32) (float32, float32) {
	return m[0]*x + m[1]*y + m[3], m[4]*x + m[5]*y + m[7]
}

// IsIdentity reports whether m is exactly the identity matrix.
func IsIdentity(m Mat4) bool {
	return m == Identity()
}

// ApproxEqual reports whether every element of a and b differs by at
// most eps.
func ApproxEqual(a, b Mat4, eps float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
