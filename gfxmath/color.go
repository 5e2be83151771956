package gfxmath

// Color is an RGBA color with float32 channels in the range [0, 1].
type Color [4]float32

// Quad holds one Color per corner of a quad, in triangle-strip order:
// top-left, top-right, bottom-left, bottom-right.
type Quad [4]Color

// White is an opaque white quad, used when a draw supplies no color.
var White = Quad{
	{1, 1, 1, 1},
	{1, 1, 1, 1},
	{1, 1, 1, 1},
	{1, 1, 1, 1},
}

// HexR returns the red channel of a 0xRRGGBB value as a float.
func HexR(hex uint32) float32 { return float32((hex>>16)&0xFF) / 255.0 }

// HexG returns the green channel of a 0xRRGGBB value as a float.
func HexG(hex uint32) float32 { return float32((hex>>8)&0xFF) / 255.0 }

// HexB returns the blue channel of a 0xRRGGBB value as a float.
func HexB(hex uint32) float32 { return float32(hex&0xFF) / 255.0 }

// Hex converts a 0xRRGGBB value and an alpha into a single Color.
func Hex(hex uint32, alpha float32) Color {
	return Color{HexR(hex), HexG(hex), HexB(hex), alpha}
}

// HexToFloat converts a 0xRRGGBB value into a Quad with the same color
// and alpha in all four corners.
func HexToFloat(hex uint32, alpha float32) Quad {
	return Solid(Hex(hex, alpha))
}

// Solid replicates c into all four corners.
func Solid(c Color) Quad {
	return Quad{c, c, c, c}
}

// Gradient builds a vertical gradient quad: top corners take top,
// bottom corners take bottom.
func Gradient(top, bottom Color) Quad {
	return Quad{top, top, bottom, bottom}
}

// WithAlpha returns a copy of q with the alpha channel of every corner
// replaced by a.
func (q Quad) WithAlpha(a float32) Quad {
	for i := range q {
		q[i][3] = a
	}
	return q
}

// Floats flattens q into 16 floats, four per corner.
func (q Quad) Floats() []float32 {
	out := make([]float32, 0, 16)
	for _, c := range q {
		out = append(out, c[0], c[1], c[2], c[3])
	}
	return out
}

// Corner returns the color used for vertex i. Vertices beyond the
// fourth reuse the corners cyclically.
func (q Quad) Corner(i int) Color {
	return q[i%4]
}

// Mul returns c with every channel multiplied by the matching channel of o.
func (c Color) Mul(o Color) Color {
	return Color{c[0] * o[0], c[1] * o[1], c[2] * o[2], c[3] * o[3]}
}

// Lerp interpolates between c and o by t.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		c[0] + (o[0]-c[0])*t,
		c[1] + (o[1]-c[1])*t,
		c[2] + (o[2]-c[2])*t,
		c[3] + (o[3]-c[3])*t,
	}
}

// RGBA8 converts c into 8-bit channels, clamping out-of-range values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3])
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// TextAlpha replaces the low byte of a 0xRRGGBBAA text color with alpha.
func TextAlpha(color uint32, alpha uint8) uint32 {
	return (color & 0xFFFFFF00) | uint32(alpha)
}

// FromRGBA32 converts a packed 0xRRGGBBAA text color into a Color.
func FromRGBA32(color uint32) Color {
	return Color{
		float32((color>>24)&0xFF) / 255.0,
		float32((color>>16)&0xFF) / 255.0,
		float32((color>>8)&0xFF) / 255.0,
		float32(color&0xFF) / 255.0,
	}
}
