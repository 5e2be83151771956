package software

import (
	"image"
	"image/color"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/font"
	"github.com/gogpu/menugfx/gfxmath"
)

// FontInitFirst opens the first font backend that works, falling back
// to the built-in bitmap face.
func (r *Driver) FontInitFirst(path string, size float32, threaded bool) (driver.Font, error) {
	face, err := font.InitFirst(fontBackends, path, float64(size), threaded)
	if err != nil {
		return nil, err
	}
	r.log.Debug("software: font opened", "backend", face.Backend(), "size", face.Size(), "path", path)
	return &textFont{r: r, face: face}, nil
}

// textFont draws text straight into the driver's target.
type textFont struct {
	r    *Driver
	face *font.Face
}

func (f *textFont) Backend() string     { return f.face.Backend() }
func (f *textFont) Size() float32       { return float32(f.face.Size()) }
func (f *textFont) LineHeight() float32 { return float32(f.face.LineHeight()) }
func (f *textFont) Close() error        { return f.face.Close() }

func (f *textFont) Width(text string, scale float32) float32 {
	if scale == 0 {
		scale = 1
	}
	return float32(f.face.Advance(text)) * scale
}

// RenderMsg draws text anchored at p.X on the baseline p.Y. Glyphs are
// drawn at the face size whatever p.Scale says, so alignment uses the
// unscaled width. Bitmap faces draw at their native size.
func (f *textFont) RenderMsg(text string, p driver.TextParams) {
	f.r.texts = append(f.r.texts, TextRecord{Text: text, Params: p})
	if text == "" || f.r.target == nil {
		return
	}

	x := p.X
	switch p.Align {
	case driver.AlignCenter:
		x -= f.Width(text, 1) / 2
	case driver.AlignRight:
		x -= f.Width(text, 1)
	}

	col := gfxmath.FromRGBA32(p.Color)
	if p.HasShadow() {
		mod := p.DropMod
		shadow := gfxmath.Color{col[0] * mod, col[1] * mod, col[2] * mod, col[3] * p.DropAlpha}
		f.draw(text, x+p.DropX, p.Y+p.DropY, shadow)
	}
	f.draw(text, x, p.Y, col)
}

func (f *textFont) draw(text string, x, y float32, col gfxmath.Color) {
	dst, ok := f.r.target.SubImage(f.r.bounds()).(*image.RGBA)
	if !ok || dst.Bounds().Empty() {
		return
	}
	r, g, b, a := col.RGBA8()
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: a}),
		Face: f.face.Raster(),
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}
