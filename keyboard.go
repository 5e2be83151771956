package menugfx

import (
	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
)

// On-screen keyboard grid.
const (
	KeyboardColumns = 11
	KeyboardRows    = 4
	KeyboardKeys    = KeyboardColumns * KeyboardRows
)

// keyboardDim is the color and opacity of the panel behind the keys.
const (
	keyboardDimColor = 0x000000
	keyboardDimAlpha = 0.85
)

// keySize returns the size of one key on a width x height framebuffer.
// Keys are never wider than they are tall.
func keySize(width, height int) (w, h float32) {
	w = float32(width) / KeyboardColumns
	h = float32(height) / 10
	return min(w, h), h
}

// keyRect returns the top-left corner of key i.
func keyRect(i, width, height int, w, h float32) (x, y float32) {
	line := float32(i/KeyboardColumns) * float32(height) / 10
	x = float32(width)/2 - KeyboardColumns*w/2 + float32(i%KeyboardColumns)*w
	y = float32(height)/2 + h/2 + line
	return x, y
}

// DrawKeyboard draws the on-screen keyboard over the lower half of the
// framebuffer: a dimmed panel, the hover texture on the selected key
// and the key labels. Labels of the selected key use textColor, the
// others white.
func (d *Display) DrawKeyboard(hover driver.Texture, f driver.Font, keys []string, selected int, textColor uint32) {
	if d.drv == nil || d.width <= 0 || d.height <= 0 {
		return
	}
	w, h := float32(d.width), float32(d.height)
	dim := gfxmath.HexToFloat(keyboardDimColor, keyboardDimAlpha)
	d.DrawQuad(0, h/2, w, h/2, &dim, 0)

	kw, kh := keySize(d.width, d.height)
	for i, label := range keys {
		if i >= KeyboardKeys {
			break
		}
		x, y := keyRect(i, d.width, d.height, kw, kh)

		color := uint32(0xffffffff)
		if i == selected {
			d.DrawTexture(hover, x, y, kw, kh, 0, 1, nil)
			color = textColor
		}
		if f != nil {
			d.DrawText(f, label, x+kw/2, y+kh/2+f.Size()/3, TextStyle{
				Color: color,
				Align: driver.AlignCenter,
				Scale: 1,
			})
		}
	}
}

// OSKPtrAtPos returns the index of the on-screen keyboard key under the
// point x, y on a width x height framebuffer, or -1 when the point
// misses every key. Key edges do not count as hits.
func OSKPtrAtPos(x, y float32, width, height int) int {
	kw, kh := keySize(width, height)
	for i := 0; i < KeyboardKeys; i++ {
		kx, ky := keyRect(i, width, height, kw, kh)
		if x > kx && x < kx+kw && y > ky && y < ky+kh {
			return i
		}
	}
	return -1
}
