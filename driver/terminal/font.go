package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
)

// FontInitFirst returns the terminal's own cell font. path is ignored.
func (r *Driver) FontInitFirst(path string, size float32, threaded bool) (driver.Font, error) {
	if path != "" {
		r.log.Debug("terminal: font file ignored", "path", path)
	}
	return &cellFont{r: r, size: size}, nil
}

// cellFont measures text in cells converted to framebuffer pixels.
type cellFont struct {
	r    *Driver
	size float32
}

func (f *cellFont) Backend() string { return "cell" }
func (f *cellFont) Size() float32   { return f.size }
func (f *cellFont) Close() error    { return nil }

// LineHeight is one cell row.
func (f *cellFont) LineHeight() float32 {
	if _, ch := f.r.cellSize(); ch > 0 {
		return ch
	}
	return f.size
}

// Width ignores scale: a cell is a cell.
func (f *cellFont) Width(text string, scale float32) float32 {
	cw, _ := f.r.cellSize()
	return float32(runewidth.StringWidth(text)) * cw
}

// RenderMsg writes text into the row holding the baseline p.Y.
func (f *cellFont) RenderMsg(text string, p driver.TextParams) {
	r := f.r
	cw, ch := r.cellSize()
	if text == "" || cw == 0 || r.screen == nil {
		return
	}

	cells := runewidth.StringWidth(text)
	col := int(p.X / cw)
	switch p.Align {
	case driver.AlignCenter:
		col -= cells / 2
	case driver.AlignRight:
		col -= cells
	}
	row := int(max(p.Y-1, 0) / ch)
	if row >= r.rows {
		return
	}

	fg := rgb(gfxmath.FromRGBA32(p.Color))
	for _, c := range text {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= r.cols {
			if r.clipped && !r.inClip(col, row) {
				col += w
				continue
			}
			bg := rgb(r.cells[row*r.cols+col])
			r.screen.SetContent(col, row, c, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		col += w
	}
}

// inClip reports whether the centre of a cell is inside the scissor
// rectangle.
func (r *Driver) inClip(col, row int) bool {
	cw, ch := r.cellSize()
	px := int((float32(col) + 0.5) * cw)
	py := int((float32(row) + 0.5) * ch)
	return px >= r.clip.Min.X && px < r.clip.Max.X && py >= r.clip.Min.Y && py < r.clip.Max.Y
}
