package menugfx

import (
	"github.com/gogpu/menugfx/driver"
)

// textMargin is how far outside the framebuffer a text anchor may lie
// before the run is culled.
const textMargin = 64

// shadowAlpha is the opacity of text drop shadows.
const shadowAlpha = 0.35

// TextStyle controls how DrawText renders a run.
type TextStyle struct {
	// Color is packed 0xRRGGBBAA. Runs with zero alpha are skipped.
	Color uint32

	Align driver.TextAlign

	// Scale multiplies the font size. Zero means 1.
	Scale float32

	// Shadows draws a black drop shadow ShadowOffset pixels right of
	// and below the text.
	Shadows      bool
	ShadowOffset float32

	// DrawOutside disables culling of anchors far off screen.
	DrawOutside bool
}

// DrawText renders text with f at the baseline anchor x, y.
func (d *Display) DrawText(f driver.Font, text string, x, y float32, st TextStyle) {
	if d.drv == nil || f == nil || text == "" {
		return
	}
	if st.Color&0xFF == 0 {
		return
	}
	if !st.DrawOutside {
		w, h := float32(d.width), float32(d.height)
		if x < -textMargin || x > w+textMargin || y < -textMargin || y > h+textMargin {
			return
		}
	}

	p := driver.TextParams{
		X:          x,
		Y:          y,
		Scale:      st.Scale,
		Color:      st.Color,
		Align:      st.Align,
		FullScreen: true,
	}
	if p.Scale == 0 {
		p.Scale = 1
	}
	if st.Shadows {
		p.DropX = st.ShadowOffset
		p.DropY = st.ShadowOffset
		p.DropAlpha = shadowAlpha
	}
	f.RenderMsg(text, p)
	d.dirty = true
}
