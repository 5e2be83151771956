package menugfx

// ClampScissor fits the rectangle x, y, w, h to a fbWidth x fbHeight
// framebuffer. Negative origins shrink the size, origins past the edge
// collapse the rectangle to zero, and sizes are cut at the far edges.
func ClampScissor(x, y, w, h, fbWidth, fbHeight int) (int, int, int, int) {
	w, h = max(w, 0), max(h, 0)
	if y < 0 {
		h = max(h+y, 0)
		y = 0
	}
	if x < 0 {
		w = max(w+x, 0)
		x = 0
	}
	if y >= fbHeight {
		h, y = 0, 0
	}
	if x >= fbWidth {
		w, x = 0, 0
	}
	if y+h > fbHeight {
		h = fbHeight - y
	}
	if x+w > fbWidth {
		w = fbWidth - x
	}
	return x, y, w, h
}

// ScissorBegin restricts drawing to x, y, w, h, clamped to the
// framebuffer. Scissors do not nest: a second ScissorBegin replaces the
// first.
func (d *Display) ScissorBegin(x, y, w, h int) {
	if d.drv == nil {
		return
	}
	if d.opts.scissorCheck && d.scissorOpen {
		Logger().Warn("menugfx: ScissorBegin without matching ScissorEnd", "x", x, "y", y, "w", w, "h", h)
	}
	d.scissorOpen = true
	x, y, w, h = ClampScissor(x, y, w, h, d.width, d.height)
	d.drv.ScissorBegin(d.width, d.height, x, y, w, h)
}

// ScissorEnd restores drawing to the whole framebuffer.
func (d *Display) ScissorEnd() {
	if d.drv == nil {
		return
	}
	if d.opts.scissorCheck && !d.scissorOpen {
		Logger().Warn("menugfx: ScissorEnd without ScissorBegin")
	}
	d.scissorOpen = false
	d.drv.ScissorEnd(d.width, d.height)
}
