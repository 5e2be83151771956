package menugfx

import (
	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
)

// DrawTextureSlice draws tex, a w x h source image, as a nine-slice
// panel covering newW x newH at x, y.
//
// offset is the border width in source pixels. The four corners keep
// their size (times scaleFactor), the edges stretch along one axis and
// the centre along both. All nine quads share one blend scope.
func (d *Display) DrawTextureSlice(tex driver.Texture, x, y, w, h, newW, newH, offset, scaleFactor float32, color *gfxmath.Quad) {
	if d.drv == nil || w <= 0 || h <= 0 || newW <= 0 || newH <= 0 {
		return
	}

	vertW := offset * scaleFactor
	vertH := offset * scaleFactor
	texW := offset / w
	texH := offset / h

	cols := [3]span{
		{x, vertW, 0, texW},
		{x + vertW, newW - 2*vertW, texW, (w - 2*offset) / w},
		{x + newW - vertW, vertW, 1 - texW, texW},
	}
	rows := [3]span{
		{y, vertH, 0, texH},
		{y + vertH, newH - 2*vertH, texH, (h - 2*offset) / h},
		{y + newH - vertH, vertH, 1 - texH, texH},
	}

	p := d.prim()
	c := colorOrWhite(color)
	tex = d.textureOrWhite(tex)

	d.drv.BlendBegin()
	defer d.drv.BlendEnd()
	for _, row := range rows {
		for _, col := range cols {
			if col.size <= 0 || row.size <= 0 {
				continue
			}
			d.dispatch(&driver.Draw{
				Color:       c,
				Vertex:      driver.MapQuad(d.drv.DefaultVertices(), col.pos, row.pos, col.size, row.size, p),
				TexCoord:    driver.MapQuad(d.drv.DefaultTexCoords(), col.tex, row.tex, col.texSize, row.texSize, p),
				VertexCount: p.QuadVertexCount(),
				Texture:     tex,
				X:           col.pos,
				Y:           row.pos,
				Width:       col.size,
				Height:      row.size,
				ScaleFactor: 1,
				Prim:        p,
			})
		}
	}
}

// span is one row or column of a nine-slice, on screen and in the
// texture.
type span struct {
	pos, size    float32
	tex, texSize float32
}
