package menugfx

import (
	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/gfxmath"
)

// prim returns the topology quads are emitted in for the bound driver.
func (d *Display) prim() driver.Prim {
	if tp, ok := d.drv.(driver.TopologyPreferrer); ok {
		if p := tp.PreferredPrim(); p != driver.PrimNone {
			return p
		}
	}
	return driver.PrimTriangleStrip
}

func colorOrWhite(c *gfxmath.Quad) gfxmath.Quad {
	if c == nil {
		return gfxmath.White
	}
	return *c
}

func (d *Display) textureOrWhite(t driver.Texture) driver.Texture {
	if t == 0 {
		return d.white
	}
	return t
}

// quad builds a textured quad covering x, y, w, h from the driver's
// default templates.
func (d *Display) quad(x, y, w, h float32, color *gfxmath.Quad, tex driver.Texture) *driver.Draw {
	p := d.prim()
	return &driver.Draw{
		Color:       colorOrWhite(color),
		Vertex:      driver.MapQuad(d.drv.DefaultVertices(), x, y, w, h, p),
		TexCoord:    driver.MapQuad(d.drv.DefaultTexCoords(), 0, 0, 1, 1, p),
		VertexCount: p.QuadVertexCount(),
		Texture:     d.textureOrWhite(tex),
		X:           x,
		Y:           y,
		Width:       w,
		Height:      h,
		ScaleFactor: 1,
		Prim:        p,
	}
}

// dispatch resolves the transform, records the draw in the frame batch
// and hands it to the driver.
func (d *Display) dispatch(dr *driver.Draw) {
	d.applyTransform(dr)
	d.batch.add(dr)
	d.drv.Draw(dr, d.width, d.height)
	d.dirty = true
}

func (d *Display) dispatchBlended(dr *driver.Draw) {
	d.drv.BlendBegin()
	d.dispatch(dr)
	d.drv.BlendEnd()
}

// DrawQuad fills the rectangle x, y, w, h. A nil color draws opaque
// white; a zero texture draws untextured. Empty rectangles are skipped.
func (d *Display) DrawQuad(x, y, w, h float32, color *gfxmath.Quad, tex driver.Texture) {
	if d.drv == nil || w <= 0 || h <= 0 {
		return
	}
	d.dispatchBlended(d.quad(x, y, w, h, color, tex))
}

// DrawPolygon fills the quadrilateral with corners given in strip
// order: top-left, top-right, bottom-left, bottom-right.
func (d *Display) DrawPolygon(x1, y1, x2, y2, x3, y3, x4, y4 float32, color *gfxmath.Quad) {
	if d.drv == nil {
		return
	}
	p := d.prim()
	corners := []float32{x1, y1, x2, y2, x3, y3, x4, y4}
	minX, maxX := min(x1, x2, x3, x4), max(x1, x2, x3, x4)
	minY, maxY := min(y1, y2, y3, y4), max(y1, y2, y3, y4)
	if maxX-minX <= 0 || maxY-minY <= 0 {
		return
	}
	d.dispatchBlended(&driver.Draw{
		Color:       colorOrWhite(color),
		Vertex:      driver.Expand(corners, p),
		TexCoord:    driver.MapQuad(d.drv.DefaultTexCoords(), 0, 0, 1, 1, p),
		VertexCount: p.QuadVertexCount(),
		Texture:     d.white,
		X:           minX,
		Y:           minY,
		Width:       maxX - minX,
		Height:      maxY - minY,
		ScaleFactor: 1,
		Prim:        p,
	})
}

// DrawTexture draws tex into x, y, w, h rotated by rotation radians and
// scaled by scale about the rectangle's centre. A scale of 0 means 1.
func (d *Display) DrawTexture(tex driver.Texture, x, y, w, h, rotation, scale float32, color *gfxmath.Quad) {
	if d.drv == nil || w <= 0 || h <= 0 {
		return
	}
	dr := d.quad(x, y, w, h, color, tex)
	dr.Rotation = rotation
	if scale != 0 {
		dr.ScaleFactor = scale
	}
	d.dispatchBlended(dr)
}

// DrawCursor draws a size x size cursor centred on x, y.
func (d *Display) DrawCursor(x, y, size float32, tex driver.Texture, color *gfxmath.Quad) {
	if d.drv == nil || size <= 0 {
		return
	}
	d.dispatchBlended(d.quad(x-size/2, y-size/2, size, size, color, tex))
}

// DrawBackground draws a full-framebuffer background. Missing vertices
// and texture coordinates come from the driver's templates; a rectangle
// left empty covers the whole framebuffer. The opacity replaces every
// corner alpha when addOpacity is set or the background is textured.
// bg is not modified.
func (d *Display) DrawBackground(bg *driver.Draw, addOpacity bool, opacity float32) {
	if d.drv == nil || bg == nil {
		return
	}
	dr := *bg

	if len(dr.Vertex) == 0 {
		if dr.Width <= 0 || dr.Height <= 0 {
			dr.X, dr.Y = 0, 0
			dr.Width, dr.Height = float32(d.width), float32(d.height)
		}
		dr.Prim = d.prim()
		dr.Vertex = driver.MapQuad(d.drv.DefaultVertices(), dr.X, dr.Y, dr.Width, dr.Height, dr.Prim)
		dr.VertexCount = dr.Prim.QuadVertexCount()
	}
	if dr.Prim == driver.PrimNone {
		dr.Prim = driver.PrimTriangleStrip
	}
	if dr.VertexCount == 0 {
		dr.VertexCount = len(dr.Vertex) / 2
	}
	if len(dr.TexCoord) == 0 {
		dr.TexCoord = driver.MapQuad(d.drv.DefaultTexCoords(), 0, 0, 1, 1, dr.Prim)
	}

	dr.ScaleFactor = 1
	dr.Rotation = 0
	if dr.Texture != 0 {
		addOpacity = true
	}
	if addOpacity {
		dr.Color = dr.Color.WithAlpha(opacity)
	}
	dr.Texture = d.textureOrWhite(dr.Texture)
	mvp := d.defaultMVP()
	dr.Matrix = &mvp

	d.dispatchBlended(&dr)
}

// DrawPipeline runs one of the driver's predefined effects. dr is not
// modified.
func (d *Display) DrawPipeline(dr *driver.Draw) {
	if d.drv == nil || dr == nil {
		return
	}
	cp := *dr
	d.drv.DrawPipeline(&cp, d.width, d.height)
	d.dirty = true
}

// DrawRaw dispatches a caller-built draw without blending. Vertices
// missing from dr are generated from its rectangle; draws with an empty
// rectangle are skipped. dr is not modified.
func (d *Display) DrawRaw(dr *driver.Draw) {
	if d.drv == nil || dr == nil || dr.Width <= 0 || dr.Height <= 0 {
		return
	}
	cp := *dr
	if len(cp.Vertex) == 0 {
		cp.Prim = d.prim()
		cp.Vertex = driver.MapQuad(d.drv.DefaultVertices(), cp.X, cp.Y, cp.Width, cp.Height, cp.Prim)
		cp.VertexCount = cp.Prim.QuadVertexCount()
	}
	if cp.Prim == driver.PrimNone {
		cp.Prim = driver.PrimTriangleStrip
	}
	if cp.VertexCount == 0 {
		cp.VertexCount = len(cp.Vertex) / 2
	}
	cp.Texture = d.textureOrWhite(cp.Texture)
	d.dispatch(&cp)
}
