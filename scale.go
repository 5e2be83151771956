package menugfx

import (
	"math"

	"github.com/gogpu/menugfx/gfxmath"
)

// OzoneSidebarWidth is the unscaled width of the Ozone sidebar. Ozone
// scales are capped so the sidebar never exceeds a third of the width.
const OzoneSidebarWidth = 408

type dpiCache struct {
	valid         bool
	width, height int
	dpi           float32
	scale         float32
}

type scaleCache struct {
	valid         bool
	width, height int
	factor        float32
	dpiScale      float32
	menu          MenuDriverID
	scale         float32
}

func (d *Display) metricsDPI() float32 {
	if d.opts.metrics == nil {
		return 0
	}
	if dpi, ok := d.opts.metrics.DPI(); ok && dpi > 0 {
		return dpi
	}
	return 0
}

// DPIScale returns the density scale for a width x height display,
// using the DPI reported by the Metrics option when there is one. The
// result is cached per resolution and density.
func (d *Display) DPIScale(width, height int) float32 {
	dpi := d.metricsDPI()
	c := &d.dpi
	if c.valid && c.width == width && c.height == height && c.dpi == dpi {
		return c.scale
	}
	s := gfxmath.DPIScale(width, height, dpi)
	*c = dpiCache{valid: true, width: width, height: height, dpi: dpi, scale: s}
	return s
}

// AdjustedScale returns base × factor × DPIScale(width, height),
// clamped to at least gfxmath.MinScale. For the Ozone menu the result
// is also capped so that the sidebar fits a third of the width. The
// result never decreases as base grows.
func (d *Display) AdjustedScale(base, factor float32, width, height int) float32 {
	s := base * factor * d.DPIScale(width, height)

	hi := float32(math.MaxFloat32)
	if d.menuID == MenuOzone && width > 0 {
		hi = max(float32(width)*0.3333333/OzoneSidebarWidth, gfxmath.MinScale)
	}
	return gfxmath.Clamp(s, gfxmath.MinScale, hi)
}

// MenuScale returns the scale menu layouts use: the adjusted scale of 1
// with the configured menu scale factor. It is cached until the size,
// factor, density or menu driver changes.
func (d *Display) MenuScale(width, height int) float32 {
	factor := d.settings.MenuScaleFactor
	dpiScale := d.DPIScale(width, height)
	c := &d.scale
	if c.valid && c.width == width && c.height == height &&
		c.factor == factor && c.dpiScale == dpiScale && c.menu == d.menuID {
		return c.scale
	}
	s := d.AdjustedScale(1, factor, width, height)
	*c = scaleCache{
		valid: true, width: width, height: height,
		factor: factor, dpiScale: dpiScale, menu: d.menuID, scale: s,
	}
	return s
}

// WidgetScale returns the scale of on-screen widgets: the fullscreen or
// windowed widget factor, multiplied by the DPI scale when automatic
// widget scaling is on.
func (d *Display) WidgetScale(width, height int) float32 {
	factor := d.settings.WidgetScaleFactor
	if d.hasWindowed {
		factor = d.settings.WidgetScaleFactorWindowed
	}
	if factor <= 0 {
		factor = 1
	}
	if d.settings.WidgetScaleAuto {
		factor *= d.DPIScale(width, height)
	}
	return max(factor, gfxmath.MinScale)
}
