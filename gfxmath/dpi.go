package gfxmath

import "math"

// DiagonalPixels1080p is the number of pixels corner-to-corner on a
// 1920x1080 display: sqrt(1920*1920 + 1080*1080).
const DiagonalPixels1080p = 2202.90717008229831581901

// ReferenceDPI is the display density that maps to a DPI scale of 1.
const ReferenceDPI = 96.0

// MinScale is the smallest scale factor considered usable.
const MinScale = 0.0001

// Display sizes (in inches) bounding the DPI fade-out range.
const (
	dpiFadeStart = 12.0
	dpiFadeEnd   = 24.0
)

// Diagonal returns the corner-to-corner pixel count of a width x height
// display.
func Diagonal(width, height int) float64 {
	w, h := float64(width), float64(height)
	return math.Sqrt(w*w + h*h)
}

// PixelScale returns the ratio between the display diagonal and the
// 1080p reference diagonal.
func PixelScale(width, height int) float32 {
	return float32(Diagonal(width, height) / DiagonalPixels1080p)
}

// DPIScale returns a unit-less factor that keeps UI elements at a
// visually constant size across display densities.
//
// When dpi is not positive only the pixel diagonal is used. Otherwise
// small displays (under 12 inches) use the physical density, large ones
// (over 24 inches) use the pixel ratio, and sizes in between interpolate
// linearly. Results that are not usable fall back to 1.
func DPIScale(width, height int, dpi float32) float32 {
	diagonal := Diagonal(width, height)
	pixel := float32(diagonal / DiagonalPixels1080p)

	if dpi <= 0 {
		return sane(pixel)
	}

	size := float32(diagonal) / dpi
	density := dpi / ReferenceDPI

	var scale float32
	switch {
	case size > dpiFadeEnd:
		scale = pixel
	case size > dpiFadeStart:
		fade := Clamp((size-dpiFadeStart)/(dpiFadeEnd-dpiFadeStart), 0, 1)
		scale = density*(1-fade) + pixel*fade
	default:
		scale = density
	}
	return sane(scale)
}

func sane(scale float32) float32 {
	if scale > MinScale {
		return scale
	}
	return 1
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
