// Package gfxmath provides the pure numeric helpers shared by the display
// layer and its drivers: per-corner color quads, hex color conversion,
// row-major 4x4 transforms and the density-aware DPI scale.
//
// All functions are free of side effects and return new values.
package gfxmath
