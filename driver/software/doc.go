// Package software provides the CPU reference display driver.
//
// Importing the package registers the driver under the ident
// "software" with type driver.TypeGeneric, so it is compatible with any
// video driver and is the last candidate probed:
//
//	import _ "github.com/gogpu/menugfx/driver/software"
//
// Draws are rasterized into an *image.RGBA with per-vertex color and
// texture interpolation. Pass an *image.RGBA as ProbeContext.Device to
// render into a caller-owned image.
package software
