// Package font opens fonts for the display drivers.
//
// Three backends are available, tried in the order a driver asks for:
//
//   - "harfbuzz" measures with go-text/typesetting's HarfBuzz shaper
//     (kerning, ligatures) and rasterizes with golang.org/x/image.
//   - "opentype" measures and rasterizes with golang.org/x/image.
//   - "bitmap" uses the built-in 7x13 face and never fails.
//
// An empty path selects the embedded Go Regular font, so scalable
// backends work without any font file on disk.
package font
