package menugfx

import (
	"os"
	"path/filepath"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/font"
)

// FontUse is the purpose a font is loaded for.
type FontUse int

// Font purposes.
const (
	FontMenu FontUse = iota
	FontMenuBold
	FontOSK
	FontWidget
)

// assetFonts maps a menu driver to its font files under the assets
// directory, regular and bold.
var assetFonts = map[MenuDriverID][2]string{
	MenuXMB:     {"xmb/monochrome/font.ttf", "xmb/monochrome/font.ttf"},
	MenuStripes: {"xmb/monochrome/font.ttf", "xmb/monochrome/font.ttf"},
	MenuOzone:   {"ozone/regular.ttf", "ozone/bold.ttf"},
	MenuGLUI:    {"glui/font.ttf", "glui/font.ttf"},
	MenuXUI:     {"xui/font.ttf", "xui/font.ttf"},
}

const widgetFont = "pkg/fallback-font.ttf"

// FontPath resolves the font file for use from the settings: an
// explicit override first, then the menu driver's asset font. It
// returns "" (the built-in font) when nothing applies or the asset is
// missing.
func (d *Display) FontPath(use FontUse) string {
	s := d.settings
	var override, asset string
	switch use {
	case FontMenu, FontMenuBold:
		override = s.Fonts.Menu
		if f, ok := assetFonts[d.menuID]; ok {
			asset = f[0]
			if use == FontMenuBold {
				asset = f[1]
			}
		}
	case FontOSK:
		override = s.Fonts.OSK
	case FontWidget:
		override = s.Fonts.Widget
		asset = widgetFont
	}
	if override != "" {
		return override
	}
	if asset == "" || s.AssetsDir == "" {
		return ""
	}
	path := filepath.Join(s.AssetsDir, asset)
	if _, err := os.Stat(path); err != nil {
		Logger().Debug("menugfx: asset font missing, using built-in", "path", path)
		return ""
	}
	return path
}

// Font loads the font for use at size through the bound driver.
func (d *Display) Font(use FontUse, size float32, threaded bool) (driver.Font, error) {
	return d.FontFile(d.FontPath(use), size, threaded)
}

// FontFile loads the font file at path through the bound driver. An
// empty path selects the built-in font; sizes below font.MinSize are
// raised to it.
func (d *Display) FontFile(path string, size float32, threaded bool) (driver.Font, error) {
	if d.drv == nil {
		return nil, ErrDriverNotBound
	}
	size = max(size, font.MinSize)
	f, err := d.drv.FontInitFirst(path, size, threaded)
	if err != nil {
		return nil, err
	}
	Logger().Debug("menugfx: font loaded", "backend", f.Backend(), "size", size, "path", path)
	return f, nil
}

// FontFree releases a font returned by Font or FontFile. nil is
// ignored.
func (d *Display) FontFree(f driver.Font) {
	if f == nil {
		return
	}
	if err := f.Close(); err != nil {
		Logger().Warn("menugfx: releasing font", "err", err)
	}
}
