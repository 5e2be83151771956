package menugfx

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Decoders for the formats menu assets ship in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/menugfx/driver"
)

// ResetTexturesList decodes the image name, relative to iconDir when
// that is set, and uploads it through the bound driver. It returns the
// texture handle and the image size.
func (d *Display) ResetTexturesList(name, iconDir string, filter driver.Filter) (driver.Texture, int, int, error) {
	path := name
	if iconDir != "" {
		path = filepath.Join(iconDir, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("menugfx: texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("menugfx: texture %s: %w", path, err)
	}

	tex, err := d.LoadTexture(img, filter)
	if err != nil {
		Logger().Warn("menugfx: texture upload failed", "path", path, "err", err)
		return 0, 0, 0, err
	}
	b := img.Bounds()
	Logger().Debug("menugfx: texture loaded", "path", path, "format", format, "size", b.Size())
	return tex, b.Dx(), b.Dy(), nil
}

// LoadTexture uploads an already decoded image through the bound
// driver.
func (d *Display) LoadTexture(img image.Image, filter driver.Filter) (driver.Texture, error) {
	if d.drv == nil {
		return 0, ErrDriverNotBound
	}
	loader, ok := d.drv.(driver.TextureLoader)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTexturesUnsupported, d.drv.Ident())
	}
	tex, err := loader.LoadTexture(img, filter)
	if err != nil {
		return 0, fmt.Errorf("menugfx: texture upload: %w", err)
	}
	return tex, nil
}

// UnloadTexture releases t. Zero handles and drivers without texture
// support are ignored.
func (d *Display) UnloadTexture(t driver.Texture) {
	if t == 0 || d.drv == nil {
		return
	}
	if loader, ok := d.drv.(driver.TextureLoader); ok {
		loader.UnloadTexture(t)
	}
}
