package webgpu

import (
	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/font"
)

// fontBackends are tried in order. Both give outlines the host can
// rasterize into its glyph atlas.
var fontBackends = []string{font.BackendHarfbuzz, font.BackendOpenType}

// FontInitFirst implements driver.Driver.
func (r *Driver) FontInitFirst(path string, size float32, threaded bool) (driver.Font, error) {
	face, err := font.InitFirst(fontBackends, path, float64(size), threaded)
	if err != nil {
		return nil, err
	}
	r.log.Debug("webgpu: font opened", "backend", face.Backend(), "size", face.Size(), "path", path)
	return &queuedFont{r: r, face: face}, nil
}

// queuedFont measures text itself and queues runs on the frame.
type queuedFont struct {
	r    *Driver
	face *font.Face
}

func (f *queuedFont) Backend() string     { return f.face.Backend() }
func (f *queuedFont) Size() float32       { return float32(f.face.Size()) }
func (f *queuedFont) LineHeight() float32 { return float32(f.face.LineHeight()) }
func (f *queuedFont) Close() error        { return f.face.Close() }

func (f *queuedFont) Width(text string, scale float32) float32 {
	if scale == 0 {
		scale = 1
	}
	return float32(f.face.Advance(text)) * scale
}

func (f *queuedFont) RenderMsg(text string, p driver.TextParams) {
	if text == "" {
		return
	}
	f.r.frame.Texts = append(f.r.frame.Texts, TextRun{Text: text, Params: p, Face: f.face})
}
