package font

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// openOpenType rasterizes and measures with x/image's sfnt reader.
func openOpenType(data []byte, size float64) (*Face, error) {
	face, err := newOpenTypeFace(data, size)
	if err != nil {
		return nil, err
	}
	return &Face{backend: BackendOpenType, size: size, scale: 1, face: face}, nil
}

func newOpenTypeFace(data []byte, size float64) (xfont.Face, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
}

// openHarfbuzz measures with go-text's HarfBuzz shaper, which applies
// kerning and ligatures, and rasterizes with x/image.
func openHarfbuzz(data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	parsed, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	face, err := newOpenTypeFace(data, size)
	if err != nil {
		return nil, err
	}
	return &Face{
		backend: BackendHarfbuzz,
		size:    size,
		scale:   1,
		face:    face,
		shaper:  &shaper{font: parsed.Font},
	}, nil
}

// openBitmap never fails: it uses the built-in 7x13 face and reports
// metrics scaled to the requested size.
func openBitmap(_ []byte, size float64) (*Face, error) {
	native := float64(basicfont.Face7x13.Height)
	return &Face{
		backend: BackendBitmap,
		size:    size,
		scale:   size / native,
		face:    basicfont.Face7x13,
	}, nil
}

// shaper measures text with a HarfbuzzShaper. gtfont.Font is safe for
// concurrent use; the shaper buffer is not.
type shaper struct {
	mu     sync.Mutex
	locked bool
	font   *gtfont.Font
	hb     shaping.HarfbuzzShaper
}

func (s *shaper) advance(text string, size float64) float64 {
	if s.locked {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	runes := []rune(text)
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(s.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	return fixedToFloat(out.Advance)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
