package textlayout

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource is a parsed font file. One FontSource creates any number
// of Faces at different sizes; it is heavyweight and meant to be
// shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	font *opentype.Font
	data []byte
	name string
}

// NewFontSource parses TTF or OTF font data. The data slice is copied
// internally and can be reused after the call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("textlayout: failed to parse font: %w", err)
	}

	return &FontSource{font: f, data: dataCopy, name: fontName(f)}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textlayout: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name.
func (s *FontSource) Name() string { return s.name }

// Face creates a Face at the given size in pixels per em.
// Panics if s is nil (e.g. when the error from NewFontSource was
// ignored).
func (s *FontSource) Face(size float64) *Face {
	if s == nil {
		panic("textlayout: FontSource is nil; did you check the error from NewFontSource?")
	}
	return &Face{source: s, size: size}
}

// fontName extracts the family name, falling back to the full name.
func fontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// Face is a FontSource at a specific size. It implements Font with
// per-rune advances and metrics from the font's tables; GoTextEngine
// recognizes Faces and shapes them through HarfBuzz instead.
//
// Face methods allocate a fresh sfnt.Buffer per call, so a Face is
// safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
}

// Source returns the FontSource the face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Equal reports whether other is a Face with the same source and
// size. Two such faces are interchangeable for layout purposes.
func (f *Face) Equal(other Font) bool {
	o, ok := other.(*Face)
	return ok && o.source == f.source && o.size == f.size
}

func (f *Face) ppem() fixed.Int26_6 { return fixed.Int26_6(f.size * 64) }

// Ascent implements Font.
func (f *Face) Ascent() float64 {
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, f.ppem(), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat64(m.Ascent)
}

// Descent implements Font. The value is positive.
func (f *Face) Descent() float64 {
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, f.ppem(), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat64(m.Descent)
}

// Height implements Font as ascent plus descent.
func (f *Face) Height() float64 {
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, f.ppem(), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat64(m.Ascent) + fixedToFloat64(m.Descent)
}

// StringWidth implements Font.
func (f *Face) StringWidth(s string) int {
	_, offsets := f.GlyphPositions(s)
	return int(math.Round(offsets[len(offsets)-1]))
}

// GlyphPositions implements Font: one glyph per rune, with advances
// from the font's horizontal metrics. Runes the font has no glyph for
// map to index 0.
func (f *Face) GlyphPositions(s string) ([]int, []float64) {
	if s == "" {
		return nil, []float64{0}
	}

	var buf sfnt.Buffer
	runes := []rune(s)
	codes := make([]int, len(runes))
	offsets := make([]float64, len(runes)+1)
	var x float64
	for i, r := range runes {
		gi, err := f.source.font.GlyphIndex(&buf, r)
		if err != nil {
			gi = 0
		}
		codes[i] = int(gi)
		offsets[i] = x
		if adv, err := f.source.font.GlyphAdvance(&buf, gi, f.ppem(), font.HintingFull); err == nil {
			x += fixedToFloat64(adv)
		}
	}
	offsets[len(runes)] = x
	return codes, offsets
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
