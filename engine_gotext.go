package textlayout

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextEngine lays out text with HarfBuzz shaping via
// go-text/typesetting, so runs come out kerned and ligated. It only
// handles sources whose fonts are [*Face] values; anything else is
// declined with ErrNotHandled and CreateLayout falls back to the
// standard engine.
//
//	textlayout.SetEngine(textlayout.NewGoTextEngine())
//
// GoTextEngine is safe for concurrent use. It caches parsed font.Font
// objects (which are read-only and thread-safe) and creates
// lightweight font.Face instances per shaping call. The
// HarfbuzzShaper instances are pooled via sync.Pool since they are
// not concurrent-safe.
type GoTextEngine struct {
	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is NOT safe for concurrent use, but
	// reusing across sequential calls is efficient.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font
	// objects, avoiding a re-parse of the font data on every call.
	fontCache map[*FontSource]*font.Font
}

// NewGoTextEngine creates a GoTextEngine backed by
// go-text/typesetting's HarfBuzz implementation.
func NewGoTextEngine() *GoTextEngine {
	return &GoTextEngine{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Layout implements Engine. It declines when any font reachable from
// the source is not a *Face backed by parseable font data.
func (e *GoTextEngine) Layout(src Source, maxWidth float64, base Font) ([]*Line, error) {
	if err := e.preflight(src, base); err != nil {
		return nil, err
	}

	dir := di.DirectionLTR
	if ResolveReadingDirection(src) == ReadingRightToLeft {
		dir = di.DirectionRTL
	}
	return layoutPipeline(src, maxWidth, base, &gotextShaper{engine: e, direction: dir}), nil
}

// preflight verifies that every font the source can reach is usable
// for HarfBuzz shaping.
func (e *GoTextEngine) preflight(src Source, base Font) error {
	fonts := []Font{base}
	for i := 0; i < src.NumAttributes(); i++ {
		if f := src.Attribute(i).Font; f != nil {
			fonts = append(fonts, f)
		}
	}
	for _, f := range fonts {
		face, ok := f.(*Face)
		if !ok {
			return fmt.Errorf("%w: font %T is not backed by a font source", ErrNotHandled, f)
		}
		if _, err := e.fontFor(face.source); err != nil {
			return fmt.Errorf("%w: %v", ErrNotHandled, err)
		}
	}
	return nil
}

// fontFor returns the cached go-text font for source, parsing and
// caching it on first use. font.Font is read-only and safe to share;
// the per-call font.Face wrappers are created in shape.
func (e *GoTextEngine) fontFor(source *FontSource) (*font.Font, error) {
	e.mu.RLock()
	if f, ok := e.fontCache[source]; ok {
		e.mu.RUnlock()
		return f, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if f, ok := e.fontCache[source]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}
	e.fontCache[source] = face.Font
	return face.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (e *GoTextEngine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource drops the cached parsed font for a specific source.
func (e *GoTextEngine) RemoveSource(source *FontSource) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.fontCache, source)
}

// gotextShaper adapts HarfBuzz shaping to the pipeline's shaper
// surface. Offsets follow the Font.GlyphPositions convention: pen
// position before each glyph plus a trailing total advance.
type gotextShaper struct {
	engine    *GoTextEngine
	direction di.Direction
}

func (s *gotextShaper) measure(f Font, text string) int {
	_, offsets := s.shape(f, text)
	return int(math.Round(offsets[len(offsets)-1]))
}

func (s *gotextShaper) shape(f Font, text string) ([]int, []float64) {
	face, ok := f.(*Face)
	if !ok || text == "" {
		return nil, []float64{0}
	}
	goTextFont, err := s.engine.fontFor(face.source)
	if err != nil {
		return nil, []float64{0}
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: s.direction,
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.engine.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.engine.shaperPool.Put(hbShaper)

	codes := make([]int, len(output.Glyphs))
	offsets := make([]float64, len(output.Glyphs)+1)
	var x float64
	for i, g := range output.Glyphs {
		codes[i] = int(g.GlyphID)
		offsets[i] = x + fixedToFloat(g.XOffset)
		x += fixedToFloat(g.Advance)
	}
	offsets[len(output.Glyphs)] = x
	return codes, offsets
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; mixed-script text
// shapes with the script of its leading run.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
