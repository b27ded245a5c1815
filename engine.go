package textlayout

import "sync"

// Engine lays out an attributed source into lines against a wrap
// width. base is the font for characters no attribute covers.
//
// An engine may decline a source by returning an error wrapping
// ErrNotHandled; CreateLayout then falls back to the standard engine,
// which never declines.
type Engine interface {
	Layout(src Source, maxWidth float64, base Font) ([]*Line, error)
}

// globalEngine is the engine installed with SetEngine, tried before
// the standard one.
var (
	engineMu     sync.RWMutex
	globalEngine Engine
)

// SetEngine installs a process-global layout engine that CreateLayout
// tries before the standard pipeline. Passing nil removes it.
//
// SetEngine is safe for concurrent use.
func SetEngine(e Engine) {
	engineMu.Lock()
	globalEngine = e
	engineMu.Unlock()
}

// activeEngine returns the installed global engine, or nil.
func activeEngine() Engine {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return globalEngine
}

// shaper abstracts measurement and glyph production inside the
// pipeline, so the standard engine and shaping engines share the
// tokenizer, line breaker and run builder.
type shaper interface {
	// measure returns the rounded advance width of s in font.
	measure(font Font, s string) int

	// shape converts s into glyph codes plus len(codes)+1 x-offsets,
	// the trailing entry being the total advance.
	shape(font Font, s string) (codes []int, offsets []float64)
}

// metricsShaper measures and shapes through the Font's own methods.
type metricsShaper struct{}

func (metricsShaper) measure(font Font, s string) int {
	return font.StringWidth(s)
}

func (metricsShaper) shape(font Font, s string) ([]int, []float64) {
	return font.GlyphPositions(s)
}

// layoutPipeline runs tokenization, line breaking, run building and
// justification. Every engine drives it with its own shaper.
func layoutPipeline(src Source, maxWidth float64, base Font, sh shaper) []*Line {
	tokens := tokenize(src, base, sh)
	if len(tokens) == 0 {
		return nil
	}
	breakLines(tokens, int(maxWidth))
	lines := buildLines(tokens, sh)
	applyJustification(lines, tokens, src.Justification(), maxWidth)
	return lines
}

// standardEngine is the always-available layout engine. It relies on
// the Font's own measurements and never declines.
type standardEngine struct{}

// Layout implements Engine.
func (standardEngine) Layout(src Source, maxWidth float64, base Font) ([]*Line, error) {
	return layoutPipeline(src, maxWidth, base, metricsShaper{}), nil
}
