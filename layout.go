package textlayout

import (
	"errors"
	"fmt"
)

// Layout is the result of laying out attributed text: lines of glyph
// runs positioned against a wrap width. The zero value is an empty
// layout ready for CreateLayout.
//
// A Layout is rebuilt wholesale by each CreateLayout call and is not
// safe for concurrent mutation; callers sharing one must serialize
// externally.
type Layout struct {
	lines         []*Line
	width         float64
	justification Justification
}

// CreateLayout lays out src against maxWidth, replacing any previous
// content. A per-call engine (WithEngine) or the global one
// (SetEngine) is tried first; when it declines with ErrNotHandled or
// fails, the standard engine takes over.
//
// The base font for unattributed characters is the WithBaseFont
// option, or the first attribute carrying a font. A source with no
// font at all produces an empty layout.
func (l *Layout) CreateLayout(src Source, maxWidth float64, opts ...LayoutOption) {
	var cfg layoutConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	l.lines = nil
	l.width = maxWidth
	l.justification = src.Justification()

	base := cfg.baseFont
	if base == nil {
		base = firstAttributeFont(src)
	}
	if base == nil {
		if src.Text() != "" {
			Logger().Warn("textlayout: no font available, producing empty layout")
		}
		return
	}

	engine := cfg.engine
	if engine == nil {
		engine = activeEngine()
	}
	if engine != nil {
		lines, err := engine.Layout(src, maxWidth, base)
		if err == nil {
			l.lines = lines
			l.recalculateWidth(src)
			return
		}
		if errors.Is(err, ErrNotHandled) {
			Logger().Debug("textlayout: engine declined, using standard layout", "error", err)
		} else {
			Logger().Warn("textlayout: engine failed, using standard layout", "error", err)
		}
	}

	l.lines, _ = standardEngine{}.Layout(src, maxWidth, base)
	l.recalculateWidth(src)
}

// Width returns the layout width: the wrap width passed to
// CreateLayout, replaced by the content extent after normalization
// for text that is not right-to-left.
func (l *Layout) Width() float64 { return l.width }

// Height returns the total height: the last line's baseline plus its
// descent, or 0 for an empty layout.
func (l *Layout) Height() float64 {
	if len(l.lines) == 0 {
		return 0
	}
	last := l.lines[len(l.lines)-1]
	return last.Origin.Y + last.Descent
}

// NumLines returns the number of lines.
func (l *Layout) NumLines() int { return len(l.lines) }

// Line returns line i. It panics when i is out of range.
func (l *Layout) Line(i int) *Line {
	if i < 0 || i >= len(l.lines) {
		panic(fmt.Sprintf("textlayout: line index %d out of range [0, %d)", i, len(l.lines)))
	}
	return l.lines[i]
}

// AddLine appends a line. Layouts are normally produced by
// CreateLayout; AddLine exists for callers assembling one by hand.
func (l *Layout) AddLine(ln *Line) {
	l.lines = append(l.lines, ln)
}

// Justification returns the flags the layout was created with.
func (l *Layout) Justification() Justification { return l.justification }

// recalculateWidth shifts every line so the leftmost glyph sits at
// x=0 and replaces the wrap width with the content extent. Sources
// declared right-to-left keep their positions and width.
func (l *Layout) recalculateWidth(src Source) {
	if len(l.lines) == 0 || src.ReadingDirection() == ReadingRightToLeft {
		return
	}

	first := true
	var minX, maxX float64
	for _, ln := range l.lines {
		if !ln.hasGlyphs() {
			continue
		}
		lo, hi := ln.BoundsX()
		if first {
			minX, maxX = lo, hi
			first = false
			continue
		}
		if lo < minX {
			minX = lo
		}
		if hi > maxX {
			maxX = hi
		}
	}
	if first {
		return
	}

	for _, ln := range l.lines {
		ln.Origin.X -= minX
	}
	l.width = maxX - minX
}

// firstAttributeFont returns the font of the first attribute carrying
// one, or nil.
func firstAttributeFont(src Source) Font {
	for i := 0; i < src.NumAttributes(); i++ {
		if f := src.Attribute(i).Font; f != nil {
			return f
		}
	}
	return nil
}
