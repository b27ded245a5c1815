package textlayout

// Line is one laid-out line: its runs, the baseline origin, and the
// metrics of the tallest fonts appearing on it.
type Line struct {
	// StringRange is the range of character positions the line covers.
	StringRange Range

	// Origin is the baseline origin of the line in layout space.
	Origin Point

	// Ascent and Descent are maxima over the fonts of the line's runs,
	// Descent as a positive value. Leading is reserved and stays 0.
	Ascent  float64
	Descent float64
	Leading float64

	Runs []*Run
}

// BoundsX returns the horizontal extent of the line's glyphs in
// layout space: the union of [Anchor.X, Anchor.X+Width] over every
// glyph, shifted by the line origin. A line without glyphs returns
// (0, 0).
func (ln *Line) BoundsX() (minX, maxX float64) {
	first := true
	for _, run := range ln.Runs {
		for _, g := range run.Glyphs {
			lo := g.Anchor.X
			hi := g.Anchor.X + g.Width
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
	}
	if first {
		return 0, 0
	}
	return minX + ln.Origin.X, maxX + ln.Origin.X
}

// hasGlyphs reports whether any run on the line contains glyphs.
func (ln *Line) hasGlyphs() bool {
	for _, run := range ln.Runs {
		if len(run.Glyphs) > 0 {
			return true
		}
	}
	return false
}
