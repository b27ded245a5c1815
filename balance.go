package textlayout

import "math"

const (
	// balancedProportion is the ratio of the longer to the shorter of
	// the last two lines above which a layout counts as balanced.
	//
	// TODO: the ratio is never below 1, so every multi-line layout is
	// accepted on the first pass; revisit the threshold.
	balancedProportion = 0.9

	// balanceStep is how much the candidate width shrinks per attempt.
	balanceStep = 10.0
)

// CreateLayoutWithBalancedLineLengths lays out src like CreateLayout,
// then tries to even out the lengths of the last two lines by
// shrinking the wrap width in fixed steps, never below half of
// maxWidth. Single-line layouts are kept as they are.
func (l *Layout) CreateLayoutWithBalancedLineLengths(src Source, maxWidth float64, opts ...LayoutOption) {
	minimumWidth := maxWidth / 2
	bestWidth := maxWidth
	bestProportion := 0.0

	for maxWidth > minimumWidth {
		l.CreateLayout(src, maxWidth, opts...)
		if l.NumLines() < 2 {
			return
		}

		last := lineExtent(l.lines[len(l.lines)-1])
		prev := lineExtent(l.lines[len(l.lines)-2])
		shortest := math.Min(last, prev)
		longest := math.Max(last, prev)

		prop := 1.0
		if shortest > 0 {
			prop = longest / shortest
		}
		if prop > balancedProportion {
			return
		}
		if bestProportion == 0 || prop < bestProportion {
			bestProportion = prop
			bestWidth = maxWidth
		}
		maxWidth -= balanceStep
	}

	if bestWidth != maxWidth {
		l.CreateLayout(src, bestWidth, opts...)
	}
}

// lineExtent returns the horizontal length of a line's glyph bounds.
func lineExtent(ln *Line) float64 {
	lo, hi := ln.BoundsX()
	return hi - lo
}
