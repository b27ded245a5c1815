package textlayout

import "reflect"

// Font supplies the metrics and measurements the layout pipeline
// needs. Face is the ready-made implementation backed by font files;
// any metrics source can satisfy the interface.
type Font interface {
	// Ascent returns the distance from the baseline to the top of the
	// tallest glyphs.
	Ascent() float64

	// Descent returns the distance from the baseline to the bottom of
	// the deepest descenders, as a positive value.
	Descent() float64

	// Height returns the nominal line height, normally ascent plus
	// descent.
	Height() float64

	// StringWidth returns the rounded advance width of s.
	StringWidth(s string) int

	// GlyphPositions converts s into glyph codes plus len(codes)+1
	// x-offsets: offsets[i] is the pen position before glyph i and the
	// trailing entry is the total advance.
	GlyphPositions(s string) (codes []int, offsets []float64)
}

// fontEqualer is implemented by fonts that define their own equality,
// so that distinct values describing the same face compare equal at
// style boundaries.
type fontEqualer interface {
	Equal(Font) bool
}

// fontsEqual compares two fonts for style-boundary detection. Fonts
// implementing Equal use it; everything else compares by interface
// equality, or by deep equality when the dynamic type is not
// comparable. nil only matches nil.
func fontsEqual(a, b Font) bool {
	if a == nil || b == nil {
		return a == b
	}
	if eq, ok := a.(fontEqualer); ok {
		return eq.Equal(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
