package textlayout

import "testing"

// checkSameLayout verifies that two layouts agree on line count,
// width and per-line geometry.
func checkSameLayout(t *testing.T, got, want *Layout) {
	t.Helper()
	if got.NumLines() != want.NumLines() {
		t.Fatalf("line count = %d, want %d", got.NumLines(), want.NumLines())
	}
	if got.Width() != want.Width() {
		t.Errorf("width = %f, want %f", got.Width(), want.Width())
	}
	for i := 0; i < want.NumLines(); i++ {
		g, w := got.Line(i), want.Line(i)
		if g.StringRange != w.StringRange {
			t.Errorf("line %d range = %v, want %v", i, g.StringRange, w.StringRange)
		}
		if g.Origin != w.Origin {
			t.Errorf("line %d origin = %v, want %v", i, g.Origin, w.Origin)
		}
	}
}

// TestBalancedLayout_SingleLine tests that a single-line layout is
// returned unchanged.
func TestBalancedLayout_SingleLine(t *testing.T) {
	font := testFont()
	src := NewAttributedString("Hello")

	var plain, balanced Layout
	plain.CreateLayout(src, 1000, WithBaseFont(font))
	balanced.CreateLayoutWithBalancedLineLengths(src, 1000, WithBaseFont(font))

	if balanced.NumLines() != 1 {
		t.Fatalf("expected 1 line, got %d", balanced.NumLines())
	}
	checkSameLayout(t, &balanced, &plain)
}

// TestBalancedLayout_AcceptsFirstPass tests that a multi-line layout
// whose last two lines already measure as balanced keeps the
// full-width result.
func TestBalancedLayout_AcceptsFirstPass(t *testing.T) {
	font := testFont()
	src := NewAttributedString("aaaa bbbb cccc dddd")

	var plain, balanced Layout
	plain.CreateLayout(src, 110, WithBaseFont(font))
	balanced.CreateLayoutWithBalancedLineLengths(src, 110, WithBaseFont(font))

	if balanced.NumLines() != 2 {
		t.Fatalf("expected 2 lines, got %d", balanced.NumLines())
	}
	checkSameLayout(t, &balanced, &plain)
}

// TestBalancedLayout_UnequalLines tests the same outcome when the
// final lines differ sharply in length.
func TestBalancedLayout_UnequalLines(t *testing.T) {
	font := testFont()
	src := NewAttributedString("aaaaaa bb")

	var plain, balanced Layout
	plain.CreateLayout(src, 70, WithBaseFont(font))
	balanced.CreateLayoutWithBalancedLineLengths(src, 70, WithBaseFont(font))

	checkSameLayout(t, &balanced, &plain)
}

// TestBalancedLayout_GlyphlessFinalLine tests the zero-extent guard
// when the second-to-last line has no glyphs.
func TestBalancedLayout_GlyphlessFinalLine(t *testing.T) {
	font := testFont()
	src := NewAttributedString("a\n\nb")

	var balanced Layout
	balanced.CreateLayoutWithBalancedLineLengths(src, 200, WithBaseFont(font))

	if balanced.NumLines() != 3 {
		t.Fatalf("expected 3 lines, got %d", balanced.NumLines())
	}
}

// TestBalancedLayout_EmptyText tests balancing an empty source.
func TestBalancedLayout_EmptyText(t *testing.T) {
	font := testFont()
	src := NewAttributedString("")

	var balanced Layout
	balanced.CreateLayoutWithBalancedLineLengths(src, 200, WithBaseFont(font))

	if balanced.NumLines() != 0 {
		t.Errorf("expected 0 lines, got %d", balanced.NumLines())
	}
}

// TestLineExtent tests the extent helper the balancer measures lines
// with.
func TestLineExtent(t *testing.T) {
	lines, _ := pipelineLines(t, "abc", 1000)
	if got := lineExtent(lines[0]); got != 30 {
		t.Errorf("line extent = %f, want 30", got)
	}

	if got := lineExtent(&Line{}); got != 0 {
		t.Errorf("empty line extent = %f, want 0", got)
	}
}
