package textlayout

import "image/color"

// Glyph is one positioned glyph inside a Run.
type Glyph struct {
	// Code is the glyph index in the run's font, not a rune.
	Code int

	// Anchor is the glyph's baseline position within its line: the
	// pre-wrap x of the token it came from plus the shaping x-offset.
	// Y is always 0; vertical placement comes from the line origin.
	Anchor Point

	// Width is the horizontal advance of the glyph.
	Width float64
}

// Run is a sequence of glyphs on one line sharing a font and a color.
type Run struct {
	// StringRange is the range of character positions the run covers.
	StringRange Range

	Font   Font
	Color  color.Color
	Glyphs []Glyph
}
