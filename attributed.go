package textlayout

import (
	"image/color"
	"unicode/utf8"
)

// Attribute applies a font, a color, or both to a range of runes.
// A nil Font or Color leaves that property untouched; the layout
// resolves untouched properties from earlier attributes, the base
// font, or opaque black.
type Attribute struct {
	Range Range
	Font  Font
	Color color.Color
}

// Source is the attributed text a layout is created from: the text
// itself, an ordered list of attributes, and the policies controlling
// placement and reading order.
type Source interface {
	// Text returns the full text.
	Text() string

	// Length returns the number of runes in the text.
	Length() int

	// Justification returns the flags used to place lines within the
	// layout area.
	Justification() Justification

	// ReadingDirection returns the overall reading order.
	ReadingDirection() ReadingDirection

	// NumAttributes returns the number of attributes.
	NumAttributes() int

	// Attribute returns the i-th attribute.
	Attribute(i int) Attribute
}

// AttributedString is a mutable Source: a string with font and color
// attributes over rune ranges.
//
// Attributes are resolved per rune in the order they were added. For
// each property the last covering attribute wins, and the font and
// the color of a rune can come from two different attributes when
// their ranges overlap.
type AttributedString struct {
	text          string
	justification Justification
	direction     ReadingDirection
	attributes    []Attribute
}

// NewAttributedString creates an AttributedString with the given text
// and no attributes.
func NewAttributedString(text string) *AttributedString {
	return &AttributedString{text: text}
}

// Text implements Source.
func (s *AttributedString) Text() string { return s.text }

// Length implements Source.
func (s *AttributedString) Length() int { return utf8.RuneCountInString(s.text) }

// Justification implements Source.
func (s *AttributedString) Justification() Justification { return s.justification }

// ReadingDirection implements Source.
func (s *AttributedString) ReadingDirection() ReadingDirection { return s.direction }

// NumAttributes implements Source.
func (s *AttributedString) NumAttributes() int { return len(s.attributes) }

// Attribute implements Source.
func (s *AttributedString) Attribute(i int) Attribute { return s.attributes[i] }

// SetText replaces the text. Existing attributes keep their ranges;
// ranges now past the end simply stop matching.
func (s *AttributedString) SetText(text string) { s.text = text }

// SetJustification sets the flags used to place lines within the
// layout area.
func (s *AttributedString) SetJustification(j Justification) { s.justification = j }

// SetReadingDirection sets the overall reading order.
func (s *AttributedString) SetReadingDirection(d ReadingDirection) { s.direction = d }

// Append adds text to the end of the string. When font or col is
// non-nil, an attribute covering the appended runes is added as well.
func (s *AttributedString) Append(text string, font Font, col color.Color) {
	start := s.Length()
	s.text += text
	if font != nil || col != nil {
		s.attributes = append(s.attributes, Attribute{
			Range: Range{Start: start, End: s.Length()},
			Font:  font,
			Color: col,
		})
	}
}

// SetFont applies a font to a range of runes. Later attributes win
// over earlier ones where ranges overlap.
func (s *AttributedString) SetFont(r Range, font Font) {
	s.attributes = append(s.attributes, Attribute{Range: r, Font: font})
}

// SetColor applies a color to a range of runes. Later attributes win
// over earlier ones where ranges overlap.
func (s *AttributedString) SetColor(r Range, col color.Color) {
	s.attributes = append(s.attributes, Attribute{Range: r, Color: col})
}

// colorsEqual compares two colors by their RGBA values. nil only
// matches nil.
func colorsEqual(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
