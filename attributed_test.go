package textlayout

import (
	"image/color"
	"testing"
)

// TestAttributedString_Basics tests construction and the plain
// accessors.
func TestAttributedString_Basics(t *testing.T) {
	s := NewAttributedString("Hello")

	if s.Text() != "Hello" {
		t.Errorf("Text() = %q, want %q", s.Text(), "Hello")
	}
	if s.Length() != 5 {
		t.Errorf("Length() = %d, want 5", s.Length())
	}
	if s.NumAttributes() != 0 {
		t.Errorf("NumAttributes() = %d, want 0", s.NumAttributes())
	}
	if s.Justification() != 0 {
		t.Errorf("Justification() = %v, want None", s.Justification())
	}
	if s.ReadingDirection() != ReadingNatural {
		t.Errorf("ReadingDirection() = %v, want Natural", s.ReadingDirection())
	}
}

// TestAttributedString_LengthCountsRunes tests rune counting for
// multi-byte text.
func TestAttributedString_LengthCountsRunes(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本語", 3},
		{"a€b", 3},
	}

	for _, tt := range tests {
		if got := NewAttributedString(tt.text).Length(); got != tt.want {
			t.Errorf("Length(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

// TestAttributedString_Append tests appending styled and unstyled
// text.
func TestAttributedString_Append(t *testing.T) {
	font := testFont()
	red := color.RGBA{R: 255, A: 255}

	s := NewAttributedString("")
	s.Append("héllo", font, nil)
	s.Append(" ", nil, nil)
	s.Append("世界", nil, red)

	if s.Text() != "héllo 世界" {
		t.Errorf("Text() = %q, want %q", s.Text(), "héllo 世界")
	}
	if s.NumAttributes() != 2 {
		t.Fatalf("NumAttributes() = %d, want 2", s.NumAttributes())
	}

	a0 := s.Attribute(0)
	if a0.Range != (Range{0, 5}) {
		t.Errorf("attribute 0 range = %v, want [0, 5)", a0.Range)
	}
	if !fontsEqual(a0.Font, font) || a0.Color != nil {
		t.Error("attribute 0 should carry the font and no color")
	}

	a1 := s.Attribute(1)
	if a1.Range != (Range{6, 8}) {
		t.Errorf("attribute 1 range = %v, want [6, 8)", a1.Range)
	}
	if a1.Font != nil || !colorsEqual(a1.Color, red) {
		t.Error("attribute 1 should carry the color and no font")
	}
}

// TestAttributedString_SetFontAndColor tests the range attribute
// setters.
func TestAttributedString_SetFontAndColor(t *testing.T) {
	font := testFont()
	blue := color.RGBA{B: 255, A: 255}

	s := NewAttributedString("abcdef")
	s.SetFont(Range{0, 3}, font)
	s.SetColor(Range{2, 5}, blue)

	if s.NumAttributes() != 2 {
		t.Fatalf("NumAttributes() = %d, want 2", s.NumAttributes())
	}
	if got := s.Attribute(0); got.Font == nil || got.Color != nil {
		t.Error("SetFont should add a font-only attribute")
	}
	if got := s.Attribute(1); got.Font != nil || got.Color == nil {
		t.Error("SetColor should add a color-only attribute")
	}
}

// TestAttributedString_Setters tests text, justification and
// direction mutation.
func TestAttributedString_Setters(t *testing.T) {
	s := NewAttributedString("old")
	s.SetFont(Range{0, 3}, testFont())

	s.SetText("new text")
	if s.Text() != "new text" {
		t.Errorf("Text() = %q after SetText", s.Text())
	}
	if s.NumAttributes() != 1 {
		t.Error("SetText should keep existing attributes")
	}

	s.SetJustification(JustifyCentred)
	if s.Justification() != JustifyCentred {
		t.Errorf("Justification() = %v, want %v", s.Justification(), JustifyCentred)
	}

	s.SetReadingDirection(ReadingRightToLeft)
	if s.ReadingDirection() != ReadingRightToLeft {
		t.Errorf("ReadingDirection() = %v, want RightToLeft", s.ReadingDirection())
	}
}

// TestColorsEqual tests color comparison including nil handling.
func TestColorsEqual(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	alsoRed := color.NRGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	tests := []struct {
		name string
		a, b color.Color
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs color", nil, red, false},
		{"color vs nil", red, nil, false},
		{"same value", red, red, true},
		{"same rgba different type", red, alsoRed, true},
		{"different colors", red, blue, false},
		{"black models", color.Black, color.Gray{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("colorsEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
