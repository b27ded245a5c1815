package textlayout

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/sfnt"
)

// hasInk reports whether any pixel of the image has non-zero alpha.
func hasInk(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return true
		}
	}
	return false
}

// TestImageContext_RendersGlyphs tests end-to-end rasterization of a
// laid-out string.
func TestImageContext_RendersGlyphs(t *testing.T) {
	face := regularSource(t).Face(32)
	src := NewAttributedString("Hg")

	var layout Layout
	layout.CreateLayout(src, 1000, WithBaseFont(face))

	img := image.NewRGBA(image.Rect(0, 0, 120, 60))
	layout.Draw(NewImageContext(img), Rect{W: 120, H: 60})

	if !hasInk(img) {
		t.Error("expected rendered glyph pixels")
	}
}

// TestImageContext_Fill tests that the fill color reaches the pixels.
func TestImageContext_Fill(t *testing.T) {
	face := regularSource(t).Face(32)
	red := color.RGBA{R: 255, A: 255}

	src := NewAttributedString("")
	src.Append("H", face, red)

	var layout Layout
	layout.CreateLayout(src, 1000)

	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	layout.Draw(NewImageContext(img), Rect{W: 60, H: 60})

	found := false
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
		if a > 0 && r > 0 && g == 0 && b == 0 {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected red glyph pixels")
	}
}

// TestImageContext_SkipsForeignFonts tests that metrics-only fonts
// draw nothing.
func TestImageContext_SkipsForeignFonts(t *testing.T) {
	src := NewAttributedString("Hello")

	var layout Layout
	layout.CreateLayout(src, 1000, WithBaseFont(testFont()))

	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	layout.Draw(NewImageContext(img), Rect{W: 100, H: 20})

	if hasInk(img) {
		t.Error("fonts without outline data should render nothing")
	}
}

// TestImageContext_NoFontSelected tests drawing before any SetFont.
func TestImageContext_NoFontSelected(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	ctx := NewImageContext(img)

	// Must not panic.
	ctx.DrawGlyph(42, Identity())
	if hasInk(img) {
		t.Error("drawing without a font should be a no-op")
	}
}

// TestImageContext_NilFillDefaultsToBlack tests the nil fill guard.
func TestImageContext_NilFillDefaultsToBlack(t *testing.T) {
	face := regularSource(t).Face(32)

	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	ctx := NewImageContext(img)
	ctx.SetFont(face)
	ctx.SetFill(nil)

	codes, _ := face.GlyphPositions("H")
	ctx.DrawGlyph(codes[0], Translate(10, 40))

	if !hasInk(img) {
		t.Error("expected pixels with the default black fill")
	}
}

// TestSegmentPoints tests the per-op control point counts.
func TestSegmentPoints(t *testing.T) {
	tests := []struct {
		op   sfnt.SegmentOp
		want int
	}{
		{sfnt.SegmentOpMoveTo, 1},
		{sfnt.SegmentOpLineTo, 1},
		{sfnt.SegmentOpQuadTo, 2},
		{sfnt.SegmentOpCubeTo, 3},
	}

	for _, tt := range tests {
		if got := segmentPoints(tt.op); got != tt.want {
			t.Errorf("segmentPoints(%v) = %d, want %d", tt.op, got, tt.want)
		}
	}
}
