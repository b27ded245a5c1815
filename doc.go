// Package textlayout arranges attributed text into positioned glyph
// runs.
//
// # Overview
//
// The input is a Source: a string plus font and color attributes over
// rune ranges (AttributedString is the ready-made implementation).
// CreateLayout resolves the attributes into style runs, splits the
// text into word, whitespace and line-break tokens, wraps the tokens
// greedily against a maximum width, and shapes them into a Layout:
// lines of runs of positioned glyphs, each line carrying its baseline
// origin and font metrics. Character positions in the result
// correspond to positions in the input string, so runs and lines can
// be mapped back to the text they came from.
//
// # Quick Start
//
//	import "github.com/gogpu/textlayout"
//
//	source, err := textlayout.NewFontSource(goregular.TTF)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	src := textlayout.NewAttributedString("The quick brown fox jumps over the lazy dog.")
//	src.SetFont(textlayout.Range{Start: 4, End: 9}, source.Face(24))
//
//	var layout textlayout.Layout
//	layout.CreateLayout(src, 300, textlayout.WithBaseFont(source.Face(16)))
//
//	img := image.NewRGBA(image.Rect(0, 0, 320, int(layout.Height())+20))
//	layout.Draw(textlayout.NewImageContext(img), textlayout.Rect{X: 10, Y: 10, W: 300, H: layout.Height()})
//
// # Fonts
//
// Fonts load from TTF or OTF data through FontSource and Face, backed
// by golang.org/x/image/font/sfnt. Anything implementing the Font
// interface works as well; the layout only needs metrics and glyph
// positions.
//
// # Engines
//
// Layout engines are pluggable. The standard engine measures with the
// Font's own metrics and is always available; GoTextEngine shapes
// through HarfBuzz (go-text/typesetting) for kerning, ligatures and
// complex scripts. SetEngine installs one globally, WithEngine per
// call; an engine returning ErrNotHandled falls back to the standard
// pipeline.
//
// # Balancing
//
// CreateLayoutWithBalancedLineLengths narrows the wrap width in steps
// to even out the lengths of the last two lines of a paragraph.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Line origins sit on the baseline
package textlayout
