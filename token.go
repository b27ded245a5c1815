package textlayout

import (
	"image"
	"image/color"
	"math"
	"strings"
	"unicode"
)

// charClass groups runes for tokenization.
type charClass int

const (
	classLineBreak charClass = iota
	classWord
	classWhitespace
)

// classOf returns the character class of r. CR and LF are line
// breaks, other space runes are whitespace, everything else counts as
// a word rune.
func classOf(r rune) charClass {
	switch {
	case r == '\r' || r == '\n':
		return classLineBreak
	case unicode.IsSpace(r):
		return classWhitespace
	default:
		return classWord
	}
}

// token is a run of same-class, same-style characters. The line
// breaker fills in its position, line index and line height.
type token struct {
	text  string
	font  Font
	color color.Color

	// area is the token's box in the breaker's int coordinate space.
	area image.Rectangle

	line       int
	lineHeight int

	whitespace bool
	newline    bool
}

func newToken(text string, font Font, col color.Color, cls charClass, sh shaper) *token {
	t := &token{
		text:       text,
		font:       font,
		color:      col,
		whitespace: cls == classWhitespace,
		newline:    cls == classLineBreak,
	}
	t.area = image.Rect(0, 0, sh.measure(font, text), int(math.Round(font.Height())))
	return t
}

// setPosition moves the token's area to (x, y), keeping its size.
func (t *token) setPosition(x, y int) {
	t.area = image.Rect(x, y, x+t.area.Dx(), y+t.area.Dy())
}

// styleRun is a maximal span of runes sharing a resolved font and
// color.
type styleRun struct {
	rng   Range
	font  Font
	color color.Color
}

// resolveStyles flattens the source's attributes into contiguous
// style runs covering every rune. For each rune all attributes are
// scanned in order and a later attribute overrides the font and the
// color independently, so the two can come from different attributes.
// Runes no attribute covers use the base font and opaque black.
func resolveStyles(src Source, base Font, n int) []styleRun {
	if n == 0 {
		return nil
	}

	fonts := make([]Font, n)
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		f := base
		var c color.Color = color.Black
		for a := 0; a < src.NumAttributes(); a++ {
			attr := src.Attribute(a)
			if !attr.Range.Contains(i) {
				continue
			}
			if attr.Font != nil {
				f = attr.Font
			}
			if attr.Color != nil {
				c = attr.Color
			}
		}
		fonts[i] = f
		colors[i] = c
	}

	var runs []styleRun
	start := 0
	for i := 1; i < n; i++ {
		if fontsEqual(fonts[i], fonts[start]) && colorsEqual(colors[i], colors[start]) {
			continue
		}
		runs = append(runs, styleRun{rng: Range{Start: start, End: i}, font: fonts[start], color: colors[start]})
		start = i
	}
	return append(runs, styleRun{rng: Range{Start: start, End: n}, font: fonts[start], color: colors[start]})
}

// appendClassTokens splits runes into tokens by character class and
// appends them. Tokens are maximal same-class spans, except that each
// line-break rune is its own token and CRLF stays one.
func appendClassTokens(tokens []*token, runes []rune, font Font, col color.Color, sh shaper) []*token {
	i := 0
	for i < len(runes) {
		cls := classOf(runes[i])
		j := i + 1
		if cls == classLineBreak {
			if runes[i] == '\r' && j < len(runes) && runes[j] == '\n' {
				j++
			}
		} else {
			for j < len(runes) && classOf(runes[j]) == cls {
				j++
			}
		}
		tokens = append(tokens, newToken(string(runes[i:j]), font, col, cls, sh))
		i = j
	}
	return tokens
}

// tokenize converts the source into unplaced tokens: style resolution
// first, then class splitting within each style run. Token widths come
// from the shaper, heights from the rounded font height.
func tokenize(src Source, base Font, sh shaper) []*token {
	runes := []rune(src.Text())
	if len(runes) == 0 {
		return nil
	}
	var tokens []*token
	for _, sr := range resolveStyles(src, base, len(runes)) {
		tokens = appendClassTokens(tokens, runes[sr.rng.Start:sr.rng.End], sr.font, sr.color, sh)
	}
	return tokens
}

// trimTrailingSpace removes trailing whitespace before shaping, so
// whitespace-only tokens shape to no glyphs.
func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
