package textlayout

// breakLines flows the tokens into lines no wider than maxWidth and
// returns the number of lines. Positions, line indices and line
// heights are written into the tokens; the whole pass works in int
// coordinates.
//
// A line ends at a line-break token, or before a word token whose
// placement would cross maxWidth. Whitespace never forces a wrap, so
// trailing spaces hang past the limit, and a single token wider than
// maxWidth overflows on its own line.
func breakLines(tokens []*token, maxWidth int) int {
	x, y, h := 0, 0, 0
	line := 0

	for i, t := range tokens {
		t.setPosition(x, y)
		t.line = line
		x += t.area.Dx()
		if t.area.Dy() > h {
			h = t.area.Dy()
		}

		if i+1 == len(tokens) {
			break
		}
		next := tokens[i+1]
		wraps := !next.whitespace && !next.newline && x+next.area.Dx() > maxWidth
		if t.newline || wraps {
			setLineHeight(tokens, i+1, line, h)
			x = 0
			y += h
			h = 0
			line++
		}
	}

	setLineHeight(tokens, len(tokens), line, h)
	return line + 1
}

// setLineHeight walks back from end assigning h to every token on the
// given line.
func setLineHeight(tokens []*token, end, line, h int) {
	for i := end - 1; i >= 0 && tokens[i].line == line; i-- {
		tokens[i].lineHeight = h
	}
}
