package textlayout

// buildLines walks the positioned tokens in character order and
// constructs the lines of the layout. Each token's trimmed text is
// shaped into glyphs appended to the current run; runs close at style
// boundaries and lines close when the breaker-assigned line index
// changes.
//
// Character positions advance once per emitted glyph plus once for
// each whitespace or line-break token, so a multi-space token takes a
// single position. Runs and lines carry the resulting [start, end)
// ranges and together tile the whole string.
func buildLines(tokens []*token, sh shaper) []*Line {
	var (
		lines       []*Line
		currentLine *Line
		currentRun  *Run
		lineFirst   *token
		charPos     int
		runStart    int
		lineStart   int
		originSet   bool
	)

	// commitRun flushes the pending run into the current line, raising
	// the line metrics from the closing token's font. A run covering no
	// characters is dropped; one covering only whitespace positions is
	// kept glyphless so the line's ranges stay gapless.
	commitRun := func(t *token) {
		if t.font.Ascent() > currentLine.Ascent {
			currentLine.Ascent = t.font.Ascent()
		}
		if t.font.Descent() > currentLine.Descent {
			currentLine.Descent = t.font.Descent()
		}

		r := currentRun
		currentRun = nil
		if r == nil {
			if charPos == runStart {
				return
			}
			r = &Run{}
		}
		r.StringRange = Range{Start: runStart, End: charPos}
		r.Font = t.font
		r.Color = t.color
		currentLine.Runs = append(currentLine.Runs, r)
	}

	// commitLine closes the current run and appends the line. A line
	// that never saw a glyph still takes part in vertical flow, so its
	// origin derives from its first token instead.
	commitLine := func(t *token) {
		commitRun(t)
		currentLine.StringRange = Range{Start: lineStart, End: charPos}
		if !originSet {
			p := lineFirst.area.Min
			currentLine.Origin = Pt(float64(p.X), float64(p.Y)+lineFirst.font.Ascent())
		}
		lines = append(lines, currentLine)
		currentLine = nil
		lineFirst = nil
		originSet = false
		runStart = charPos
		lineStart = charPos
	}

	for i, t := range tokens {
		if currentLine == nil {
			currentLine = &Line{}
			lineFirst = t
		}

		codes, offsets := sh.shape(t.font, trimTrailingSpace(t.text))
		if len(codes) > 0 {
			if currentRun == nil {
				currentRun = &Run{}
			}
			origin := Pt(float64(t.area.Min.X), float64(t.area.Min.Y))
			if !originSet {
				originSet = true
				currentLine.Origin = origin.Translated(0, t.font.Ascent())
			}
			for j, code := range codes {
				x := offsets[j]
				currentRun.Glyphs = append(currentRun.Glyphs, Glyph{
					Code:   code,
					Anchor: Pt(origin.X+x, 0),
					Width:  offsets[j+1] - x,
				})
				charPos++
			}
		}
		if t.whitespace || t.newline {
			charPos++
		}

		if i+1 == len(tokens) {
			commitLine(t)
			break
		}
		next := tokens[i+1]
		if !fontsEqual(t.font, next.font) || !colorsEqual(t.color, next.color) {
			commitRun(t)
			runStart = charPos
		}
		if t.line != next.line {
			commitLine(t)
		}
	}

	return lines
}

// applyJustification shifts each line's origin when the layout is
// right-aligned or horizontally centred. The shift is computed in the
// breaker's int space against the wrap width, halved for centring.
func applyJustification(lines []*Line, tokens []*token, just Justification, totalWidth float64) {
	if just&(JustifyRight|JustifyHorizontallyCentred) == 0 {
		return
	}
	totalW := int(totalWidth)
	centred := just&JustifyHorizontallyCentred != 0
	for i, ln := range lines {
		dx := totalW - lineWidth(tokens, i)
		if centred {
			dx /= 2
		}
		ln.Origin.X += float64(dx)
	}
}

// lineWidth returns the right edge of the widest word token on the
// given line, 0 when the line has none. Whitespace and line-break
// tokens hang without affecting the width.
func lineWidth(tokens []*token, line int) int {
	w := 0
	for _, t := range tokens {
		if t.line == line && !t.whitespace && !t.newline && t.area.Max.X > w {
			w = t.area.Max.X
		}
	}
	return w
}
