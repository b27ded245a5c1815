package textlayout

import "golang.org/x/text/unicode/bidi"

// ResolveReadingDirection returns the effective reading order of src.
// Explicit directions pass through unchanged; ReadingNatural is
// resolved from the text content with the Unicode bidi algorithm,
// left-to-right when the text has no strong direction.
func ResolveReadingDirection(src Source) ReadingDirection {
	switch src.ReadingDirection() {
	case ReadingLeftToRight:
		return ReadingLeftToRight
	case ReadingRightToLeft:
		return ReadingRightToLeft
	}
	return detectDirection(src.Text())
}

// detectDirection runs the bidi algorithm over text and reports the
// direction of its first run.
func detectDirection(text string) ReadingDirection {
	if text == "" {
		return ReadingLeftToRight
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return ReadingLeftToRight
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return ReadingLeftToRight
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return ReadingRightToLeft
	}
	return ReadingLeftToRight
}
