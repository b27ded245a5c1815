package textlayout

import "strings"

// unknownStr is returned by String methods for values outside the
// defined range.
const unknownStr = "Unknown"

// Range is a half-open interval [Start, End) of rune indices.
type Range struct {
	Start, End int
}

// Length returns the number of indices covered by the range.
func (r Range) Length() int { return r.End - r.Start }

// Contains reports whether i lies inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Justification is a set of flags describing how content is placed
// within a larger area, horizontally and vertically.
type Justification int

const (
	// JustifyLeft aligns content against the left edge.
	JustifyLeft Justification = 1 << iota

	// JustifyRight aligns content against the right edge.
	JustifyRight

	// JustifyHorizontallyCentred centres content horizontally.
	JustifyHorizontallyCentred

	// JustifyTop aligns content against the top edge.
	JustifyTop

	// JustifyBottom aligns content against the bottom edge.
	JustifyBottom

	// JustifyVerticallyCentred centres content vertically.
	JustifyVerticallyCentred
)

// Common flag combinations.
const (
	JustifyTopLeft     = JustifyTop | JustifyLeft
	JustifyTopRight    = JustifyTop | JustifyRight
	JustifyBottomLeft  = JustifyBottom | JustifyLeft
	JustifyBottomRight = JustifyBottom | JustifyRight
	JustifyCentred     = JustifyHorizontallyCentred | JustifyVerticallyCentred
	JustifyCentredLeft = JustifyVerticallyCentred | JustifyLeft
	JustifyCentredTop  = JustifyHorizontallyCentred | JustifyTop
)

// String returns the names of the set flags joined by "|".
func (j Justification) String() string {
	if j == 0 {
		return "None"
	}
	var parts []string
	for _, f := range []struct {
		flag Justification
		name string
	}{
		{JustifyLeft, "Left"},
		{JustifyRight, "Right"},
		{JustifyHorizontallyCentred, "HorizontallyCentred"},
		{JustifyTop, "Top"},
		{JustifyBottom, "Bottom"},
		{JustifyVerticallyCentred, "VerticallyCentred"},
	} {
		if j&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return unknownStr
	}
	return strings.Join(parts, "|")
}

// AppliedTo positions r inside space according to the flags and
// returns the moved rectangle. The size of r is preserved; without
// horizontal or vertical flags the content sits at the left or top
// edge.
func (j Justification) AppliedTo(r, space Rect) Rect {
	x := space.X
	if j&JustifyRight != 0 {
		x = space.X + space.W - r.W
	} else if j&JustifyHorizontallyCentred != 0 {
		x = space.X + (space.W-r.W)/2
	}

	y := space.Y
	if j&JustifyBottom != 0 {
		y = space.Y + space.H - r.H
	} else if j&JustifyVerticallyCentred != 0 {
		y = space.Y + (space.H-r.H)/2
	}

	return Rect{X: x, Y: y, W: r.W, H: r.H}
}

// ReadingDirection selects how the overall reading order of a source
// is determined.
type ReadingDirection int

const (
	// ReadingNatural resolves the order from the text content.
	ReadingNatural ReadingDirection = iota

	// ReadingLeftToRight forces left-to-right order.
	ReadingLeftToRight

	// ReadingRightToLeft forces right-to-left order.
	ReadingRightToLeft
)

// String returns the name of the reading direction.
func (d ReadingDirection) String() string {
	switch d {
	case ReadingNatural:
		return "Natural"
	case ReadingLeftToRight:
		return "LeftToRight"
	case ReadingRightToLeft:
		return "RightToLeft"
	default:
		return unknownStr
	}
}
