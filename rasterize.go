package textlayout

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
)

// ImageContext is a software DrawContext that rasterizes glyph
// outlines into an image. Glyphs drawn with fonts that are not [*Face]
// values are skipped, since outlines can only be loaded from font
// data.
//
// ImageContext is not safe for concurrent use.
type ImageContext struct {
	dst  draw.Image
	face *Face
	src  *image.Uniform
	buf  sfnt.Buffer
}

// NewImageContext creates an ImageContext rendering into dst with a
// black fill.
func NewImageContext(dst draw.Image) *ImageContext {
	return &ImageContext{dst: dst, src: image.NewUniform(color.Black)}
}

// SetFont implements DrawContext.
func (c *ImageContext) SetFont(f Font) {
	face, _ := f.(*Face)
	c.face = face
}

// SetFill implements DrawContext.
func (c *ImageContext) SetFill(col color.Color) {
	if col == nil {
		col = color.Black
	}
	c.src = image.NewUniform(col)
}

// glyphSeg is one transformed outline segment.
type glyphSeg struct {
	op  sfnt.SegmentOp
	pts [3]Point
}

// DrawGlyph implements DrawContext: it loads the glyph outline,
// transforms its control points and fills the result.
func (c *ImageContext) DrawGlyph(code int, transform Matrix) {
	if c.face == nil {
		return
	}
	segments, err := c.face.source.font.LoadGlyph(&c.buf, sfnt.GlyphIndex(code), c.face.ppem(), nil)
	if err != nil || len(segments) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	segs := make([]glyphSeg, len(segments))
	for i, seg := range segments {
		gs := glyphSeg{op: seg.Op}
		for j := 0; j < segmentPoints(seg.Op); j++ {
			p := transform.TransformPoint(Pt(fixedToFloat64(seg.Args[j].X), fixedToFloat64(seg.Args[j].Y)))
			gs.pts[j] = p
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
		segs[i] = gs
	}

	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	x1, y1 := int(math.Ceil(maxX)), int(math.Ceil(maxY))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	// Rasterize in a local frame anchored at (x0, y0), then composite
	// into the destination.
	rel := func(p Point) (float32, float32) {
		return float32(p.X - float64(x0)), float32(p.Y - float64(y0))
	}
	ras := vector.NewRasterizer(x1-x0, y1-y0)
	ras.DrawOp = draw.Over
	for _, gs := range segs {
		switch gs.op {
		case sfnt.SegmentOpMoveTo:
			ax, ay := rel(gs.pts[0])
			ras.MoveTo(ax, ay)
		case sfnt.SegmentOpLineTo:
			ax, ay := rel(gs.pts[0])
			ras.LineTo(ax, ay)
		case sfnt.SegmentOpQuadTo:
			bx, by := rel(gs.pts[0])
			ax, ay := rel(gs.pts[1])
			ras.QuadTo(bx, by, ax, ay)
		case sfnt.SegmentOpCubeTo:
			bx, by := rel(gs.pts[0])
			cx, cy := rel(gs.pts[1])
			ax, ay := rel(gs.pts[2])
			ras.CubeTo(bx, by, cx, cy, ax, ay)
		}
	}
	ras.Draw(c.dst, image.Rect(x0, y0, x1, y1), c.src, image.Point{})
}

// segmentPoints returns how many of a segment's args are meaningful.
func segmentPoints(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}
