package textlayout

import "image/color"

// DrawContext receives the draw calls for a layout: font and fill
// state changes followed by one call per glyph. ImageContext is the
// ready-made software implementation.
type DrawContext interface {
	// SetFont selects the font for subsequent glyphs.
	SetFont(Font)

	// SetFill selects the fill color for subsequent glyphs.
	SetFill(color.Color)

	// DrawGlyph paints a single glyph under the given transform, a
	// translation to the glyph's baseline position.
	DrawGlyph(code int, transform Matrix)
}

// Draw renders the layout into area. The layout's bounding box is
// placed inside area by the justification flags; every glyph is then
// emitted in line, run, glyph order.
func (l *Layout) Draw(ctx DrawContext, area Rect) {
	placed := l.justification.AppliedTo(Rect{W: l.Width(), H: l.Height()}, area)
	origin := Pt(placed.X, placed.Y)

	for _, ln := range l.lines {
		lineOrigin := origin.Add(ln.Origin)
		for _, run := range ln.Runs {
			ctx.SetFont(run.Font)
			ctx.SetFill(run.Color)
			for _, g := range run.Glyphs {
				ctx.DrawGlyph(g.Code, Translate(lineOrigin.X+g.Anchor.X, lineOrigin.Y+g.Anchor.Y))
			}
		}
	}
}
