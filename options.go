package textlayout

// LayoutOption configures a single layout call.
// Use functional options to customize CreateLayout behavior.
//
// Example:
//
//	// Lay out with an explicit base font:
//	layout.CreateLayout(src, 300, textlayout.WithBaseFont(face))
//
//	// Shape this call with HarfBuzz (dependency injection):
//	layout.CreateLayout(src, 300, textlayout.WithEngine(textlayout.NewGoTextEngine()))
type LayoutOption func(*layoutConfig)

// layoutConfig holds optional configuration for a layout call.
type layoutConfig struct {
	baseFont Font
	engine   Engine
}

// WithBaseFont sets the font used for characters no attribute covers.
// Without it, the first attribute carrying a font serves as the base;
// a source with no font at all produces an empty layout.
func WithBaseFont(f Font) LayoutOption {
	return func(c *layoutConfig) {
		c.baseFont = f
	}
}

// WithEngine uses e for this call instead of the engine installed
// with SetEngine. The standard engine remains the fallback when e
// declines.
func WithEngine(e Engine) LayoutOption {
	return func(c *layoutConfig) {
		c.engine = e
	}
}
