// Command layoutdemo lays out attributed sample text with the
// textlayout library and renders it to a PNG file.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/textlayout"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		output   = flag.String("output", "layout.png", "output file")
		width    = flag.Float64("width", 420, "wrap width in pixels")
		size     = flag.Float64("size", 18, "font size in pixels per em")
		fontPath = flag.String("font", "", "TTF font file (default: Go Regular)")
		balanced = flag.Bool("balanced", false, "balance the last two line lengths")
		harfbuzz = flag.Bool("harfbuzz", false, "shape with the HarfBuzz engine")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		textlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	source, err := loadFont(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	layout := buildLayout(source, *width, *size, *balanced, *harfbuzz)
	img := render(layout)

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%d lines, %.0fx%.0f)\n",
		*output, layout.NumLines(), layout.Width(), layout.Height())
}

func loadFont(path string) (*textlayout.FontSource, error) {
	if path != "" {
		return textlayout.NewFontSourceFromFile(path)
	}
	return textlayout.NewFontSource(goregular.TTF)
}

func buildLayout(source *textlayout.FontSource, width, size float64, balanced, harfbuzz bool) *textlayout.Layout {
	regular := source.Face(size)
	big := source.Face(size * 1.6)

	src := textlayout.NewAttributedString("")
	src.Append("The quick brown fox ", regular, color.Black)
	src.Append("jumps", big, color.RGBA{R: 0xc0, A: 0xff})
	src.Append(" over the lazy dog.\n", regular, color.Black)
	src.Append("Pack my box with five dozen liquor jugs.", regular, color.RGBA{B: 0x80, A: 0xff})

	var opts []textlayout.LayoutOption
	if harfbuzz {
		opts = append(opts, textlayout.WithEngine(textlayout.NewGoTextEngine()))
	}

	layout := &textlayout.Layout{}
	if balanced {
		layout.CreateLayoutWithBalancedLineLengths(src, width, opts...)
	} else {
		layout.CreateLayout(src, width, opts...)
	}
	return layout
}

func render(layout *textlayout.Layout) *image.RGBA {
	const margin = 16
	img := image.NewRGBA(image.Rect(0, 0,
		int(layout.Width())+2*margin, int(layout.Height())+2*margin))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	layout.Draw(textlayout.NewImageContext(img), textlayout.Rect{
		X: margin, Y: margin, W: layout.Width(), H: layout.Height(),
	})
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
