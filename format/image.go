package format

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/gogpu/glyphatlas"
)

// WritePNG encodes the canvas as an 8-bit grayscale PNG.
func WritePNG(w io.Writer, c *glyphatlas.Canvas) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("format: encode png: %w", err)
	}
	return nil
}

// ReadPNG decodes a PNG into a canvas, converting to grayscale if needed.
func ReadPNG(r io.Reader) (*glyphatlas.Canvas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("format: decode png: %w", err)
	}

	b := img.Bounds()
	canvas := glyphatlas.NewCanvas(b.Dx(), b.Dy())
	draw.Draw(canvas.Image(), canvas.Image().Bounds(), img, b.Min, draw.Src)
	return canvas, nil
}

// Crop copies the pixels of one glyph out of the canvas.
func Crop(c *glyphatlas.Canvas, g glyphatlas.GlyphInfo) glyphatlas.Glyph {
	out := glyphatlas.Glyph{
		Rune:     g.Rune,
		Width:    g.Width,
		Height:   g.Height,
		BearingX: g.BearingX,
		BearingY: g.BearingY,
		Advance:  g.Advance,
	}
	if g.Width == 0 || g.Height == 0 {
		out.Width, out.Height = 0, 0
		return out
	}

	sub := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	draw.Draw(sub, sub.Bounds(), c.Image(), image.Pt(g.X, g.Y), draw.Src)
	out.Pix = sub.Pix
	return out
}

// Glyphs crops every glyph of a out of its canvas.
func Glyphs(a *glyphatlas.Atlas) []glyphatlas.Glyph {
	out := make([]glyphatlas.Glyph, len(a.Glyphs))
	for i, g := range a.Glyphs {
		out[i] = Crop(a.Canvas, g)
	}
	return out
}
