package text

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas"
)

// OpenType rasterizes glyphs with golang.org/x/image/font/opentype.
type OpenType struct {
	font *opentype.Font
	size float64
	face font.Face
}

// NewOpenType parses TTF or OTF data and prepares a face of size pixels
// per em.
func NewOpenType(data []byte, size float64) (*OpenType, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	o, err := newOpenType(f, size)
	if err != nil {
		return nil, err
	}

	glyphatlas.Logger().Debug("text: opentype font loaded",
		"family", o.Name(), "glyphs", f.NumGlyphs(), "size", size)
	return o, nil
}

func newOpenType(f *opentype.Font, size float64) (*OpenType, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return &OpenType{font: f, size: size, face: face}, nil
}

// Name returns the font family name, or "" if the font has none.
func (o *OpenType) Name() string {
	if name, err := o.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// Rasterize implements glyphatlas.Rasterizer.
// Runes missing from the font render as the font's .notdef glyph.
func (o *OpenType) Rasterize(r rune) (glyphatlas.Glyph, error) {
	dr, mask, maskp, advance, ok := o.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		// Glyphs without a drawable outline still advance the pen.
		adv, hasAdv := o.face.GlyphAdvance(r)
		if !hasAdv {
			return glyphatlas.Glyph{}, &GlyphError{Rune: r, Reason: "cannot load glyph"}
		}
		return glyphatlas.Glyph{Rune: r, Advance: adv}, nil
	}

	g := glyphatlas.Glyph{
		Rune:     r,
		Width:    dr.Dx(),
		Height:   dr.Dy(),
		BearingX: dr.Min.X,
		BearingY: -dr.Min.Y,
		Advance:  advance,
	}
	if g.Empty() {
		g.Width, g.Height = 0, 0
		return g, nil
	}

	// The face reuses its mask between calls.
	dst := image.NewAlpha(image.Rect(0, 0, g.Width, g.Height))
	draw.Draw(dst, dst.Bounds(), mask, maskp, draw.Src)
	g.Pix = dst.Pix
	return g, nil
}

// Clone implements glyphatlas.Cloner. The parsed font is shared; the face
// is not.
func (o *OpenType) Clone() (glyphatlas.Rasterizer, error) {
	c, err := newOpenType(o.font, o.size)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Close releases the face.
func (o *OpenType) Close() error {
	return o.face.Close()
}
