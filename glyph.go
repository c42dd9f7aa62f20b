package glyphatlas

import "golang.org/x/image/math/fixed"

// Glyph is one rasterized glyph as produced by a Rasterizer.
type Glyph struct {
	Rune rune

	// Width and Height are the bitmap size in pixels.
	Width, Height int

	// Pix holds Width*Height 8-bit coverage values, row-major.
	Pix []byte

	// BearingX is the offset from the origin to the left edge of the bitmap.
	// BearingY is the offset from the baseline up to the top edge.
	BearingX, BearingY int

	// Advance is the horizontal pen advance.
	Advance fixed.Int26_6
}

// Empty reports whether the glyph has no pixels (a space, for example).
func (g *Glyph) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// Rasterizer turns code points into coverage bitmaps.
// Implementations live in the text package.
type Rasterizer interface {
	Rasterize(r rune) (Glyph, error)
}

// Cloner is implemented by rasterizers that are not safe for concurrent
// use but can produce independent copies. The builder rasterizes in
// parallel only when the rasterizer implements Cloner.
type Cloner interface {
	Clone() (Rasterizer, error)
}
