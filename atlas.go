package glyphatlas

import "golang.org/x/image/math/fixed"

// GlyphInfo locates one glyph in the atlas canvas and carries the metrics a
// text renderer needs to position it.
type GlyphInfo struct {
	Rune rune

	// Pixel rectangle in the canvas.
	X, Y, Width, Height int

	BearingX, BearingY int
	Advance            fixed.Int26_6
}

// Atlas is the output of a build: the canvas plus metadata for every glyph
// that was placed.
type Atlas struct {
	Canvas *Canvas

	// Glyphs is in the order the runes were requested, without missing ones.
	Glyphs []GlyphInfo

	// Missing lists runes that could not be packed.
	Missing []rune

	index map[rune]int
}

// NewAtlas assembles an atlas from a canvas and glyph records.
func NewAtlas(canvas *Canvas, glyphs []GlyphInfo, missing []rune) *Atlas {
	a := &Atlas{
		Canvas:  canvas,
		Glyphs:  glyphs,
		Missing: missing,
		index:   make(map[rune]int, len(glyphs)),
	}
	for i, g := range glyphs {
		a.index[g.Rune] = i
	}
	return a
}

// Lookup returns the record for r.
func (a *Atlas) Lookup(r rune) (GlyphInfo, bool) {
	i, ok := a.index[r]
	if !ok {
		return GlyphInfo{}, false
	}
	return a.Glyphs[i], true
}

// Utilization returns the fraction of canvas pixels covered by glyph
// rectangles (0.0 to 1.0).
func (a *Atlas) Utilization() float64 {
	if a.Canvas == nil || a.Canvas.Width == 0 || a.Canvas.Height == 0 {
		return 0
	}
	used := 0
	for _, g := range a.Glyphs {
		used += g.Width * g.Height
	}
	return float64(used) / float64(a.Canvas.Width*a.Canvas.Height)
}
