package text

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/glyphatlas"
)

// Outline rasterizes glyph outlines read with go-text/typesetting using
// the golang.org/x/image/vector rasterizer. Output is unhinted.
type Outline struct {
	font  *font.Font
	face  *font.Face
	size  float64
	scale float32 // pixels per font unit

	rast vector.Rasterizer
}

// NewOutline parses TTF or OTF data and prepares a face of size pixels
// per em.
func NewOutline(data []byte, size float64) (*Outline, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	glyphatlas.Logger().Debug("text: outline font loaded", "upem", face.Upem(), "size", size)
	return newOutline(face.Font, size), nil
}

func newOutline(f *font.Font, size float64) *Outline {
	return &Outline{
		font:  f,
		face:  font.NewFace(f),
		size:  size,
		scale: float32(size) / float32(f.Upem()),
	}
}

// Rasterize implements glyphatlas.Rasterizer.
// Runes missing from the font render as glyph 0 (.notdef).
func (o *Outline) Rasterize(r rune) (glyphatlas.Glyph, error) {
	gid, _ := o.face.NominalGlyph(r)

	adv := float64(o.face.HorizontalAdvance(gid) * o.scale)
	g := glyphatlas.Glyph{
		Rune:    r,
		Advance: fixed.Int26_6(math.Round(adv * 64)),
	}

	outline, ok := o.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return glyphatlas.Glyph{}, &GlyphError{Rune: r, Reason: "glyph has no outline"}
	}
	if len(outline.Segments) == 0 {
		return g, nil
	}

	// Font units are y-up; the bitmap is y-down.
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, seg := range outline.Segments {
		for _, p := range segmentPoints(seg) {
			x, y := p.X*o.scale, -p.Y*o.scale
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	x0 := int(math.Floor(float64(minX)))
	y0 := int(math.Floor(float64(minY)))
	x1 := int(math.Ceil(float64(maxX)))
	y1 := int(math.Ceil(float64(maxY)))
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return g, nil
	}

	o.rast.Reset(w, h)
	o.rast.DrawOp = draw.Src
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return p.X*o.scale - float32(x0), -p.Y*o.scale - float32(y0)
	}

	started := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if started {
				o.rast.ClosePath()
			}
			started = true
			o.rast.MoveTo(pt(seg.Args[0]))
		case ot.SegmentOpLineTo:
			o.rast.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			o.rast.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			o.rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		o.rast.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	o.rast.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	g.Width, g.Height = w, h
	g.Pix = dst.Pix
	g.BearingX = x0
	g.BearingY = -y0
	return g, nil
}

// Clone implements glyphatlas.Cloner. The parsed font is shared; the face
// and the vector rasterizer are not.
func (o *Outline) Clone() (glyphatlas.Rasterizer, error) {
	return newOutline(o.font, o.size), nil
}

// segmentPoints returns the points used by seg.
func segmentPoints(seg ot.Segment) []ot.SegmentPoint {
	switch seg.Op {
	case ot.SegmentOpQuadTo:
		return seg.Args[:2]
	case ot.SegmentOpCubeTo:
		return seg.Args[:3]
	default:
		return seg.Args[:1]
	}
}
