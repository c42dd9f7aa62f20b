package format

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas"
)

// Magic starts every binary atlas.
const Magic = "GATL"

// Version is the binary format version written by Encode.
const Version uint16 = 1

// Decoder limits.
const (
	maxCanvasPixels = 1 << 28
	maxGlyphs       = 1 << 21
)

// header is the fixed 20-byte file header. All fields are little endian.
type header struct {
	Magic   [4]byte
	Version uint16
	Flags   uint16
	Width   uint32
	Height  uint32
	Count   uint32
}

// record is one 32-byte glyph entry.
type record struct {
	Rune     int32
	X, Y     uint32
	W, H     uint32
	BearingX int32
	BearingY int32
	Advance  int32 // 26.6 fixed point
}

// Encode writes a in binary format version 1: the header, one record per
// placed glyph, then Width*Height coverage bytes.
func Encode(w io.Writer, a *glyphatlas.Atlas) error {
	if a == nil || a.Canvas == nil {
		return fmt.Errorf("%w: nil atlas", ErrCorrupt)
	}

	bw := bufio.NewWriter(w)
	h := header{
		Version: Version,
		Width:   uint32(a.Canvas.Width),  //nolint:gosec // canvas sides are positive
		Height:  uint32(a.Canvas.Height), //nolint:gosec // canvas sides are positive
		Count:   uint32(len(a.Glyphs)),   //nolint:gosec // bounded by the rune set
	}
	copy(h.Magic[:], Magic)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("format: write header: %w", err)
	}

	for _, g := range a.Glyphs {
		rec := record{
			Rune:     g.Rune,
			X:        uint32(g.X),      //nolint:gosec // placements are non-negative
			Y:        uint32(g.Y),      //nolint:gosec // placements are non-negative
			W:        uint32(g.Width),  //nolint:gosec // sizes are non-negative
			H:        uint32(g.Height), //nolint:gosec // sizes are non-negative
			BearingX: int32(g.BearingX),
			BearingY: int32(g.BearingY),
			Advance:  int32(g.Advance),
		}
		if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("format: write glyph %U: %w", g.Rune, err)
		}
	}

	if _, err := bw.Write(a.Canvas.Pix); err != nil {
		return fmt.Errorf("format: write pixels: %w", err)
	}
	return bw.Flush()
}

// Decode reads an atlas written by Encode.
func Decode(r io.Reader) (*glyphatlas.Atlas, error) {
	br := bufio.NewReader(r)

	var h header
	if err := binary.Read(br, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("format: read header: %w", err)
	}
	if string(h.Magic[:]) != Magic {
		return nil, ErrBadMagic
	}
	if h.Version != Version {
		return nil, &VersionError{Got: h.Version}
	}
	if h.Width == 0 || h.Height == 0 || uint64(h.Width)*uint64(h.Height) > maxCanvasPixels {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrCorrupt, h.Width, h.Height)
	}
	if h.Count > maxGlyphs {
		return nil, fmt.Errorf("%w: %d glyphs", ErrCorrupt, h.Count)
	}

	glyphs := make([]glyphatlas.GlyphInfo, h.Count)
	for i := range glyphs {
		var rec record
		if err := binary.Read(br, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("format: read glyph %d: %w", i, err)
		}
		if uint64(rec.X)+uint64(rec.W) > uint64(h.Width) || uint64(rec.Y)+uint64(rec.H) > uint64(h.Height) {
			return nil, fmt.Errorf("%w: glyph %U outside canvas", ErrCorrupt, rec.Rune)
		}
		glyphs[i] = glyphatlas.GlyphInfo{
			Rune:     rec.Rune,
			X:        int(rec.X),
			Y:        int(rec.Y),
			Width:    int(rec.W),
			Height:   int(rec.H),
			BearingX: int(rec.BearingX),
			BearingY: int(rec.BearingY),
			Advance:  fixed.Int26_6(rec.Advance),
		}
	}

	canvas := glyphatlas.NewCanvas(int(h.Width), int(h.Height))
	if _, err := io.ReadFull(br, canvas.Pix); err != nil {
		return nil, fmt.Errorf("format: read pixels: %w", err)
	}

	return glyphatlas.NewAtlas(canvas, glyphs, nil), nil
}
