package format

import (
	"fmt"
	"io"
	"unicode"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas"
)

// Sidecar is the human-readable metadata written next to a PNG atlas.
type Sidecar struct {
	Version int    `toml:"version"`
	Image   string `toml:"image,omitempty"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`

	Missing []int32        `toml:"missing,omitempty"`
	Glyphs  []SidecarGlyph `toml:"glyph"`
}

// SidecarGlyph is one [[glyph]] table. Advance is in 26.6 fixed point.
type SidecarGlyph struct {
	Rune     int32  `toml:"rune"`
	Char     string `toml:"char,omitempty"`
	X        int    `toml:"x"`
	Y        int    `toml:"y"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	BearingX int    `toml:"bearing_x"`
	BearingY int    `toml:"bearing_y"`
	Advance  int32  `toml:"advance"`
}

// NewSidecar describes a; image names the PNG holding its pixels.
func NewSidecar(a *glyphatlas.Atlas, image string) Sidecar {
	s := Sidecar{
		Version: int(Version),
		Image:   image,
		Width:   a.Canvas.Width,
		Height:  a.Canvas.Height,
		Glyphs:  make([]SidecarGlyph, len(a.Glyphs)),
	}
	for _, r := range a.Missing {
		s.Missing = append(s.Missing, r)
	}
	for i, g := range a.Glyphs {
		sg := SidecarGlyph{
			Rune:     g.Rune,
			X:        g.X,
			Y:        g.Y,
			Width:    g.Width,
			Height:   g.Height,
			BearingX: g.BearingX,
			BearingY: g.BearingY,
			Advance:  int32(g.Advance),
		}
		if unicode.IsGraphic(g.Rune) {
			sg.Char = string(g.Rune)
		}
		s.Glyphs[i] = sg
	}
	return s
}

// GlyphInfos converts the sidecar records back to atlas records.
func (s Sidecar) GlyphInfos() []glyphatlas.GlyphInfo {
	out := make([]glyphatlas.GlyphInfo, len(s.Glyphs))
	for i, g := range s.Glyphs {
		out[i] = glyphatlas.GlyphInfo{
			Rune:     g.Rune,
			X:        g.X,
			Y:        g.Y,
			Width:    g.Width,
			Height:   g.Height,
			BearingX: g.BearingX,
			BearingY: g.BearingY,
			Advance:  fixed.Int26_6(g.Advance),
		}
	}
	return out
}

// WriteSidecar writes the TOML metadata for a.
func WriteSidecar(w io.Writer, a *glyphatlas.Atlas, image string) error {
	if err := toml.NewEncoder(w).Encode(NewSidecar(a, image)); err != nil {
		return fmt.Errorf("format: encode sidecar: %w", err)
	}
	return nil
}

// ReadSidecar parses TOML metadata written by WriteSidecar.
func ReadSidecar(r io.Reader) (Sidecar, error) {
	var s Sidecar
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Sidecar{}, fmt.Errorf("format: decode sidecar: %w", err)
	}
	if s.Version != int(Version) {
		return Sidecar{}, &VersionError{Got: uint16(s.Version)} //nolint:gosec // only compared
	}
	for _, g := range s.Glyphs {
		if g.X < 0 || g.Y < 0 || g.Width < 0 || g.Height < 0 ||
			g.X+g.Width > s.Width || g.Y+g.Height > s.Height {
			return Sidecar{}, fmt.Errorf("%w: glyph %U outside canvas", ErrCorrupt, g.Rune)
		}
	}
	return s, nil
}
