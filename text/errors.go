package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for a non-positive pixel size.
	ErrInvalidSize = errors.New("text: size must be positive")

	// ErrUnknownRasterizer is returned by NewRasterizer for an unregistered name.
	ErrUnknownRasterizer = errors.New("text: unknown rasterizer")
)

// GlyphError is returned when a glyph cannot be loaded from the font.
type GlyphError struct {
	Rune   rune
	Reason string
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: glyph %U: %s", e.Rune, e.Reason)
}
