package glyphatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyphatlas package.
var (
	// ErrMissingGlyphs is wrapped by MissingGlyphsError.
	ErrMissingGlyphs = errors.New("glyphatlas: glyphs missing from atlas")

	// ErrNilRasterizer is returned by Build when the builder has no rasterizer.
	ErrNilRasterizer = errors.New("glyphatlas: nil rasterizer")

	// ErrOutOfBounds is returned when a blit does not fit the canvas.
	ErrOutOfBounds = errors.New("glyphatlas: blit out of canvas bounds")

	// ErrBitmapSize is returned when a glyph bitmap does not hold Width*Height bytes.
	ErrBitmapSize = errors.New("glyphatlas: bitmap size mismatch")
)

// MissingGlyphsError reports glyphs that could not be packed. It is
// returned together with a usable Atlas that lacks exactly these glyphs.
type MissingGlyphsError struct {
	Runes        []rune
	CanvasWidth  int
	CanvasHeight int
}

func (e *MissingGlyphsError) Error() string {
	return fmt.Sprintf("glyphatlas: %d glyphs did not fit in %dx%d canvas", len(e.Runes), e.CanvasWidth, e.CanvasHeight)
}

func (e *MissingGlyphsError) Unwrap() error { return ErrMissingGlyphs }

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "glyphatlas: invalid config." + e.Field + ": " + e.Reason
}
