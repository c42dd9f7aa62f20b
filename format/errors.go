package format

import (
	"errors"
	"fmt"
)

// Sentinel errors for format package.
var (
	// ErrBadMagic is returned when the input does not start with Magic.
	ErrBadMagic = errors.New("format: not a glyph atlas")

	// ErrCorrupt is returned when header or records are inconsistent.
	ErrCorrupt = errors.New("format: corrupt atlas")
)

// VersionError is returned for an atlas written by an unknown format version.
type VersionError struct {
	Got uint16
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("format: unsupported version %d (want %d)", e.Got, Version)
}
