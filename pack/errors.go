package pack

import (
	"errors"
	"fmt"
)

// Sentinel errors for pack package.
var (
	// ErrInvalidRequest is wrapped by InvalidRequestError.
	ErrInvalidRequest = errors.New("pack: invalid request")

	// ErrInvalidCanvas is wrapped by InvalidCanvasError.
	ErrInvalidCanvas = errors.New("pack: invalid canvas size")
)

// InvalidRequestError reports a request with a negative dimension.
// It is a caller bug, not a packing failure.
type InvalidRequestError struct {
	Index  int
	ID     int
	Width  int
	Height int
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("pack: request %d (id %d) has negative size %dx%d", e.Index, e.ID, e.Width, e.Height)
}

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

// InvalidCanvasError reports a canvas with a non-positive side.
type InvalidCanvasError struct {
	Width  int
	Height int
}

func (e *InvalidCanvasError) Error() string {
	return fmt.Sprintf("pack: canvas must be positive, got %dx%d", e.Width, e.Height)
}

func (e *InvalidCanvasError) Unwrap() error { return ErrInvalidCanvas }
