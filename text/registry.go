package text

import (
	"fmt"
	"os"
	"sort"

	"github.com/gogpu/glyphatlas"
)

// NewFunc builds a rasterizer from font data at size pixels per em.
type NewFunc func(data []byte, size float64) (glyphatlas.Rasterizer, error)

// registry holds the named rasterizer backends.
// The default backend is "opentype".
var registry = map[string]NewFunc{
	"opentype": func(data []byte, size float64) (glyphatlas.Rasterizer, error) {
		r, err := NewOpenType(data, size)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
	"outline": func(data []byte, size float64) (glyphatlas.Rasterizer, error) {
		r, err := NewOutline(data, size)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
}

// DefaultRasterizer is the backend used when no name is given.
const DefaultRasterizer = "opentype"

// RegisterRasterizer adds or replaces a named backend.
// It is not safe to call concurrently with NewRasterizer.
func RegisterRasterizer(name string, fn NewFunc) {
	registry[name] = fn
}

// Rasterizers returns the registered backend names, sorted.
func Rasterizers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRasterizer builds the named backend. An empty name selects
// DefaultRasterizer.
func NewRasterizer(name string, data []byte, size float64) (glyphatlas.Rasterizer, error) {
	if name == "" {
		name = DefaultRasterizer
	}
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRasterizer, name)
	}
	return fn(data, size)
}

// LoadFile reads a font file and builds the named backend.
func LoadFile(name, path string, size float64) (glyphatlas.Rasterizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return NewRasterizer(name, data, size)
}
