// Package glyphatlas bakes font glyphs into a single coverage texture.
//
// # Overview
//
// A Builder asks a Rasterizer for one bitmap per code point, packs the
// bitmaps into a canvas with a rectangle packer from the pack
// sub-package, and copies each bitmap to its placement. The result is an
// Atlas: the 8-bit canvas plus a GlyphInfo record per glyph holding its
// canvas rectangle, bearing and advance.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glyphatlas"
//	    "github.com/gogpu/glyphatlas/format"
//	    "github.com/gogpu/glyphatlas/text"
//	)
//
//	rast, err := text.LoadFile("opentype", "DejaVuSans.ttf", 16)
//	if err != nil {
//	    return err
//	}
//
//	b := glyphatlas.NewBuilder(rast, glyphatlas.WithPadding(1), glyphatlas.WithGrow(4096))
//	atlas, err := b.Build(ctx, runes)
//	if err != nil && !errors.Is(err, glyphatlas.ErrMissingGlyphs) {
//	    return err
//	}
//	err = format.Encode(w, atlas)
//
// # Partial Results
//
// Glyphs that do not fit are not fatal. Build returns the atlas together
// with a *MissingGlyphsError naming the runes that were left out; the
// atlas Missing field holds the same list.
//
// # Canvas Size
//
// Without WithCanvasSize the canvas is the smallest power of two, square
// or twice as wide as tall, that holds the padded glyph area at an 80%
// fill factor. WithGrow retries on a larger canvas, doubling the shorter
// side, until everything fits or the limit is reached.
//
// # Packing
//
// The default packer is a guillotine packer with a strict fit rule: a
// free region is used only if it is strictly larger than the request on
// both axes. See the pack package for details and the shelf alternative.
//
// # Logging
//
// The package is silent by default. Use SetLogger to route its slog
// output anywhere.
//
// # Sub-packages
//
//   - pack: guillotine and shelf rectangle packers
//   - text: TrueType/OpenType rasterizer backends
//   - format: binary, PNG and TOML serialization, ASCII dumps
package glyphatlas
