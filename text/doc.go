// Package text provides glyph rasterizers for glyphatlas.
//
// Two backends are available:
//   - OpenType renders with golang.org/x/image/font/opentype, with full
//     hinting. This is the default.
//   - Outline reads glyph outlines with go-text/typesetting and fills them
//     with golang.org/x/image/vector, unhinted.
//
// Both produce 8-bit coverage bitmaps with the bearing measured from the
// pen position on the baseline to the top-left pixel, y pointing up, and
// the advance in 26.6 fixed point.
//
// # Usage
//
//	data, _ := os.ReadFile("DejaVuSans.ttf")
//	rast, err := text.NewOpenType(data, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rast.Close()
//
//	atlas, err := glyphatlas.NewBuilder(rast).Build(ctx, runes)
//
// Neither rasterizer is safe for concurrent use; both implement
// glyphatlas.Cloner so the builder can give each worker its own copy.
package text
