// Package format reads and writes baked glyph atlases.
//
// Two forms are supported. The binary form is a single little-endian file:
//
//	"GATL" | u16 version | u16 flags | u32 width | u32 height | u32 count
//	count × { i32 rune | u32 x, y, w, h | i32 bearingX, bearingY, advance }
//	width × height coverage bytes
//
// The split form is a grayscale PNG plus a TOML sidecar holding the same
// glyph records. Dump prints glyph bitmaps as ASCII for inspection.
package format
