package format

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/glyphatlas"
)

// Pixels with coverage above this threshold print as '#'.
const dumpThreshold = 127

// Dump prints each glyph as a header line followed by its bitmap in ASCII:
//
//	U+0041 LATIN CAPITAL LETTER A
//	s: 9 12, b: 0 12, a: 640
//	....#....
func Dump(w io.Writer, glyphs []glyphatlas.Glyph) error {
	bw := bufio.NewWriter(w)
	for _, g := range glyphs {
		name := runenames.Name(g.Rune)
		if name == "" {
			name = "<unnamed>"
		}
		fmt.Fprintf(bw, "%U %s\n", g.Rune, name)
		fmt.Fprintf(bw, "s: %d %d, b: %d %d, a: %d\n",
			g.Width, g.Height, g.BearingX, g.BearingY, int32(g.Advance))

		row := make([]byte, g.Width+1)
		row[g.Width] = '\n'
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.Pix[y*g.Width+x] > dumpThreshold {
					row[x] = '#'
				} else {
					row[x] = '.'
				}
			}
			if _, err := bw.Write(row); err != nil {
				return err
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
