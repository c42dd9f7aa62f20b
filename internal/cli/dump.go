package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/format"
	"github.com/gogpu/glyphatlas/text"
)

func (c *CLI) dumpCommand() *cobra.Command {
	var (
		runes      string
		rasterizer string
	)

	cmd := &cobra.Command{
		Use:   "dump FONT SIZE",
		Short: "Print rasterized glyphs as ASCII art",
		Example: `  glyphatlas dump font.ttf 12
  glyphatlas dump font.ttf 24 --runes 0x41-0x5A`,
		Args: fontSizeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}
			set, err := glyphatlas.ParseRanges(runes)
			if err != nil {
				return err
			}

			rast, err := text.LoadFile(rasterizer, args[0], float64(size))
			if err != nil {
				return err
			}
			if closer, ok := rast.(io.Closer); ok {
				defer closer.Close()
			}

			glyphs := make([]glyphatlas.Glyph, 0, len(set))
			for _, r := range set {
				g, err := rast.Rasterize(r)
				if err != nil {
					c.Logger.Warn("skipping glyph", "rune", string(r), "err", err)
					continue
				}
				glyphs = append(glyphs, g)
			}
			return format.Dump(cmd.OutOrStdout(), glyphs)
		},
	}

	cmd.Flags().StringVarP(&runes, "runes", "r", "0-127", "code point ranges to print")
	cmd.Flags().StringVar(&rasterizer, "rasterizer", text.DefaultRasterizer, "rasterizer backend")

	return cmd
}
