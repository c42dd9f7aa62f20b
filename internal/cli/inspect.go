package cli

import (
	"fmt"
	"os"
	"strconv"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/format"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var bitmaps bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Describe a baked binary atlas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			atlas, err := format.Decode(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			printTitle(out, args[0])
			printKeyValue(out, "canvas", fmt.Sprintf("%dx%d", atlas.Canvas.Width, atlas.Canvas.Height))
			printKeyValue(out, "glyphs", strconv.Itoa(len(atlas.Glyphs)))
			printKeyValue(out, "used", fmt.Sprintf("%.1f%%", atlas.Utilization()*100))
			fmt.Fprintln(out, glyphTable(atlas))

			if bitmaps {
				return format.Dump(out, format.Glyphs(atlas))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bitmaps, "bitmaps", false, "also print each glyph bitmap")

	return cmd
}

// glyphTable renders one row per glyph record.
func glyphTable(atlas *glyphatlas.Atlas) string {
	rows := make([][]string, 0, len(atlas.Glyphs))
	for _, g := range atlas.Glyphs {
		char := ""
		if unicode.IsGraphic(g.Rune) {
			char = string(g.Rune)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%U", g.Rune),
			char,
			fmt.Sprintf("%d,%d", g.X, g.Y),
			fmt.Sprintf("%dx%d", g.Width, g.Height),
			fmt.Sprintf("%d,%d", g.BearingX, g.BearingY),
			g.Advance.String(),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Rune", "Char", "Pos", "Size", "Bearing", "Advance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
