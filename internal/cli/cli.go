// Package cli implements the glyphatlas command-line interface.
//
// The CLI is built with cobra. Library logging from glyphatlas and its
// sub-packages is routed through the same charmbracelet/log logger the
// commands use, so --verbose shows per-attempt packing detail.
//
// # Commands
//
//   - bake: rasterize a font and write a packed atlas
//   - dump: print glyph bitmaps as ASCII
//   - inspect: describe a baked atlas file
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/glyphatlas"
)

// Version is reported by --version. Set with -ldflags at build time.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w and installs the same logger as the
// glyphatlas library logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	glyphatlas.SetLogger(slog.New(c.Logger))
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "glyphatlas",
		Short:        "Bake font glyphs into a packed texture atlas",
		Long:         `glyphatlas rasterizes a range of code points from a TrueType or OpenType font and packs the bitmaps into a single coverage texture with per-glyph metrics.`,
		Version:      Version,
		SilenceUsage: true,
	}

	root.AddCommand(c.bakeCommand())
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.inspectCommand())

	return root
}
