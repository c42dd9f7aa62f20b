package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/format"
	"github.com/gogpu/glyphatlas/text"
)

// bakeOptions holds flag values. Flags only override the config file
// when set on the command line.
type bakeOptions struct {
	config     string
	output     string
	png        bool
	sidecar    bool
	runes      string
	padding    int
	fit        string
	strategy   string
	rasterizer string
	workers    int
	maxCanvas  int
	noGrow     bool
}

func (c *CLI) bakeCommand() *cobra.Command {
	var opts bakeOptions

	cmd := &cobra.Command{
		Use:   "bake FONT SIZE",
		Short: "Rasterize a font and pack its glyphs into an atlas",
		Long: `Bake rasterizes every code point in --runes at SIZE pixels per em and packs
the bitmaps into a single coverage texture. Glyphs that do not fit are
reported and left out; the atlas is still written.`,
		Example: `  glyphatlas bake DejaVuSans.ttf 16
  glyphatlas bake font.otf 32 --runes 32-126,0xA0-0xFF --png --sidecar
  glyphatlas bake font.ttf 24 --config atlas.toml`,
		Args: fontSizeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}
			cfg, err := opts.resolve(cmd, size)
			if err != nil {
				return err
			}
			return c.runBake(cmd, args[0], cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "TOML config file")
	f.StringVarP(&opts.output, "output", "o", "", "binary atlas path (default atlas.bin)")
	f.BoolVar(&opts.png, "png", false, "also write a PNG image next to the output")
	f.BoolVar(&opts.sidecar, "sidecar", false, "also write TOML glyph metadata next to the output")
	f.StringVarP(&opts.runes, "runes", "r", "", "code point ranges, e.g. 32-126,0x400-0x4FF (default 0-127)")
	f.IntVar(&opts.padding, "padding", 1, "pixels between glyphs")
	f.StringVar(&opts.fit, "fit", "strict", "fit rule: strict or inclusive")
	f.StringVar(&opts.strategy, "strategy", "guillotine", "packer: guillotine or shelf")
	f.StringVar(&opts.rasterizer, "rasterizer", text.DefaultRasterizer, "rasterizer backend: "+strings.Join(text.Rasterizers(), ", "))
	f.IntVarP(&opts.workers, "workers", "j", 0, "rasterizer workers (0 = GOMAXPROCS)")
	f.IntVar(&opts.maxCanvas, "max-canvas", 4096, "largest canvas side when growing")
	f.BoolVar(&opts.noGrow, "no-grow", false, "pack into the initial canvas only")

	return cmd
}

// resolve merges the config file, defaults and explicitly set flags.
func (o *bakeOptions) resolve(cmd *cobra.Command, size int) (glyphatlas.Config, error) {
	cfg := glyphatlas.DefaultConfig()
	if o.config != "" {
		loaded, err := glyphatlas.LoadConfig(o.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.Size = size

	set := cmd.Flags().Changed
	if set("output") {
		cfg.Output = o.output
	}
	if set("png") {
		cfg.PNG = o.png
	}
	if set("sidecar") {
		cfg.Sidecar = o.sidecar
	}
	if set("runes") {
		cfg.Runes = o.runes
	}
	if set("padding") {
		cfg.Padding = o.padding
	}
	if set("fit") {
		cfg.Fit = o.fit
	}
	if set("strategy") {
		cfg.Strategy = o.strategy
	}
	if set("rasterizer") {
		cfg.Rasterizer = o.rasterizer
	}
	if set("workers") {
		cfg.Workers = o.workers
	}
	if set("max-canvas") {
		cfg.MaxCanvas = o.maxCanvas
	}
	if set("no-grow") {
		cfg.Grow = !o.noGrow
	}

	return cfg, cfg.Validate()
}

func (c *CLI) runBake(cmd *cobra.Command, fontPath string, cfg glyphatlas.Config) error {
	out := cmd.OutOrStdout()
	prog := newProgress(c.Logger)

	runes, err := glyphatlas.ParseRanges(cfg.Runes)
	if err != nil {
		return err
	}

	rast, err := text.LoadFile(cfg.Rasterizer, fontPath, float64(cfg.Size))
	if err != nil {
		return err
	}
	if closer, ok := rast.(io.Closer); ok {
		defer closer.Close()
	}
	c.Logger.Debug("font loaded", "path", fontPath, "size", cfg.Size, "rasterizer", cfg.Rasterizer)

	atlas, err := glyphatlas.NewBuilder(rast, cfg.Options()...).Build(cmd.Context(), runes)
	var missing *glyphatlas.MissingGlyphsError
	switch {
	case errors.As(err, &missing):
		printWarning(out, "%d glyphs did not fit in %dx%d", len(missing.Runes), missing.CanvasWidth, missing.CanvasHeight)
	case err != nil:
		return err
	}
	prog.done(fmt.Sprintf("Baked %d glyphs", len(atlas.Glyphs)))

	written, err := writeAtlas(atlas, cfg)
	if err != nil {
		return err
	}

	printSuccess(out, "%d glyphs in %dx%d (%.1f%% used)",
		len(atlas.Glyphs), atlas.Canvas.Width, atlas.Canvas.Height, atlas.Utilization()*100)
	for _, path := range written {
		printFile(out, path)
	}
	return nil
}

// writeAtlas writes the binary atlas and any requested PNG and sidecar,
// returning the paths written.
func writeAtlas(atlas *glyphatlas.Atlas, cfg glyphatlas.Config) ([]string, error) {
	paths := []string{cfg.Output}
	if err := writeFile(cfg.Output, func(w io.Writer) error {
		return format.Encode(w, atlas)
	}); err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output))
	pngPath := base + ".png"
	if cfg.PNG {
		if err := writeFile(pngPath, func(w io.Writer) error {
			return format.WritePNG(w, atlas.Canvas)
		}); err != nil {
			return nil, err
		}
		paths = append(paths, pngPath)
	}

	if cfg.Sidecar {
		image := ""
		if cfg.PNG {
			image = filepath.Base(pngPath)
		}
		sidecarPath := base + ".toml"
		if err := writeFile(sidecarPath, func(w io.Writer) error {
			return format.WriteSidecar(w, atlas, image)
		}); err != nil {
			return nil, err
		}
		paths = append(paths, sidecarPath)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
