package glyphatlas

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/glyphatlas/pack"
)

// Config is the file form of a bake job. Zero canvas sides mean the
// canvas is sized from the glyph area.
type Config struct {
	// Size is the glyph pixel size (pixels per em).
	Size int `toml:"size"`

	// Padding between glyphs to prevent bleeding.
	// Default: 1
	Padding int `toml:"padding"`

	CanvasWidth  int `toml:"canvas_width"`
	CanvasHeight int `toml:"canvas_height"`

	// Grow retries with larger canvases up to MaxCanvas.
	// Default: true, 4096
	Grow      bool `toml:"grow"`
	MaxCanvas int  `toml:"max_canvas"`

	// Fit is "strict" or "inclusive".
	Fit string `toml:"fit"`

	// Strategy is "guillotine" or "shelf".
	Strategy string `toml:"strategy"`

	// Workers rasterizing glyphs; 0 uses GOMAXPROCS.
	Workers int `toml:"workers"`

	// Runes is a range list such as "0-127,0x400-0x4FF".
	Runes string `toml:"runes"`

	// Rasterizer is "opentype" or "outline".
	Rasterizer string `toml:"rasterizer"`

	// Output is the binary atlas path. PNG and Sidecar add an image and a
	// TOML metadata file next to it.
	Output  string `toml:"output"`
	PNG     bool   `toml:"png"`
	Sidecar bool   `toml:"sidecar"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Size:       12,
		Padding:    1,
		Grow:       true,
		MaxCanvas:  4096,
		Fit:        pack.FitStrict.String(),
		Strategy:   pack.StrategyGuillotine.String(),
		Workers:    0,
		Runes:      "0-127",
		Rasterizer: "opentype",
		Output:     "atlas.bin",
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("glyphatlas: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return &ConfigError{Field: "Size", Reason: "must be positive"}
	}
	if c.Size > 1024 {
		return &ConfigError{Field: "Size", Reason: "must be at most 1024"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.CanvasWidth < 0 || c.CanvasHeight < 0 {
		return &ConfigError{Field: "CanvasWidth", Reason: "canvas sides must be non-negative"}
	}
	if (c.CanvasWidth == 0) != (c.CanvasHeight == 0) {
		return &ConfigError{Field: "CanvasHeight", Reason: "set both canvas sides or neither"}
	}
	if c.MaxCanvas < 1 {
		return &ConfigError{Field: "MaxCanvas", Reason: "must be positive"}
	}
	if c.MaxCanvas > 65536 {
		return &ConfigError{Field: "MaxCanvas", Reason: "must be at most 65536"}
	}
	if _, err := ParseFit(c.Fit); err != nil {
		return &ConfigError{Field: "Fit", Reason: err.Error()}
	}
	if _, err := ParseStrategy(c.Strategy); err != nil {
		return &ConfigError{Field: "Strategy", Reason: err.Error()}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must be non-negative"}
	}
	if _, err := ParseRanges(c.Runes); err != nil {
		return &ConfigError{Field: "Runes", Reason: err.Error()}
	}
	switch c.Rasterizer {
	case "opentype", "outline":
	default:
		return &ConfigError{Field: "Rasterizer", Reason: `must be "opentype" or "outline"`}
	}
	if c.Output == "" {
		return &ConfigError{Field: "Output", Reason: "must not be empty"}
	}
	return nil
}

// Options converts the configuration into builder options.
// Call Validate first; unknown names fall back to defaults.
func (c *Config) Options() []Option {
	fit, _ := ParseFit(c.Fit)
	strategy, _ := ParseStrategy(c.Strategy)

	opts := []Option{
		WithPadding(c.Padding),
		WithCanvasSize(c.CanvasWidth, c.CanvasHeight),
		WithFit(fit),
		WithStrategy(strategy),
		WithWorkers(c.Workers),
	}
	if c.Grow {
		opts = append(opts, WithGrow(c.MaxCanvas))
	}
	return opts
}

// ParseFit parses "strict" or "inclusive".
func ParseFit(s string) (pack.Fit, error) {
	switch strings.ToLower(s) {
	case "", "strict":
		return pack.FitStrict, nil
	case "inclusive":
		return pack.FitInclusive, nil
	default:
		return pack.FitStrict, fmt.Errorf("unknown fit %q", s)
	}
}

// ParseStrategy parses "guillotine" or "shelf".
func ParseStrategy(s string) (pack.Strategy, error) {
	switch strings.ToLower(s) {
	case "", "guillotine":
		return pack.StrategyGuillotine, nil
	case "shelf":
		return pack.StrategyShelf, nil
	default:
		return pack.StrategyGuillotine, fmt.Errorf("unknown strategy %q", s)
	}
}

// ParseRanges parses a comma-separated list of code points and inclusive
// ranges, such as "32-126,0xA0-0xFF,0x20AC". Numbers accept Go integer
// syntax (decimal, 0x, 0o, 0b) and "U+XXXX".
func ParseRanges(s string) ([]rune, error) {
	var out []rune
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi := part, part
		if i := strings.Index(part, "-"); i > 0 {
			lo, hi = strings.TrimSpace(part[:i]), strings.TrimSpace(part[i+1:])
		}

		from, err := parseCodePoint(lo)
		if err != nil {
			return nil, err
		}
		to, err := parseCodePoint(hi)
		if err != nil {
			return nil, err
		}
		if to < from {
			return nil, fmt.Errorf("range %q is reversed", part)
		}
		for r := from; r <= to; r++ {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no code points in %q", s)
	}
	return out, nil
}

func parseCodePoint(s string) (rune, error) {
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		s = "0x" + rest
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad code point %q", s)
	}
	if n < 0 || n > 0x10FFFF {
		return 0, fmt.Errorf("code point %q out of range", s)
	}
	return rune(n), nil
}
