package glyphatlas

import "github.com/gogpu/glyphatlas/pack"

// Option configures a Builder.
//
// Example:
//
//	b := glyphatlas.NewBuilder(rast,
//	    glyphatlas.WithPadding(1),
//	    glyphatlas.WithGrow(4096),
//	)
type Option func(*builderOptions)

// builderOptions holds optional configuration for Builder creation.
type builderOptions struct {
	width, height int // fixed canvas size; zero means SizeForArea
	padding       int
	grow          bool
	maxCanvas     int
	fit           pack.Fit
	strategy      pack.Strategy
	workers       int
}

// DefaultMaxCanvas is the largest canvas side the builder picks on its own.
const DefaultMaxCanvas = 8192

func defaultOptions() builderOptions {
	return builderOptions{
		maxCanvas: DefaultMaxCanvas,
		fit:       pack.FitStrict,
		strategy:  pack.StrategyGuillotine,
		workers:   1,
	}
}

// WithCanvasSize fixes the canvas size instead of deriving it from the
// glyph area. Non-positive values restore the default.
func WithCanvasSize(width, height int) Option {
	return func(o *builderOptions) {
		if width <= 0 || height <= 0 {
			o.width, o.height = 0, 0
			return
		}
		o.width, o.height = width, height
	}
}

// WithPadding reserves n empty pixels to the right of and below every glyph.
func WithPadding(n int) Option {
	return func(o *builderOptions) {
		o.padding = max(n, 0)
	}
}

// WithGrow makes Build retry with a larger canvas while glyphs fail to
// pack, doubling the smaller side each time, up to maxSide on either side.
// Glyphs that still fail are reported through MissingGlyphsError.
func WithGrow(maxSide int) Option {
	return func(o *builderOptions) {
		o.grow = true
		if maxSide > 0 {
			o.maxCanvas = maxSide
		}
	}
}

// WithFit sets the packer fit mode.
func WithFit(f pack.Fit) Option {
	return func(o *builderOptions) {
		o.fit = f
	}
}

// WithStrategy sets the packing strategy.
func WithStrategy(s pack.Strategy) Option {
	return func(o *builderOptions) {
		o.strategy = s
	}
}

// WithWorkers sets how many goroutines rasterize glyphs. It only takes
// effect when the rasterizer implements Cloner. Zero or less uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *builderOptions) {
		o.workers = n
	}
}
