package pack

// Request asks for a Width×Height rectangle. ID is opaque to the packer and
// is copied to the matching Result.
type Request struct {
	ID     int
	Width  int
	Height int
}

// Result is the outcome for one Request. When Placed is false the request
// failed: no free region could hold it at the time it was considered.
type Result struct {
	ID     int
	X, Y   int
	Placed bool
}

// Strategy selects the allocator used by Pack.
type Strategy uint8

const (
	// StrategyGuillotine packs with Guillotine. This is the default.
	StrategyGuillotine Strategy = iota

	// StrategyShelf packs with Shelf.
	StrategyShelf
)

// String returns the config name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyGuillotine:
		return "guillotine"
	case StrategyShelf:
		return "shelf"
	default:
		return "unknown"
	}
}

// Allocator places rectangles one at a time into a fixed canvas.
// Both Guillotine and Shelf implement it.
type Allocator interface {
	Allocate(w, h int) (x, y int, ok bool)
	Reset()
	Utilization() float64
}

// Option configures Pack.
type Option func(*options)

type options struct {
	fit      Fit
	strategy Strategy
}

// WithFit sets the fit comparison of the guillotine strategy.
// The shelf strategy always accepts exact fits.
func WithFit(f Fit) Option {
	return func(o *options) {
		o.fit = f
	}
}

// WithStrategy selects the packing strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// NewAllocator returns the allocator Pack would use for a canvas of the
// given size.
func NewAllocator(width, height int, opts ...Option) Allocator {
	o := options{fit: FitStrict, strategy: StrategyGuillotine}
	for _, opt := range opts {
		opt(&o)
	}
	if o.strategy == StrategyShelf {
		return NewShelf(width, height)
	}
	return NewGuillotine(width, height, o.fit)
}

// Pack places every request into a width×height canvas, in input order.
//
// The returned slice has one Result per request at the same index. A
// request that cannot be placed yields a Result with Placed == false and
// does not stop the run. Zero-area requests are always placed at (0, 0).
//
// Pack returns an error only for caller mistakes: a non-positive canvas
// (*InvalidCanvasError) or a negative request size (*InvalidRequestError).
// Pack holds no shared state and may be called concurrently.
func Pack(width, height int, reqs []Request, opts ...Option) ([]Result, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidCanvasError{Width: width, Height: height}
	}
	for i, r := range reqs {
		if r.Width < 0 || r.Height < 0 {
			return nil, &InvalidRequestError{Index: i, ID: r.ID, Width: r.Width, Height: r.Height}
		}
	}

	alloc := NewAllocator(width, height, opts...)
	results := make([]Result, len(reqs))
	for i, r := range reqs {
		x, y, ok := alloc.Allocate(r.Width, r.Height)
		if !ok {
			results[i] = Result{ID: r.ID}
			continue
		}
		results[i] = Result{ID: r.ID, X: x, Y: y, Placed: true}
	}
	return results, nil
}

// Placed returns the number of placed results.
func Placed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Placed {
			n++
		}
	}
	return n
}
