package pack

// Fit selects the comparison used to decide whether a free region can hold
// a rectangle.
type Fit uint8

const (
	// FitStrict requires a free region to be strictly larger than the
	// rectangle on both axes. A rectangle exactly the size of a region is
	// never placed there. This is the default and matches existing atlases.
	FitStrict Fit = iota

	// FitInclusive accepts regions that are at least as large as the
	// rectangle on both axes.
	FitInclusive
)

// String returns the config name of the fit mode.
func (f Fit) String() string {
	switch f {
	case FitStrict:
		return "strict"
	case FitInclusive:
		return "inclusive"
	default:
		return "unknown"
	}
}

// Region is a free rectangle of canvas space.
type Region struct {
	X, Y, W, H int
}

// Area returns W*H.
func (r Region) Area() int {
	return r.W * r.H
}

// holds reports whether a w×h rectangle may be placed in r.
func (r Region) holds(w, h int, fit Fit) bool {
	if fit == FitInclusive {
		return r.W >= w && r.H >= h
	}
	return r.W > w && r.H > h
}

// Guillotine implements guillotine-split rectangle packing over a list of
// free regions.
//
// Each allocation takes the free region found last when scanning the list
// from its tail, places the rectangle in its top-left corner and cuts the
// remainder into two regions with a single straight cut. The larger part
// is appended first and the smaller part last, so the next scan sees the
// smaller part first.
//
// Guillotine is not safe for concurrent use.
type Guillotine struct {
	width    int
	height   int
	fit      Fit
	free     []Region
	usedArea int
}

// NewGuillotine creates an allocator with a single free region covering
// the whole width×height canvas.
func NewGuillotine(width, height int, fit Fit) *Guillotine {
	g := &Guillotine{
		width:  width,
		height: height,
		fit:    fit,
		free:   make([]Region, 0, 16),
	}
	g.Reset()
	return g
}

// Allocate finds space for a w×h rectangle.
// Returns x, y position and true if space was found, or -1, -1, false if
// not, in which case the free list is unchanged.
//
// Zero-area rectangles are placed at (0, 0) and consume no space.
func (g *Guillotine) Allocate(w, h int) (x, y int, ok bool) {
	if w == 0 || h == 0 {
		return 0, 0, true
	}

	i := g.find(w, h)
	if i < 0 {
		return -1, -1, false
	}

	r := g.free[i]
	remW := r.W - w
	remH := r.H - h

	var smaller, larger Region
	if remH > remW {
		smaller = Region{X: r.X + w, Y: r.Y, W: remW, H: h}
		larger = Region{X: r.X, Y: r.Y + h, W: r.W, H: remH}
	} else {
		smaller = Region{X: r.X, Y: r.Y + h, W: w, H: remH}
		larger = Region{X: r.X + w, Y: r.Y, W: remW, H: r.H}
	}

	// Swap-remove, then append: the scan order of the remaining regions is
	// part of the layout and must not change between runs.
	last := len(g.free) - 1
	g.free[i] = g.free[last]
	g.free = g.free[:last]
	g.free = append(g.free, larger, smaller)

	g.usedArea += w * h
	return r.X, r.Y, true
}

// find returns the index of the last free region that holds w×h, or -1.
func (g *Guillotine) find(w, h int) int {
	for i := len(g.free) - 1; i >= 0; i-- {
		if g.free[i].holds(w, h, g.fit) {
			return i
		}
	}
	return -1
}

// CanFit reports whether Allocate(w, h) would succeed right now.
func (g *Guillotine) CanFit(w, h int) bool {
	if w == 0 || h == 0 {
		return true
	}
	return g.find(w, h) >= 0
}

// FreeRegions returns a copy of the free list in scan order (head first).
func (g *Guillotine) FreeRegions() []Region {
	out := make([]Region, len(g.free))
	copy(out, g.free)
	return out
}

// FreeArea returns the summed area of all free regions.
func (g *Guillotine) FreeArea() int {
	total := 0
	for _, r := range g.free {
		total += r.Area()
	}
	return total
}

// Reset clears all allocations, allowing the allocator to be reused.
func (g *Guillotine) Reset() {
	g.free = append(g.free[:0], Region{W: g.width, H: g.height})
	g.usedArea = 0
}

// UsedArea returns the total area of successful allocations.
func (g *Guillotine) UsedArea() int {
	return g.usedArea
}

// TotalArea returns the area of the canvas.
func (g *Guillotine) TotalArea() int {
	return g.width * g.height
}

// Utilization returns the fraction of canvas area in use (0.0 to 1.0).
func (g *Guillotine) Utilization() float64 {
	if g.width <= 0 || g.height <= 0 {
		return 0
	}
	return float64(g.usedArea) / float64(g.TotalArea())
}
