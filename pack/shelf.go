package pack

// Shelf implements shelf-based rectangle packing.
// Simple and fast, it suits glyph sets of similar height.
//
// The algorithm organizes rectangles in horizontal "shelves".
// Each shelf has a fixed height (determined by the tallest item placed so far).
// New items are placed left-to-right on the current shelf until no space remains,
// then a new shelf is started below.
//
// Shelf is not safe for concurrent use.
type Shelf struct {
	width   int     // Total width of the canvas
	height  int     // Total height of the canvas
	shelves []shelf // List of shelves

	usedArea int
}

// shelf represents a horizontal strip in the canvas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// NewShelf creates a new shelf allocator for the given dimensions.
func NewShelf(width, height int) *Shelf {
	return &Shelf{
		width:   width,
		height:  height,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate finds space for a rectangle of the given size.
// Returns x, y position and true if space was found, or -1, -1, false if not.
//
// The algorithm:
// 1. Try to fit on an existing shelf with enough height
// 2. If no shelf fits, create a new shelf
// 3. If no space for new shelf, allocation fails
func (a *Shelf) Allocate(w, h int) (x, y int, ok bool) {
	if w == 0 || h == 0 {
		return 0, 0, true
	}
	if w > a.width {
		return -1, -1, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]

		if s.x+w > a.width {
			continue
		}

		if h > s.height {
			// Only the last shelf may grow, and only into unused space below it.
			if i == len(a.shelves)-1 && s.y+h <= a.height {
				s.height = h
				x, y = s.x, s.y
				s.x += w
				a.usedArea += w * h
				return x, y, true
			}
			continue
		}

		x, y = s.x, s.y
		s.x += w
		a.usedArea += w * h
		return x, y, true
	}

	newY := a.nextShelfY()
	if newY+h > a.height {
		return -1, -1, false
	}

	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: w})
	a.usedArea += w * h
	return 0, newY, true
}

// nextShelfY returns the top of the shelf that would be opened next.
func (a *Shelf) nextShelfY() int {
	if len(a.shelves) == 0 {
		return 0
	}
	last := a.shelves[len(a.shelves)-1]
	return last.y + last.height
}

// Reset clears all allocations, allowing the allocator to be reused.
func (a *Shelf) Reset() {
	a.shelves = a.shelves[:0]
	a.usedArea = 0
}

// Utilization returns the fraction of canvas area in use (0.0 to 1.0).
func (a *Shelf) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// UsedArea returns the total area used by allocations.
func (a *Shelf) UsedArea() int {
	return a.usedArea
}

// ShelfCount returns the number of shelves currently in use.
func (a *Shelf) ShelfCount() int {
	return len(a.shelves)
}

// RemainingHeight returns the vertical space remaining for new shelves.
func (a *Shelf) RemainingHeight() int {
	used := a.nextShelfY()
	if used >= a.height {
		return 0
	}
	return a.height - used
}
