package glyphatlas

// fillFactor is the share of canvas area the packer is expected to fill.
// Guillotine packing of glyph sets lands around 80%.
const fillFactor = 0.8

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// SizeForArea returns the smallest power-of-two canvas, square or twice as
// wide as tall, whose area holds area pixels at the expected fill factor.
// Neither side exceeds maxSide when maxSide > 0.
func SizeForArea(area, maxSide int) (w, h int) {
	need := int(float64(area)/fillFactor + 0.5)
	w, h = 1, 1
	for w*h < need {
		switch {
		case w <= h && (maxSide <= 0 || w*2 <= maxSide):
			w *= 2
		case maxSide <= 0 || h*2 <= maxSide:
			h *= 2
		case w*2 <= maxSide:
			w *= 2
		default:
			return w, h
		}
	}
	return w, h
}

// growCanvas doubles the smaller side. ok is false when the result would
// exceed maxSide.
func growCanvas(w, h, maxSide int) (nw, nh int, ok bool) {
	nw, nh = w, h
	if w <= h {
		nw = w * 2
	} else {
		nh = h * 2
	}
	if maxSide > 0 && (nw > maxSide || nh > maxSide) {
		return w, h, false
	}
	return nw, nh, true
}
