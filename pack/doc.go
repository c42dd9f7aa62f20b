// Package pack computes non-overlapping placements of rectangles inside a
// fixed-size canvas.
//
// It deals only in geometry: callers pass rectangle sizes and get back
// offsets, never pixels. The default strategy is a guillotine packer over a
// list of free regions; a shelf packer is available for glyph sets of
// uniform height.
//
// # Usage
//
//	reqs := []pack.Request{
//	    {ID: 'A', Width: 9, Height: 12},
//	    {ID: 'B', Width: 8, Height: 12},
//	}
//	results, err := pack.Pack(256, 256, reqs)
//	if err != nil {
//	    log.Fatal(err) // negative size or empty canvas
//	}
//	for _, r := range results {
//	    if !r.Placed {
//	        // grow the canvas or drop the glyph
//	    }
//	}
//
// # Fit
//
// By default a free region must be strictly larger than a rectangle on both
// axes to receive it, so a rectangle exactly the size of the canvas fails.
// Use WithFit(FitInclusive) to accept exact fits.
package pack
