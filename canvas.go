package glyphatlas

import "image"

// Canvas is an 8-bit coverage buffer, row-major, one byte per pixel.
type Canvas struct {
	Width  int
	Height int
	Pix    []byte
}

// NewCanvas allocates a zeroed width×height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// Blit copies a w×h row-major bitmap to (x, y), overwriting what is there.
func (c *Canvas) Blit(x, y, w, h int, pix []byte) error {
	if len(pix) != w*h {
		return ErrBitmapSize
	}
	if x < 0 || y < 0 || x+w > c.Width || y+h > c.Height {
		return ErrOutOfBounds
	}
	for row := 0; row < h; row++ {
		dst := (y+row)*c.Width + x
		copy(c.Pix[dst:dst+w], pix[row*w:(row+1)*w])
	}
	return nil
}

// At returns the coverage at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) byte {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return 0
	}
	return c.Pix[y*c.Width+x]
}

// Image returns a grayscale view of the canvas. The pixels are shared.
func (c *Canvas) Image() *image.Gray {
	return &image.Gray{
		Pix:    c.Pix,
		Stride: c.Width,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}
