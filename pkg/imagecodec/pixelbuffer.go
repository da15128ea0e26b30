package imagecodec

import (
	"fmt"
	"image"
)

// BytesPerPixel is the size of one RGBA pixel in PixelBuffer.Pix.
const BytesPerPixel = 4

// PixelBuffer holds non-premultiplied RGBA pixels, row-major, without padding.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// Validate reports whether len(Pix) == Width*Height*4.
func (b PixelBuffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: non-positive dimensions %dx%d", ErrInvalidPixelBuffer, b.Width, b.Height)
	}
	if want := b.Width * b.Height * BytesPerPixel; len(b.Pix) != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrInvalidPixelBuffer, len(b.Pix), want, b.Width, b.Height)
	}
	return nil
}

// Empty reports whether the buffer is a well-formed image with no pixels,
// such as a decoded 0x0 GIF.
func (b PixelBuffer) Empty() bool {
	return b.Width >= 0 && b.Height >= 0 && b.Width*b.Height == 0 && len(b.Pix) == 0
}

// Image returns the buffer as *image.NRGBA sharing the same backing slice.
func (b PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
