package imagecodec

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder decodes images into PixelBuffer values. The zero value is ready to use.
type Decoder struct{}

// NewDecoder returns a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode implements the image decoding step of the scan pipeline.
func (d *Decoder) Decode(data []byte) (PixelBuffer, error) {
	return Decode(data)
}

// Decode reads an encoded image and converts it to RGBA.
// Codec errors are joined with ErrUnsupportedImageFormat.
func Decode(data []byte) (PixelBuffer, error) {
	if len(data) == 0 {
		return PixelBuffer{}, errors.Join(ErrUnsupportedImageFormat, errors.New("empty image data"))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return PixelBuffer{}, errors.Join(ErrUnsupportedImageFormat, err)
	}

	return FromImage(img), nil
}

// FromImage converts any image.Image to a PixelBuffer with origin (0,0).
// An *image.NRGBA that is already tightly packed is copied without conversion.
func FromImage(img image.Image) PixelBuffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if src, ok := img.(*image.NRGBA); ok && src.Stride == w*BytesPerPixel && src.Rect.Min == (image.Point{}) {
		pix := make([]byte, w*h*BytesPerPixel)
		copy(pix, src.Pix)
		return PixelBuffer{Width: w, Height: h, Pix: pix}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return PixelBuffer{Width: w, Height: h, Pix: dst.Pix}
}
