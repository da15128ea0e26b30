// Package imagecodec turns encoded image bytes into a flat RGBA pixel buffer.
//
// Decoding goes through the image.Decode registry. PNG, JPEG and GIF come from
// the standard library; BMP, TIFF and WebP are registered from golang.org/x/image.
// Whatever the source colour model, the result is always non-premultiplied RGBA,
// 4 bytes per pixel, row-major, with no row padding.
//
// # Usage
//
//	pb, err := imagecodec.Decode(data)
//	if errors.Is(err, imagecodec.ErrUnsupportedImageFormat) {
//		// bytes are not an image we can read
//	}
//	fmt.Println(pb.Width, pb.Height, len(pb.Pix))
//
// The Decoder type wraps Decode so it can be passed where an interface is
// expected.
package imagecodec
