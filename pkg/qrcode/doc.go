// Package qrcode locates a QR symbol in an RGBA pixel buffer and returns its text.
//
// Recognition is delegated to github.com/makiuchi-d/gozxing. The reader first
// binarizes the image with the hybrid (local threshold) binarizer and falls back
// to the global histogram binarizer, which handles some low-contrast images the
// hybrid pass misses. Both passes run with the TRY_HARDER hint.
//
// A buffer that simply contains no readable symbol is not an error: Decode
// reports found == false. Errors are returned only for malformed buffers.
//
// # Usage
//
//	r := qrcode.NewReader()
//	text, found, err := r.Decode(pixels)
//	switch {
//	case err != nil:
//		return err
//	case !found:
//		// nothing to read
//	default:
//		fmt.Println(text)
//	}
//
// # Multiple symbols
//
// When an image contains several QR codes only one is returned. Which one is
// decided by gozxing's scan order and is not part of the contract.
package qrcode
