package qrcode

import (
	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"

	"github.com/dmitrymomot/qrscan/pkg/imagecodec"
)

// Reader decodes QR symbols. It holds no per-call state and is safe for concurrent use.
type Reader struct {
	hints map[gozxing.DecodeHintType]any
}

// Option configures the Reader.
type Option func(*Reader)

// WithPureBarcode tells the recognizer the image is a clean, unrotated symbol
// with a quiet zone, as produced by generators. It skips detection and is faster,
// but fails on photos.
func WithPureBarcode() Option {
	return func(r *Reader) { r.hints[gozxing.DecodeHintType_PURE_BARCODE] = true }
}

// WithCharacterSet overrides the charset used for byte-mode segments that do not
// carry an ECI marker, e.g. "Shift_JIS".
func WithCharacterSet(charset string) Option {
	return func(r *Reader) {
		if charset != "" {
			r.hints[gozxing.DecodeHintType_CHARACTER_SET] = charset
		}
	}
}

// NewReader returns a Reader with TRY_HARDER enabled.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		hints: map[gozxing.DecodeHintType]any{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Decode scans pb for a single QR symbol.
// found is false when no symbol could be located or read, including for an
// image with no pixels.
func (r *Reader) Decode(pb imagecodec.PixelBuffer) (text string, found bool, err error) {
	if pb.Empty() {
		return "", false, nil
	}
	if err := pb.Validate(); err != nil {
		return "", false, err
	}

	src := gozxing.NewLuminanceSourceFromImage(pb.Image())

	binarizers := []gozxing.Binarizer{
		gozxing.NewHybridBinarizer(src),
		gozxing.NewGlobalHistgramBinarizer(src),
	}
	for _, b := range binarizers {
		bmp, err := gozxing.NewBinaryBitmap(b)
		if err != nil {
			continue
		}
		// gozxing only returns reader exceptions here (not found, checksum, format);
		// all of them mean there is nothing readable for this binarizer.
		res, err := zxqrcode.NewQRCodeReader().Decode(bmp, r.hints)
		if err != nil || res == nil {
			continue
		}
		return res.GetText(), true, nil
	}

	return "", false, nil
}
