package scanner

import (
	"errors"

	"github.com/dmitrymomot/qrscan/pkg/dataurl"
	"github.com/dmitrymomot/qrscan/pkg/fetcher"
	"github.com/dmitrymomot/qrscan/pkg/imagecodec"
)

var (
	// ErrMissingOrAmbiguousInput is returned when neither or both sources are supplied.
	ErrMissingOrAmbiguousInput = errors.New("provide exactly one of imageDataUrl or imageUrl")
	// ErrNoQRCodeDetected is returned when the image contains no readable QR code.
	ErrNoQRCodeDetected = errors.New("no QR code detected in image")

	// Errors raised by the pipeline stages, re-exported for convenience.
	ErrInvalidDataURL         = dataurl.ErrInvalidDataURL
	ErrUnsupportedScheme      = fetcher.ErrUnsupportedScheme
	ErrFetchFailed            = fetcher.ErrFetchFailed
	ErrUnsupportedImageFormat = imagecodec.ErrUnsupportedImageFormat
)

// Kind classifies a decode failure.
type Kind string

const (
	KindMissingOrAmbiguousInput Kind = "missing_or_ambiguous_input"
	KindInvalidDataURL          Kind = "invalid_data_url"
	KindUnsupportedScheme       Kind = "unsupported_scheme"
	KindFetchFailed             Kind = "fetch_failed"
	KindUnsupportedImageFormat  Kind = "unsupported_image_format"
	KindNoQRCodeDetected        Kind = "no_qr_code_detected"
	KindInternal                Kind = "internal"
)

// KindOf returns the Kind of err, or an empty Kind for a nil error.
// Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingOrAmbiguousInput):
		return KindMissingOrAmbiguousInput
	case errors.Is(err, ErrInvalidDataURL):
		return KindInvalidDataURL
	case errors.Is(err, ErrUnsupportedScheme):
		return KindUnsupportedScheme
	case errors.Is(err, ErrFetchFailed):
		return KindFetchFailed
	case errors.Is(err, ErrUnsupportedImageFormat):
		return KindUnsupportedImageFormat
	case errors.Is(err, ErrNoQRCodeDetected):
		return KindNoQRCodeDetected
	default:
		return KindInternal
	}
}
