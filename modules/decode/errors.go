package decode

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/qrscan/handler"
	"github.com/dmitrymomot/qrscan/pkg/scanner"
)

// ErrMissingImage is returned by the upload endpoint when the "image" part is absent or empty.
var ErrMissingImage = errors.New(`multipart field "image" is required`)

// toHTTPError maps a scanner failure to the HTTP status and error code sent
// to clients. Errors outside the taxonomy are returned unchanged and end up
// as a generic 500.
func toHTTPError(err error) error {
	kind := scanner.KindOf(err)

	var status int
	switch kind {
	case scanner.KindMissingOrAmbiguousInput, scanner.KindInvalidDataURL, scanner.KindUnsupportedScheme:
		status = http.StatusBadRequest
	case scanner.KindUnsupportedImageFormat, scanner.KindNoQRCodeDetected:
		status = http.StatusUnprocessableEntity
	case scanner.KindFetchFailed:
		status = http.StatusBadGateway
	default:
		return err
	}

	return handler.HTTPError{Code: status, Key: string(kind), Err: err}
}

// TooManyRequests renders the JSON envelope for rate limited requests.
func TooManyRequests() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
	})
}
