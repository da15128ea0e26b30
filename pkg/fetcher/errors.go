package fetcher

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedScheme is returned for URLs that are not absolute http(s) URLs.
	ErrUnsupportedScheme = errors.New("only http(s) URLs are supported for imageUrl")
	// ErrFetchFailed is returned when the image could not be downloaded.
	ErrFetchFailed = errors.New("failed to fetch image")
	// ErrBodyTooLarge is returned when the response exceeds the configured size cap.
	ErrBodyTooLarge = errors.New("response body exceeds maximum allowed size")
)

// StatusError carries the status of a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFetchFailed, e.Status)
}

// Is makes StatusError match ErrFetchFailed.
func (e *StatusError) Is(target error) bool {
	return target == ErrFetchFailed
}
