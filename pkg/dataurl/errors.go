package dataurl

import "errors"

// ErrInvalidDataURL is returned when a string is not a base64 data URL
// or its payload cannot be decoded.
var ErrInvalidDataURL = errors.New("invalid data URL, expected format: data:<mime>;base64,<data>")
