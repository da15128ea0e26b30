package imagecodec

import "errors"

var (
	// ErrUnsupportedImageFormat is returned when no registered codec can read the bytes.
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
	// ErrInvalidPixelBuffer is returned when a buffer's length does not match its dimensions.
	ErrInvalidPixelBuffer = errors.New("invalid pixel buffer")
)
