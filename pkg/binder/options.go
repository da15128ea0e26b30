package binder

import "strings"

// DefaultMaxBodySize caps request bodies read by the binders (16MB).
// Inline data URLs inflate the image by a third, so the limit is generous.
const DefaultMaxBodySize int64 = 16 << 20

type options struct {
	maxBodySize int64
}

// Option configures a binder.
type Option func(*options)

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
