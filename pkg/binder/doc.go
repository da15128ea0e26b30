// Package binder decodes HTTP request bodies into typed request structs for
// handler.Wrap.
//
// JSON binds application/json bodies with strict decoding: unknown fields and
// trailing data are errors. File binds multipart/form-data uploads into fields
// tagged `file:"name"`. Both binders cap the body at DefaultMaxBodySize unless
// WithMaxBodySize says otherwise.
//
// Errors wrap the package sentinels, so callers can map them with errors.Is:
//
//	if errors.Is(err, binder.ErrRequestTooLarge) {
//		// 413
//	}
package binder
