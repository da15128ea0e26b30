// Package handler provides type-safe JSON HTTP handlers.
//
// A HandlerFunc receives a bound request value and returns a Response. Wrap
// turns it into an http.HandlerFunc, running the configured binders first and
// sending any failure to the ErrorHandler:
//
//	type decodeRequest struct {
//		ImageDataURL string `json:"imageDataUrl"`
//		ImageURL     string `json:"imageUrl"`
//	}
//
//	func decode(ctx handler.Context, req decodeRequest) handler.Response {
//		res, err := svc.Decode(ctx, input)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(res)
//	}
//
//	r.Post("/decode", handler.Wrap(decode,
//		handler.WithBinders[handler.Context, decodeRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, decodeRequest](handler.NewErrorHandler(log)),
//	))
//
// # Response envelope
//
// Success bodies are {"data": ...}. Errors are {"error": {"code", "message"}}
// where HTTPError supplies the status and code. Errors that are not an
// HTTPError become a 500 with a generic message, so internal details never
// leak to clients.
//
// # Decorators
//
// Decorators wrap a HandlerFunc for cross-cutting concerns. They are applied in
// order, the first one being the outermost.
package handler
