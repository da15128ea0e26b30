// Package decode is the HTTP API over the QR scanner.
//
// Routes mounted by Router:
//
//	POST /decode         {"imageDataUrl": "..."} or {"imageUrl": "..."}
//	POST /decode/upload  multipart/form-data, file in the "image" field
//	GET  /health         liveness probe
//
// Success responses are {"data": {"text": "..."}}. Failures are
// {"error": {"code": "<kind>", "message": "..."}} where code is the scanner
// error kind. Invalid input answers 400, images without a readable QR code or
// in an unknown format answer 422, and upstream fetch failures answer 502.
package decode
