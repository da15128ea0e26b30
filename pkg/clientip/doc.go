// Package clientip resolves the caller's IP address for request logging.
//
// Proxy headers are consulted in order: X-Forwarded-For (first valid entry),
// X-Real-IP, then RemoteAddr. Every candidate is parsed with net.ParseIP, so
// malformed values are skipped instead of ending up in logs.
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// The resolved address is informational only. Do not use it for access control
// unless the service runs behind a proxy that overwrites these headers.
package clientip
