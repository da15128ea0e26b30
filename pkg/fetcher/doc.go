// Package fetcher downloads image bytes from absolute http(s) URLs.
//
// Fetch validates the URL before touching the network: anything that is not an
// absolute http:// or https:// URL with a host fails with ErrUnsupportedScheme.
// It then issues exactly one GET request, follows redirects the way the
// underlying http.Client does, and reads the whole body into memory.
//
// The package sets no timeout of its own. Bound the call with the context, or
// inject a client that carries a Timeout via WithHTTPClient. Body size is
// unlimited unless WithMaxBodySize is supplied.
//
// # Usage
//
//	f := fetcher.New(fetcher.WithUserAgent("qrscan/1.0"))
//	data, err := f.Fetch(ctx, "https://example.com/qr.png")
//	if err != nil {
//		var se *fetcher.StatusError
//		if errors.As(err, &se) {
//			log.Printf("remote answered %d", se.StatusCode)
//		}
//		return err
//	}
//
// # Errors
//
//   - ErrUnsupportedScheme: the URL is not an absolute http(s) URL.
//   - ErrFetchFailed: transport failure or non-2xx response. Non-2xx responses
//     are reported as *StatusError, which matches ErrFetchFailed with errors.Is.
//   - ErrBodyTooLarge: joined with ErrFetchFailed when the optional size cap is hit.
package fetcher
