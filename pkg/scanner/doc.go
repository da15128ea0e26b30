// Package scanner decodes QR codes from images supplied as base64 data URLs or
// remote http(s) URLs.
//
// The Scanner is the orchestration layer of the pipeline:
//
//	Input ─┬─ DataURLInput  ─▶ dataurl.Parse ─┐
//	       └─ ImageURLInput ─▶ Fetcher.Fetch ─┴─▶ ImageDecoder ─▶ SymbolDecoder ─▶ Result
//
// Input is a sealed sum type: only DataURLInput and ImageURLInput implement it,
// so a value always carries exactly one source. NewInput builds one from the two
// optional fields used on the wire and rejects the both/neither cases.
//
// Every step fails fast. Errors from the parser, fetcher and image codec are
// returned unchanged so callers can match them with errors.Is; KindOf maps any
// returned error onto a stable Kind for transport adapters.
//
// # Usage
//
//	s := scanner.New(scanner.WithLogger(log))
//
//	in, err := scanner.NewInput(req.ImageDataURL, req.ImageURL)
//	if err != nil {
//		return err // ErrMissingOrAmbiguousInput
//	}
//	res, err := s.Decode(ctx, in)
//	if err != nil {
//		switch scanner.KindOf(err) {
//		case scanner.KindNoQRCodeDetected:
//			// image had no readable code
//		}
//		return err
//	}
//	fmt.Println(res.Text)
//
// # Collaborators
//
// Fetcher, ImageDecoder and SymbolDecoder are narrow interfaces. Defaults are
// fetcher.New(), imagecodec.NewDecoder() and qrcode.NewReader(); replace them
// with WithFetcher, WithImageDecoder and WithSymbolDecoder, e.g. with fakes in tests.
//
// A Scanner keeps no per-call state and is safe for concurrent use.
package scanner
