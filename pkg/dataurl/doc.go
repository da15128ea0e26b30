// Package dataurl parses and builds base64 data URLs of the form
//
//	data:<mime-type>;base64,<payload>
//
// Only the base64 flavour is accepted. The "data:" and "base64" tokens are
// matched case-insensitively, the MIME type must not contain a semicolon and the
// payload must be non-empty. The payload is decoded with the standard base64
// alphabet and strict padding, so a malformed payload is reported instead of
// being silently truncated.
//
// # Usage
//
//	u, err := dataurl.Parse("data:image/png;base64,iVBORw0KGgo...")
//	if err != nil {
//		if errors.Is(err, dataurl.ErrInvalidDataURL) {
//			// reject input
//		}
//		return err
//	}
//	fmt.Println(u.MIMEType, len(u.Data))
//
// Build a data URL from raw bytes:
//
//	s := dataurl.Encode("image/png", pngBytes)
package dataurl
