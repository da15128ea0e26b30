package dataurl

import (
	"encoding/base64"
	"errors"
	"regexp"
)

var dataURLPattern = regexp.MustCompile(`(?i)^data:([^;]+);base64,(.+)$`)

// DataURL is the decoded content of a data URL.
type DataURL struct {
	MIMEType string
	Data     []byte
}

// Parse decodes a data:<mime>;base64,<payload> string.
// The declared MIME type is returned as written; it is informational only.
func Parse(s string) (*DataURL, error) {
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, ErrInvalidDataURL
	}

	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, errors.Join(ErrInvalidDataURL, err)
	}

	return &DataURL{MIMEType: m[1], Data: data}, nil
}

// Encode builds a base64 data URL for the given MIME type and payload.
func Encode(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
