package logger

import (
	"log/slog"
	"strconv"
)

// Group builds a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorKind is the stable classification of a decode failure.
func ErrorKind(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("error_kind", kind)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Source names where image bytes came from: "data_url", "image_url" or "upload".
func Source(src string) slog.Attr {
	return slog.String("source", src)
}

func MIMEType(mime string) slog.Attr {
	if mime == "" {
		return slog.Attr{}
	}
	return slog.String("mime_type", mime)
}

// Size is a byte count.
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Tool(name string) slog.Attr {
	return slog.String("tool", name)
}
