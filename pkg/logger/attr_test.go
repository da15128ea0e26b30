package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrscan/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, slog.String("error_kind", "fetch_failed"), logger.ErrorKind("fetch_failed"))
	assert.True(t, logger.ErrorKind("").Equal(slog.Attr{}))

	assert.Equal(t, slog.String("source", "data_url"), logger.Source("data_url"))
	assert.Equal(t, slog.String("mime_type", "image/png"), logger.MIMEType("image/png"))
	assert.True(t, logger.MIMEType("").Equal(slog.Attr{}))
	assert.Equal(t, slog.Int("size", 42), logger.Size(42))
	assert.Equal(t, slog.String("component", "scanner"), logger.Component("scanner"))
	assert.Equal(t, slog.String("tool", "decode_qrcode"), logger.Tool("decode_qrcode"))

	assert.Equal(t, "request_id", logger.RequestID("abc").Key)
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))

	d := logger.Duration(time.Second)
	assert.Equal(t, "duration", d.Key)
	assert.Equal(t, time.Second, d.Value.Any())
}
