package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrscan/pkg/binder"
)

type decodeRequest struct {
	ImageDataURL string `json:"imageDataUrl"`
	ImageURL     string `json:"imageUrl"`
}

func jsonRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes valid body", func(t *testing.T) {
		t.Parallel()
		var v decodeRequest
		err := binder.JSON()(jsonRequest(`{"imageUrl":"https://example.com/qr.png"}`, "application/json; charset=utf-8"), &v)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/qr.png", v.ImageURL)
		assert.Empty(t, v.ImageDataURL)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong media type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrFailedToParseJSON},
		{"malformed json", `{"imageUrl":`, "application/json", binder.ErrFailedToParseJSON},
		{"unknown field", `{"url":"x"}`, "application/json", binder.ErrFailedToParseJSON},
		{"trailing data", `{} {}`, "application/json", binder.ErrFailedToParseJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var v decodeRequest
			err := binder.JSON()(jsonRequest(tt.body, tt.contentType), &v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("rejects oversized body", func(t *testing.T) {
		t.Parallel()
		body := `{"imageDataUrl":"` + strings.Repeat("A", 100) + `"}`
		var v decodeRequest
		err := binder.JSON(binder.WithMaxBodySize(32))(jsonRequest(body, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrRequestTooLarge)
	})
}

func multipartRequest(t *testing.T, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/decode/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestFile(t *testing.T) {
	t.Parallel()

	t.Run("binds pointer field", func(t *testing.T) {
		t.Parallel()
		var v struct {
			Image *binder.FileUpload `file:"image"`
		}
		req := multipartRequest(t, "image", "../../etc/qr.png", "image/png", []byte("png-bytes"))

		require.NoError(t, binder.File()(req, &v))
		require.NotNil(t, v.Image)
		assert.Equal(t, "qr.png", v.Image.Filename)
		assert.Equal(t, "image/png", v.Image.ContentType)
		assert.Equal(t, []byte("png-bytes"), v.Image.Content)
	})

	t.Run("binds value field", func(t *testing.T) {
		t.Parallel()
		var v struct {
			Image binder.FileUpload `file:"image"`
		}
		req := multipartRequest(t, "image", "qr.gif", "image/gif", []byte("gif"))

		require.NoError(t, binder.File()(req, &v))
		assert.Equal(t, []byte("gif"), v.Image.Content)
	})

	t.Run("leaves field empty when part is absent", func(t *testing.T) {
		t.Parallel()
		var v struct {
			Image *binder.FileUpload `file:"image"`
		}
		req := multipartRequest(t, "other", "qr.png", "image/png", []byte("x"))

		require.NoError(t, binder.File()(req, &v))
		assert.Nil(t, v.Image)
	})

	t.Run("not applicable to json", func(t *testing.T) {
		t.Parallel()
		var v struct{}
		err := binder.File()(jsonRequest(`{}`, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("rejects unsupported field type", func(t *testing.T) {
		t.Parallel()
		var v struct {
			Image string `file:"image"`
		}
		req := multipartRequest(t, "image", "qr.png", "image/png", []byte("x"))
		assert.ErrorIs(t, binder.File()(req, &v), binder.ErrFailedToParseForm)
	})
}
