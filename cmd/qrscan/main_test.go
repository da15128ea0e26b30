package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	skipqrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/qrscan/pkg/scanner"
)

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]OutputFormat{
		"text": OutputText,
		"json": OutputJSON,
		"yaml": OutputYAML,
		"yml":  OutputYAML,
	} {
		got, err := ParseOutputFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseOutputFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownOutputFormat)
}

func TestWriteResult(t *testing.T) {
	t.Parallel()

	res := scanner.Result{Text: "https://example.com"}
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{OutputText, "https://example.com\n"},
		{OutputJSON, "{\n  \"text\": \"https://example.com\"\n}\n"},
		{OutputYAML, "text: https://example.com\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, WriteResult(&buf, tt.format, res))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDecodeInput(t *testing.T) {
	t.Parallel()

	t.Run("file becomes a data url", func(t *testing.T) {
		t.Parallel()
		png, err := skipqrcode.Encode("from disk", skipqrcode.Medium, 256)
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "qr.png")
		require.NoError(t, os.WriteFile(path, png, 0o600))

		in, err := decodeInput("", "", path)
		require.NoError(t, err)
		require.IsType(t, scanner.DataURLInput(""), in)
		assert.Contains(t, string(in.(scanner.DataURLInput)), "data:image/png;base64,")

		res, err := scanner.New().Decode(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "from disk", res.Text)
	})

	t.Run("non-image file is an unsupported image format", func(t *testing.T) {
		t.Parallel()
		for name, content := range map[string]string{
			"notes.txt": "just some notes\n",
			"logo.svg":  `<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`,
		} {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			in, err := decodeInput("", "", path)
			require.NoError(t, err, name)
			assert.NotContains(t, string(in.(scanner.DataURLInput)), "charset", name)

			_, err = scanner.New().Decode(context.Background(), in)
			assert.ErrorIs(t, err, scanner.ErrUnsupportedImageFormat, name)
			assert.Equal(t, scanner.KindUnsupportedImageFormat, scanner.KindOf(err), name)

			var exit cli.ExitCoder
			require.ErrorAs(t, exitError(err), &exit, name)
			assert.Equal(t, 1, exit.ExitCode(), name)
		}
	})

	t.Run("file plus another source is ambiguous", func(t *testing.T) {
		t.Parallel()
		_, err := decodeInput("", "https://example.com/qr.png", "qr.png")
		assert.ErrorIs(t, err, scanner.ErrMissingOrAmbiguousInput)
	})

	t.Run("no source", func(t *testing.T) {
		t.Parallel()
		_, err := decodeInput("", "", "")
		assert.ErrorIs(t, err, scanner.ErrMissingOrAmbiguousInput)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := decodeInput("", "", filepath.Join(t.TempDir(), "nope.png"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDecodeCommand(t *testing.T) {
	png, err := skipqrcode.Encode("cli output", skipqrcode.Medium, 256)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "qr.png")
	require.NoError(t, os.WriteFile(path, png, 0o600))

	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ExitErrHandler = func(*cli.Context, error) {}

	err = app.RunContext(context.Background(), []string{"qrscan", "decode", "--file", path, "--output", "json"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"cli output"}`, out.String())
}
