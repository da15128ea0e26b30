package scanner_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	skipqrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrscan/pkg/dataurl"
	"github.com/dmitrymomot/qrscan/pkg/fetcher"
	"github.com/dmitrymomot/qrscan/pkg/imagecodec"
	"github.com/dmitrymomot/qrscan/pkg/scanner"
)

type fakeFetcher struct {
	calls atomic.Int32
	data  []byte
	err   error
}

func (f *fakeFetcher) Fetch(context.Context, string) ([]byte, error) {
	f.calls.Add(1)
	return f.data, f.err
}

type fakeImages struct {
	calls atomic.Int32
	err   error
}

func (f *fakeImages) Decode(data []byte) (imagecodec.PixelBuffer, error) {
	f.calls.Add(1)
	if f.err != nil {
		return imagecodec.PixelBuffer{}, f.err
	}
	return imagecodec.PixelBuffer{Width: 1, Height: 1, Pix: []byte{0, 0, 0, 255}}, nil
}

type fakeSymbols struct {
	text  string
	found bool
	err   error
}

func (f *fakeSymbols) Decode(imagecodec.PixelBuffer) (string, bool, error) {
	return f.text, f.found, f.err
}

type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return nil, errors.New("network must not be used")
}

func qrPNG(t *testing.T, content string) []byte {
	t.Helper()
	b, err := skipqrcode.Encode(content, skipqrcode.Medium, 256)
	require.NoError(t, err)
	return b
}

func blankPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// emptyGIF is a well-formed GIF with a 0x0 logical screen and a single 0x0 frame.
var emptyGIF = []byte{
	'G', 'I', 'F', '8', '9', 'a',
	0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, // screen 0x0, 2-entry global palette
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff,
	0x2c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x0 frame
	0x02, 0x01, 0x2c, 0x00, // lzw: clear, end
	0x3b,
}

func TestNewInput(t *testing.T) {
	t.Parallel()

	in, err := scanner.NewInput("data:image/png;base64,AAAA", "")
	require.NoError(t, err)
	assert.Equal(t, scanner.DataURLInput("data:image/png;base64,AAAA"), in)

	in, err = scanner.NewInput("", "https://example.com/qr.png")
	require.NoError(t, err)
	assert.Equal(t, scanner.ImageURLInput("https://example.com/qr.png"), in)

	_, err = scanner.NewInput("", "")
	assert.ErrorIs(t, err, scanner.ErrMissingOrAmbiguousInput)

	_, err = scanner.NewInput("data:image/png;base64,AAAA", "https://example.com/qr.png")
	assert.ErrorIs(t, err, scanner.ErrMissingOrAmbiguousInput)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes a real data url", func(t *testing.T) {
		t.Parallel()
		s := scanner.New()
		res, err := s.Decode(context.Background(), scanner.DataURLInput(dataurl.Encode("image/png", qrPNG(t, "hello from a data url"))))
		require.NoError(t, err)
		assert.Equal(t, "hello from a data url", res.Text)
	})

	t.Run("image url path matches data url path", func(t *testing.T) {
		t.Parallel()
		img := qrPNG(t, "same bytes, same text")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(img)
		}))
		t.Cleanup(srv.Close)

		s := scanner.New()
		fromURL, err := s.Decode(context.Background(), scanner.ImageURLInput(srv.URL+"/qr.png"))
		require.NoError(t, err)
		fromData, err := s.Decode(context.Background(), scanner.DataURLInput(dataurl.Encode("image/png", img)))
		require.NoError(t, err)

		assert.Equal(t, fromData, fromURL)
		assert.Equal(t, "same bytes, same text", fromURL.Text)
	})

	t.Run("blank image has no qr code", func(t *testing.T) {
		t.Parallel()
		_, err := scanner.New().Decode(context.Background(), scanner.DataURLInput(dataurl.Encode("image/png", blankPNG(t))))
		assert.ErrorIs(t, err, scanner.ErrNoQRCodeDetected)
		assert.Equal(t, scanner.KindNoQRCodeDetected, scanner.KindOf(err))
	})

	t.Run("0x0 image has no qr code", func(t *testing.T) {
		t.Parallel()
		_, err := scanner.New().Decode(context.Background(), scanner.DataURLInput(dataurl.Encode("image/gif", emptyGIF)))
		assert.ErrorIs(t, err, scanner.ErrNoQRCodeDetected)
		assert.Equal(t, scanner.KindNoQRCodeDetected, scanner.KindOf(err))

		_, err = scanner.New().DecodeBytes(context.Background(), emptyGIF)
		assert.ErrorIs(t, err, scanner.ErrNoQRCodeDetected)
	})

	t.Run("ftp url fails without network", func(t *testing.T) {
		t.Parallel()
		rt := &countingTransport{}
		s := scanner.New(scanner.WithFetcher(fetcher.New(fetcher.WithHTTPClient(&http.Client{Transport: rt}))))

		_, err := s.Decode(context.Background(), scanner.ImageURLInput("ftp://example.com/qr.png"))
		assert.ErrorIs(t, err, scanner.ErrUnsupportedScheme)
		assert.Zero(t, rt.calls.Load())
	})

	t.Run("invalid data urls", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"hello", "data:image/png,AAAA", "data:;base64,AAAA", "data:image/png;base64,"} {
			_, err := scanner.New().Decode(context.Background(), scanner.DataURLInput(in))
			assert.ErrorIs(t, err, scanner.ErrInvalidDataURL, in)
		}
	})

	t.Run("non-image payload", func(t *testing.T) {
		t.Parallel()
		_, err := scanner.New().Decode(context.Background(), scanner.DataURLInput(dataurl.Encode("image/png", []byte("not an image"))))
		assert.ErrorIs(t, err, scanner.ErrUnsupportedImageFormat)
	})

	t.Run("missing input does no work", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{}
		imgs := &fakeImages{}
		s := scanner.New(scanner.WithFetcher(f), scanner.WithImageDecoder(imgs))

		for _, in := range []scanner.Input{nil, scanner.DataURLInput(""), scanner.ImageURLInput("")} {
			_, err := s.Decode(context.Background(), in)
			assert.ErrorIs(t, err, scanner.ErrMissingOrAmbiguousInput)
		}
		assert.Zero(t, f.calls.Load())
		assert.Zero(t, imgs.calls.Load())
	})

	t.Run("fetch errors propagate unchanged", func(t *testing.T) {
		t.Parallel()
		fetchErr := &fetcher.StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}
		imgs := &fakeImages{}
		s := scanner.New(scanner.WithFetcher(&fakeFetcher{err: fetchErr}), scanner.WithImageDecoder(imgs))

		_, err := s.Decode(context.Background(), scanner.ImageURLInput("https://example.com/qr.png"))
		assert.Same(t, fetchErr, err)
		assert.ErrorIs(t, err, scanner.ErrFetchFailed)
		assert.Zero(t, imgs.calls.Load())
	})

	t.Run("symbol decoder errors propagate", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		s := scanner.New(
			scanner.WithFetcher(&fakeFetcher{data: []byte("x")}),
			scanner.WithImageDecoder(&fakeImages{}),
			scanner.WithSymbolDecoder(&fakeSymbols{err: boom}),
		)

		_, err := s.Decode(context.Background(), scanner.ImageURLInput("https://example.com/qr.png"))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, scanner.KindInternal, scanner.KindOf(err))
	})

	t.Run("found symbol is returned", func(t *testing.T) {
		t.Parallel()
		s := scanner.New(
			scanner.WithFetcher(&fakeFetcher{data: []byte("x")}),
			scanner.WithImageDecoder(&fakeImages{}),
			scanner.WithSymbolDecoder(&fakeSymbols{text: "fake", found: true}),
		)

		res, err := s.Decode(context.Background(), scanner.ImageURLInput("https://example.com/qr.png"))
		require.NoError(t, err)
		assert.Equal(t, scanner.Result{Text: "fake"}, res)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		s := scanner.New()
		inputs := make([]scanner.Input, 8)
		for i := range inputs {
			inputs[i] = scanner.DataURLInput(dataurl.Encode("image/png", qrPNG(t, fmt.Sprintf("worker-%d", i))))
		}

		var wg sync.WaitGroup
		for i, in := range inputs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				want := fmt.Sprintf("worker-%d", i)
				res, err := s.Decode(context.Background(), in)
				assert.NoError(t, err)
				assert.Equal(t, want, res.Text)
			}()
		}
		wg.Wait()
	})
}

func TestDecodeBytes(t *testing.T) {
	t.Parallel()

	s := scanner.New()

	res, err := s.DecodeBytes(context.Background(), qrPNG(t, "raw bytes"))
	require.NoError(t, err)
	assert.Equal(t, "raw bytes", res.Text)

	_, err = s.DecodeBytes(context.Background(), blankPNG(t))
	assert.ErrorIs(t, err, scanner.ErrNoQRCodeDetected)

	_, err = s.DecodeBytes(context.Background(), nil)
	assert.ErrorIs(t, err, scanner.ErrUnsupportedImageFormat)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want scanner.Kind
	}{
		{nil, ""},
		{scanner.ErrMissingOrAmbiguousInput, scanner.KindMissingOrAmbiguousInput},
		{errors.Join(scanner.ErrInvalidDataURL, errors.New("illegal base64")), scanner.KindInvalidDataURL},
		{fmt.Errorf("%w: got scheme %q", scanner.ErrUnsupportedScheme, "ftp"), scanner.KindUnsupportedScheme},
		{&fetcher.StatusError{StatusCode: 500, Status: "500 Internal Server Error"}, scanner.KindFetchFailed},
		{errors.Join(scanner.ErrUnsupportedImageFormat, errors.New("unknown format")), scanner.KindUnsupportedImageFormat},
		{scanner.ErrNoQRCodeDetected, scanner.KindNoQRCodeDetected},
		{errors.New("something else"), scanner.KindInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scanner.KindOf(tt.err), fmt.Sprint(tt.err))
	}
}
