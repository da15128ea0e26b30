package scanner

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrscan/pkg/dataurl"
	"github.com/dmitrymomot/qrscan/pkg/fetcher"
	"github.com/dmitrymomot/qrscan/pkg/imagecodec"
	"github.com/dmitrymomot/qrscan/pkg/logger"
	"github.com/dmitrymomot/qrscan/pkg/qrcode"
)

// Fetcher downloads the bytes behind an image URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// ImageDecoder turns encoded image bytes into RGBA pixels.
type ImageDecoder interface {
	Decode(data []byte) (imagecodec.PixelBuffer, error)
}

// SymbolDecoder finds a QR symbol in a pixel buffer.
// found is false when there is no readable symbol.
type SymbolDecoder interface {
	Decode(pb imagecodec.PixelBuffer) (text string, found bool, err error)
}

// Scanner decodes QR codes from data URLs and image URLs.
type Scanner struct {
	fetcher Fetcher
	images  ImageDecoder
	symbols SymbolDecoder
	log     *slog.Logger
}

// Option configures the Scanner.
type Option func(*Scanner)

// WithFetcher replaces the remote fetcher.
func WithFetcher(f Fetcher) Option {
	return func(s *Scanner) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithImageDecoder replaces the image decoder.
func WithImageDecoder(d ImageDecoder) Option {
	return func(s *Scanner) {
		if d != nil {
			s.images = d
		}
	}
}

// WithSymbolDecoder replaces the QR symbol decoder.
func WithSymbolDecoder(d SymbolDecoder) Option {
	return func(s *Scanner) {
		if d != nil {
			s.symbols = d
		}
	}
}

// WithLogger sets the logger. Decoding steps are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a Scanner wired to the default collaborators.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		fetcher: fetcher.New(),
		images:  imagecodec.NewDecoder(),
		symbols: qrcode.NewReader(),
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("scanner"))
	return s
}

// Decode resolves in to image bytes and returns the text of the QR code in it.
// Errors from each stage are returned unchanged.
func (s *Scanner) Decode(ctx context.Context, in Input) (Result, error) {
	start := time.Now()

	var (
		data []byte
		err  error
	)
	switch v := in.(type) {
	case DataURLInput:
		if v == "" {
			return Result{}, ErrMissingOrAmbiguousInput
		}
		var u *dataurl.DataURL
		if u, err = dataurl.Parse(string(v)); err == nil {
			data = u.Data
			s.log.DebugContext(ctx, "data url parsed",
				logger.Source("data_url"),
				logger.MIMEType(u.MIMEType),
				logger.Size(len(u.Data)),
			)
		}
	case ImageURLInput:
		if v == "" {
			return Result{}, ErrMissingOrAmbiguousInput
		}
		if data, err = s.fetcher.Fetch(ctx, string(v)); err == nil {
			s.log.DebugContext(ctx, "image fetched",
				logger.Source("image_url"),
				logger.Size(len(data)),
			)
		}
	default:
		return Result{}, ErrMissingOrAmbiguousInput
	}
	if err != nil {
		s.logFailure(ctx, err, start)
		return Result{}, err
	}

	res, err := s.decodeBytes(ctx, data)
	if err != nil {
		s.logFailure(ctx, err, start)
		return Result{}, err
	}

	s.log.DebugContext(ctx, "qr code decoded", logger.Duration(time.Since(start)))
	return res, nil
}

// DecodeBytes decodes a QR code from already loaded image bytes.
func (s *Scanner) DecodeBytes(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()
	res, err := s.decodeBytes(ctx, data)
	if err != nil {
		s.logFailure(ctx, err, start)
		return Result{}, err
	}
	return res, nil
}

func (s *Scanner) decodeBytes(ctx context.Context, data []byte) (Result, error) {
	pb, err := s.images.Decode(data)
	if err != nil {
		return Result{}, err
	}
	s.log.DebugContext(ctx, "image decoded",
		slog.Int("width", pb.Width),
		slog.Int("height", pb.Height),
	)

	text, found, err := s.symbols.Decode(pb)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, ErrNoQRCodeDetected
	}
	return Result{Text: text}, nil
}

func (s *Scanner) logFailure(ctx context.Context, err error, start time.Time) {
	s.log.DebugContext(ctx, "qr decode failed",
		logger.ErrorKind(string(KindOf(err))),
		logger.Error(err),
		logger.Duration(time.Since(start)),
	)
}
