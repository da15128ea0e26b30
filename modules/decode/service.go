package decode

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/qrscan/handler"
	"github.com/dmitrymomot/qrscan/pkg/binder"
	"github.com/dmitrymomot/qrscan/pkg/logger"
	"github.com/dmitrymomot/qrscan/pkg/scanner"
)

// Decoder is the part of *scanner.Scanner the HTTP layer depends on.
type Decoder interface {
	Decode(ctx context.Context, in scanner.Input) (scanner.Result, error)
	DecodeBytes(ctx context.Context, data []byte) (scanner.Result, error)
}

// Service exposes QR decoding over HTTP.
type Service struct {
	decoder      Decoder
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	maxBodySize  int64
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithErrorHandler overrides the handler used for request binding failures.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithMaxBodySize caps JSON and multipart request bodies. Zero keeps binder.DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(s *Service) {
		s.maxBodySize = n
	}
}

func NewService(dec Decoder, opts ...Option) *Service {
	s := &Service{
		decoder: dec,
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("decode_api"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log)
	}
	return s
}

// Handle returns the routes of the decode API:
//
//	POST /        JSON {"imageDataUrl": "..."} or {"imageUrl": "..."}
//	POST /upload  multipart/form-data with the image in the "image" field
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(s.decode,
		handler.WithBinders[handler.Context, decodeRequest](binder.JSON(binder.WithMaxBodySize(s.maxBodySize))),
		handler.WithErrorHandler[handler.Context, decodeRequest](s.errorHandler),
	))
	r.Post("/upload", handler.Wrap(s.upload,
		handler.WithBinders[handler.Context, uploadRequest](binder.File(binder.WithMaxBodySize(s.maxBodySize))),
		handler.WithErrorHandler[handler.Context, uploadRequest](s.errorHandler),
	))

	return r
}

type decodeRequest struct {
	ImageDataURL string `json:"imageDataUrl"`
	ImageURL     string `json:"imageUrl"`
}

type uploadRequest struct {
	Image *binder.FileUpload `file:"image"`
}

func (s *Service) decode(ctx handler.Context, req decodeRequest) handler.Response {
	in, err := scanner.NewInput(req.ImageDataURL, req.ImageURL)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.decoder.Decode(ctx, in)
	if err != nil {
		return s.fail(ctx, err)
	}
	return handler.JSON(res)
}

func (s *Service) upload(ctx handler.Context, req uploadRequest) handler.Response {
	if req.Image == nil || len(req.Image.Content) == 0 {
		return handler.JSONError(handler.ErrBadRequest.WithErr(ErrMissingImage))
	}

	res, err := s.decoder.DecodeBytes(ctx, req.Image.Content)
	if err != nil {
		return s.fail(ctx, err)
	}
	return handler.JSON(res)
}

func (s *Service) fail(ctx context.Context, err error) handler.Response {
	kind := scanner.KindOf(err)
	level := slog.LevelInfo
	if kind == scanner.KindInternal {
		level = slog.LevelError
	}
	s.log.LogAttrs(ctx, level, "decode request failed",
		logger.ErrorKind(string(kind)),
		logger.Error(err),
	)
	return handler.JSONError(toHTTPError(err))
}
