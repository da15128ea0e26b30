package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/mattn/go-isatty"

	"github.com/dmitrymomot/qrscan/pkg/clientip"
	"github.com/dmitrymomot/qrscan/pkg/fetcher"
	"github.com/dmitrymomot/qrscan/pkg/logger"
	"github.com/dmitrymomot/qrscan/pkg/requestid"
	"github.com/dmitrymomot/qrscan/pkg/scanner"
)

func newLogger(cfg Config, out *os.File) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithOutput(out),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	}
	if isTerminal(out) {
		opts = append(opts, logger.WithFormat(logger.FormatText))
	} else {
		opts = append(opts, logger.WithFormat(logger.FormatJSON))
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newScanner(cfg Config, log *slog.Logger) *scanner.Scanner {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = cfg.FetchTimeout

	f := fetcher.New(
		fetcher.WithHTTPClient(client),
		fetcher.WithUserAgent(cfg.FetchUserAgent),
		fetcher.WithMaxBodySize(cfg.FetchMaxBodySize),
	)

	return scanner.New(
		scanner.WithFetcher(f),
		scanner.WithLogger(log),
	)
}
