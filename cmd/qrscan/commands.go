package main

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/qrscan/modules/decode"
	"github.com/dmitrymomot/qrscan/pkg/config"
	"github.com/dmitrymomot/qrscan/pkg/dataurl"
	"github.com/dmitrymomot/qrscan/pkg/httpserver"
	"github.com/dmitrymomot/qrscan/pkg/logger"
	"github.com/dmitrymomot/qrscan/pkg/mcpserver"
	"github.com/dmitrymomot/qrscan/pkg/ratelimiter"
	"github.com/dmitrymomot/qrscan/pkg/scanner"
)

func loadConfig(c *cli.Context) (Config, error) {
	var cfg Config
	var opts []config.Option
	if files := c.StringSlice("env-file"); len(files) > 0 {
		opts = append(opts, config.WithEnvFiles(files...))
	}
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, cli.Exit(err.Error(), 2)
	}
	return cfg, nil
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve the decode_qrcode tool over stdio (Model Context Protocol)",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log := newLogger(cfg, os.Stderr)

			srv := mcpserver.New(newScanner(cfg, log),
				mcpserver.WithLogger(log),
				mcpserver.WithVersion(c.App.Version),
			)
			return srv.ServeStdio(c.Context, os.Stdin, os.Stdout)
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the JSON decode API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides HTTP_ADDR",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if addr := c.String("addr"); addr != "" {
				cfg.HTTP.Addr = addr
			}
			log := newLogger(cfg, os.Stdout)
			logger.SetAsDefault(log)

			opts := decode.RouterOptions{
				Decode: decode.NewService(newScanner(cfg, log), decode.WithLogger(log)),
				Health: httpserver.HealthCheckHandler(log),
			}
			if cfg.RateLimit.Enabled() {
				store := ratelimiter.NewMemoryStore()
				defer store.Close()

				bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
				if err != nil {
					return cli.Exit(err.Error(), 2)
				}
				opts.DecodeMiddlewares = append(opts.DecodeMiddlewares,
					ratelimiter.Middleware(bucket, ratelimiter.ClientIPKey,
						ratelimiter.WithDeniedHandler(decode.TooManyRequests()),
					),
				)
			}
			router := decode.Router(opts)

			return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(c.Context, router)
		},
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decode a single image and print the QR text",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-url", Usage: "image as data:<mime>;base64,<payload>"},
			&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "http(s) URL of the image"},
			&cli.PathFlag{Name: "file", Aliases: []string{"f"}, Usage: "local image `FILE`"},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   string(OutputText),
				Usage:   "output format: text, json or yaml",
			},
		},
		Action: func(c *cli.Context) error {
			format, err := ParseOutputFormat(c.String("output"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log := newLogger(cfg, os.Stderr)

			in, err := decodeInput(c.String("data-url"), c.String("url"), c.Path("file"))
			if err != nil {
				return exitError(err)
			}

			res, err := newScanner(cfg, log).Decode(c.Context, in)
			if err != nil {
				return exitError(err)
			}
			return WriteResult(c.App.Writer, format, res)
		},
	}
}

// decodeInput turns the decode flags into a scanner.Input. A local file is
// sent through the data URL path with its sniffed content type.
func decodeInput(dataURL, imageURL, file string) (scanner.Input, error) {
	if file != "" {
		if dataURL != "" || imageURL != "" {
			return nil, scanner.ErrMissingOrAmbiguousInput
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read image file: %w", err)
		}
		return scanner.DataURLInput(dataurl.Encode(sniffMediaType(data), data)), nil
	}
	return scanner.NewInput(dataURL, imageURL)
}

// sniffMediaType returns the detected content type without parameters,
// e.g. "text/plain" for "text/plain; charset=utf-8".
func sniffMediaType(data []byte) string {
	ct := http.DetectContentType(data)
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	mt, _, _ := strings.Cut(ct, ";")
	return strings.TrimSpace(mt)
}

func exitError(err error) error {
	code := 1
	switch scanner.KindOf(err) {
	case scanner.KindMissingOrAmbiguousInput, scanner.KindInvalidDataURL, scanner.KindUnsupportedScheme:
		code = 2
	case scanner.KindNoQRCodeDetected:
		code = 3
	}
	return cli.Exit(err.Error(), code)
}
