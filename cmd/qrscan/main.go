package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "qrscan",
		Usage:                "decode QR codes from data URLs and image URLs",
		Version:              version,
		DefaultCommand:       "mcp",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Usage:   "load environment from `FILE` instead of ./.env",
				EnvVars: []string{"QRSCAN_ENV_FILE"},
			},
		},
		Commands: []*cli.Command{
			mcpCommand(),
			serveCommand(),
			decodeCommand(),
		},
	}
}
