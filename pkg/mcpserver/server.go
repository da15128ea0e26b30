package mcpserver

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dmitrymomot/qrscan/pkg/logger"
	"github.com/dmitrymomot/qrscan/pkg/scanner"
)

const (
	ServerName      = "scan-qrcode-mcp"
	DefaultVersion  = "0.1.0"
	DecodeToolName  = "decode_qrcode"
	argImageDataURL = "imageDataUrl"
	argImageURL     = "imageUrl"
)

// Decoder is the part of *scanner.Scanner the tool depends on.
type Decoder interface {
	Decode(ctx context.Context, in scanner.Input) (scanner.Result, error)
}

// Server is an MCP server with the decode_qrcode tool registered.
type Server struct {
	decoder Decoder
	log     *slog.Logger
	version string
	mcp     *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithVersion sets the version reported during initialization.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}

func New(dec Decoder, opts ...Option) *Server {
	s := &Server{
		decoder: dec,
		log:     logger.Noop(),
		version: DefaultVersion,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("mcp"))

	s.mcp = server.NewMCPServer(ServerName, s.version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.mcp.AddTool(DecodeTool(), s.HandleDecode)

	return s
}

// DecodeTool describes the decode_qrcode tool.
func DecodeTool() mcp.Tool {
	return mcp.NewTool(DecodeToolName,
		mcp.WithDescription("Decode a QR code from either a data URL (data:<mime>;base64,...) or an HTTP(S) image URL."),
		mcp.WithString(argImageDataURL, mcp.Description("Image data URL (base64) of the QR image.")),
		mcp.WithString(argImageURL, mcp.Description("HTTP(S) URL to the QR image.")),
	)
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// HandleDecode is the decode_qrcode tool handler. Decode failures are
// reported as tool error results, never as protocol errors.
func (s *Server) HandleDecode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	in, err := scanner.NewInput(req.GetString(argImageDataURL, ""), req.GetString(argImageURL, ""))
	if err == nil {
		var res scanner.Result
		if res, err = s.decoder.Decode(ctx, in); err == nil {
			s.log.InfoContext(ctx, "tool call succeeded",
				logger.Tool(DecodeToolName),
				logger.Duration(time.Since(start)),
			)
			return mcp.NewToolResultText(res.Text), nil
		}
	}

	s.log.WarnContext(ctx, "tool call failed",
		logger.Tool(DecodeToolName),
		logger.ErrorKind(string(scanner.KindOf(err))),
		logger.Error(err),
		logger.Duration(time.Since(start)),
	)
	return mcp.NewToolResultError(err.Error()), nil
}

// ServeStdio speaks the protocol over in and out until ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.log.Handler(), slog.LevelError))

	s.log.InfoContext(ctx, "mcp server listening on stdio", slog.String("version", s.version))
	err := stdio.Listen(ctx, in, out)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
