// Package mcpserver exposes the QR scanner as a Model Context Protocol tool.
//
// The server is named "scan-qrcode-mcp" and registers a single tool,
// decode_qrcode, taking exactly one of the string arguments imageDataUrl or
// imageUrl. On success the tool returns the decoded text as one text content
// item; failures come back as a tool error result carrying the message.
//
//	srv := mcpserver.New(scanner.New(), mcpserver.WithLogger(log))
//	if err := srv.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil {
//		return err
//	}
//
// stdout carries the protocol, so loggers handed to this package must write
// elsewhere.
package mcpserver
