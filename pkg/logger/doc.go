// Package logger builds *slog.Logger instances for qrscan binaries and provides
// attribute helpers that keep key names consistent across packages.
//
// New assembles a text or JSON handler from functional options and wraps it in
// LogHandlerDecorator, which pulls request-scoped values (such as the request
// ID) out of context.Context on every Handle call.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "qrscan"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.InfoContext(ctx, "qr decode failed",
//		logger.Source("image_url"),
//		logger.ErrorKind("fetch_failed"),
//		logger.Error(err),
//	)
//
// Libraries in this module take a *slog.Logger through an option and fall back
// to Noop, so nothing is written unless the binary supplies a logger.
//
// Error and Errors return an empty slog.Attr for nil errors; slog drops empty
// attributes, so they can be passed unconditionally.
package logger
