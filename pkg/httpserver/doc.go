// Package httpserver runs the qrscan HTTP API with graceful shutdown.
//
// Run binds the listener, invokes start hooks, serves until the context is
// cancelled, then drains in-flight requests within the shutdown timeout:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Config carries env tags so it can be embedded into the application config
// and loaded with pkg/config.
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
