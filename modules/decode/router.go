package decode

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrscan/pkg/clientip"
	"github.com/dmitrymomot/qrscan/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the HTTP surface. Health defaults to a handler
// that always answers 200. DecodeMiddlewares wrap only the /decode routes.
type RouterOptions struct {
	Decode            Mountable
	Health            http.Handler
	DecodeMiddlewares []func(http.Handler) http.Handler
}

// Router builds the service's root router.
//
//	svc := decode.NewService(scanner.New(), decode.WithLogger(log))
//	srv.Run(ctx, decode.Router(decode.RouterOptions{
//		Decode: svc,
//		Health: httpserver.HealthCheckHandler(log),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
	)

	health := opts.Health
	if health == nil {
		health = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}
	r.Method(http.MethodGet, "/health", health)

	if opts.Decode != nil {
		r.With(opts.DecodeMiddlewares...).Mount("/decode", opts.Decode.Handle())
	}

	return r
}
