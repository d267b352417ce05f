package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/davidbz/vibeproxy/internal/observability"
)

const unmatchedRoute = "unmatched"

// Metrics creates a middleware that counts requests by route pattern and status.
// It must run inside the chi router so the matched pattern is known.
func Metrics(metrics *observability.Metrics) Middleware {
	if metrics == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			metrics.ObserveRequest(route, statusOf(ww))
		})
	}
}
