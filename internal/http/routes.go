package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidbz/vibeproxy/internal/http/middleware"
	"github.com/davidbz/vibeproxy/internal/observability"
)

// NewProxyRouter builds the route table of the proxy service.
func NewProxyRouter(
	handler *Handler,
	info *InfoHandler,
	metrics *observability.Metrics,
	middlewares middleware.Middleware,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares)

	r.Get("/", info.HandleBanner)
	r.Get("/api/models", info.HandleModels)
	r.Post("/api/chat", handler.HandleChat)
	r.Post("/api/chat/stream", handler.HandleChatStream)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	info.Mount(r)

	return r
}
