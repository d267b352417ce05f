package main

import (
	"log"
	stdhttp "net/http"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/vibeproxy/internal/config"
	"github.com/davidbz/vibeproxy/internal/frontend"
	"github.com/davidbz/vibeproxy/internal/http"
	"github.com/davidbz/vibeproxy/internal/http/middleware"
	"github.com/davidbz/vibeproxy/internal/lifecycle"
	"github.com/davidbz/vibeproxy/internal/observability"
)

func main() {
	container := buildContainer()

	// The logger is requested so it is initialised before the server starts.
	err := container.Invoke(func(_ *zap.Logger, server *http.Server) {
		if err := lifecycle.Serve(server); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(cfg *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(cfg, nil)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(frontend.NewPage); err != nil {
		log.Fatalf("Failed to provide index page: %v", err)
	}
	if err := container.Provide(http.NewInfoHandler); err != nil {
		log.Fatalf("Failed to provide info handler: %v", err)
	}
	if err := container.Provide(frontend.NewRouter); err != nil {
		log.Fatalf("Failed to provide router: %v", err)
	}
	if err := container.Provide(func(cfg *config.Config, handler stdhttp.Handler) *http.Server {
		return http.NewServer(cfg.FrontendServer(), handler)
	}); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
