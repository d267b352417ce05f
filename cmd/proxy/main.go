package main

import (
	"log"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/vibeproxy/internal/config"
	"github.com/davidbz/vibeproxy/internal/domain"
	"github.com/davidbz/vibeproxy/internal/http"
	"github.com/davidbz/vibeproxy/internal/http/middleware"
	"github.com/davidbz/vibeproxy/internal/lifecycle"
	"github.com/davidbz/vibeproxy/internal/observability"
	"github.com/davidbz/vibeproxy/internal/upstream/puter"
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
	if err := container.Provide(observability.NewMetrics); err != nil {
		log.Fatalf("Failed to provide metrics: %v", err)
	}

	// Upstream gateway
	if err := container.Provide(func(cfg *puter.Config) (domain.Gateway, error) {
		return puter.NewClient(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide upstream gateway: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewRelayService); err != nil {
		log.Fatalf("Failed to provide relay service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewInfoHandler); err != nil {
		log.Fatalf("Failed to provide info handler: %v", err)
	}
	if err := container.Provide(http.NewProxyRouter); err != nil {
		log.Fatalf("Failed to provide router: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
