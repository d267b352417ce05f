package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vibeproxy/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, "0.0.0.0", cfg.Server.Host)
		require.Equal(t, 5000, cfg.Server.Port)
		require.Equal(t, 8000, cfg.Frontend.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 0, cfg.Server.WriteTimeout)
		require.Equal(t, 10, cfg.Server.ShutdownTimeout)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "info", cfg.Log.Level)
		require.False(t, cfg.Log.Development)
		require.Equal(t, "claude-sonnet-4-5", cfg.Relay.DefaultModel)
		require.Equal(t, "https://api.puter.com/drivers/call", cfg.Upstream.URL)
		require.Equal(t, "puter-chat-completion", cfg.Upstream.Interface)
		require.Equal(t, "anthropic", cfg.Upstream.Driver)
		require.Equal(t, "complete", cfg.Upstream.Method)
		require.Equal(t, 0, cfg.Upstream.Timeout)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("FRONTEND_PORT", "9001")
		t.Setenv("HOST", "127.0.0.1")
		t.Setenv("SERVER_WRITE_TIMEOUT", "60")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("RELAY_DEFAULT_MODEL", "claude-haiku-4-5")
		t.Setenv("UPSTREAM_URL", "http://localhost:9999/call")
		t.Setenv("UPSTREAM_TIMEOUT", "120")

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 9001, cfg.Frontend.Port)
		require.Equal(t, "127.0.0.1", cfg.Server.Host)
		require.Equal(t, 60, cfg.Server.WriteTimeout)
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "claude-haiku-4-5", cfg.Relay.DefaultModel)
		require.Equal(t, "http://localhost:9999/call", cfg.Upstream.URL)
		require.Equal(t, 120, cfg.Upstream.Timeout)
	})

	t.Run("should expose sub-configs for injection", func(t *testing.T) {
		os.Clearenv()

		cfg := config.Load()
		deps := config.ParseDependenciesConfig(cfg)

		require.Same(t, &cfg.Server, deps.ServerConfig)
		require.Same(t, &cfg.Relay, deps.RelayConfig)
		require.Same(t, &cfg.Upstream, deps.Config)
	})

	t.Run("should give the frontend its own port", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("HOST", "127.0.0.1")

		cfg := config.Load()
		frontend := cfg.FrontendServer()

		require.NotEqual(t, cfg.Server.Port, frontend.Port)
		require.Equal(t, 8000, frontend.Port)
		require.Equal(t, 5000, cfg.Server.Port)
		require.Equal(t, "127.0.0.1", frontend.Host)
		require.Equal(t, cfg.Server.ShutdownTimeout, frontend.ShutdownTimeout)
	})
}
