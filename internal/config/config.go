package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/vibeproxy/internal/domain"
	"github.com/davidbz/vibeproxy/internal/observability"
	"github.com/davidbz/vibeproxy/internal/upstream/puter"
)

// Config represents the proxy configuration.
type Config struct {
	Server   ServerConfig
	Frontend FrontendConfig
	CORS     CORSConfig
	Log      observability.LogConfig
	Relay    domain.RelayConfig
	Upstream puter.Config
}

// ServerConfig contains HTTP server settings.
// A zero WriteTimeout leaves streaming responses open for as long as the upstream is.
type ServerConfig struct {
	Host            string `env:"HOST"                    envDefault:"0.0.0.0"`
	Port            int    `env:"PORT"                    envDefault:"5000"`
	ReadTimeout     int    `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int    `env:"SERVER_WRITE_TIMEOUT"    envDefault:"0"`
	ShutdownTimeout int    `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

// FrontendConfig holds the settings that differ between the chat page server
// and the proxy, so both can run side by side on one host.
type FrontendConfig struct {
	Port int `env:"FRONTEND_PORT" envDefault:"8000"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*observability.LogConfig
	*domain.RelayConfig
	*puter.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Log,
		&cfg.Relay,
		&cfg.Upstream,
	}
}

// FrontendServer returns the server settings for the chat page binary: the
// shared server settings with the frontend port.
func (c *Config) FrontendServer() *ServerConfig {
	server := c.Server
	server.Port = c.Frontend.Port
	return &server
}
