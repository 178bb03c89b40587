package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIURL is the base URL of the remote scheduling API. The default
	// matches the development fallback the console has always shipped with.
	APIURL string `env:"API_URL, default=http://localhost:3100/api"`

	// HTTPTimeout bounds each upstream call. Zero leaves the transport's
	// default behaviour in place (no timeout enforced by this layer).
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=0"`

	// TokenDB is the sqlite file holding the operator's bearer token.
	// Empty selects the in-memory store (token lost on restart).
	TokenDB string `env:"TOKEN_DB, default=console.db"`

	// LoginRatePerMin and LoginBurst shape the login rate limiter.
	LoginRatePerMin int `env:"LOGIN_RATE_PER_MIN, default=10"`
	LoginBurst      int `env:"LOGIN_BURST,        default=5"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
