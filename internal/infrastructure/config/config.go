package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTLHours bounds the lifetime of issued session tokens.
	TokenTTLHours int `env:"TOKEN_TTL_HOURS, default=24"`

	// SearchDebounceMS is the quiescence window applied to search-filter
	// changes before they take effect.
	SearchDebounceMS int `env:"SEARCH_DEBOUNCE_MS, default=400"`

	Directory DirectoryConfig
	Redis     RedisConfig
}

type DirectoryConfig struct {
	URL string `env:"DIRECTORY_URL, default=https://jsonplaceholder.typicode.com/users"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
