package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// The two signing secrets are independent and required; the process
	// refuses to start without them.
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET,  required"`
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET, required"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=social_system"`
}

type RedisConfig struct {
	// Addr left empty disables the Redis-backed login throttle.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB,  default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
