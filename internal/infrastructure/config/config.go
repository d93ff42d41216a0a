package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DebounceWindow is the availability checker's quiescence interval.
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW, default=500ms"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Metadata MetadataConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=rankio"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MetadataConfig struct {
	BaseURL string        `env:"METADATA_BASE_URL, default=https://api.themoviedb.org/3"`
	APIKey  string        `env:"METADATA_API_KEY"`
	Timeout time.Duration `env:"METADATA_TIMEOUT,  default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
