package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// Store selects the repository backend: "memory" (default) or "mongo".
	Store string `env:"STORE, default=memory"`

	// ActivityWorkers sizes the audit dispatcher worker pool.
	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`

	ImageGen ImageGenConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type ImageGenConfig struct {
	URL string `env:"IMAGEGEN_URL, default=http://localhost:9090"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commission_system"`
}

type RedisConfig struct {
	// Addr left empty keeps token revocation in process memory.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
