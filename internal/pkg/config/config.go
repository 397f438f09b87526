package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// Seed controls whether the store is populated with the default admin
	// user, navigation menu and sample games at startup.
	Seed          bool   `env:"SEED, default=true"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin"`

	// ActivityWorkers is the number of sharded activity-feed workers.
	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`
	// ActivityFeedSize bounds the in-memory recent-activity list.
	ActivityFeedSize int `env:"ACTIVITY_FEED_SIZE, default=200"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
