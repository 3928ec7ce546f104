// Package config loads server settings from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// Config holds everything the server needs at startup
type Config struct {
	GRPCPort int `env:"BESTIARY_GRPC_PORT" envDefault:"50051"`

	// RedisAddrs selects the Redis store. Empty means the in-memory store,
	// more than one address means cluster mode.
	RedisAddrs    []string      `env:"BESTIARY_REDIS_ADDRS" envSeparator:","`
	RedisTLS      bool          `env:"BESTIARY_REDIS_TLS" envDefault:"false"`
	RedisPoolSize int           `env:"BESTIARY_REDIS_POOL_SIZE" envDefault:"10"`
	RedisTimeout  time.Duration `env:"BESTIARY_REDIS_DIAL_TIMEOUT" envDefault:"5s"`

	// CatalogPath replaces the bundled catalog when set
	CatalogPath   string        `env:"BESTIARY_CATALOG_PATH"`
	ShutdownGrace time.Duration `env:"BESTIARY_SHUTDOWN_GRACE" envDefault:"30s"`
	LogLevel      string        `env:"BESTIARY_LOG_LEVEL" envDefault:"info"`
	LogJSON       bool          `env:"BESTIARY_LOG_JSON" envDefault:"true"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return Parse(nil)
}

// Parse reads settings from environment. A nil map reads the process
// environment.
func Parse(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("BESTIARY_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateMin("BESTIARY_REDIS_POOL_SIZE", c.RedisPoolSize, 0, vb)
	for i, addr := range c.RedisAddrs {
		if strings.TrimSpace(addr) == "" {
			vb.Fieldf("BESTIARY_REDIS_ADDRS", "entry %d is empty", i)
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("BESTIARY_LOG_LEVEL", errors.GetMessage(err))
	}
	return vb.Build()
}

// UsesRedis reports whether a Redis store was configured
func (c *Config) UsesRedis() bool {
	return len(c.RedisAddrs) > 0
}

// Level is the parsed log level
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel accepts debug, info, warn and error in any case
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}
