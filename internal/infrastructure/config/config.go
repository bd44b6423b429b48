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

	JWT       JWTConfig
	MySQL     MySQLConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET"`
	// Algorithm is the symmetric signature scheme identifier. Only HS256
	// is supported; anything else is rejected at startup.
	Algorithm      string `env:"JWT_ALGORITHM,          default=HS256"`
	Issuer         string `env:"JWT_ISSUER,             default=venue-services"`
	AccessTTLMin   int    `env:"ACCESS_TOKEN_TTL_MIN,   default=30"`
	RefreshTTLDays int    `env:"REFRESH_TOKEN_TTL_DAYS, default=7"`
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=root:@tcp(localhost:3306)/venue_services?parseTime=true&charset=utf8mb4"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type RateLimitConfig struct {
	// PerMinute is the base request budget per client per minute window.
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE, default=60"`
	// Burst is added on top of PerMinute before requests are denied.
	Burst int `env:"RATE_LIMIT_BURST, default=0"`
}

// AccessTTL returns the access token lifetime.
func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMin) * time.Minute
}

// RefreshTTL returns the refresh token lifetime.
func (c JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLDays) * 24 * time.Hour
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	if cfg.JWT.Algorithm != "HS256" {
		return nil, fmt.Errorf("config: unsupported JWT_ALGORITHM %q", cfg.JWT.Algorithm)
	}
	return &cfg, nil
}
