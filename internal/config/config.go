// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the full service configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Supabase SupabaseConfig
	Log      LogConfig
	Tracing  TracingConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// DatabaseConfig selects and configures the relational store
type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	// DSN is a Postgres connection string or a SQLite file path
	DSN          string        `env:"DATABASE_URL" envDefault:"rpg-sheet.db"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLife  time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	AutoMigrate  bool          `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// RedisConfig configures the spell catalog cache. An empty URL disables it.
type RedisConfig struct {
	URL      string        `env:"REDIS_URL"`
	SpellTTL time.Duration `env:"SPELL_CACHE_TTL" envDefault:"1h"`
}

// SupabaseConfig configures bearer token verification
type SupabaseConfig struct {
	URL string `env:"SUPABASE_URL"`
	// JWTSecret enables HS256 tokens signed with the legacy project secret
	JWTSecret string        `env:"SUPABASE_JWT_SECRET"`
	Audience  string        `env:"SUPABASE_JWT_AUDIENCE" envDefault:"authenticated"`
	JWKSTTL   time.Duration `env:"SUPABASE_JWKS_TTL" envDefault:"10m"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Mode     string `env:"LOG_MODE" envDefault:"development"`
	Level    string `env:"LOG_LEVEL" envDefault:"info"`
	HashSalt string `env:"LOG_HASH_SALT"`
}

// TracingConfig configures OpenTelemetry export
type TracingConfig struct {
	// Endpoint is an OTLP/HTTP endpoint URL; empty disables export
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"rpg-sheet-api"`
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom builds a Config from an explicit environment map
func LoadFrom(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks cross-field requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("PORT", c.Server.Port, 1, 65535, vb)
	errors.ValidateEnum("DB_DRIVER", c.Database.Driver, []string{DriverPostgres, DriverSQLite}, vb)
	errors.ValidateRequired("DATABASE_URL", c.Database.DSN, vb)

	if strings.TrimSpace(c.Supabase.URL) == "" && c.Supabase.JWTSecret == "" {
		vb.Field("SUPABASE_URL", "is required unless SUPABASE_JWT_SECRET is set")
	}
	if c.Redis.URL != "" && c.Redis.SpellTTL <= 0 {
		vb.InvalidField("SPELL_CACHE_TTL", "must be positive")
	}

	return vb.Build()
}

// Issuer is the expected "iss" claim of Supabase access tokens
func (s SupabaseConfig) Issuer() string {
	if s.URL == "" {
		return ""
	}
	return strings.TrimRight(s.URL, "/") + "/auth/v1"
}

// JWKSURL is the project's signing key endpoint
func (s SupabaseConfig) JWKSURL() string {
	if s.URL == "" {
		return ""
	}
	return s.Issuer() + "/.well-known/jwks.json"
}
