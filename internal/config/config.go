// Package config loads the service configuration.
//
// Sources, lowest precedence first:
//   - built-in defaults (Default)
//   - an optional YAML file named by ARTICLES_CONFIG_FILE
//   - environment variables prefixed with ARTICLES_, where "__" separates
//     nesting levels (ARTICLES_SERVER__ADDR -> server.addr)
//   - the unprefixed DATABASE_URL and LOG_LEVEL variables when the prefixed
//     keys are unset
//
// A `.env` file in the working directory is loaded into the process
// environment before anything is read.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of every environment variable read by Load.
	EnvPrefix = "ARTICLES_"
	// FileEnv names the variable holding the optional YAML config path.
	FileEnv = EnvPrefix + "CONFIG_FILE"
)

// Config is the root configuration object.
type Config struct {
	Server     ServerConfig     `koanf:"server" validate:"required"`
	Database   DatabaseConfig   `koanf:"database" validate:"required"`
	Validation ValidationConfig `koanf:"validation" validate:"required"`
	Log        LogConfig        `koanf:"log"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Tracing    TracingConfig    `koanf:"tracing"`
}

// ServerConfig groups settings for the HTTP server runtime.
type ServerConfig struct {
	Addr               string        `koanf:"addr" validate:"required"`
	ReadHeaderTimeout  time.Duration `koanf:"read_header_timeout" validate:"min=1s"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
	MaxBodyBytes       int64         `koanf:"max_body_bytes" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
}

// DatabaseConfig selects the storage backend and tunes its pool.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=postgres postgresql pgx sqlite sqlite3"`
	URL             string        `koanf:"url" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gt=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"gte=0"`
}

// ValidationConfig holds the text length limits applied to request bodies.
type ValidationConfig struct {
	ShortMax int `koanf:"short_max" validate:"gt=0"`
	LongMax  int `koanf:"long_max" validate:"gtefield=ShortMax"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

// MetricsConfig controls the periodic refresh of the row-count gauges.
type MetricsConfig struct {
	RefreshSchedule string `koanf:"refresh_schedule" validate:"required,cron"`
}

// TracingConfig controls the OpenTelemetry tracer provider.
type TracingConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name" validate:"required_if=Enabled true"`
}

// Default returns the configuration used when no source overrides a key.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:               ":8080",
			ReadHeaderTimeout:  5 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			MaxBodyBytes:       1 << 20,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:          "sqlite",
			URL:             "file:articles.db",
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
		},
		Validation: ValidationConfig{
			ShortMax: 50,
			LongMax:  500,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			RefreshSchedule: "@every 1m",
		},
		Tracing: TracingConfig{
			ServiceName: "articles-api",
		},
	}
}

// Load reads every source, applies it over Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(FileEnv); path != "" {
		if err := k.Load(yamlFile(path), nil); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	applyFallbacks(k)

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps ARTICLES_SERVER__CORS_ALLOWED_ORIGINS to server.cors_allowed_origins.
// The file selector variable is not a config key and is skipped.
func envKey(s string) string {
	if s == FileEnv {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// applyFallbacks honours DATABASE_URL and LOG_LEVEL when the prefixed keys are unset.
func applyFallbacks(k *koanf.Koanf) {
	fallbacks := map[string]string{
		"database.url": "DATABASE_URL",
		"log.level":    "LOG_LEVEL",
	}
	for key, envName := range fallbacks {
		if k.Exists(key) {
			continue
		}
		if v := os.Getenv(envName); v != "" {
			_ = k.Set(key, v)
		}
	}
}

// normalize splits comma separated origin lists that arrive as a single env value.
func (c *Config) normalize() {
	var origins []string
	for _, o := range c.Server.CORSAllowedOrigins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}
	c.Server.CORSAllowedOrigins = origins
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}
