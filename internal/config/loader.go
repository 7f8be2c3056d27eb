package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration using CONFIG_FILE when it is set.
func LoadConfig() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

// Load applies, in order: defaults, the YAML file at path (skipped when path
// is empty), then environment variables. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.LoadedFrom = append(cfg.LoadedFrom, "defaults")

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	applyEnvironment(cfg)
	cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist", path)
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// applyEnvironment overlays environment variables; unset variables leave the
// current value untouched.
func applyEnvironment(cfg *Config) {
	cfg.Environment = Environment(getEnv("ENVIRONMENT", string(cfg.Environment)))
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))

	cfg.Server.Address = getEnv("SERVER_ADDRESS", cfg.Server.Address)
	cfg.Server.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = splitList(origins)
	}

	cfg.Store.Driver = strings.ToLower(getEnv("STORE_DRIVER", cfg.Store.Driver))
	cfg.Store.Table = getEnv("TABLE_NAME", cfg.Store.Table)

	cfg.Supabase.URL = getEnv("SUPABASE_URL", cfg.Supabase.URL)
	cfg.Supabase.Key = getEnv("SUPABASE_KEY", getEnv("SUPABASE_SERVICE_ROLE_KEY", cfg.Supabase.Key))
	cfg.Supabase.Schema = getEnv("SUPABASE_SCHEMA", cfg.Supabase.Schema)

	cfg.Postgres.DSN = getEnv("POSTGRES_DSN", getEnv("DATABASE_URL", cfg.Postgres.DSN))
	cfg.Postgres.MaxConns = int32(getEnvInt("POSTGRES_MAX_CONNS", int(cfg.Postgres.MaxConns)))

	cfg.SQLite.Path = getEnv("SQLITE_PATH", cfg.SQLite.Path)

	cfg.DynamoDB.Region = getEnv("AWS_REGION", cfg.DynamoDB.Region)
	cfg.DynamoDB.Endpoint = getEnv("DYNAMODB_ENDPOINT", cfg.DynamoDB.Endpoint)

	cfg.Content.Path = getEnv("CONTENT_PATH", cfg.Content.Path)
	cfg.Content.Watch = getEnvBool("CONTENT_WATCH", cfg.Content.Watch)

	cfg.Site.Source = strings.ToLower(getEnv("SITE_SOURCE", cfg.Site.Source))
	cfg.Site.SessionTTL = getEnvDuration("SESSION_TTL", cfg.Site.SessionTTL)
	cfg.Site.CookieSecure = getEnvBool("COOKIE_SECURE", cfg.Site.CookieSecure)

	cfg.Security.JWTSecret = getEnv("JWT_SECRET", getEnv("SUPABASE_JWT_SECRET", cfg.Security.JWTSecret))
	cfg.Security.JWTIssuer = getEnv("JWT_ISSUER", cfg.Security.JWTIssuer)
	cfg.Security.Audience = getEnv("JWT_AUDIENCE", cfg.Security.Audience)

	cfg.CircuitBreaker.Enabled = getEnvBool("ENABLE_CIRCUIT_BREAKER", cfg.CircuitBreaker.Enabled)

	cfg.Tracing.Enabled = getEnvBool("ENABLE_TRACING", cfg.Tracing.Enabled)
	cfg.Tracing.Endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Tracing.Endpoint)

	cfg.Metrics.Enabled = getEnvBool("ENABLE_METRICS", cfg.Metrics.Enabled)

	cfg.Events.Enabled = getEnvBool("ENABLE_EVENTS", cfg.Events.Enabled)
	cfg.Events.BusName = getEnv("EVENT_BUS_NAME", cfg.Events.BusName)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
