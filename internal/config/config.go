// Package config loads process configuration from defaults, an optional YAML
// file and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment represents the deployment environment
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Store drivers understood by the DI container.
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
	DriverContent  = "content"
)

// Site data sources.
const (
	SourceStore  = "store"
	SourceStatic = "static"
)

// Config holds all application configuration
type Config struct {
	Environment Environment `yaml:"environment" validate:"required,oneof=development staging production"`
	ServiceName string      `yaml:"service_name" validate:"required"`
	LogLevel    string      `yaml:"log_level" validate:"oneof=debug info warn error"`

	Server         Server         `yaml:"server"`
	Store          Store          `yaml:"store"`
	Supabase       Supabase       `yaml:"supabase"`
	Postgres       Postgres       `yaml:"postgres"`
	SQLite         SQLite         `yaml:"sqlite"`
	DynamoDB       DynamoDB       `yaml:"dynamodb"`
	Content        Content        `yaml:"content"`
	Site           Site           `yaml:"site"`
	Security       Security       `yaml:"security"`
	CircuitBreaker CircuitBreaker `yaml:"circuit_breaker"`
	Tracing        Tracing        `yaml:"tracing"`
	Metrics        Metrics        `yaml:"metrics"`
	Events         Events         `yaml:"events"`

	// LoadedFrom lists the sources applied, lowest precedence first.
	LoadedFrom []string `yaml:"-"`
}

// Server contains HTTP server configuration
type Server struct {
	Address         string        `yaml:"address" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

// Store selects the row store driver backing pathway nodes.
type Store struct {
	Driver string `yaml:"driver" validate:"required,oneof=supabase postgres sqlite dynamodb memory content"`
	Table  string `yaml:"table" validate:"required"`
}

// Supabase is the hosted PostgREST endpoint.
type Supabase struct {
	URL    string `yaml:"url" validate:"omitempty,url"`
	Key    string `yaml:"key"`
	Schema string `yaml:"schema"`
}

// Postgres is a direct database connection.
type Postgres struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"max_conns" validate:"gte=0"`
}

// SQLite is a local file database.
type SQLite struct {
	Path string `yaml:"path"`
}

// DynamoDB holds the table region; the table name comes from Store.Table.
type DynamoDB struct {
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`
}

// Content is the YAML pathway file used by the content driver and the static
// site source.
type Content struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// Site configures the public pathway page.
type Site struct {
	Source       string        `yaml:"source" validate:"required,oneof=store static"`
	SessionTTL   time.Duration `yaml:"session_ttl" validate:"gt=0"`
	CookieName   string        `yaml:"cookie_name" validate:"required"`
	CookieSecure bool          `yaml:"cookie_secure"`
}

// Security configures bearer-token protection of the admin surface.
type Security struct {
	JWTSecret string `yaml:"jwt_secret"`
	JWTIssuer string `yaml:"jwt_issuer"`
	Audience  string `yaml:"audience"`
}

// CircuitBreaker configures the breaker around remote stores.
type CircuitBreaker struct {
	Enabled          bool          `yaml:"enabled"`
	MaxRequests      uint32        `yaml:"max_requests" validate:"gte=1"`
	Interval         time.Duration `yaml:"interval" validate:"gte=0"`
	Timeout          time.Duration `yaml:"timeout" validate:"gt=0"`
	FailureThreshold float64       `yaml:"failure_threshold" validate:"gt=0,lte=1"`
	MinRequests      uint32        `yaml:"min_requests" validate:"gte=1"`
}

// Tracing configures the OTLP exporter.
type Tracing struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

// Metrics configures the Prometheus collector.
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required"`
	Path      string `yaml:"path" validate:"required,startswith=/"`
}

// Events configures EventBridge notifications for node updates.
type Events struct {
	Enabled bool   `yaml:"enabled"`
	BusName string `yaml:"bus_name"`
	Source  string `yaml:"source"`
}

// Default returns the configuration used when nothing overrides it: an
// in-memory store seeded with the built-in catalog.
func Default() *Config {
	return &Config{
		Environment: Development,
		ServiceName: "gradcap-pathway",
		LogLevel:    "info",
		Server: Server{
			Address:         ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:8080"},
		},
		Store: Store{
			Driver: DriverMemory,
			Table:  "pathway_nodes",
		},
		Supabase: Supabase{Schema: "public"},
		Postgres: Postgres{MaxConns: 4},
		SQLite:   SQLite{Path: "pathway.db"},
		DynamoDB: DynamoDB{Region: "us-east-1"},
		Content:  Content{Path: "content/pathway.yaml", Watch: true},
		Site: Site{
			Source:     SourceStore,
			SessionTTL: 2 * time.Hour,
			CookieName: "pathway_admin_session",
		},
		CircuitBreaker: CircuitBreaker{
			Enabled:          true,
			MaxRequests:      5,
			Interval:         30 * time.Second,
			Timeout:          60 * time.Second,
			FailureThreshold: 0.8,
			MinRequests:      5,
		},
		Tracing: Tracing{Endpoint: "localhost:4317", Insecure: true},
		Metrics: Metrics{Enabled: true, Namespace: "pathway", Path: "/metrics"},
		Events:  Events{BusName: "pathway-events", Source: "gradcap.pathway"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and the cross-field requirements of the
// selected store driver.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.Store.Driver {
	case DriverSupabase:
		if c.Supabase.URL == "" || c.Supabase.Key == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required for the supabase driver")
		}
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres driver")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverContent:
		if c.Content.Path == "" {
			return fmt.Errorf("CONTENT_PATH is required for the content driver")
		}
	}

	if c.Events.Enabled && c.Events.BusName == "" {
		return fmt.Errorf("EVENT_BUS_NAME is required when events are enabled")
	}
	if c.Environment == Production && c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// AuthEnabled reports whether admin routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return strings.TrimSpace(c.Security.JWTSecret) != ""
}

// RemoteStore reports whether the store driver talks to the network.
func (c *Config) RemoteStore() bool {
	switch c.Store.Driver {
	case DriverSupabase, DriverPostgres, DriverDynamoDB:
		return true
	}
	return false
}
