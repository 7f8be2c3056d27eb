// Package di assembles the object graph shared by the server, the Lambda
// handler and the operator CLI.
package di

import (
	"context"
	"fmt"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/config"
	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/content"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/ddb"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/memory"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/messaging"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/observability"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/persistence"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/postgres"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/sqlite"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/supabase"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/tracing"
	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/http/rest"
	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/http/rest/handlers"
	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/http/rest/middleware"
	"github.com/nathan-pham/gradcap-mvp/internal/logging"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
	"github.com/nathan-pham/gradcap-mvp/internal/service/admin"
	service "github.com/nathan-pham/gradcap-mvp/internal/service/pathway"
)

// BaseStore is the undecorated driver. Operator commands use it for seeding
// and health checks; Content is set only for the content driver.
type BaseStore struct {
	Store   repository.NodeStore
	Driver  string
	Content *content.FileStore
}

// Seeder returns the driver's seeding capability, if it has one.
func (b *BaseStore) Seeder() (repository.Seeder, bool) {
	seeder, ok := b.Store.(repository.Seeder)
	return seeder, ok
}

// ProvideLogger builds the process logger.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel, string(cfg.Environment))
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", cfg.ServiceName)), nil
}

// ProvideErrorHandler includes error causes in responses during development.
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *appErrors.ErrorHandler {
	return appErrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideCollector returns nil when metrics are disabled.
func ProvideCollector(cfg *config.Config) *observability.Collector {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return observability.NewCollector(cfg.Metrics.Namespace)
}

// ProvideTracerProvider returns nil when tracing is disabled.
func ProvideTracerProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*tracing.TracerProvider, func(), error) {
	if !cfg.Tracing.Enabled {
		return nil, func() {}, nil
	}
	tp, err := tracing.InitTracing(ctx, cfg.ServiceName, string(cfg.Environment), cfg.Tracing.Endpoint, cfg.Tracing.Insecure)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Tracing enabled", zap.String("endpoint", cfg.Tracing.Endpoint))
	return tp, func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}, nil
}

// ProvideBaseStore opens the configured driver.
func ProvideBaseStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*BaseStore, func(), error) {
	base := &BaseStore{Driver: cfg.Store.Driver}
	table := cfg.Store.Table
	storeLogger := logger.With(zap.String("store", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.DriverSupabase:
		client, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Schema)
		if err != nil {
			return nil, nil, err
		}
		base.Store = supabase.NewNodeStore(client, table, storeLogger)

	case config.DriverPostgres:
		store, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns, table, storeLogger)
		if err != nil {
			return nil, nil, err
		}
		base.Store = store

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLite.Path, table, storeLogger)
		if err != nil {
			return nil, nil, err
		}
		base.Store = store

	case config.DriverDynamoDB:
		client, err := ddb.NewClient(ctx, cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
		if err != nil {
			return nil, nil, err
		}
		base.Store = ddb.NewNodeStore(client, table, storeLogger)

	case config.DriverContent:
		store, err := content.Open(cfg.Content.Path, pathway.Catalog(), storeLogger)
		if err != nil {
			return nil, nil, err
		}
		base.Store = store
		base.Content = store

	case config.DriverMemory:
		base.Store = memory.NewNodeStore(pathway.Catalog())

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	cleanup := func() {
		if closer, ok := base.Store.(repository.Closer); ok {
			if err := closer.Close(); err != nil {
				logger.Warn("Failed to close store", zap.Error(err))
			}
		}
	}
	logger.Info("Store opened", zap.String("driver", cfg.Store.Driver), zap.String("table", table))
	return base, cleanup, nil
}

// ProvideEventPublisher returns nil when events are disabled.
func ProvideEventPublisher(ctx context.Context, cfg *config.Config) (messaging.Publisher, error) {
	if !cfg.Events.Enabled {
		return nil, nil
	}
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.DynamoDB.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return messaging.NewEventBridgePublisher(messaging.NewEventBridgeClient(awsCfg), cfg.Events.BusName, cfg.Events.Source), nil
}

// ProvideNodeStore decorates the driver, innermost first: tracing, metrics,
// circuit breaker, event publishing.
func ProvideNodeStore(
	cfg *config.Config,
	base *BaseStore,
	tp *tracing.TracerProvider,
	collector *observability.Collector,
	publisher messaging.Publisher,
	logger *zap.Logger,
) repository.NodeStore {
	store := base.Store
	if tp != nil {
		store = tracing.TraceNodeStore(store, tp.Tracer(), base.Driver)
	}
	if collector != nil {
		store = observability.NewInstrumentedNodeStore(store, collector, base.Driver)
	}
	if cfg.CircuitBreaker.Enabled && cfg.RemoteStore() {
		store = persistence.NewCircuitBreakerNodeStore(store, persistence.CircuitBreakerConfig{
			Name:             "store-" + base.Driver,
			MaxRequests:      cfg.CircuitBreaker.MaxRequests,
			Interval:         cfg.CircuitBreaker.Interval,
			Timeout:          cfg.CircuitBreaker.Timeout,
			FailureThreshold: cfg.CircuitBreaker.FailureThreshold,
			MinRequests:      cfg.CircuitBreaker.MinRequests,
		}, logger)
	}
	if publisher != nil {
		store = messaging.NewPublishingNodeStore(store, publisher, logger)
	}
	return store
}

// ProvideAccessor creates the content store accessor.
func ProvideAccessor(store repository.NodeStore, logger *zap.Logger) *service.Accessor {
	return service.NewAccessor(store, logger.Named("accessor"))
}

// ProvideRegistry creates the admin session registry.
func ProvideRegistry(cfg *config.Config, accessor *service.Accessor, collector *observability.Collector, logger *zap.Logger) *admin.Registry {
	var opts []admin.RegistryOption
	if collector != nil {
		opts = append(opts, admin.WithMetrics(collector, collector))
	}
	return admin.NewRegistry(accessor, cfg.Site.SessionTTL, logger.Named("admin"), opts...)
}

// ProvideSiteHandler reads from the store or, for the static source, from the
// content file or the built-in catalog.
func ProvideSiteHandler(cfg *config.Config, accessor *service.Accessor, base *BaseStore, logger *zap.Logger) *handlers.SiteHandler {
	if cfg.Site.Source == config.SourceStatic {
		var static repository.NodeStore = memory.NewNodeStore(pathway.Catalog())
		if base.Content != nil {
			static = base.Content
		}
		accessor = service.NewAccessor(static, logger.Named("static"))
	}
	return handlers.NewSiteHandler(accessor, logger)
}

// ProvideAdminHandler creates the admin page handler.
func ProvideAdminHandler(cfg *config.Config, registry *admin.Registry, logger *zap.Logger) *handlers.AdminHandler {
	return handlers.NewAdminHandler(registry, handlers.CookieConfig{
		Name:   cfg.Site.CookieName,
		Secure: cfg.Site.CookieSecure,
	}, logger)
}

// ProvideNodeHandler creates the JSON API handler.
func ProvideNodeHandler(store repository.NodeStore, errorHandler *appErrors.ErrorHandler, logger *zap.Logger) *handlers.NodeHandler {
	return handlers.NewNodeHandler(store, errorHandler, logger)
}

// ProvideHealthHandler creates the probe handler.
func ProvideHealthHandler(store repository.NodeStore, logger *zap.Logger) *handlers.HealthHandler {
	return handlers.NewHealthHandler(store, logger)
}

// ProvideRouter creates the HTTP router.
func ProvideRouter(
	cfg *config.Config,
	site *handlers.SiteHandler,
	adminHandler *handlers.AdminHandler,
	nodes *handlers.NodeHandler,
	health *handlers.HealthHandler,
	collector *observability.Collector,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(site, adminHandler, nodes, health, collector, rest.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		JWT: middleware.JWTConfig{
			Secret:   cfg.Security.JWTSecret,
			Issuer:   cfg.Security.JWTIssuer,
			Audience: cfg.Security.Audience,
		},
		MetricsPath: cfg.Metrics.Path,
	}, logger)
}
