//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/nathan-pham/gradcap-mvp/internal/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideErrorHandler,
	ProvideCollector,
	ProvideTracerProvider,
	ProvideBaseStore,
	ProvideEventPublisher,
	ProvideNodeStore,
	ProvideAccessor,
	ProvideRegistry,
	ProvideSiteHandler,
	ProvideAdminHandler,
	ProvideNodeHandler,
	ProvideHealthHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil
}
