package di

import (
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/config"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/observability"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/tracing"
	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/http/rest"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
	"github.com/nathan-pham/gradcap-mvp/internal/service/admin"
	service "github.com/nathan-pham/gradcap-mvp/internal/service/pathway"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Tracer    *tracing.TracerProvider
	Collector *observability.Collector
	Base      *BaseStore
	Store     repository.NodeStore
	Accessor  *service.Accessor
	Registry  *admin.Registry
	Router    *rest.Router
}
