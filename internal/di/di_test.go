package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/config"
	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/memory"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/messaging"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/observability"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/persistence"
)

type nopPublisher struct{}

func (nopPublisher) PublishNodeUpdated(context.Context, messaging.NodeUpdatedEvent) error { return nil }

func TestInitializeContainerWithMemoryStore(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	container, cleanup, err := InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, container.Tracer)
	require.NotNil(t, container.Collector)
	assert.IsType(t, &observability.InstrumentedNodeStore{}, container.Store)
	assert.Len(t, container.Accessor.ListNodes(context.Background()), len(pathway.Catalog()))

	rec := httptest.NewRecorder()
	container.Router.Setup().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInitializeContainerWithSQLite(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = config.DriverSQLite
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "pathway.db")

	container, cleanup, err := InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	seeder, ok := container.Base.Seeder()
	require.True(t, ok)
	n, err := seeder.Seed(context.Background(), pathway.Catalog())
	require.NoError(t, err)
	assert.Equal(t, len(pathway.Catalog()), n)
	assert.Len(t, container.Accessor.ListNodes(context.Background()), n)
}

func TestProvideNodeStoreDecoratorOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = config.DriverPostgres
	base := &BaseStore{Store: memory.NewNodeStore(nil), Driver: config.DriverPostgres}

	store := ProvideNodeStore(cfg, base, nil, observability.NewCollector("di_test"), nopPublisher{}, zap.NewNop())
	publishing, ok := store.(*messaging.PublishingNodeStore)
	require.True(t, ok, "event publishing is outermost")
	assert.NotNil(t, publishing)

	cfg.Store.Driver = config.DriverMemory
	store = ProvideNodeStore(cfg, base, nil, nil, nil, zap.NewNop())
	assert.Same(t, base.Store, store, "local drivers run undecorated without metrics")

	cfg.Store.Driver = config.DriverSupabase
	store = ProvideNodeStore(cfg, base, nil, nil, nil, zap.NewNop())
	assert.IsType(t, &persistence.CircuitBreakerNodeStore{}, store)
}

func TestProvideSiteHandlerStaticSource(t *testing.T) {
	cfg := config.Default()
	cfg.Site.Source = config.SourceStatic
	base := &BaseStore{Store: memory.NewNodeStore(nil), Driver: config.DriverMemory}

	handler := ProvideSiteHandler(cfg, nil, base, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Pathway(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Prerequisites", "static source renders the built-in catalog")
}
