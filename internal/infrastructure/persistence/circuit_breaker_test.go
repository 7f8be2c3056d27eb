package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
	"github.com/nathan-pham/gradcap-mvp/internal/repository/mocks"
)

func testConfig() CircuitBreakerConfig {
	cfg := DefaultCircuitBreakerConfig("test-store")
	cfg.MinRequests = 2
	cfg.FailureThreshold = 0.5
	cfg.Timeout = time.Minute
	return cfg
}

func TestCircuitBreakerPassesThrough(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.MockNodeStore)
	nodes := pathway.Catalog()
	inner.On("ListByPosition", ctx).Return(nodes, nil)

	store := NewCircuitBreakerNodeStore(inner, testConfig(), zap.NewNop())
	got, err := store.ListByPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, nodes, got)
	assert.Equal(t, gobreaker.StateClosed, store.State())
}

func TestCircuitBreakerOpensOnFailures(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.MockNodeStore)
	inner.On("ListByPosition", ctx).Return(nil, errors.New("connection refused")).Times(2)

	store := NewCircuitBreakerNodeStore(inner, testConfig(), zap.NewNop())
	for i := 0; i < 2; i++ {
		_, err := store.ListByPosition(ctx)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, store.State())

	_, err := store.ListByPosition(ctx)
	assert.True(t, appErrors.IsUnavailable(err))
	inner.AssertNumberOfCalls(t, "ListByPosition", 2)
}

func TestCircuitBreakerIgnoresNotFound(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.MockNodeStore)
	node := pathway.Node{ID: "ghost"}
	inner.On("UpdateByID", ctx, node).Return(nil, repository.ErrNodeNotFound("ghost"))

	store := NewCircuitBreakerNodeStore(inner, testConfig(), zap.NewNop())
	for i := 0; i < 5; i++ {
		_, err := store.UpdateByID(ctx, node)
		assert.True(t, appErrors.IsNotFound(err))
	}
	assert.Equal(t, gobreaker.StateClosed, store.State())
	inner.AssertNumberOfCalls(t, "UpdateByID", 5)
}

func TestIsSuccessful(t *testing.T) {
	assert.True(t, isSuccessful(nil))
	assert.True(t, isSuccessful(context.Canceled))
	assert.True(t, isSuccessful(appErrors.NewValidationError("bad")))
	assert.False(t, isSuccessful(appErrors.NewDatabaseError("list", errors.New("boom"))))
}
