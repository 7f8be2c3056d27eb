package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/memory"
	service "github.com/nathan-pham/gradcap-mvp/internal/service/pathway"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type gaugeRecorder struct{ last int }

func (g *gaugeRecorder) SetActiveSessions(n int) { g.last = n }

func TestRegistryReusesAndExpiresSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	gauge := &gaugeRecorder{}
	accessor := service.NewAccessor(memory.NewNodeStore(pathway.Catalog()), zap.NewNop())
	registry := NewRegistry(accessor, time.Hour, zap.NewNop(), WithClock(clock.Now), WithMetrics(nil, gauge))

	first, created := registry.Get("")
	require.True(t, created)
	require.NoError(t, first.Load(context.Background()))

	again, created := registry.Get(first.ID())
	assert.False(t, created)
	assert.Same(t, first, again)

	second, created := registry.Get("forged-id")
	assert.True(t, created)
	assert.NotEqual(t, "forged-id", second.ID())
	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, 2, gauge.last)

	clock.now = clock.now.Add(2 * time.Hour)
	assert.Equal(t, 2, registry.Sweep())
	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, 0, gauge.last)

	_, created = registry.Get(first.ID())
	assert.True(t, created, "expired sessions are replaced")
}

func TestRegistryGetDropsExpiredEntry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	gauge := &gaugeRecorder{}
	accessor := service.NewAccessor(memory.NewNodeStore(pathway.Catalog()), zap.NewNop())
	registry := NewRegistry(accessor, time.Hour, zap.NewNop(), WithClock(clock.Now), WithMetrics(nil, gauge))

	stale, _ := registry.Get("")
	clock.now = clock.now.Add(2 * time.Hour)

	fresh, created := registry.Get(stale.ID())
	require.True(t, created)
	assert.NotEqual(t, stale.ID(), fresh.ID())
	assert.Equal(t, 1, registry.Len(), "expired entry is removed without a sweep")
	assert.Equal(t, 1, gauge.last)
	assert.Equal(t, 0, registry.Sweep())
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	accessor := service.NewAccessor(memory.NewNodeStore(pathway.Catalog()), zap.NewNop())
	registry := NewRegistry(accessor, time.Hour, zap.NewNop())

	a, _ := registry.Get("")
	b, _ := registry.Get("")
	require.NoError(t, a.Load(context.Background()))
	require.NoError(t, b.Load(context.Background()))

	require.NoError(t, a.Select("degree"))
	assert.True(t, a.View().HasSelection())
	assert.False(t, b.View().HasSelection())
}

func TestRegistryRunStops(t *testing.T) {
	accessor := service.NewAccessor(memory.NewNodeStore(nil), zap.NewNop())
	registry := NewRegistry(accessor, time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		registry.Run(ctx, 10*time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
