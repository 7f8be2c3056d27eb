package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
)

func TestListByPosition(t *testing.T) {
	store := NewNodeStore([]pathway.Node{
		{ID: "c", Title: "C", Position: 3},
		{ID: "a", Title: "A", Position: 1},
		{ID: "b", Title: "B", Position: 2},
	})

	nodes, err := store.ListByPosition(context.Background())
	require.NoError(t, err)

	titles := []string{}
	for _, n := range nodes {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestUpdateByID(t *testing.T) {
	ctx := context.Background()
	store := NewNodeStore(pathway.Catalog())

	node := pathway.Catalog()[0]
	node.Title = "New"
	node.Details = nil

	updated, err := store.UpdateByID(ctx, node)
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.NotNil(t, updated.Details)

	updated.Title = "mutating the result does not touch the store"
	nodes, err := store.ListByPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", nodes[0].Title)

	_, err = store.UpdateByID(ctx, pathway.Node{ID: "missing"})
	assert.True(t, appErrors.IsNotFound(err))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewNodeStore(nil).ListByPosition(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := NewNodeStore(nil)

	n, err := store.Seed(ctx, pathway.Catalog())
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	n, err = store.Seed(ctx, pathway.Catalog())
	require.NoError(t, err)
	assert.Zero(t, n, "seeding a populated store is a no-op")
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewNodeStore(pathway.Catalog())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			node := pathway.Catalog()[i%14]
			_, err := store.UpdateByID(ctx, node)
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			nodes, err := store.ListByPosition(ctx)
			assert.NoError(t, err)
			assert.True(t, pathway.IsOrderedByPosition(nodes))
		}()
	}
	wg.Wait()
}
