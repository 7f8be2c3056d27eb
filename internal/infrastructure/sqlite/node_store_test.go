package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
)

func openTestStore(t *testing.T) *NodeStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "pathway.db"), "pathway_nodes", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSeedAndList(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	nodes, err := store.ListByPosition(ctx)
	require.NoError(t, err)
	assert.Empty(t, nodes)
	assert.NotNil(t, nodes)

	catalog := pathway.Catalog()
	n, err := store.Seed(ctx, catalog)
	require.NoError(t, err)
	assert.Equal(t, len(catalog), n)

	n, err = store.Seed(ctx, catalog)
	require.NoError(t, err)
	assert.Zero(t, n, "seeding a populated table is a no-op")

	nodes, err = store.ListByPosition(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, len(catalog))
	assert.True(t, pathway.IsOrderedByPosition(nodes))
	assert.Equal(t, catalog[0], nodes[0])
}

func TestUpdateByIDReturnsStoredRow(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	_, err := store.Seed(ctx, pathway.Catalog())
	require.NoError(t, err)

	node := pathway.Catalog()[0]
	node.Title = "New"
	node.Icon = ""
	node.Details = []string{"a", "b"}
	node.Position = 20

	updated, err := store.UpdateByID(ctx, node)
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "", updated.Icon)
	assert.Equal(t, []string{"a", "b"}, updated.Details)
	assert.Equal(t, 20, updated.Position)

	nodes, err := store.ListByPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, node.ID, nodes[len(nodes)-1].ID)
}

func TestUpdateByIDMissingRow(t *testing.T) {
	store := openTestStore(t)

	_, err := store.UpdateByID(context.Background(), pathway.Node{ID: "nope"})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestNullColumnsReadAsDefaults(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.db.ExecContext(ctx,
		"INSERT INTO pathway_nodes (node_id, title, description) VALUES ('bare', 'Bare', 'no extras')")
	require.NoError(t, err)

	nodes, err := store.ListByPosition(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, 0, nodes[0].Position)
	assert.Equal(t, "", nodes[0].Icon)
	assert.Equal(t, []string{}, nodes[0].Details)
}

func TestPing(t *testing.T) {
	assert.NoError(t, openTestStore(t).Ping(context.Background()))
}
