package pathway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
	"github.com/nathan-pham/gradcap-mvp/internal/repository/mocks"
)

type recordingReporter struct {
	ops  []Operation
	errs []error
}

func (r *recordingReporter) ReportFailure(op Operation, err error) {
	r.ops = append(r.ops, op)
	r.errs = append(r.errs, err)
}

func TestListNodesReturnsStoreOrder(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockNodeStore)
	nodes := []domain.Node{
		{ID: "a", Position: 1},
		{ID: "b", Position: 2},
		{ID: "c", Position: 3},
	}
	store.On("ListByPosition", ctx).Return(nodes, nil)

	got := NewAccessor(store, zap.NewNop()).ListNodes(ctx)
	assert.Equal(t, nodes, got)
}

func TestListNodesResortsStably(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockNodeStore)
	store.On("ListByPosition", ctx).Return([]domain.Node{
		{ID: "late", Position: 5},
		{ID: "first-tie", Position: 1},
		{ID: "second-tie", Position: 1},
	}, nil)

	got := NewAccessor(store, zap.NewNop()).ListNodes(ctx)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"first-tie", "second-tie", "late"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestListNodesFailureYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockNodeStore)
	boom := errors.New("network down")
	store.On("ListByPosition", ctx).Return(nil, boom)

	reporter := &recordingReporter{}
	got := NewAccessor(store, zap.NewNop()).WithReporter(reporter).ListNodes(ctx)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, []Operation{OperationList}, reporter.ops)
	assert.ErrorIs(t, reporter.errs[0], boom)
}

func TestListNodesNilFromStore(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockNodeStore)
	store.On("ListByPosition", ctx).Return(nil, nil)

	got := NewAccessor(store, zap.NewNop()).ListNodes(ctx)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdateNodeReturnsStoredRow(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockNodeStore)
	sent := domain.Node{ID: "degree", Title: "New", Details: []string{"a"}, Position: 1}
	stored := sent
	stored.Title = "New (normalised by the store)"
	store.On("UpdateByID", ctx, sent).Return(&stored, nil)

	got := NewAccessor(store, zap.NewNop()).UpdateNode(ctx, sent)
	require.NotNil(t, got)
	assert.Equal(t, stored.Title, got.Title)
	store.AssertExpectations(t)
}

func TestUpdateNodeFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("no matching row", func(t *testing.T) {
		store := new(mocks.MockNodeStore)
		store.On("UpdateByID", ctx, domain.Node{ID: "ghost"}).Return(nil, repository.ErrNodeNotFound("ghost"))

		reporter := &recordingReporter{}
		got := NewAccessor(store, zap.NewNop()).WithReporter(reporter).UpdateNode(ctx, domain.Node{ID: "ghost"})
		assert.Nil(t, got)
		assert.Equal(t, []Operation{OperationUpdate}, reporter.ops)
	})

	t.Run("store error", func(t *testing.T) {
		store := new(mocks.MockNodeStore)
		store.On("UpdateByID", ctx, domain.Node{ID: "degree"}).Return(nil, errors.New("permission denied"))

		assert.Nil(t, NewAccessor(store, zap.NewNop()).UpdateNode(ctx, domain.Node{ID: "degree"}))
	})
}

func TestWithReporterDoesNotShareState(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockNodeStore)
	store.On("ListByPosition", ctx).Return(nil, errors.New("down"))

	base := NewAccessor(store, zap.NewNop())
	first, second := &recordingReporter{}, &recordingReporter{}
	a := base.WithReporter(first)
	b := base.WithReporter(second)

	a.ListNodes(ctx)
	assert.Len(t, first.ops, 1)
	assert.Empty(t, second.ops)

	b.ListNodes(ctx)
	base.ListNodes(ctx)
	assert.Len(t, first.ops, 1)
	assert.Len(t, second.ops, 1)
}
