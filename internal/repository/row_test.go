package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
)

func TestRowToNodeNulls(t *testing.T) {
	node := Row{NodeID: "x", Title: "T"}.ToNode()

	assert.Equal(t, "x", node.ID)
	assert.Equal(t, "", node.Icon)
	assert.Equal(t, 0, node.Position)
	assert.NotNil(t, node.Details)
	assert.Empty(t, node.Details)
}

func TestRowFromNode(t *testing.T) {
	node := pathway.Node{ID: "x", Title: "T", Details: []string{"a"}, Position: 4}
	row := RowFromNode(node)

	assert.Nil(t, row.Icon)
	assert.Equal(t, 4, *row.Position)
	assert.Equal(t, node, row.ToNode())

	node.Icon = "Globe"
	update := UpdateFromNode(node)
	assert.Equal(t, "Globe", *update.Icon)
	assert.Equal(t, []string{"a"}, update.Details)
}

func TestErrNodeNotFound(t *testing.T) {
	err := ErrNodeNotFound("x")
	assert.True(t, appErrors.IsNotFound(err))
}
