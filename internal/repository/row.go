package repository

import (
	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
)

// Row is the persisted shape of a pathway node.
type Row struct {
	NodeID      string   `json:"node_id" dynamodbav:"node_id"`
	Title       string   `json:"title" dynamodbav:"title"`
	Description string   `json:"description" dynamodbav:"description"`
	Details     []string `json:"details" dynamodbav:"details"`
	Icon        *string  `json:"icon" dynamodbav:"icon"`
	Position    *int     `json:"position" dynamodbav:"position"`
}

// UpdateRow is the column set written by UpdateByID.
type UpdateRow struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Icon        *string  `json:"icon"`
	Position    int      `json:"position"`
}

// ToNode maps a row to the domain node. Null details become empty, null icon
// becomes "", null position becomes 0.
func (r Row) ToNode() pathway.Node {
	node := pathway.Node{
		ID:          r.NodeID,
		Title:       r.Title,
		Description: r.Description,
		Details:     r.Details,
	}
	if r.Icon != nil {
		node.Icon = *r.Icon
	}
	if r.Position != nil {
		node.Position = *r.Position
	}
	return node.Normalize()
}

// RowFromNode maps a node to its row. An empty icon is stored as null.
func RowFromNode(n pathway.Node) Row {
	position := n.Position
	return Row{
		NodeID:      n.ID,
		Title:       n.Title,
		Description: n.Description,
		Details:     n.Normalize().Details,
		Icon:        IconColumn(n.Icon),
		Position:    &position,
	}
}

// UpdateFromNode builds the SET clause values for node.
func UpdateFromNode(n pathway.Node) UpdateRow {
	return UpdateRow{
		Title:       n.Title,
		Description: n.Description,
		Details:     n.Normalize().Details,
		Icon:        IconColumn(n.Icon),
		Position:    n.Position,
	}
}

// IconColumn maps "" to a null column value.
func IconColumn(icon string) *string {
	if icon == "" {
		return nil
	}
	return &icon
}

// ErrNodeNotFound is returned by UpdateByID when no row carries the id.
func ErrNodeNotFound(id string) error {
	return appErrors.NewNotFoundError("pathway node").WithDetail("node_id", id)
}
