package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
)

func TestBuildNodePosition(t *testing.T) {
	selected := pathway.Node{ID: "degree", Position: 7}

	tests := []struct {
		name     string
		position string
		want     int
	}{
		{"numeric", "3", 3},
		{"padded", " 4 ", 4},
		{"zero is a value", "0", 0},
		{"negative", "-2", -2},
		{"empty falls back", "", 7},
		{"non-numeric falls back", "third", 7},
		{"trailing text falls back", "3rd", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := BuildNode(selected, FormInput{ID: "degree", Position: tt.position})
			assert.Equal(t, tt.want, node.Position)
		})
	}
}

func TestFormRoundTrip(t *testing.T) {
	for _, node := range pathway.Catalog() {
		built := BuildNode(node, FormFromNode(node))
		assert.Equal(t, node, built, node.ID)
	}
}

func TestBuildNodeMissingIDUsesSelection(t *testing.T) {
	node := BuildNode(pathway.Node{ID: "degree"}, FormInput{})
	assert.Equal(t, "degree", node.ID)
	assert.NotNil(t, node.Details)
}
