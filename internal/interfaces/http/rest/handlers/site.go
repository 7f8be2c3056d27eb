package handlers

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	service "github.com/nathan-pham/gradcap-mvp/internal/service/pathway"
)

// SiteHandler renders the public pathway page.
type SiteHandler struct {
	accessor *service.Accessor
	logger   *zap.Logger
}

// NewSiteHandler creates a site handler reading through accessor.
func NewSiteHandler(accessor *service.Accessor, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{accessor: accessor, logger: logger}
}

type pathwayCard struct {
	Node     pathway.Node
	Glyph    pathway.Glyph
	Selected bool
	Href     string
}

type sitePage struct {
	Cards      []pathwayCard
	Selected   *pathway.Node
	LoadFailed bool
}

// Pathway handles GET /. The node query parameter selects a card; the
// selected card links back to the unselected page.
func (h *SiteHandler) Pathway(w http.ResponseWriter, r *http.Request) {
	failed := false
	accessor := h.accessor.WithReporter(service.ReporterFunc(func(service.Operation, error) {
		failed = true
	}))
	nodes := accessor.ListNodes(r.Context())

	selectedID := r.URL.Query().Get("node")
	page := sitePage{
		Cards:      make([]pathwayCard, 0, len(nodes)),
		LoadFailed: failed,
	}
	for _, node := range nodes {
		card := pathwayCard{
			Node:  node,
			Glyph: node.Glyph(),
			Href:  "/?node=" + url.QueryEscape(node.ID),
		}
		if node.ID == selectedID && page.Selected == nil {
			card.Selected = true
			card.Href = "/"
			selected := node
			page.Selected = &selected
		}
		page.Cards = append(page.Cards, card)
	}

	status := http.StatusOK
	if failed {
		status = http.StatusServiceUnavailable
	}
	render(w, h.logger, status, "site", page)
}
