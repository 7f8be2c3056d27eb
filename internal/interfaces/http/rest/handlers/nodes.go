package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// NodeHandler is the JSON API over the row store. Unlike the accessor it
// surfaces typed errors to the caller.
type NodeHandler struct {
	store        repository.NodeStore
	errorHandler *appErrors.ErrorHandler
	logger       *zap.Logger
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(store repository.NodeStore, errorHandler *appErrors.ErrorHandler, logger *zap.Logger) *NodeHandler {
	return &NodeHandler{
		store:        store,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// UpdateNodeRequest is the full replacement body for PUT /api/v1/nodes/{nodeID}.
// Only the shape is checked: empty text and unknown icons are stored as sent.
type UpdateNodeRequest struct {
	Title       string   `json:"title" validate:"max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Details     []string `json:"details" validate:"max=50,dive,max=500"`
	Icon        string   `json:"icon,omitempty" validate:"max=64"`
	Position    *int     `json:"position" validate:"required"`
}

func (req UpdateNodeRequest) node(id string) pathway.Node {
	return pathway.Node{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		Icon:        req.Icon,
		Position:    *req.Position,
	}.Normalize()
}

// IconsResponse lists the icon vocabulary.
type IconsResponse struct {
	Icons   []string      `json:"icons"`
	Default pathway.Glyph `json:"default"`
}

// ListNodes returns every pathway node ordered by position
// @Summary List pathway nodes
// @Description Returns all nodes ordered ascending by position
// @Tags nodes
// @Produce json
// @Success 200 {array} pathway.Node "Ordered nodes"
// @Failure 502 {object} errors.ErrorResponse "Store error"
// @Failure 503 {object} errors.ErrorResponse "Store unavailable"
// @Router /nodes [get]
func (h *NodeHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.store.ListByPosition(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, storeError("list_nodes", err))
		return
	}
	if nodes == nil {
		nodes = []pathway.Node{}
	}
	h.respondJSON(w, http.StatusOK, nodes)
}

// UpdateNode overwrites the editable columns of one node
// @Summary Update a pathway node
// @Description Replaces title, description, details, icon and position of the node
// @Tags nodes
// @Accept json
// @Produce json
// @Param nodeID path string true "Node ID" example:"exam-p"
// @Param request body UpdateNodeRequest true "Node contents"
// @Success 200 {object} pathway.Node "Node as stored"
// @Failure 400 {object} errors.ErrorResponse "Invalid request"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized"
// @Failure 404 {object} errors.ErrorResponse "Node not found"
// @Failure 502 {object} errors.ErrorResponse "Store error"
// @Security BearerAuth
// @Router /nodes/{nodeID} [put]
func (h *NodeHandler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")

	var req UpdateNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorHandler.Handle(w, r, appErrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := validateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	updated, err := h.store.UpdateByID(r.Context(), req.node(nodeID))
	if err != nil {
		h.errorHandler.Handle(w, r, storeError("update_node", err))
		return
	}
	if updated == nil {
		h.errorHandler.Handle(w, r, repository.ErrNodeNotFound(nodeID))
		return
	}

	h.logger.Info("Node updated via API", zap.String("node_id", nodeID))
	h.respondJSON(w, http.StatusOK, updated)
}

// ListIcons returns the recognised icon names
// @Summary List icon names
// @Tags nodes
// @Produce json
// @Success 200 {object} IconsResponse
// @Router /icons [get]
func (h *NodeHandler) ListIcons(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, IconsResponse{
		Icons:   pathway.KnownIcons(),
		Default: pathway.DefaultGlyph(),
	})
}

func (h *NodeHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// storeError keeps typed store errors and classifies anything else as a
// database failure.
func storeError(operation string, err error) error {
	if appErrors.GetAppError(err) != nil {
		return err
	}
	return appErrors.NewDatabaseError(operation, err)
}
