package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/service/admin"
)

// CookieConfig names the admin session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AdminHandler serves the edit surface. Each browser owns one admin.Session
// identified by a cookie.
type AdminHandler struct {
	registry *admin.Registry
	cookie   CookieConfig
	logger   *zap.Logger
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(registry *admin.Registry, cookie CookieConfig, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{registry: registry, cookie: cookie, logger: logger}
}

type adminPage struct {
	View          admin.View
	Notifications []admin.Notification
	Icons         []string
	Saving        bool
}

// Page handles GET /admin. Every visit reloads the nodes from the store.
func (h *AdminHandler) Page(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if err := session.Load(r.Context()); err != nil && !errors.Is(err, admin.ErrSaveInFlight) {
		h.logger.Error("Failed to load admin session", zap.Error(err))
	}

	view := session.View()
	render(w, h.logger, http.StatusOK, "admin", adminPage{
		View:          view,
		Notifications: session.DrainNotifications(),
		Icons:         pathway.KnownIcons(),
		Saving:        view.State == admin.StateSaving,
	})
}

// Select handles POST /admin/select/{nodeID} and toggles the selection.
func (h *AdminHandler) Select(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	nodeID := chi.URLParam(r, "nodeID")

	if err := session.Select(nodeID); err != nil {
		h.logger.Info("Selection rejected",
			zap.String("node_id", nodeID),
			zap.String("session_id", session.ID()),
			zap.Error(err))
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Save handles POST /admin/save: the posted form replaces the session form and
// is sent to the store.
func (h *AdminHandler) Save(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	session.Apply(admin.FormInput{
		ID:          r.PostForm.Get("id"),
		Title:       r.PostForm.Get("title"),
		Description: r.PostForm.Get("description"),
		Details:     r.PostForm.Get("details"),
		Icon:        r.PostForm.Get("icon"),
		Position:    r.PostForm.Get("position"),
	})
	if _, err := session.Save(r.Context()); err != nil {
		h.logger.Info("Save rejected", zap.String("session_id", session.ID()), zap.Error(err))
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// session returns the caller's session, issuing a cookie for new ones.
func (h *AdminHandler) session(w http.ResponseWriter, r *http.Request) *admin.Session {
	id := ""
	if cookie, err := r.Cookie(h.cookie.Name); err == nil {
		id = cookie.Value
	}

	session, created := h.registry.Get(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookie.Name,
			Value:    session.ID(),
			Path:     "/admin",
			HttpOnly: true,
			Secure:   h.cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		if r.Method != http.MethodGet {
			// A POST without a live session has nothing to act on yet.
			_ = session.Load(r.Context())
		}
	}
	return session
}
