// Package ui renders the server-side HTML console over the remote
// property-management API.
package ui

import (
	"log/slog"
	"net/http"
	"sync"

	gomponents "maragu.dev/gomponents"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/history"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/rest"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/session"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/users"
)

type Handler struct {
	Auth       *rest.AuthService
	Usuarios   *users.Service
	Historial  history.Service
	Sessions   *session.Codec
	Log        *slog.Logger
	Production bool

	mu    sync.Mutex
	views map[string]*history.View
}

func NewHandler(
	auth *rest.AuthService,
	usuarios *users.Service,
	historial history.Service,
	sessions *session.Codec,
	log *slog.Logger,
	production bool,
) *Handler {
	return &Handler{
		Auth:       auth,
		Usuarios:   usuarios,
		Historial:  historial,
		Sessions:   sessions,
		Log:        log,
		Production: production,
		views:      make(map[string]*history.View),
	}
}

// historyView returns the audit-trail view state for one signed-in user,
// creating it on first access. The state machine is per user so one person's
// filters or in-flight loads never bleed into another session.
func (h *Handler) historyView(userID string) *history.View {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.views[userID]
	if !ok {
		v = history.NewView(h.Historial, h.Log)
		h.views[userID] = v
	}
	return v
}

// dropHistoryView discards one user's audit-trail view state. Called on
// logout so the working set does not outlive the browser session.
func (h *Handler) dropHistoryView(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.views, userID)
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func currentUser(r *http.Request) domain.User {
	s, ok := session.FromContext(r.Context())
	if !ok {
		return domain.User{}
	}
	return s.Usuario
}
