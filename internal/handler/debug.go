package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/viddeck/viddeck/internal/domain"
)

// DebugHandler exposes the user table for development tooling. Both
// routes are hard-disabled in production.
type DebugHandler struct {
	users      domain.UserRepository
	production bool
}

// NewDebugHandler creates a new DebugHandler.
func NewDebugHandler(users domain.UserRepository, production bool) *DebugHandler {
	return &DebugHandler{users: users, production: production}
}

// HandleList returns every user record in insertion order.
// GET /api/debug/users
func (h *DebugHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if h.production {
		writeError(w, http.StatusForbidden, "Forbidden in production")
		return
	}

	users, err := h.users.ListAll(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	list := make([]debugUserDTO, len(users))
	for i, user := range users {
		list[i] = toDebugUserDTO(user)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(list),
		"users": list,
	})
}

// HandleClear removes every user record.
// DELETE /api/debug/users
func (h *DebugHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if h.production {
		writeError(w, http.StatusForbidden, "Forbidden in production")
		return
	}

	count, err := h.users.Clear(r.Context())
	if err != nil {
		slog.Error("clear users", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("cleared user store", "count", count)

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Cleared %d users", count),
	})
}
