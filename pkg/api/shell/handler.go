// Package shell exposes the dashboard-shell endpoints: the current display
// role and the role-keyed navigation menu.
package shell

import (
	"encoding/json"
	"net/http"

	"robocup_platform/pkg/core/shell"
)

// Handler holds dependencies for shell endpoints.
type Handler struct {
	Switcher *shell.Switcher
}

// NewHandler creates a shell handler around the single role owner.
func NewHandler(switcher *shell.Switcher) *Handler {
	return &Handler{Switcher: switcher}
}

// RoleResponse reports the active role and the switchable set.
type RoleResponse struct {
	Role      shell.Role   `json:"role"`
	Available []shell.Role `json:"available"`
}

// SwitchRequest asks for a new display role.
type SwitchRequest struct {
	Role string `json:"role"`
}

// HandleRole returns the current role (GET) or switches it (POST).
func (h *Handler) HandleRole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case "OPTIONS":
		w.WriteHeader(http.StatusOK)
	case "GET":
		json.NewEncoder(w).Encode(RoleResponse{Role: h.Switcher.Current(), Available: shell.Roles})
	case "POST":
		var req SwitchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		role, err := shell.ParseRole(req.Role)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.Switcher.Switch(role); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(RoleResponse{Role: h.Switcher.Current(), Available: shell.Roles})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleNav returns the navigation menu for the active role, with the entry
// matching ?path= marked active.
func (h *Handler) HandleNav(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	role := h.Switcher.Current()
	if q := r.URL.Query().Get("role"); q != "" {
		parsed, err := shell.ParseRole(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		role = parsed
	}

	items := shell.BuildNav(role, r.URL.Query().Get("path"))
	json.NewEncoder(w).Encode(map[string]interface{}{
		"role":  role,
		"items": items,
	})
}
