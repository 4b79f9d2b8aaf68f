// Package calculator exposes the ROI projection engine over HTTP. The engine
// itself is strict about inputs; the UI's clamping conveniences stay client-side.
package calculator

import (
	"encoding/json"
	"errors"
	"net/http"

	"robocup_platform/pkg/core/projection"
)

// Handler holds dependencies for calculator endpoints.
type Handler struct {
	Engine *projection.Engine
}

// NewHandler creates a calculator handler around the shared engine.
func NewHandler(engine *projection.Engine) *Handler {
	return &Handler{Engine: engine}
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleProject computes a projection for the posted inputs.
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	// CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in projection.ProjectionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{Error: "Invalid request body"})
		return
	}

	out, err := h.Engine.Compute(in)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, projection.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
		return
	}

	json.NewEncoder(w).Encode(out)
}
