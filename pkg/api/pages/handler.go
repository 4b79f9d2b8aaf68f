// Package pages serves the rendered marketing content.
package pages

import (
	"encoding/json"
	"net/http"

	"robocup_platform/pkg/core/content"
)

// Handler caches the rendered landing pages at startup.
type Handler struct {
	pages map[string]*content.Page
}

// NewHandler renders the static page set once.
func NewHandler() (*Handler, error) {
	home, err := content.Render("home", content.HomeMarkdown)
	if err != nil {
		return nil, err
	}
	return &Handler{pages: map[string]*content.Page{"home": home}}, nil
}

// HandlePage serves a rendered page by slug (last path segment).
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	slug := r.URL.Query().Get("slug")
	if slug == "" {
		slug = "home"
	}

	page, ok := h.pages[slug]
	if !ok {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(page)
}
