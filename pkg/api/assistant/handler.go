// Package assistant provides HTTP handlers for the AI Business Partner:
// free-form chat and the structured sales forecast.
package assistant

import (
	"context"
	"encoding/json"
	"net/http"

	"robocup_platform/pkg/core/assistant"
	"robocup_platform/pkg/core/fleet"
)

// SalesHistorySource supplies a kiosk's recent sales when the caller does not
// provide them inline.
type SalesHistorySource interface {
	SalesHistory(ctx context.Context, kioskID string, limit int) ([]fleet.SaleRecord, error)
}

// Handler holds dependencies for assistant endpoints.
type Handler struct {
	client  *assistant.Client
	history SalesHistorySource
}

// NewHandler creates a new assistant handler.
func NewHandler(client *assistant.Client, history SalesHistorySource) *Handler {
	return &Handler{client: client, history: history}
}

// AskRequest is the user's question plus free-form page context.
type AskRequest struct {
	Query   string `json:"query"`
	Context string `json:"context,omitempty"`
}

// AskResponse always carries displayable text, even when the service failed.
type AskResponse struct {
	Reply string `json:"reply"`
}

// HandleAsk answers a chat question. This endpoint never returns a 5xx for a
// remote failure; the apology fallback keeps the overlay alive.
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reply := h.client.Ask(r.Context(), req.Query, req.Context)
	json.NewEncoder(w).Encode(AskResponse{Reply: reply})
}

// ForecastRequest carries the sales window to analyze. When the history is
// omitted and a kiosk id is given, the stored sales feed is used instead.
type ForecastRequest struct {
	SalesHistory []fleet.SaleRecord `json:"sales_history"`
	KioskID      string             `json:"kiosk_id,omitempty"`
}

// ForecastResponse mirrors the UI contract: a null forecast means the service
// was unavailable and the dashboard should degrade quietly.
type ForecastResponse struct {
	Forecast *assistant.ForecastResult `json:"forecast"`
}

// HandleForecast produces the 7-day projection for the posted history.
func (h *Handler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	history := req.SalesHistory
	if len(history) == 0 && req.KioskID != "" && h.history != nil {
		// A store miss is not fatal: the forecast proceeds on whatever the
		// client sent, which may legitimately be empty.
		if records, err := h.history.SalesHistory(r.Context(), req.KioskID, 0); err == nil {
			history = records
		}
	}

	result, err := h.client.Forecast(r.Context(), history)
	if err != nil {
		// No retry: the caller renders the dashboard without the forecast card.
		json.NewEncoder(w).Encode(ForecastResponse{Forecast: nil})
		return
	}

	json.NewEncoder(w).Encode(ForecastResponse{Forecast: result})
}
