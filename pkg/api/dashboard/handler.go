// Package dashboard serves the franchisee fleet snapshot and the per-kiosk
// sales feed. With a database the snapshot comes from the fleet store; without
// one the demo fixture keeps the UI alive.
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"robocup_platform/pkg/core/fleet"
)

// FleetStore is the slice of the fleet repository the dashboard depends on.
type FleetStore interface {
	LoadFleet(ctx context.Context, franchiseeID string) (*fleet.FranchiseeData, error)
	SaveFleet(ctx context.Context, data *fleet.FranchiseeData) error
	AppendSale(ctx context.Context, kioskID string, rec fleet.SaleRecord) (string, error)
	SalesHistory(ctx context.Context, kioskID string, limit int) ([]fleet.SaleRecord, error)
}

// Handler holds dependencies for dashboard endpoints.
type Handler struct {
	Store FleetStore
	Log   *zap.Logger
}

// NewHandler creates a dashboard handler.
func NewHandler(store FleetStore, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: store, Log: log}
}

// HandleFleet returns the fleet snapshot for ?franchisee=<id> (GET) or upserts
// a reported snapshot (POST).
func (h *Handler) HandleFleet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case "OPTIONS":
		w.WriteHeader(http.StatusOK)
	case "GET":
		id := r.URL.Query().Get("franchisee")
		if id == "" {
			id = "demo"
		}

		data, err := h.Store.LoadFleet(r.Context(), id)
		if err != nil {
			h.Log.Debug("fleet snapshot unavailable, serving fixture", zap.String("franchisee", id), zap.Error(err))
			json.NewEncoder(w).Encode(demoFleet(id))
			return
		}
		json.NewEncoder(w).Encode(data)
	case "POST":
		var data fleet.FranchiseeData
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if data.ID == "" {
			http.Error(w, "Franchisee id is required", http.StatusBadRequest)
			return
		}
		if err := h.Store.SaveFleet(r.Context(), &data); err != nil {
			h.Log.Warn("failed to save fleet snapshot", zap.String("franchisee", data.ID), zap.Error(err))
			http.Error(w, "Fleet store unavailable", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(&data)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// SaleRequest is one sale event reported by a kiosk.
type SaleRequest struct {
	KioskID string  `json:"kiosk_id"`
	Amount  float64 `json:"amount"`
	Product string  `json:"product"`
}

// SaleResponse returns the id assigned to the recorded sale.
type SaleResponse struct {
	ID string `json:"id"`
}

// HandleSales records a sale event (POST) or returns the recent history window
// for ?kiosk=<id> (GET). This history is what feeds the 7-day forecast.
func (h *Handler) HandleSales(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case "OPTIONS":
		w.WriteHeader(http.StatusOK)
	case "GET":
		kioskID := r.URL.Query().Get("kiosk")
		if kioskID == "" {
			http.Error(w, "Kiosk id is required", http.StatusBadRequest)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		records, err := h.Store.SalesHistory(r.Context(), kioskID, limit)
		if err != nil {
			h.Log.Warn("failed to load sales history", zap.String("kiosk", kioskID), zap.Error(err))
			http.Error(w, "Sales history unavailable", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(records)
	case "POST":
		var req SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.KioskID == "" {
			http.Error(w, "Kiosk id is required", http.StatusBadRequest)
			return
		}

		id, err := h.Store.AppendSale(r.Context(), req.KioskID, fleet.SaleRecord{
			Amount:  req.Amount,
			Product: req.Product,
		})
		if err != nil {
			h.Log.Warn("failed to record sale", zap.String("kiosk", req.KioskID), zap.Error(err))
			http.Error(w, "Fleet store unavailable", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(SaleResponse{ID: id})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// demoFleet mirrors the seeded dashboard shown before a real fleet reports in.
func demoFleet(id string) *fleet.FranchiseeData {
	return &fleet.FranchiseeData{
		ID:            id,
		Name:          "Demo Franchisee",
		JoinDate:      "2025-01-15",
		TotalInvested: 150000,
		MonthlySalary: 12000,
		TotalCupsSold: 9420,
		Kiosks: []fleet.Kiosk{
			{
				ID:            "K-001",
				Location:      "Dubai Mall, Level 2",
				Status:        fleet.StatusActive,
				CupsSoldToday: 84,
				RevenueToday:  1260,
				Consumables:   fleet.Consumables{CoffeeBeans: 72, Milk: 64, Cups: 81, Water: 90},
				LastService:   "2025-08-01",
			},
			{
				ID:            "K-002",
				Location:      "Marina Walk",
				Status:        fleet.StatusMaintenance,
				CupsSoldToday: 0,
				RevenueToday:  0,
				Consumables:   fleet.Consumables{CoffeeBeans: 18, Milk: 9, Cups: 40, Water: 55},
				LastService:   "2025-08-20",
			},
		},
	}
}
