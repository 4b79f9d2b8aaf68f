package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"robocup_platform/pkg/core/fleet"
)

// FleetRepo persists franchisee fleet snapshots and the sales history window
// the forecast model consumes. Calculator inputs and outputs are deliberately
// never stored here.
type FleetRepo struct{}

// NewFleetRepo creates a new repository instance.
func NewFleetRepo() *FleetRepo {
	return &FleetRepo{}
}

// SaveFleet upserts the snapshot for one franchisee, keyed by franchisee id.
// A single JSONB blob keeps the kiosk list and telemetry together.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS franchisee_fleet (
//	  franchisee_id TEXT PRIMARY KEY,
//	  fleet_json    JSONB,
//	  updated_at    TIMESTAMPTZ
//	);
func (r *FleetRepo) SaveFleet(ctx context.Context, data *fleet.FranchiseeData) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal fleet snapshot: %w", err)
	}

	query := `
		INSERT INTO franchisee_fleet (franchisee_id, fleet_json, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (franchisee_id)
		DO UPDATE SET fleet_json = EXCLUDED.fleet_json, updated_at = EXCLUDED.updated_at`

	if _, err := pool.Exec(ctx, query, data.ID, jsonData, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save fleet snapshot: %w", err)
	}
	return nil
}

// LoadFleet reads the snapshot for a franchisee. A missing row is an error the
// dashboard handler maps to its demo fixture.
func (r *FleetRepo) LoadFleet(ctx context.Context, franchiseeID string) (*fleet.FranchiseeData, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := pool.QueryRow(ctx,
		`SELECT fleet_json FROM franchisee_fleet WHERE franchisee_id = $1`,
		franchiseeID,
	).Scan(&jsonData)
	if err != nil {
		return nil, fmt.Errorf("failed to load fleet snapshot: %w", err)
	}

	var data fleet.FranchiseeData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to decode fleet snapshot: %w", err)
	}
	return &data, nil
}

// AppendSale records one sale event for a kiosk.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS kiosk_sales (
//	  id       TEXT PRIMARY KEY,
//	  kiosk_id TEXT NOT NULL,
//	  sold_at  TIMESTAMPTZ NOT NULL,
//	  amount   NUMERIC NOT NULL,
//	  product  TEXT
//	);
func (r *FleetRepo) AppendSale(ctx context.Context, kioskID string, rec fleet.SaleRecord) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO kiosk_sales (id, kiosk_id, sold_at, amount, product) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, kioskID, rec.Timestamp, rec.Amount, rec.Product,
	)
	if err != nil {
		return "", fmt.Errorf("failed to append sale: %w", err)
	}
	return rec.ID, nil
}

// SalesHistory returns the most recent sale events for a kiosk, newest first.
// This window is what feeds the 7-day forecast.
func (r *FleetRepo) SalesHistory(ctx context.Context, kioskID string, limit int) ([]fleet.SaleRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := pool.Query(ctx,
		`SELECT id, sold_at, amount, product FROM kiosk_sales WHERE kiosk_id = $1 ORDER BY sold_at DESC LIMIT $2`,
		kioskID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales history: %w", err)
	}
	defer rows.Close()

	var records []fleet.SaleRecord
	for rows.Next() {
		var rec fleet.SaleRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Amount, &rec.Product); err != nil {
			return nil, fmt.Errorf("failed to scan sale record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
