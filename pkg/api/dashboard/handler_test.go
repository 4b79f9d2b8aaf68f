package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"robocup_platform/pkg/core/fleet"
)

// fakeStore records repository calls without a database.
type fakeStore struct {
	fleet   *fleet.FranchiseeData
	history []fleet.SaleRecord
	err     error

	saved    *fleet.FranchiseeData
	appended []fleet.SaleRecord
}

func (f *fakeStore) LoadFleet(ctx context.Context, franchiseeID string) (*fleet.FranchiseeData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.fleet, nil
}

func (f *fakeStore) SaveFleet(ctx context.Context, data *fleet.FranchiseeData) error {
	if f.err != nil {
		return f.err
	}
	f.saved = data
	return nil
}

func (f *fakeStore) AppendSale(ctx context.Context, kioskID string, rec fleet.SaleRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.appended = append(f.appended, rec)
	return "sale-1", nil
}

func (f *fakeStore) SalesHistory(ctx context.Context, kioskID string, limit int) ([]fleet.SaleRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func TestFleetServesStoredSnapshot(t *testing.T) {
	store := &fakeStore{fleet: &fleet.FranchiseeData{ID: "fr-42", Name: "Stored Franchisee"}}
	h := NewHandler(store, nil)

	rec := httptest.NewRecorder()
	h.HandleFleet(rec, httptest.NewRequest("GET", "/api/dashboard/fleet?franchisee=fr-42", nil))

	var got fleet.FranchiseeData
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if got.Name != "Stored Franchisee" {
		t.Errorf("name = %q, want stored snapshot", got.Name)
	}
}

func TestFleetFallsBackToFixture(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("database pool not initialized")}
	h := NewHandler(store, nil)

	rec := httptest.NewRecorder()
	h.HandleFleet(rec, httptest.NewRequest("GET", "/api/dashboard/fleet", nil))

	var got fleet.FranchiseeData
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if got.Name != "Demo Franchisee" {
		t.Errorf("name = %q, want demo fixture", got.Name)
	}
	if len(got.Kiosks) != 2 {
		t.Errorf("fixture kiosks = %d, want 2", len(got.Kiosks))
	}
}

func TestFleetSavesReportedSnapshot(t *testing.T) {
	store := &fakeStore{}
	h := NewHandler(store, nil)

	body := `{"id":"fr-7","name":"New Franchisee"}`
	rec := httptest.NewRecorder()
	h.HandleFleet(rec, httptest.NewRequest("POST", "/api/dashboard/fleet", strings.NewReader(body)))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if store.saved == nil || store.saved.ID != "fr-7" {
		t.Errorf("snapshot not saved: %+v", store.saved)
	}
}

func TestFleetRejectsSnapshotWithoutID(t *testing.T) {
	store := &fakeStore{}
	h := NewHandler(store, nil)

	rec := httptest.NewRecorder()
	h.HandleFleet(rec, httptest.NewRequest("POST", "/api/dashboard/fleet", strings.NewReader(`{"name":"Anonymous"}`)))

	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if store.saved != nil {
		t.Error("snapshot without id was saved")
	}
}

func TestSalesAppendsRecord(t *testing.T) {
	store := &fakeStore{}
	h := NewHandler(store, nil)

	body := `{"kiosk_id":"K-001","amount":15,"product":"flat white"}`
	rec := httptest.NewRecorder()
	h.HandleSales(rec, httptest.NewRequest("POST", "/api/dashboard/sales", strings.NewReader(body)))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp SaleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.ID != "sale-1" {
		t.Errorf("id = %q, want sale-1", resp.ID)
	}
	if len(store.appended) != 1 || store.appended[0].Product != "flat white" {
		t.Errorf("appended = %+v", store.appended)
	}
}

func TestSalesReturnsHistoryWindow(t *testing.T) {
	store := &fakeStore{history: []fleet.SaleRecord{
		{ID: "s1", Amount: 15, Product: "espresso"},
		{ID: "s2", Amount: 18, Product: "latte"},
	}}
	h := NewHandler(store, nil)

	rec := httptest.NewRecorder()
	h.HandleSales(rec, httptest.NewRequest("GET", "/api/dashboard/sales?kiosk=K-001", nil))

	var got []fleet.SaleRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("records = %d, want 2", len(got))
	}
}

func TestSalesUnavailableWithoutStore(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("database pool not initialized")}
	h := NewHandler(store, nil)

	rec := httptest.NewRecorder()
	h.HandleSales(rec, httptest.NewRequest("GET", "/api/dashboard/sales?kiosk=K-001", nil))

	if rec.Code != 503 {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
