package assistant

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"robocup_platform/pkg/core/agent"
	coreassistant "robocup_platform/pkg/core/assistant"
	"robocup_platform/pkg/core/fleet"
)

// fakeHistory records whether the stored sales feed was consulted.
type fakeHistory struct {
	records []fleet.SaleRecord
	calls   int
	kioskID string
}

func (f *fakeHistory) SalesHistory(ctx context.Context, kioskID string, limit int) ([]fleet.SaleRecord, error) {
	f.calls++
	f.kioskID = kioskID
	return f.records, nil
}

func newForecastHandler(history *fakeHistory) *Handler {
	client := coreassistant.NewClient(agent.NewManager(agent.Config{}))
	return NewHandler(client, history)
}

func TestForecastPullsHistoryFromStore(t *testing.T) {
	// Without an API key the forecast itself degrades to null; this test pins
	// down where the history comes from, not the remote call.
	t.Setenv("GEMINI_API_KEY", "")

	history := &fakeHistory{records: []fleet.SaleRecord{{ID: "s1", Amount: 15}}}
	h := newForecastHandler(history)

	rec := httptest.NewRecorder()
	h.HandleForecast(rec, httptest.NewRequest("POST", "/api/assistant/forecast",
		strings.NewReader(`{"kiosk_id":"K-001"}`)))

	if history.calls != 1 {
		t.Fatalf("store consulted %d times, want 1", history.calls)
	}
	if history.kioskID != "K-001" {
		t.Errorf("kiosk id = %q, want K-001", history.kioskID)
	}

	var resp ForecastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Forecast != nil {
		t.Errorf("forecast = %+v, want null without a remote service", resp.Forecast)
	}
}

func TestForecastPrefersInlineHistory(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	history := &fakeHistory{}
	h := newForecastHandler(history)

	body := `{"kiosk_id":"K-001","sales_history":[{"id":"s1","amount":15,"product":"espresso"}]}`
	rec := httptest.NewRecorder()
	h.HandleForecast(rec, httptest.NewRequest("POST", "/api/assistant/forecast", strings.NewReader(body)))

	if history.calls != 0 {
		t.Errorf("store consulted %d times for an inline history, want 0", history.calls)
	}
}
