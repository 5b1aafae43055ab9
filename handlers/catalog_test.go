package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleCatalog(t *testing.T) {
	app, deps := newTestDeps(t)
	handler := HandleCatalog(deps)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp catalogJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(resp.Offerings) != 5 {
		t.Errorf("expected 5 offerings, got %d", len(resp.Offerings))
	}
	if len(resp.Zones) != 3 {
		t.Errorf("expected 3 travel zones, got %d", len(resp.Zones))
	}
	if resp.Offerings[0].ID != "cyber-2h" || resp.Offerings[0].DaysPerUnit != 0.5 {
		t.Errorf("first offering = %+v", resp.Offerings[0])
	}
	if resp.Zones[1].DailyRate != 180 {
		t.Errorf("regional daily rate = %v, want 180", resp.Zones[1].DailyRate)
	}
	if resp.MinDailyRate != 1000 || resp.TaxRate != 0.20 {
		t.Errorf("rules = %v / %v", resp.MinDailyRate, resp.TaxRate)
	}
}
