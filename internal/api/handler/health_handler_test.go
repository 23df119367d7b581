package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler()
	c, rec := newTestContext(http.MethodGet, "/api/health", "")

	if err := h.Liveness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
	if resp.Timestamp == "" {
		t.Fatal("expected timestamp")
	}
	if resp.Uptime < 0 {
		t.Fatalf("negative uptime: %f", resp.Uptime)
	}
}
