package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/freshtrack/internal/http"
	handler "github.com/rogerio-castellano/freshtrack/internal/http/handlers"
)

func TestGetSettingsHandler_Defaults(t *testing.T) {
	t.Cleanup(clearStoredSettings)
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/settings", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.SettingsResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.ThresholdDays != 2 {
		t.Errorf("expected default threshold 2, got %d", resp.ThresholdDays)
	}
	if resp.EmailNotifications || resp.AppNotifications {
		t.Errorf("expected toggles off by default, got %+v", resp)
	}
}

func TestPutSettingsHandler_RoundTrip(t *testing.T) {
	t.Cleanup(clearStoredSettings)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPut, "/settings", handler.SettingsRequest{
		ThresholdDays:      5,
		EmailNotifications: true,
		AppNotifications:   true,
		EmailAddress:       "user@example.com",
	}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var saved handler.SettingsResponse
	json.NewDecoder(w.Body).Decode(&saved)
	if saved.LastUpdated == "" {
		t.Error("expected last_updated to be stamped")
	}

	w = doRequest(r, http.MethodGet, "/settings", nil, false)
	var resp handler.SettingsResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.ThresholdDays != 5 || !resp.EmailNotifications || !resp.AppNotifications {
		t.Errorf("round trip mismatch: %+v", resp)
	}
	if resp.EmailAddress != "user@example.com" {
		t.Errorf("expected email address to survive, got %q", resp.EmailAddress)
	}
}

func TestPutSettingsHandler_Invalid(t *testing.T) {
	t.Cleanup(clearStoredSettings)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPut, "/settings", handler.SettingsRequest{ThresholdDays: -1}, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative threshold, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPut, "/settings", handler.SettingsRequest{ThresholdDays: 3}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
