package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/settings"
)

func toSettingsResponse(s settings.Settings) SettingsResponse {
	resp := SettingsResponse{
		ThresholdDays:      s.ThresholdDays,
		EmailNotifications: s.EmailNotifications,
		AppNotifications:   s.AppNotifications,
		EmailAddress:       s.EmailAddress,
	}
	if !s.LastUpdated.IsZero() {
		resp.LastUpdated = s.LastUpdated.Format(time.RFC3339)
	}
	return resp
}

// GetSettingsHandler godoc
// @Summary Read the notification settings
// @Description Missing or malformed stored settings yield the defaults
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Router /settings [get]
func GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	s := settings.Load(r.Context(), kvStore)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toSettingsResponse(s))
}

// PutSettingsHandler godoc
// @Summary Replace the notification settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body SettingsRequest true "New settings"
// @Success 200 {object} SettingsResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /settings [put]
// @Security BearerAuth
func PutSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.ThresholdDays < 0 {
		http.Error(w, "threshold must be zero or positive", http.StatusBadRequest)
		return
	}

	saved, err := settings.Save(r.Context(), kvStore, settings.Settings{
		ThresholdDays:      req.ThresholdDays,
		EmailNotifications: req.EmailNotifications,
		AppNotifications:   req.AppNotifications,
		EmailAddress:       req.EmailAddress,
	})
	if err != nil {
		http.Error(w, "could not save settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toSettingsResponse(saved))
}
