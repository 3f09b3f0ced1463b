package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/kvstore"
	"github.com/rogerio-castellano/freshtrack/internal/settings"
	"github.com/rogerio-castellano/freshtrack/internal/stats"
)

// GetDashboardStatsHandler godoc
// @Summary Freshness summary counts for the dashboard
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Stats
// @Failure 500 {string} string "Internal error"
// @Router /stats/dashboard [get]
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}

	s := settings.Load(r.Context(), kvStore)
	snapshot := stats.Snapshot(products, time.Now(), s.ThresholdDays)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetPendingNotificationHandler godoc
// @Summary Read the pending notification left by the last mutation check
// @Tags notifications
// @Produce json
// @Success 200 {object} PendingNotificationResponse
// @Failure 404 {string} string "No pending notification"
// @Failure 500 {string} string "Internal error"
// @Router /notifications/pending [get]
func GetPendingNotificationHandler(w http.ResponseWriter, r *http.Request) {
	message, err := kvStore.Get(r.Context(), kvstore.PendingNotificationKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			http.Error(w, "no pending notification", http.StatusNotFound)
			return
		}
		http.Error(w, "could not read notification", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PendingNotificationResponse{Message: message})
}

// ClearPendingNotificationHandler godoc
// @Summary Clear the pending notification after it has been displayed
// @Tags notifications
// @Success 204 "Cleared"
// @Failure 500 {string} string "Internal error"
// @Router /notifications/pending [delete]
// @Security BearerAuth
func ClearPendingNotificationHandler(w http.ResponseWriter, r *http.Request) {
	if err := kvStore.Delete(r.Context(), kvstore.PendingNotificationKey); err != nil {
		http.Error(w, "could not clear notification", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
