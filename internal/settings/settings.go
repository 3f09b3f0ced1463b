// Package settings reads the user notification settings blob.
package settings

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/kvstore"
)

// DefaultThresholdDays is used whenever no valid threshold is stored.
const DefaultThresholdDays = 2

type Settings struct {
	ThresholdDays      int
	EmailNotifications bool
	AppNotifications   bool
	EmailAddress       string
	LastUpdated        time.Time
}

// blob is the persisted JSON shape. expiryThreshold is stored as either a
// string or a number depending on which client wrote it.
type blob struct {
	ExpiryThreshold    any    `json:"expiryThreshold"`
	EmailNotifications bool   `json:"emailNotifications"`
	AppNotifications   bool   `json:"appNotifications"`
	EmailAddress       string `json:"emailAddress"`
	LastUpdated        string `json:"lastUpdated"`
}

// Default returns the settings used when nothing valid is persisted.
func Default() Settings {
	return Settings{ThresholdDays: DefaultThresholdDays}
}

// Load reads the settings blob from the store. Missing or malformed data
// never fails the caller; it silently falls back to defaults.
func Load(ctx context.Context, store kvstore.Store) Settings {
	s := Default()

	raw, err := store.Get(ctx, kvstore.SettingsKey)
	if err != nil {
		return s
	}

	var b blob
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return s
	}

	if days, ok := parseThreshold(b.ExpiryThreshold); ok {
		s.ThresholdDays = days
	}
	s.EmailNotifications = b.EmailNotifications
	s.AppNotifications = b.AppNotifications
	s.EmailAddress = b.EmailAddress
	if ts, err := time.Parse(time.RFC3339, b.LastUpdated); err == nil {
		s.LastUpdated = ts
	}
	return s
}

// Save persists the settings blob, stamping LastUpdated.
func Save(ctx context.Context, store kvstore.Store, s Settings) (Settings, error) {
	s.LastUpdated = time.Now().UTC()
	b := blob{
		ExpiryThreshold:    s.ThresholdDays,
		EmailNotifications: s.EmailNotifications,
		AppNotifications:   s.AppNotifications,
		EmailAddress:       s.EmailAddress,
		LastUpdated:        s.LastUpdated.Format(time.RFC3339),
	}
	data, err := json.Marshal(b)
	if err != nil {
		return s, err
	}
	return s, store.Set(ctx, kvstore.SettingsKey, string(data))
}

func parseThreshold(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		n, err := strconv.Atoi(t)
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	case float64:
		if t < 0 {
			return 0, false
		}
		return int(t), true
	}
	return 0, false
}
