package expiry

import (
	"testing"
	"time"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"exactly now", now, 0},
		{"one millisecond ago", now.Add(-time.Millisecond), 0},
		{"one millisecond ahead rounds up", now.Add(time.Millisecond), 1},
		{"later today rounds up", now.Add(6 * time.Hour), 1},
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"just over one day", now.Add(25 * time.Hour), 2},
		{"exactly two days", now.Add(48 * time.Hour), 2},
		{"yesterday", now.Add(-24 * time.Hour), -1},
		{"a day and a half ago", now.Add(-36 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.expiry, now); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiry    time.Time
		threshold int
		want      Status
	}{
		{"expired yesterday", now.Add(-24 * time.Hour), 2, StatusDanger},
		{"expires exactly now", now, 2, StatusDanger},
		{"one millisecond in the past", now.Add(-time.Millisecond), 2, StatusDanger},
		{"expires later today", now.Add(time.Hour), 2, StatusWarning},
		{"exactly at threshold boundary", now.Add(48 * time.Hour), 2, StatusWarning},
		{"two days out with threshold one", now.Add(48 * time.Hour), 1, StatusSafe},
		{"beyond threshold", now.Add(49 * time.Hour), 2, StatusSafe},
		{"far future", now.AddDate(1, 0, 0), 7, StatusSafe},
		{"zero threshold never warns", now.Add(time.Hour), 0, StatusSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.expiry, now, tt.threshold); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
