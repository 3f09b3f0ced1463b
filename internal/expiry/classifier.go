// Package expiry classifies expiry dates against a day threshold.
package expiry

import "time"

// Status is the freshness state derived from an expiry date.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusSafe, StatusWarning, StatusDanger:
		return true
	}
	return false
}

const day = 24 * time.Hour

// DaysUntil returns the number of days from now until expiry, rounded up.
// A partial day counts as a full one, so a product expiring later today
// yields 1 and anything at or before now yields zero or less.
func DaysUntil(expiry, now time.Time) int {
	diff := expiry.Sub(now)
	days := int(diff / day)
	if diff%day > 0 {
		days++
	}
	return days
}

// Classify maps an expiry date to a status given the warning threshold in
// days. The threshold boundary is inclusive: a product expiring in exactly
// thresholdDays days is still a warning.
func Classify(expiry, now time.Time, thresholdDays int) Status {
	days := DaysUntil(expiry, now)
	switch {
	case days <= 0:
		return StatusDanger
	case days <= thresholdDays:
		return StatusWarning
	default:
		return StatusSafe
	}
}
