package repo

import (
	"sync"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/models"
)

// InMemoryScanEventRepository keeps the scan history for the session.
// The scanner recorder appends from its own goroutine while handlers
// read, so access is locked.
type InMemoryScanEventRepository struct {
	mu     sync.Mutex
	events []models.ScanEvent
}

func NewInMemoryScanEventRepository() *InMemoryScanEventRepository {
	return &InMemoryScanEventRepository{
		events: []models.ScanEvent{},
	}
}

// Log appends a new scan event.
func (r *InMemoryScanEventRepository) Log(barcode, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event := models.ScanEvent{
		ID:        len(r.events) + 1,
		Barcode:   barcode,
		ProductID: productID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	r.events = append(r.events, event)
	return nil
}

// List returns scan events, optionally bounded by time range and paginated.
func (r *InMemoryScanEventRepository) List(sf ScanFilter) ([]models.ScanEvent, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.ScanEvent
	for _, e := range r.events {
		if (sf.Since != nil && e.CreatedAt < sf.Since.UTC().Format(time.RFC3339)) ||
			(sf.Until != nil && e.CreatedAt > sf.Until.UTC().Format(time.RFC3339)) {
			continue
		}
		filtered = append(filtered, e)
	}

	if sf.Offset != nil && *sf.Offset > len(filtered) {
		return nil, len(filtered), nil
	}

	start := 0
	if sf.Offset != nil {
		start = clamp(*sf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if sf.Limit != nil && *sf.Limit > 0 {
		end = clamp(start+*sf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}
