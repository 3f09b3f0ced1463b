package repo

import (
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/models"
)

// ScanFilter narrows the scan history by time range and paginates it.
type ScanFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

type ScanEventRepository interface {
	// Log appends a decoded barcode, with the matched product id if any.
	Log(barcode, productID string) error
	List(sf ScanFilter) ([]models.ScanEvent, int, error)
}
