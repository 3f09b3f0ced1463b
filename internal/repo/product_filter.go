package repo

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/expiry"
	"github.com/rogerio-castellano/freshtrack/internal/models"
)

// ProductFilter combines independently optional criteria with logical AND.
// Status classification uses Now and ThresholdDays, which the caller fills
// from the current settings.
type ProductFilter struct {
	Status        *expiry.Status
	Category      *models.Category
	Location      string
	Search        string
	Offset        *int
	Limit         *int
	Now           time.Time
	ThresholdDays int
}

func (pf ProductFilter) matches(p models.Product) bool {
	if pf.Status != nil && expiry.Classify(p.ExpiryDate, pf.Now, pf.ThresholdDays) != *pf.Status {
		return false
	}
	if pf.Category != nil && p.Category != *pf.Category {
		return false
	}
	if pf.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(pf.Location)) {
		return false
	}
	if pf.Search != "" && !matchesSearch(p, pf.Search) {
		return false
	}
	return true
}

// matchesSearch matches the query against name, barcode or batch id,
// case-insensitively. Empty barcode and batch fields never match.
func matchesSearch(p models.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if p.Barcode != "" && strings.Contains(strings.ToLower(p.Barcode), q) {
		return true
	}
	if p.BatchID != "" && strings.Contains(strings.ToLower(p.BatchID), q) {
		return true
	}
	return false
}

// ApplyProductFilter returns the subsequence of products matching pf in
// input order, before pagination, along with the total match count.
func ApplyProductFilter(products []models.Product, pf ProductFilter) ([]models.Product, int) {
	filtered := []models.Product{}
	for _, p := range products {
		if pf.matches(p) {
			filtered = append(filtered, p)
		}
	}

	if pf.Offset != nil && *pf.Offset > len(filtered) {
		return []models.Product{}, len(filtered)
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
