package repo

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/expiry"
	"github.com/rogerio-castellano/freshtrack/internal/models"
)

func filterFixture(now time.Time) []models.Product {
	return []models.Product{
		{ID: "1", Name: "Organic Milk 1L", Barcode: "4001234", Category: models.CategoryFood,
			Location: "Fridge shelf 2", ExpiryDate: now.Add(24 * time.Hour), Quantity: 1},
		{ID: "2", Name: "Aspirin 500mg", BatchID: "LOT-77", Category: models.CategoryMedicine,
			Location: "Medicine cabinet", ExpiryDate: now.AddDate(1, 0, 0), Quantity: 2},
		{ID: "3", Name: "Face cream", Category: models.CategoryCosmetics,
			Location: "Bathroom", ExpiryDate: now.Add(-time.Hour), Quantity: 1},
		{ID: "4", Name: "Cheddar", Barcode: "4005678", Category: models.CategoryFood,
			Location: "Fridge shelf 1", ExpiryDate: now.AddDate(0, 1, 0), Quantity: 3},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterWithoutCriteriaIsIdentity(t *testing.T) {
	now := time.Now()
	products := filterFixture(now)

	got, total := ApplyProductFilter(products, ProductFilter{Now: now, ThresholdDays: 2})
	if total != len(products) {
		t.Errorf("expected total %d, got %d", len(products), total)
	}
	if !equalIDs(ids(got), ids(products)) {
		t.Errorf("expected identity in input order, got %v", ids(got))
	}
}

func TestFilterBySearch(t *testing.T) {
	now := time.Now()
	products := filterFixture(now)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"name substring case-insensitive", "milk", []string{"1"}},
		{"no match", "shampoo", []string{}},
		{"barcode substring", "4001", []string{"1"}},
		{"batch id substring", "lot-77", []string{"2"}},
		{"shared barcode prefix keeps order", "400", []string{"1", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ApplyProductFilter(products, ProductFilter{Search: tt.search, Now: now, ThresholdDays: 2})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("search %q: expected %v, got %v", tt.search, tt.want, ids(got))
			}
		})
	}
}

func TestFilterByStatus(t *testing.T) {
	now := time.Now()
	products := filterFixture(now)

	danger := expiry.StatusDanger
	got, _ := ApplyProductFilter(products, ProductFilter{Status: &danger, Now: now, ThresholdDays: 2})
	if !equalIDs(ids(got), []string{"3"}) {
		t.Errorf("danger: expected [3], got %v", ids(got))
	}

	warning := expiry.StatusWarning
	got, _ = ApplyProductFilter(products, ProductFilter{Status: &warning, Now: now, ThresholdDays: 2})
	if !equalIDs(ids(got), []string{"1"}) {
		t.Errorf("warning: expected [1], got %v", ids(got))
	}

	safe := expiry.StatusSafe
	got, _ = ApplyProductFilter(products, ProductFilter{Status: &safe, Now: now, ThresholdDays: 2})
	if !equalIDs(ids(got), []string{"2", "4"}) {
		t.Errorf("safe: expected [2 4], got %v", ids(got))
	}
}

func TestFilterCombinesCriteriaWithAnd(t *testing.T) {
	now := time.Now()
	products := filterFixture(now)

	food := models.CategoryFood
	got, _ := ApplyProductFilter(products, ProductFilter{
		Category:      &food,
		Location:      "fridge",
		Search:        "cheddar",
		Now:           now,
		ThresholdDays: 2,
	})
	if !equalIDs(ids(got), []string{"4"}) {
		t.Errorf("expected [4], got %v", ids(got))
	}

	// Same search but a category that does not match it.
	medicine := models.CategoryMedicine
	got, _ = ApplyProductFilter(products, ProductFilter{
		Category:      &medicine,
		Search:        "cheddar",
		Now:           now,
		ThresholdDays: 2,
	})
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", ids(got))
	}
}

func TestFilterPagination(t *testing.T) {
	now := time.Now()
	products := filterFixture(now)

	offset, limit := 1, 2
	got, total := ApplyProductFilter(products, ProductFilter{
		Offset: &offset, Limit: &limit, Now: now, ThresholdDays: 2,
	})
	if total != 4 {
		t.Errorf("expected total 4 before pagination, got %d", total)
	}
	if !equalIDs(ids(got), []string{"2", "3"}) {
		t.Errorf("expected page [2 3], got %v", ids(got))
	}

	bigOffset := 10
	got, total = ApplyProductFilter(products, ProductFilter{Offset: &bigOffset, Now: now, ThresholdDays: 2})
	if len(got) != 0 || total != 4 {
		t.Errorf("expected empty page and total 4, got %v / %d", ids(got), total)
	}
}
