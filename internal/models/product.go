package models

import "time"

// Category is the closed set of product categories.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryMedicine  Category = "medicine"
	CategoryCosmetics Category = "cosmetics"
	CategoryOther     Category = "other"
)

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryMedicine, CategoryCosmetics, CategoryOther:
		return true
	}
	return false
}

// Product represents a perishable product entity in the inventory.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Barcode    string    `json:"barcode,omitempty"`
	BatchID    string    `json:"batch_id,omitempty"`
	ExpiryDate time.Time `json:"expiry_date"`
	Quantity   int       `json:"quantity"`
	Category   Category  `json:"category"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}
