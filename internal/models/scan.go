package models

// ScanEvent is one decoded barcode delivered by the scanner.
// ProductID is empty when the barcode matched nothing in the inventory.
type ScanEvent struct {
	ID        int    `json:"id"`
	Barcode   string `json:"barcode"`
	ProductID string `json:"product_id,omitempty"`
	CreatedAt string `json:"created_at"`
}
