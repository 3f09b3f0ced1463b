package repo

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ProductUpdate carries a partial field replacement; nil fields are left
// untouched. The identifier and creation timestamp can never change.
type ProductUpdate struct {
	Name       *string
	Barcode    *string
	BatchID    *string
	ExpiryDate *time.Time
	Quantity   *int
	Category   *models.Category
	Location   *string
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	GetByBarcode(barcode string) (models.Product, error)
	Update(id string, update ProductUpdate) (models.Product, error)
	// Delete reports whether a product was removed; deleting an unknown
	// id is not an error.
	Delete(id string) (bool, error)
	Filter(pf ProductFilter) ([]models.Product, int, error)
}
