package repo

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/freshtrack/internal/models"
)

// InMemoryProductRepository holds the authoritative product list for the
// lifetime of the session. Insertion order is preserved; nothing survives
// a restart. The scanner recorder reads it from its own goroutine while
// handlers mutate, so access is locked.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

// Create assigns a fresh identifier and timestamps, appends the product
// and returns the stored record. Field validation is the caller's job.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products in insertion order. The returned slice is
// a snapshot; later mutations do not show through.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetByBarcode retrieves the first product with the given barcode.
// Products without a barcode never match.
func (r *InMemoryProductRepository) GetByBarcode(barcode string) (models.Product, error) {
	if barcode == "" {
		return models.Product{}, ErrProductNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update merges the non-nil fields of update into the existing record and
// refreshes the updated timestamp.
func (r *InMemoryProductRepository) Update(id string, update ProductUpdate) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Barcode != nil {
			p.Barcode = *update.Barcode
		}
		if update.BatchID != nil {
			p.BatchID = *update.BatchID
		}
		if update.ExpiryDate != nil {
			p.ExpiryDate = *update.ExpiryDate
		}
		if update.Quantity != nil {
			p.Quantity = *update.Quantity
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Location != nil {
			p.Location = *update.Location
		}
		p.UpdatedAt = time.Now().UTC()
		r.products[i] = p
		return p, nil
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes the first product with the given ID and reports whether a
// removal occurred.
func (r *InMemoryProductRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Filter returns the matching products in insertion order plus the total
// match count before pagination.
func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered, total := ApplyProductFilter(r.products, pf)
	return filtered, total, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
}
