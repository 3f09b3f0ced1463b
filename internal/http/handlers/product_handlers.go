package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/freshtrack/internal/expiry"
	models "github.com/rogerio-castellano/freshtrack/internal/models"
	repo "github.com/rogerio-castellano/freshtrack/internal/repo"
	"github.com/rogerio-castellano/freshtrack/internal/settings"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a perishable product to the inventory
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} map[string]string
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		Name:       req.Name,
		Barcode:    req.Barcode,
		BatchID:    req.BatchID,
		ExpiryDate: req.ExpiryDate,
		Quantity:   req.Quantity,
		Category:   models.Category(req.Category),
		Location:   req.Location,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	notifyAfterMutation(r)

	s := settings.Load(r.Context(), kvStore)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProductResponse(created, s, time.Now()))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	s := settings.Load(r.Context(), kvStore)
	now := time.Now()
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p, s, now)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	s := settings.Load(r.Context(), kvStore)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product, s, time.Now()))
}

// GetProductByBarcodeHandler godoc
// @Summary Get the first product with the given barcode
// @Tags products
// @Produce json
// @Param barcode path string true "Barcode"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/barcode/{barcode} [get]
func GetProductByBarcodeHandler(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")

	product, err := productRepo.GetByBarcode(barcode)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	s := settings.Load(r.Context(), kvStore)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product, s, time.Now()))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Merges the provided fields into the product; omitted fields are untouched
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductUpdateRequest true "Fields to update"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [put]
// @Security BearerAuth
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProductUpdate(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	update := repo.ProductUpdate{
		Name:       req.Name,
		Barcode:    req.Barcode,
		BatchID:    req.BatchID,
		ExpiryDate: req.ExpiryDate,
		Quantity:   req.Quantity,
		Location:   req.Location,
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		update.Category = &category
	}

	updated, err := productRepo.Update(id, update)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	notifyAfterMutation(r)

	s := settings.Load(r.Context(), kvStore)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(updated, s, time.Now()))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
// @Security BearerAuth
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	removed, err := productRepo.Delete(id)
	if err != nil {
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// FilterProductsHandler godoc
// @Summary Filter and paginate products
// @Description All criteria are optional and combined with AND
// @Tags products
// @Produce json
// @Param status query string false "Expiry status (safe, warning, danger)"
// @Param category query string false "Category (food, medicine, cosmetics, other)"
// @Param location query string false "Location substring, case-insensitive"
// @Param search query string false "Free text over name, barcode and batch id"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /products/search [get]
func FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s := settings.Load(r.Context(), kvStore)
	now := time.Now()

	filter := repo.ProductFilter{
		Location:      q.Get("location"),
		Search:        q.Get("search"),
		Offset:        parseIntPtr(q.Get("offset")),
		Limit:         parseIntPtr(q.Get("limit")),
		Now:           now,
		ThresholdDays: s.ThresholdDays,
	}

	if statusStr := q.Get("status"); statusStr != "" {
		status := expiry.Status(statusStr)
		if !status.Valid() {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}
	if categoryStr := q.Get("category"); categoryStr != "" {
		category := models.Category(categoryStr)
		if !category.Valid() {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}
		filter.Category = &category
	}
	if filter.Limit != nil && *filter.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	products, total, err := productRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not filter products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p, s, now)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
