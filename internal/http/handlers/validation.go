package handlers

import (
	"strings"

	"github.com/rogerio-castellano/freshtrack/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.ExpiryDate.IsZero() {
		errs = append(errs, ProductValidationError{Field: "ExpiryDate", Description: "Expiry date is required"})
	}
	if p.Quantity < 1 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity must be at least one"})
	}
	if !models.Category(p.Category).Valid() {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Category must be food, medicine, cosmetics or other"})
	}
	if strings.TrimSpace(p.Location) == "" {
		errs = append(errs, ProductValidationError{Field: "Location", Description: "Location is required"})
	}
	return errs
}

func validateProductUpdate(u ProductUpdateRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name cannot be empty"})
	}
	if u.ExpiryDate != nil && u.ExpiryDate.IsZero() {
		errs = append(errs, ProductValidationError{Field: "ExpiryDate", Description: "Expiry date cannot be empty"})
	}
	if u.Quantity != nil && *u.Quantity < 1 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity must be at least one"})
	}
	if u.Category != nil && !models.Category(*u.Category).Valid() {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Category must be food, medicine, cosmetics or other"})
	}
	if u.Location != nil && strings.TrimSpace(*u.Location) == "" {
		errs = append(errs, ProductValidationError{Field: "Location", Description: "Location cannot be empty"})
	}
	return errs
}
