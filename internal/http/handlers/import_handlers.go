package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	models "github.com/rogerio-castellano/freshtrack/internal/models"
)

type csvRow struct {
	Name       string
	Barcode    string
	BatchID    string
	ExpiryDate time.Time
	Quantity   int
	Category   string
	Location   string
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Name:       field(record, "name"),
			Barcode:    field(record, "barcode"),
			BatchID:    field(record, "batch_id"),
			ExpiryDate: parseDate(field(record, "expiry_date")),
			Quantity:   parseInt(field(record, "quantity")),
			Category:   field(record, "category"),
			Location:   field(record, "location"),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if r.ExpiryDate.IsZero() {
		return errors.New("invalid expiry date")
	}
	if r.Quantity < 1 {
		return errors.New("invalid quantity")
	}
	if !models.Category(r.Category).Valid() {
		return errors.New("invalid category")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("missing location")
	}
	return nil
}

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(s string) time.Time {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts
	}
	return time.Time{}
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns: name, barcode, batch_id, expiry_date, quantity, category, location
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportProductsResult{Errors: []ProductValidationError{}}
	for i, row := range rows {
		if err := validateRow(row); err != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: err.Error(),
			})
			continue
		}

		product := models.Product{
			Name:       row.Name,
			Barcode:    row.Barcode,
			BatchID:    row.BatchID,
			ExpiryDate: row.ExpiryDate,
			Quantity:   row.Quantity,
			Category:   models.Category(row.Category),
			Location:   row.Location,
		}
		if _, err := productRepo.Create(product); err != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: "could not create product",
			})
			continue
		}
		result.ImportedProductsCount++
	}

	if result.ImportedProductsCount > 0 {
		notifyAfterMutation(r)
	}
	log.Printf("user %d imported %d of %d product rows", GetUserID(r), result.ImportedProductsCount, len(rows))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
