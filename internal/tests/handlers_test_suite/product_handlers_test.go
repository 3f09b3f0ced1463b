package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "github.com/rogerio-castellano/freshtrack/internal/http"
	handler "github.com/rogerio-castellano/freshtrack/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	payload := testProductRequest("Organic Milk 1L")
	payload.Barcode = "4001234"
	w := createProduct(r, payload)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Id == "" {
		t.Error("expected a generated identifier")
	}
	if resp.Name != "Organic Milk 1L" {
		t.Errorf("expected name 'Organic Milk 1L', got %v", resp.Name)
	}
	if resp.Status != "safe" {
		t.Errorf("expected status safe for a product expiring next month, got %q", resp.Status)
	}
	if !resp.CreatedAt.Equal(resp.UpdatedAt) {
		t.Errorf("expected equal timestamps on creation, got %v and %v", resp.CreatedAt, resp.UpdatedAt)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Everything missing",
			payload:        handler.ProductRequest{},
			expectedErrors: []string{"Name", "ExpiryDate", "Quantity", "Category", "Location"},
		},
		{
			name: "Empty name only",
			payload: handler.ProductRequest{
				ExpiryDate: time.Now().AddDate(0, 0, 7), Quantity: 1, Category: "food", Location: "Fridge",
			},
			expectedErrors: []string{"Name"},
		},
		{
			name: "Zero quantity",
			payload: handler.ProductRequest{
				Name: "Milk", ExpiryDate: time.Now().AddDate(0, 0, 7), Quantity: 0, Category: "food", Location: "Fridge",
			},
			expectedErrors: []string{"Quantity"},
		},
		{
			name: "Unknown category",
			payload: handler.ProductRequest{
				Name: "Milk", ExpiryDate: time.Now().AddDate(0, 0, 7), Quantity: 1, Category: "beverages", Location: "Fridge",
			},
			expectedErrors: []string{"Category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	badJSON := `{Name: "Invalid" Quantity: 1 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(badJSON))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateProductHandler_Unauthorized(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/products", testProductRequest("Milk"), false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, testProductRequest("Cheddar"))
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doRequest(r, http.MethodGet, "/products/"+created.Id, nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Id != created.Id || resp.Name != "Cheddar" {
		t.Errorf("unexpected product: %+v", resp)
	}

	w = doRequest(r, http.MethodGet, "/products/unknown-id", nil, false)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestGetProductByBarcodeHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	payload := testProductRequest("Organic Milk 1L")
	payload.Barcode = "4001234"
	createProduct(r, payload)

	w := doRequest(r, http.MethodGet, "/products/barcode/4001234", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Barcode != "4001234" {
		t.Errorf("expected barcode match, got %+v", resp)
	}

	w = doRequest(r, http.MethodGet, "/products/barcode/0000000", nil, false)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown barcode, got %d", w.Code)
	}
}

func TestUpdateProductHandler_PartialUpdate(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, testProductRequest("Yogurt"))
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	time.Sleep(time.Millisecond)
	quantity := 5
	w = doRequest(r, http.MethodPut, "/products/"+created.Id, handler.ProductUpdateRequest{Quantity: &quantity}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var updated handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", updated.Quantity)
	}
	if updated.Name != created.Name || updated.Location != created.Location {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("created timestamp must not change")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updated timestamp must increase")
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	quantity := 5
	w := doRequest(r, http.MethodPut, "/products/unknown-id", handler.ProductUpdateRequest{Quantity: &quantity}, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, testProductRequest("Butter"))
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doRequest(r, http.MethodDelete, "/products/"+created.Id, nil, true)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/products/"+created.Id, nil, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestFilterProductsHandler_Search(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	createProduct(r, testProductRequest("Organic Milk 1L"))
	aspirin := testProductRequest("Aspirin 500mg")
	aspirin.Category = "medicine"
	aspirin.Location = "Medicine cabinet"
	createProduct(r, aspirin)

	w := doRequest(r, http.MethodGet, "/products/search?search=milk", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Meta.TotalCount != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected one match, got %d", resp.Meta.TotalCount)
	}
	if resp.Data[0].Name != "Organic Milk 1L" {
		t.Errorf("expected the milk product, got %q", resp.Data[0].Name)
	}
}

func TestFilterProductsHandler_StatusAndCategory(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	expired := testProductRequest("Old cream")
	expired.Category = "cosmetics"
	expired.ExpiryDate = time.Now().Add(-24 * time.Hour)
	createProduct(r, expired)
	createProduct(r, testProductRequest("Fresh milk"))

	w := doRequest(r, http.MethodGet, "/products/search?status=danger", nil, false)
	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Meta.TotalCount != 1 || resp.Data[0].Name != "Old cream" {
		t.Errorf("expected only the expired product, got %+v", resp.Data)
	}

	w = doRequest(r, http.MethodGet, "/products/search?status=danger&category=food", nil, false)
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Meta.TotalCount != 0 {
		t.Errorf("expected no expired food, got %d", resp.Meta.TotalCount)
	}

	w = doRequest(r, http.MethodGet, "/products/search?status=stale", nil, false)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", w.Code)
	}
}
