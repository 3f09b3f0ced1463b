package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/freshtrack/internal/repo"
	"github.com/rogerio-castellano/freshtrack/internal/settings"
)

// DecodeHandler godoc
// @Summary Accept a decoded barcode from the scanner
// @Description Publishes the barcode to the scan feed and returns the inventory match and lookup-table metadata for form pre-fill
// @Tags scan
// @Accept json
// @Produce json
// @Param decode body DecodeRequest true "Decoded barcode"
// @Success 200 {object} DecodeResponse
// @Failure 400 {string} string "Invalid input"
// @Router /scan/decode [post]
// @Security BearerAuth
func DecodeHandler(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Barcode) == "" {
		http.Error(w, "barcode is required", http.StatusBadRequest)
		return
	}

	if scanFeed != nil && !scanFeed.Publish(req.Barcode) {
		log.Printf("scan feed full, dropping barcode %q", req.Barcode)
	}

	resp := DecodeResponse{Barcode: req.Barcode}

	product, err := productRepo.GetByBarcode(req.Barcode)
	if err == nil {
		s := settings.Load(r.Context(), kvStore)
		pr := toProductResponse(product, s, time.Now())
		resp.Product = &pr
	} else if !errors.Is(err, repo.ErrProductNotFound) {
		http.Error(w, "could not look up product", http.StatusInternalServerError)
		return
	}

	if lookupTable != nil {
		if info, ok := lookupTable.Lookup(req.Barcode); ok {
			resp.Info = &BarcodeInfo{Name: info.Name, Category: string(info.Category)}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// LookupBarcodeHandler godoc
// @Summary Look up barcode metadata for form pre-fill
// @Tags scan
// @Produce json
// @Param code path string true "Barcode"
// @Success 200 {object} BarcodeInfo
// @Failure 404 {string} string "Unknown barcode"
// @Router /barcodes/{code} [get]
func LookupBarcodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	info, ok := lookupTable.Lookup(code)
	if !ok {
		http.Error(w, "unknown barcode", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BarcodeInfo{Name: info.Name, Category: string(info.Category)})
}

// fixQueryTimezone reverses the + for space substitution URL query parsing
// applies to RFC3339 timestamps with a positive zone offset.
// Example: 2025-07-03T17:44:03+02:00 arrives as 2025-07-03T17:44:03 02:00.
func fixQueryTimezone(s string) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return s
	}
	zone := s[i+1:]
	if len(zone) == 5 && zone[2] == ':' {
		return s[:i] + "+" + zone
	}
	return s
}

// GetScanEventsHandler godoc
// @Summary List scan events
// @Tags scan
// @Produce json
// @Param since query string false "Events from this timestamp (RFC3339)"
// @Param until query string false "Events until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ScansSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /scans [get]
func GetScanEventsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ScanFilter{
		Offset: parseIntPtr(q.Get("offset")),
		Limit:  parseIntPtr(q.Get("limit")),
	}

	if sinceStr := fixQueryTimezone(q.Get("since")); sinceStr != "" {
		ts, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			http.Error(w, "invalid since date format", http.StatusBadRequest)
			return
		}
		filter.Since = &ts
	}
	if untilStr := fixQueryTimezone(q.Get("until")); untilStr != "" {
		ts, err := time.Parse(time.RFC3339, untilStr)
		if err != nil {
			http.Error(w, "invalid until date format", http.StatusBadRequest)
			return
		}
		filter.Until = &ts
	}

	events, total, err := scanRepo.List(filter)
	if err != nil {
		http.Error(w, "could not fetch scan events", http.StatusInternalServerError)
		return
	}

	resp := ScansSearchResult{
		Data: make([]ScanEventResponse, len(events)),
		Meta: Meta{TotalCount: total},
	}
	for i, e := range events {
		resp.Data[i] = ScanEventResponse{
			ID:        e.ID,
			Barcode:   e.Barcode,
			ProductID: e.ProductID,
			CreatedAt: e.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
