package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/expiry"
	"github.com/rogerio-castellano/freshtrack/internal/models"
	"github.com/rogerio-castellano/freshtrack/internal/settings"
)

type contextKey string

const userIDKey = contextKey("user_id")

// WithUserID stores the authenticated user id on the request context.
// The auth middleware calls it after validating the token.
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID returns the authenticated user id, or zero on
// unauthenticated requests.
func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

// toProductResponse derives the response view of a product, classifying
// it against the supplied settings at the current instant.
func toProductResponse(p models.Product, s settings.Settings, now time.Time) ProductResponse {
	return ProductResponse{
		Id:         p.ID,
		Name:       p.Name,
		Barcode:    p.Barcode,
		BatchID:    p.BatchID,
		ExpiryDate: p.ExpiryDate,
		Quantity:   p.Quantity,
		Category:   string(p.Category),
		Location:   p.Location,
		Status:     string(expiry.Classify(p.ExpiryDate, now, s.ThresholdDays)),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func notifyAfterMutation(r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		return
	}
	notifier.CheckAndNotify(r.Context(), products)
}
