// Package stats reduces the product store into freshness summary counts.
package stats

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/expiry"
	"github.com/rogerio-castellano/freshtrack/internal/kvstore"
	"github.com/rogerio-castellano/freshtrack/internal/models"
	"github.com/rogerio-castellano/freshtrack/internal/settings"
)

type Stats struct {
	Total      int `json:"total"`
	Expired    int `json:"expired"`
	NearExpiry int `json:"near_expiry"`
	Safe       int `json:"safe"`
}

// Snapshot counts products per expiry status. Expired is the count of
// danger-classified products (expiry instant at or before now), NearExpiry
// the warning count, Safe the remainder.
func Snapshot(products []models.Product, now time.Time, thresholdDays int) Stats {
	s := Stats{Total: len(products)}
	for _, p := range products {
		switch expiry.Classify(p.ExpiryDate, now, thresholdDays) {
		case expiry.StatusDanger:
			s.Expired++
		case expiry.StatusWarning:
			s.NearExpiry++
		}
	}
	s.Safe = s.Total - s.Expired - s.NearExpiry
	return s
}

// Recorder receives the digest entry for the email alert log. The alert
// mailer implements it; a nil Recorder disables the digest.
type Recorder interface {
	RecordDigestEntry(ctx context.Context, st Stats, s settings.Settings)
}

// Notifier performs the best-effort notification-eligibility check that
// follows a mutation. It never fails the mutation it follows.
type Notifier struct {
	store    kvstore.Store
	recorder Recorder
}

func NewNotifier(store kvstore.Store, recorder Recorder) *Notifier {
	return &Notifier{store: store, recorder: recorder}
}

// CheckAndNotify recomputes the snapshot and, when app notifications are
// enabled and something is expired or close to it, writes the pending
// notification marker for the UI layer to pick up and show. Errors are
// logged, never returned.
func (n *Notifier) CheckAndNotify(ctx context.Context, products []models.Product) {
	if n == nil || n.store == nil {
		return
	}

	s := settings.Load(ctx, n.store)
	st := Snapshot(products, time.Now(), s.ThresholdDays)

	if s.AppNotifications && (st.Expired > 0 || st.NearExpiry > 0) {
		message := fmt.Sprintf("You have %d expired and %d nearly expired products", st.Expired, st.NearExpiry)
		if err := n.store.Set(ctx, kvstore.PendingNotificationKey, message); err != nil {
			log.Printf("could not store pending notification: %v", err)
		}
	}

	if n.recorder != nil {
		n.recorder.RecordDigestEntry(ctx, st, s)
	}
}
