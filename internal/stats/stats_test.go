package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/kvstore"
	"github.com/rogerio-castellano/freshtrack/internal/models"
)

func TestSnapshotEmptyStore(t *testing.T) {
	s := Snapshot(nil, time.Now(), 2)
	if s.Total != 0 || s.Expired != 0 || s.NearExpiry != 0 || s.Safe != 0 {
		t.Errorf("expected all-zero snapshot, got %+v", s)
	}
}

func TestSnapshotCountsPerStatus(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		{Name: "expired yesterday", ExpiryDate: now.Add(-24 * time.Hour)},
		{Name: "expired a millisecond ago", ExpiryDate: now.Add(-time.Millisecond)},
		{Name: "near", ExpiryDate: now.Add(24 * time.Hour)},
		{Name: "at boundary", ExpiryDate: now.Add(48 * time.Hour)},
		{Name: "safe", ExpiryDate: now.AddDate(0, 1, 0)},
	}

	s := Snapshot(products, now, 2)
	if s.Total != 5 {
		t.Errorf("expected total 5, got %d", s.Total)
	}
	if s.Expired != 2 {
		t.Errorf("expected 2 expired, got %d", s.Expired)
	}
	if s.NearExpiry != 2 {
		t.Errorf("expected 2 near expiry, got %d", s.NearExpiry)
	}
	if s.Safe != 1 {
		t.Errorf("expected 1 safe, got %d", s.Safe)
	}
}

func TestCheckAndNotifyWritesPendingMarker(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	store.Set(ctx, kvstore.SettingsKey, `{"expiryThreshold":2,"appNotifications":true}`)

	n := NewNotifier(store, nil)
	products := []models.Product{
		{Name: "expired", ExpiryDate: time.Now().Add(-time.Hour)},
		{Name: "near", ExpiryDate: time.Now().Add(24 * time.Hour)},
	}
	n.CheckAndNotify(ctx, products)

	message, err := store.Get(ctx, kvstore.PendingNotificationKey)
	if err != nil {
		t.Fatalf("expected a pending notification: %v", err)
	}
	want := "You have 1 expired and 1 nearly expired products"
	if message != want {
		t.Errorf("expected %q, got %q", want, message)
	}
}

func TestCheckAndNotifyRespectsToggle(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	store.Set(ctx, kvstore.SettingsKey, `{"expiryThreshold":2,"appNotifications":false}`)

	n := NewNotifier(store, nil)
	n.CheckAndNotify(ctx, []models.Product{
		{Name: "expired", ExpiryDate: time.Now().Add(-time.Hour)},
	})

	if _, err := store.Get(ctx, kvstore.PendingNotificationKey); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Errorf("expected no pending notification, got err=%v", err)
	}
}

func TestCheckAndNotifySkipsWhenNothingIsExpiring(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	store.Set(ctx, kvstore.SettingsKey, `{"expiryThreshold":2,"appNotifications":true}`)

	n := NewNotifier(store, nil)
	n.CheckAndNotify(ctx, []models.Product{
		{Name: "fresh", ExpiryDate: time.Now().AddDate(0, 1, 0)},
	})

	if _, err := store.Get(ctx, kvstore.PendingNotificationKey); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Errorf("expected no pending notification, got err=%v", err)
	}
}
