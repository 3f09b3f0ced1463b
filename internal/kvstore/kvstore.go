// Package kvstore is the persisted key-value storage used for the settings
// blob, the pending-notification marker and the alert digest log.
package kvstore

import (
	"context"
	"errors"
	"sync"
)

// Well-known keys.
const (
	SettingsKey            = "notificationSettings"
	PendingNotificationKey = "pendingNotification"
	AlertDigestKey         = "freshtrack:alertlog:daily"
)

// ErrKeyNotFound is returned when a key has no value.
var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Append pushes a value onto the list stored at key.
	Append(ctx context.Context, key, value string) error
	// Range returns the whole list stored at key, oldest first.
	Range(ctx context.Context, key string) ([]string, error)
}

// MemoryStore is an in-process Store, used in tests and when no redis
// address is configured.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	lists  map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: map[string]string{},
		lists:  map[string][]string{},
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	delete(s.lists, key)
	return nil
}

func (s *MemoryStore) Append(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = append(s.lists[key], value)
	return nil
}

func (s *MemoryStore) Range(_ context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lists[key]))
	copy(out, s.lists[key])
	return out, nil
}
