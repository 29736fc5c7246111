// pkg/memcache/image_store.go
package mem

import (
	"context"
	"sync"
	"time"
)

// ImageStore caches rendered images by key.
type ImageStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// TTLImages is the in-process ImageStore used when redis is not configured.
type TTLImages struct {
	mu         sync.RWMutex
	data       map[string]entry
	maxEntries int
	now        func() time.Time
}

func NewTTLImages(maxEntries int) *TTLImages {
	if maxEntries <= 0 {
		maxEntries = 512
	}
	return &TTLImages{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *TTLImages) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	now := s.now()
	if !now.After(e.expiresAt) {
		return e.data, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// a Set may have refreshed the key since the read lock was released
	cur, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if !now.After(cur.expiresAt) {
		return cur.data, true
	}
	delete(s.data, key)
	return nil, false
}

func (s *TTLImages) Set(_ context.Context, key string, data []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists && len(s.data) >= s.maxEntries {
		s.evictLocked()
	}
	s.data[key] = entry{
		data:      data,
		expiresAt: s.now().Add(ttl),
	}
}

// evictLocked drops expired entries, or the entry closest to expiry if none are.
func (s *TTLImages) evictLocked() {
	now := s.now()
	var (
		oldestKey string
		oldestAt  time.Time
	)
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			continue
		}
		if oldestKey == "" || e.expiresAt.Before(oldestAt) {
			oldestKey, oldestAt = k, e.expiresAt
		}
	}
	if len(s.data) >= s.maxEntries && oldestKey != "" {
		delete(s.data, oldestKey)
	}
}

func (s *TTLImages) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
