// Package memcache is an in-process expiring key/value cache.
package memcache

import (
	"context"
	"sync"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
)

// Caches holds the named in-memory caches of a process.
type Caches struct {
	mu     sync.Mutex
	stores map[string]*Store
	now    func() time.Time
}

func NewCaches() *Caches {
	return NewCachesWithClock(time.Now)
}

// NewCachesWithClock builds a cache set whose entries expire according to now.
func NewCachesWithClock(now func() time.Time) *Caches {
	return &Caches{
		stores: make(map[string]*Store),
		now:    now,
	}
}

// Namespace returns the cache with the given name, creating it on first use.
func (c *Caches) Namespace(name string) *Store {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.stores[name]; ok {
		return s
	}

	s := &Store{
		entries: make(map[string]entry),
		now:     c.now,
	}
	c.stores[name] = s
	return s
}

var _ datasources.SummaryCache = (*Store)(nil)

// Store is a single cache namespace. Entries are dropped once expired; there is no size bound.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	value     string
	expiresAt time.Time
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}

	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}

	return e.value, true, nil
}

func (s *Store) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpiredLocked(now)

	s.entries[key] = entry{
		value:     value,
		expiresAt: now.Add(ttl),
	}
	return nil
}

// Len reports the number of entries held, including expired ones not yet evicted.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Store) evictExpiredLocked(now time.Time) {
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}
