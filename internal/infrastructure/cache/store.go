// Package cache provides the in-memory TTL store backing the read-through
// accessors. Entries expire lazily: expiry is checked on every read, never
// swept in the background, so correctness cannot depend on eager cleanup.
package cache

import (
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"attendo/internal/ports/output"
)

var _ output.CacheStore = (*Store)(nil)

type entry struct {
	value    any
	expireAt time.Time
}

// Store is a process-wide key→value map with per-entry expiry.
type Store struct {
	entries *xsync.MapOf[string, entry]

	// now is swappable so tests can control expiry.
	now func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		entries: xsync.NewMapOf[string, entry](),
		now:     time.Now,
	}
}

// Get returns the value stored under key when present and not yet expired.
// A stale entry is removed on observation.
func (s *Store) Get(key string) (any, bool) {
	e, ok := s.entries.Load(key)
	if !ok {
		return nil, false
	}
	if !s.now().Before(e.expireAt) {
		s.entries.Delete(key)
		return nil, false
	}
	return e.value, true
}

// Put stores value under key, expiring at now + ttl. Any prior entry for the
// same key is overwritten.
func (s *Store) Put(key string, value any, ttl time.Duration) {
	s.entries.Store(key, entry{value: value, expireAt: s.now().Add(ttl)})
}

// Delete removes the entry for key; a no-op when absent.
func (s *Store) Delete(key string) {
	s.entries.Delete(key)
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.entries.Clear()
}
