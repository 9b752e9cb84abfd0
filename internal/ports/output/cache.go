package output

import "time"

// CacheStore is the process-local acceleration layer over the repositories.
// It is never the system of record: losing every entry may only change
// latency, never results. Implementations must be safe for concurrent use,
// but no cross-key consistency is promised.
type CacheStore interface {
	// Get returns the value stored under key when present and not expired.
	Get(key string) (any, bool)
	// Put stores value under key, expiring at now + ttl. Overwrites any
	// prior entry.
	Put(key string, value any, ttl time.Duration)
	// Delete removes the entry for key; a no-op when absent.
	Delete(key string)
	// Clear removes every entry. Maintenance and test reset only.
	Clear()
}
