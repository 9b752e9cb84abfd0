package application

import (
	"time"

	"attendo/pkg/cachekey"
)

// Cache keys, one per query shape. Mutating operations must invalidate the
// keys their writes affect; the TTL is only a safety net for paths that miss
// an invalidation.
var (
	keyParticipantsAll = cachekey.Join("participants", "all")
	keyEventsAll       = cachekey.Join("events", "all")
	keyAttendancesAll  = cachekey.Join("attendances", "all")
	keyStats           = cachekey.Join("attendances", "stats")
)

func participantKey(id uint) string {
	return cachekey.ForID("participants", id)
}

func eventKey(id uint) string {
	return cachekey.ForID("events", id)
}

// CacheTTL groups the staleness tolerances of the read-through accessors.
type CacheTTL struct {
	List   time.Duration
	Entity time.Duration
	Stats  time.Duration
}

// DefaultCacheTTL mirrors the configuration defaults: short TTLs, since
// invalidation is explicit and expiry only covers missed paths.
func DefaultCacheTTL() CacheTTL {
	return CacheTTL{
		List:   30 * time.Second,
		Entity: 30 * time.Second,
		Stats:  10 * time.Second,
	}
}
