// Package cachekey builds deterministic cache keys from query-shape segments.
package cachekey

import (
	"strconv"
	"strings"
)

// Separator delimits cache key segments.
const Separator = "::"

// Join composes a cache key from its segments, e.g.
// Join("events", "all") -> "events::all".
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// ForID composes a per-entity cache key, e.g.
// ForID("events", 7) -> "events::id::7".
func ForID(scope string, id uint) string {
	return Join(scope, "id", strconv.FormatUint(uint64(id), 10))
}
