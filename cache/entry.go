package cache

import (
	"encoding/json"
	"time"
)

// Entry is a single cached response body. The endpoint itself is never
// persisted because the query string carries the API key.
type Entry struct {
	Body      json.RawMessage `json:"body"`
	CachedAt  time.Time       `json:"cached_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Expired reports whether the entry is past its expiry at the given time.
func (e Entry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}
