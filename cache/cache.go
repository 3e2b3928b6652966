package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache keeps response bodies for a short window so polling loops don't
// burn through the request budget re-fetching identical selections.
type Cache struct {
	store Store
	ttl   time.Duration
}

func New(store Store, ttl time.Duration) *Cache {
	return &Cache{
		store: store,
		ttl:   ttl,
	}
}

// Lookup returns the cached body for endpoint, or nil when nothing fresh
// is stored. Expired and unreadable entries are removed as they are found.
func (c *Cache) Lookup(endpoint string) ([]byte, error) {
	key := hash(endpoint)
	raw, err := c.store.Get(key)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = c.store.Delete(key)
		return nil, err
	}

	if entry.Expired(time.Now()) {
		_ = c.store.Delete(key)
		return nil, nil
	}

	return entry.Body, nil
}

// Store caches body under the hashed endpoint for the configured TTL.
func (c *Cache) Store(endpoint string, body []byte) error {
	now := time.Now()

	entry := Entry{
		Body:      body,
		CachedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}

	bytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return c.store.Set(hash(endpoint), bytes)
}

// Delete drops the entry for endpoint if one exists.
func (c *Cache) Delete(endpoint string) error {
	return c.store.Delete(hash(endpoint))
}

func hash(endpoint string) string {
	sum := sha256.Sum256([]byte(endpoint))
	return hex.EncodeToString(sum[:])
}
