package livetiming

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// snapshotCacheSize bounds the cache; one entry per session key is all the
// service ever stores, so a handful of slots is plenty.
const snapshotCacheSize = 8

type cachedSnapshot struct {
	Snapshot *Snapshot
	CachedAt time.Time
}

// snapshotCache keeps recent live snapshots for the polling endpoint so a
// burst of clients does not turn into a burst of provider requests. Entries
// expire on the configured TTL; there is no manual invalidation because live
// data goes stale on its own.
type snapshotCache struct {
	lru *expirable.LRU[string, *cachedSnapshot]
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		lru: expirable.NewLRU[string, *cachedSnapshot](snapshotCacheSize, nil, ttl),
	}
}

// Get returns the cached snapshot for a session key, if fresh.
func (c *snapshotCache) Get(sessionKey string) (*Snapshot, bool) {
	entry, found := c.lru.Get(sessionKey)
	if !found {
		return nil, false
	}
	return entry.Snapshot, true
}

// Set stores a snapshot under its session key.
func (c *snapshotCache) Set(sessionKey string, snapshot *Snapshot) {
	c.lru.Add(sessionKey, &cachedSnapshot{
		Snapshot: snapshot,
		CachedAt: time.Now(),
	})
}

// Clear removes all entries from the cache.
func (c *snapshotCache) Clear() {
	c.lru.Purge()
}
