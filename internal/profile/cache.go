package profile

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// standingsCacheKey is the single key under which the leaderboard is cached;
// the LRU is used purely for its TTL semantics.
const standingsCacheKey = "standings"

// standingsCache keeps the computed leaderboard for a short TTL. The table
// only changes when settlement runs, so serving a slightly stale copy to a
// burst of leaderboard requests is fine.
type standingsCache struct {
	lru *expirable.LRU[string, []domain.Profile]
}

func newStandingsCache(ttl time.Duration) *standingsCache {
	return &standingsCache{
		lru: expirable.NewLRU[string, []domain.Profile](1, nil, ttl),
	}
}

func (c *standingsCache) Get() ([]domain.Profile, bool) {
	return c.lru.Get(standingsCacheKey)
}

func (c *standingsCache) Set(standings []domain.Profile) {
	c.lru.Add(standingsCacheKey, standings)
}

// Invalidate drops the cached leaderboard, forcing the next read to hit the
// database. The settlement endpoints call this after a run.
func (c *standingsCache) Invalidate() {
	c.lru.Purge()
}
