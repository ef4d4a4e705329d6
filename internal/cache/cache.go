package cache

import "time"

// DefaultTTL is the freshness window for scraped pages.
const DefaultTTL = 10 * time.Minute

// Cache decides whether a stored payload is still fresh. The decision is a
// pure function of the entry's write time, the TTL and the injected clock:
// fresh means now - storedAt < ttl, so an entry exactly ttl old is stale.
type Cache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func New(store Store, ttl time.Duration) *Cache {
	return NewWithClock(store, ttl, time.Now)
}

// NewWithClock is New with a replaceable clock, for tests.
func NewWithClock(store Store, ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl, now: now}
}

// Key builds the store key for a game slug and resource kind,
// e.g. Key("dota2", "tournaments") -> "dota2_tournaments".
func Key(game, kind string) string {
	return game + "_" + kind
}

// Get returns the stored payload and whether it is still fresh. Stale
// payloads are returned too so callers may fall back to them; a missing or
// unreadable entry returns (nil, false).
func (c *Cache) Get(key string) ([]byte, bool) {
	data, storedAt, err := c.store.Read(key)
	if err != nil {
		return nil, false
	}
	return data, c.now().Sub(storedAt) < c.ttl
}

// Put replaces the entry and restarts its freshness window.
func (c *Cache) Put(key string, data []byte) error {
	return c.store.Write(key, data)
}
