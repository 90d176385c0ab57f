// Package cache implements the keyed read-through cache the client uses for
// paginated and searchable server collections.
//
// Every query is identified by a [Key]. A fresh entry is served without
// touching the network; concurrent fetches of the same key are collapsed into
// a single upstream call; invalidation marks entries stale instead of
// evicting them, so the last good value stays available while a refetch is in
// flight.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Unikyri/forohub-tui/internal/logger"
)

type entry struct {
	value     any
	kind      string
	stale     bool
	updatedAt time.Time
}

// QueryCache is a keyed read-through cache with in-flight deduplication and
// coarse kind-level invalidation. Values of any type share one cache; the
// typed access points are the package-level [Fetch] and [Cached] functions.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry

	group  singleflight.Group
	logger *logger.Logger
}

func NewQueryCache(logger *logger.Logger) *QueryCache {
	return &QueryCache{
		entries: make(map[string]*entry),
		logger:  logger,
	}
}

// InvalidateKind marks every entry of the given kind stale. Stale entries are
// not evicted: the next Fetch refetches them, and until it completes the old
// value remains retrievable via Cached.
func (c *QueryCache) InvalidateKind(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	marked := 0
	for _, e := range c.entries {
		if e.kind == kind {
			e.stale = true
			marked++
		}
	}

	c.logger.Debug().
		Str("func", "QueryCache.InvalidateKind").
		Str("kind", kind).
		Int("entries", marked).
		Msg("marked entries stale")
}

// Invalidate marks the single entry under key stale, if present.
func (c *QueryCache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key.String()]; ok {
		e.stale = true
	}
}

// lookup returns the stored value and whether it is fresh.
func (c *QueryCache) lookup(key Key) (any, bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false, false
	}
	return e.value, e.stale, true
}

func (c *QueryCache) storeFresh(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key.String()] = &entry{
		value:     value,
		kind:      key.Kind(),
		updatedAt: time.Now(),
	}
}

// Fetch returns the value for key. A fresh cached value is returned without
// calling fn. Otherwise fn runs — concurrent callers of the same key join the
// single in-flight call and all receive its result. On success the value is
// stored fresh; on failure the slot keeps whatever it held before, so an
// earlier good value is still served as stale and an empty slot stays empty.
func Fetch[T any](ctx context.Context, c *QueryCache, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	if value, stale, ok := c.lookup(key); ok && !stale {
		if typed, matches := value.(T); matches {
			return typed, nil
		}
		// a different type under the same key means the key scheme is
		// broken upstream; treat as a miss
		c.logger.Warn().
			Str("func", "cache.Fetch").
			Str("key", key.String()).
			Msg("cached value has unexpected type")
	}

	result, err, _ := c.group.Do(key.String(), func() (any, error) {
		value, fetchErr := fn(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		c.storeFresh(key, value)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}

// Cached returns the value currently stored under key without fetching,
// together with its staleness. The second return reports whether the value is
// stale, the third whether a value of the expected type exists at all.
func Cached[T any](c *QueryCache, key Key) (T, bool, bool) {
	value, stale, ok := c.lookup(key)
	if !ok {
		var zero T
		return zero, false, false
	}
	typed, matches := value.(T)
	if !matches {
		var zero T
		return zero, false, false
	}
	return typed, stale, true
}
