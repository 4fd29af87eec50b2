package streamcache

// Cache memoizes one value of T per CacheKey. It is deliberately a plain
// map with no locking: a Cache belongs to a single goroutine, so a
// stream's PRNG position is never observed from more than one goroutine
// (Design Notes §9). Sharing a Cache across goroutines is a bug, not a
// race to guard against here. The search driver does not use Cache; each
// of its workers keeps per-seed state in its own evaluate.SeedContext.
type Cache[T any] struct {
	entries map[CacheKey]T
}

// NewCache returns an empty Cache sized for n distinct keys (pass the
// length of a Plan result to avoid rehashing during the first seed
// batch).
func NewCache[T any](n int) *Cache[T] {
	return &Cache[T]{entries: make(map[CacheKey]T, n)}
}

// GetOrCreate returns the cached value for key, calling create and
// storing its result if key hasn't been seen yet. create runs at most
// once per key per Cache instance.
func (c *Cache[T]) GetOrCreate(key CacheKey, create func() T) T {
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := create()
	c.entries[key] = v
	return v
}

// Reset clears every cached entry, letting one Cache instance be reused
// across seeds within the same worker goroutine without reallocating its
// backing map.
func (c *Cache[T]) Reset() {
	for k := range c.entries {
		delete(c.entries, k)
	}
}

// Len reports how many keys are currently cached.
func (c *Cache[T]) Len() int {
	return len(c.entries)
}
