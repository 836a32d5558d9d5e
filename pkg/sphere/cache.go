package sphere

import "sync"

// Cache is a single-slot hemisphere cache. Interactive use asks for the
// same nside over and over, so holding just the most recently built
// hemisphere is enough to skip the tessellation cost on nearly every
// request. Any request for a different nside unconditionally replaces
// the slot.
//
// The zero value is ready to use. The cache is safe for concurrent
// callers; with mixed nside values the last writer wins, which is all
// the consistency the single slot promises.
type Cache struct {
	mu    sync.Mutex
	nside int
	sky   *Hemisphere
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// GetOrBuild returns a hemisphere for nside, building one only on a
// cache miss. The caller always receives an independent copy, so
// writing brightness values into it cannot corrupt the cached geometry.
func (c *Cache) GetOrBuild(nside int) (*Hemisphere, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sky != nil && c.nside == nside {
		return c.sky.Copy(), nil
	}

	sky, err := NewHemisphere(nside)
	if err != nil {
		return nil, err
	}
	c.nside = nside
	c.sky = sky
	return sky.Copy(), nil
}

// Clear empties the cache slot.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nside = 0
	c.sky = nil
}

// CachedNside reports which nside currently occupies the slot, if any.
// Intended for tests and diagnostics.
func (c *Cache) CachedNside() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sky == nil {
		return 0, false
	}
	return c.nside, true
}
