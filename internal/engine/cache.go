package engine

import (
	"sync"
	"sync/atomic"

	"wordaxis/internal/domain"
)

// CacheStats is a snapshot of DirectionCache counters.
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// DirectionCache maps ordered axes to unit direction vectors for the lifetime of an engine.
// Entries are never evicted or replaced.
type DirectionCache struct {
	mu     sync.RWMutex
	dirs   map[domain.Axis][]float64
	hits   atomic.Int64
	misses atomic.Int64
}

func NewDirectionCache() *DirectionCache {
	return &DirectionCache{dirs: make(map[domain.Axis][]float64)}
}

// Get returns the cached direction for axis. The slice is shared and must not be modified.
func (c *DirectionCache) Get(axis domain.Axis) ([]float64, bool) {
	c.mu.RLock()
	dir, ok := c.dirs[axis]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return dir, ok
}

// Put stores dir for axis unless an entry already exists, and returns the stored value.
func (c *DirectionCache) Put(axis domain.Axis, dir []float64) []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.dirs[axis]; ok {
		return existing
	}
	c.dirs[axis] = dir
	return dir
}

func (c *DirectionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dirs)
}

func (c *DirectionCache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Size: c.Len()}
}
