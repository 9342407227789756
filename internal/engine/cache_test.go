package engine

import (
	"sync"
	"testing"

	"wordaxis/internal/domain"
)

func TestDirectionCacheFirstPutWins(t *testing.T) {
	c := NewDirectionCache()
	axis := domain.Axis{Left: "a", Right: "b"}

	first := []float64{1, 0}
	stored := c.Put(axis, first)
	if &stored[0] != &first[0] {
		t.Fatal("Put did not store the first value")
	}
	again := c.Put(axis, []float64{0, 1})
	if &again[0] != &first[0] {
		t.Error("second Put replaced the cached direction")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestDirectionCacheKeysAreNotConcatenated(t *testing.T) {
	c := NewDirectionCache()
	c.Put(domain.Axis{Left: "ab", Right: "c"}, []float64{1})
	if _, ok := c.Get(domain.Axis{Left: "a", Right: "bc"}); ok {
		t.Error("axes ab|c and a|bc share a cache entry")
	}
}

func TestDirectionCacheConcurrentProject(t *testing.T) {
	e := toyEngine(Options{})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.Project("king", "man", "woman"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	stats := e.Cache().Stats()
	if stats.Size != 1 {
		t.Errorf("cache size = %d, want 1", stats.Size)
	}
	if stats.Hits+stats.Misses != 16 {
		t.Errorf("hits+misses = %d, want 16", stats.Hits+stats.Misses)
	}
}
