// cache.go holds compiled markup in memory (L1). Entries are keyed by
// template ID and version, so a refine that bumps the version is a miss.
package engine

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

type cacheKey struct {
	id      uuid.UUID
	version int
}

type compiledCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*compiled
}

func newCompiledCache() *compiledCache {
	return &compiledCache{entries: make(map[cacheKey]*compiled)}
}

func (c *compiledCache) get(id uuid.UUID, version int) *compiled {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[cacheKey{id: id, version: version}]
}

func (c *compiledCache) put(id uuid.UUID, version int, cm *compiled) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{id: id, version: version}] = cm
	slog.Debug("ai template compiled", "id", id, "version", version, "size", len(c.entries))
}

// invalidate drops every cached version of id.
func (c *compiledCache) invalidate(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.id == id {
			delete(c.entries, k)
		}
	}
}

func (c *compiledCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
