package cache

import (
	"github.com/lukeandrew/subsurface/pkg/divelog/types"
)

// Cache provides high-level caching operations for repository loads.
type Cache struct {
	store *Store
}

// Open opens or creates a cache at the given path.
func Open(path string) (*Cache, error) {
	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}
	return &Cache{store: store}, nil
}

// Close closes the cache.
func (c *Cache) Close() error {
	return c.store.Close()
}

// Get returns the dive log cached for the given repository and commit.
// Returns ErrNotFound when no entry exists or its format is stale.
func (c *Cache) Get(repo, commit string) (*types.DiveLog, error) {
	snap, err := c.store.Get(repo, commit)
	if err != nil {
		return nil, err
	}
	return snap.DiveLog(), nil
}

// Put stores a loaded dive log for the given repository and commit.
func (c *Cache) Put(repo, commit string, log *types.DiveLog) error {
	return c.store.Put(repo, commit, MakeSnapshot(log))
}

// Invalidate removes the entry for the given repository and commit.
func (c *Cache) Invalidate(repo, commit string) error {
	return c.store.Delete(repo, commit)
}
