package web

import "sync"

type cacheEntry struct {
	hash  uint64
	flags uint8
	data  []byte
}

// cache is a fixed size ring of encoded frames, keyed by the xxhash of
// the raw frame they were encoded from. Clients mirror its indexes.
type cache struct {
	entries []cacheEntry
	idx     int
	sync.RWMutex
}

func newCache(size int) *cache {
	if size < 1 {
		size = 1
	}
	return &cache{entries: make([]cacheEntry, size)}
}

// index returns the index of the entry with the given hash.
func (c *cache) index(hash uint64) (int, bool) {
	for i, e := range c.entries {
		if e.data != nil && e.hash == hash {
			return i, true
		}
	}

	return -1, false
}

// add stores data, evicting the oldest entry, and returns its index.
func (c *cache) add(hash uint64, flags uint8, data []byte) int {
	i := c.idx
	c.entries[i] = cacheEntry{hash: hash, flags: flags, data: data}
	c.idx = (c.idx + 1) % len(c.entries)
	return i
}
