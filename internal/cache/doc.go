// Package cache provides the sharded LRU used to memoize patch grids.
//
//	c := cache.New[Size, []Patch](64, hashSize)
//	grid := c.GetOrCreate(size, func() []Patch { return d.ScaleTo(w, h) })
//
// Entries are spread over a fixed number of shards, each guarded by its own
// mutex and evicting its least recently used key once full. Hit, miss and
// eviction counters are atomic.
//
// A Sharded cache must not be copied after creation.
package cache
