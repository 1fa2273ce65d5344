// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/preview/render"
)

// PreviewCache is the request-facing side of the generator.
//
// Per scene identifier it tracks exactly one of four states: unknown (no
// record), queued (awaiting a free slot), in flight (occupying a slot), or
// rendered (terminal, target available). A scene's claim covers both the
// queued and in-flight states, which is what guarantees that concurrent
// requests for one scene never enqueue duplicate work.
//
// PreviewCache is safe for concurrent use. Rendered entries live for the
// process lifetime; there is no eviction.
type PreviewCache struct {
	mu       sync.Mutex
	rendered map[SceneID]render.Target
	pending  map[SceneID]struct{} // claimed: queued or in flight
	queue    []SceneID            // FIFO admission order

	// Statistics (atomic for zero-allocation reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats contains cache statistics for monitoring.
type CacheStats struct {
	// Rendered is the number of finished, memoized previews.
	Rendered int
	// Queued is the number of scenes awaiting a free slot.
	Queued int
	// InFlight is the number of scenes currently occupying a render slot.
	InFlight int
	// Hits is the number of requests answered from the cache.
	Hits uint64
	// Misses is the number of requests that found no finished preview.
	Misses uint64
	// HitRate is the cache hit rate (0.0 to 1.0).
	HitRate float64
}

// NewPreviewCache creates an empty preview cache.
func NewPreviewCache() *PreviewCache {
	return &PreviewCache{
		rendered: make(map[SceneID]render.Target),
		pending:  make(map[SceneID]struct{}),
	}
}

// GetOrSchedule returns the finished preview for id, or schedules one.
//
// On a hit the stored target is returned with ok=true. On a miss it returns
// (nil, false) and, if id is neither queued nor in flight, appends it to the
// pending queue and claims it so that further requests merge into the same
// job. Absence of a result is not an error; callers poll again later.
func (c *PreviewCache) GetOrSchedule(id SceneID) (render.Target, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if target, ok := c.rendered[id]; ok {
		c.hits.Add(1)
		return target, true
	}
	c.misses.Add(1)

	if _, claimed := c.pending[id]; !claimed {
		c.pending[id] = struct{}{}
		c.queue = append(c.queue, id)
	}
	return nil, false
}

// Get returns the finished preview for id without scheduling anything.
func (c *PreviewCache) Get(id SceneID) (render.Target, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, ok := c.rendered[id]
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return target, ok
}

// next removes and returns the oldest queued scene.
// The scene stays claimed in the pending set: it is now in flight.
func (c *PreviewCache) next() (SceneID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.queue) == 0 {
		return "", false
	}
	id := c.queue[0]
	c.queue = c.queue[1:]
	return id, true
}

// requeue puts an admitted scene back at the front of the queue.
// Used when target allocation fails after the scene was dequeued.
func (c *PreviewCache) requeue(id SceneID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queue = append([]SceneID{id}, c.queue...)
}

// complete records the finished preview for id and clears its in-flight
// claim. Rendered entries are terminal: nothing ever transitions a scene
// out of the rendered set.
func (c *PreviewCache) complete(id SceneID, target render.Target) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rendered[id] = target
	delete(c.pending, id)
}

// Len returns the number of finished previews.
func (c *PreviewCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rendered)
}

// QueueLen returns the number of scenes awaiting admission.
func (c *PreviewCache) QueueLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Contains reports whether a finished preview exists for id.
// This does not count as a hit or miss.
func (c *PreviewCache) Contains(id SceneID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.rendered[id]
	return ok
}

// Stats returns current cache statistics.
func (c *PreviewCache) Stats() CacheStats {
	c.mu.Lock()
	rendered := len(c.rendered)
	queued := len(c.queue)
	inFlight := len(c.pending) - queued
	c.mu.Unlock()

	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return CacheStats{
		Rendered: rendered,
		Queued:   queued,
		InFlight: inFlight,
		Hits:     hits,
		Misses:   misses,
		HitRate:  hitRate,
	}
}

// ResetStats resets the hit and miss counters to zero.
func (c *PreviewCache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
}
