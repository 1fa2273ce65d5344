// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"github.com/gogpu/preview/render"
)

// Generator schedules off-screen preview renders.
//
// A Generator owns a [PreviewCache] and a [SlotPool] and advances them once
// per call to Tick. Callers interact through Request, which is non-blocking:
// it either returns a finished preview or schedules one and reports that the
// caller should poll again later.
//
// Generator is not safe for concurrent use of Tick; drive it from a single
// loop (the host's frame loop). Request may be called from any goroutine.
//
// There is no cancellation: once a scene is admitted it runs to completion,
// and completed previews are never invalidated.
type Generator struct {
	cfg     config
	spawner Spawner
	stage   Stage
	pool    *SlotPool
	cache   *PreviewCache

	// completed holds slot indices whose settle counter fired in an
	// earlier tick. Drained at the start of the next tick's completion
	// phase, never in the tick that filled it.
	completed []int
}

// New creates a Generator using the given host collaborators.
//
// spawner instantiates scene assets; stage hosts the per-slot camera and
// light rigs. Both must be non-nil.
func New(spawner Spawner, stage Stage, opts ...Option) *Generator {
	if spawner == nil {
		panic("preview: nil Spawner")
	}
	if stage == nil {
		panic("preview: nil Stage")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Generator{
		cfg:     cfg,
		spawner: spawner,
		stage:   stage,
		pool:    NewSlotPool(stage, cfg.slotCount, cfg.baseLayer),
		cache:   NewPreviewCache(),
	}
}

// Request returns the finished preview for id, or schedules one.
//
// On a hit the memoized target is returned with ok=true; no scheduling work
// happens. Otherwise ok is false and the scene is queued at most once,
// regardless of how many callers request it before it finishes. Poll again
// on later ticks.
func (g *Generator) Request(id SceneID) (render.Target, bool) {
	return g.cache.GetOrSchedule(id)
}

// Cache returns the generator's preview cache, for stats and direct lookups.
func (g *Generator) Cache() *PreviewCache {
	return g.cache
}

// Pool returns the generator's slot pool.
func (g *Generator) Pool() *SlotPool {
	return g.pool
}

// Tick runs one scheduling cycle.
//
// Phases, in order:
//  1. Admission: drain the pending queue into free slots until one of them
//     runs out. Each admission spawns an instantiation and allocates a
//     fresh render target.
//  2. Completion: consume completion signals emitted by earlier ticks;
//     cache the target, despawn the instance, release the slot. Slots
//     freed here become admissible only on the next tick.
//  3. Layer tagging: restrict newly-ready instances to their slot's
//     visibility layer, once per occupation.
//  4. Settle counting: advance counters on ready slots; a counter reaching
//     the threshold emits one completion signal for the next tick.
func (g *Generator) Tick() {
	g.admit()
	g.drainCompleted()
	g.applyLayers()
	g.countSettle()
}

// admit moves queued scenes into free slots, many per tick if room allows.
func (g *Generator) admit() {
	for !g.pool.IsFull() {
		id, ok := g.cache.next()
		if !ok {
			break
		}

		target, err := g.cfg.factory.NewTarget(g.cfg.width, g.cfg.height)
		if err != nil {
			// Put the scene back; it stays claimed, so no duplicate
			// job can appear before the retry.
			Logger().Warn("preview: target allocation failed",
				"scene", id, "error", err)
			g.cache.requeue(id)
			return
		}

		inst := g.spawner.Spawn(id)
		idx, ok := g.pool.Occupy(id, inst, target)
		if !ok {
			panic("preview: occupy on full pool")
		}
		Logger().Info("preview: generating image",
			"scene", id, "slot", idx, "layer", g.pool.Layer(idx))
	}
}

// drainCompleted handles completion signals from earlier ticks: ownership
// of the slot's target moves to the cache entry, the instance is torn down,
// and the slot returns to the free set.
func (g *Generator) drainCompleted() {
	for _, i := range g.completed {
		s := &g.pool.slots[i]
		g.cache.complete(s.scene, s.target)
		g.spawner.Despawn(s.instance)
		Logger().Info("preview: image generated", "scene", s.scene, "slot", i)
		g.pool.Release(i)
	}
	g.completed = g.completed[:0]
}
