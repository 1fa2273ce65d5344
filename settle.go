// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

// Settle detection and layer tagging phases of the scheduling tick.
//
// Structural readiness (the object graph is fully built) does not mean the
// rendered image is visually final: shadow maps, temporal accumulation, and
// streamed textures may need several more frames. Completion is therefore a
// fixed settle delay counted in ticks, not a content-based convergence
// check, and it is polled per slot rather than event-driven because "still
// ready for N consecutive ticks" cannot be expressed as a one-shot callback.

// applyLayers tags every object of newly-ready instances with the slot's
// visibility layer. Runs at most once per occupation: readiness is observed
// across many ticks, but tagging twice would be wasted work on large graphs.
func (g *Generator) applyLayers() {
	for i := range g.pool.slots {
		if !g.pool.occupied(i) {
			continue
		}
		s := &g.pool.slots[i]
		if s.layerApplied || !g.spawner.IsReady(s.instance) {
			continue
		}
		s.layerApplied = true

		layer := g.pool.Layer(i)
		g.spawner.ForEachObject(s.instance, func(obj ObjectRef) {
			g.stage.SetLayer(obj, layer)
		})
		Logger().Debug("preview: layer applied", "scene", s.scene, "layer", layer)
	}
}

// countSettle advances settle counters on structurally-ready slots.
// Counting does not start until the instance is ready, and a counter that
// reaches the threshold fires exactly once.
func (g *Generator) countSettle() {
	for i := range g.pool.slots {
		if !g.pool.occupied(i) {
			continue
		}
		s := &g.pool.slots[i]
		if !s.counting || !g.spawner.IsReady(s.instance) {
			continue
		}

		s.settle++
		Logger().Debug("preview: settle frame counted",
			"scene", s.scene, "slot", i, "frames", s.settle)
		if s.settle >= g.cfg.settleFrames {
			s.counting = false
			g.completed = append(g.completed, i)
		}
	}
}
