// Package preview generates thumbnail images for 3D scene assets on demand.
//
// # Overview
//
// preview turns an unbounded stream of "render a thumbnail of scene S"
// requests into a bounded set of concurrent off-screen render jobs. A fixed
// pool of preview slots (camera + light + dedicated visibility layer each)
// renders one scene instance at a time; finished images are memoized for the
// process lifetime and served to every subsequent request for the same scene.
//
// The library does not render anything itself. The host supplies two small
// interfaces: a [Spawner] that instantiates scene assets into live object
// graphs, and a [Stage] that creates cameras and lights in the host renderer
// and tags objects with visibility layers. Rendering happens in the host's
// pipeline; preview only schedules it.
//
// # Quick Start
//
//	gen := preview.New(spawner, stage,
//	    preview.WithResolution(256, 256),
//	    preview.WithSlotCount(8),
//	)
//
//	// In the host's per-frame loop:
//	gen.Tick()
//
//	// From the asset browser (non-blocking, poll until ready):
//	if target, ok := gen.Request("models/chair.glb"); ok {
//	    display(target)
//	}
//
// # Scheduling Model
//
// Scheduling is single-threaded and cooperative: all work happens inside
// Tick, driven by the host's frame loop. Each tick admits queued scenes into
// free slots, drains completions from earlier ticks, applies visibility
// layers to instances that finished loading, and advances per-slot settle
// counters. A render completes only after its instance has been structurally
// ready for a fixed number of consecutive ticks, giving shadows and temporal
// effects time to stabilize before the image is captured.
//
// For any scene identifier, at most one render job is ever queued or in
// flight, no matter how many callers request it concurrently. Cached entries
// are terminal: there is no invalidation or eviction.
//
// # Logging
//
// preview produces no log output by default. Call [SetLogger] to enable it.
package preview
