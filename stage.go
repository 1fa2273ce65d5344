// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import "github.com/gogpu/preview/render"

// SceneID identifies a scene asset definition.
//
// It names the definition, not any live instantiation of it: two Requests
// with equal SceneIDs refer to the same asset and share one cached preview.
type SceneID string

// InstanceID is the host's handle for one live instantiation of a scene.
// Opaque to preview; only the Spawner interprets it.
type InstanceID uint64

// ObjectRef is the host's handle for one object inside an instantiated
// scene graph. Used only for visibility-layer tagging.
type ObjectRef uint64

// StageRef is the host's handle for a camera or light created on its stage.
type StageRef uint64

// Spawner instantiates scene assets into live object graphs.
//
// The host implements Spawner on top of its scene system. Instantiation is
// asynchronous: Spawn returns immediately and IsReady reports when the
// object graph is fully built. A scene that can never load simply never
// becomes ready; preview has no timeout of its own.
type Spawner interface {
	// Spawn begins instantiating the scene and returns a handle for it.
	Spawn(id SceneID) InstanceID

	// IsReady reports whether the instantiation's object graph is fully built.
	// Readiness must be monotonic: once true for an instance, it stays true
	// until the instance is despawned.
	IsReady(inst InstanceID) bool

	// Despawn tears down the instantiated object graph.
	Despawn(inst InstanceID)

	// ForEachObject calls fn for every object in the instantiated graph.
	// Only called after IsReady reports true.
	ForEachObject(inst InstanceID, fn func(ObjectRef))
}

// Stage is the host renderer surface preview places its slot rigs on.
//
// Each occupied slot owns one camera and one light, both restricted to the
// slot's dedicated visibility layer so that the camera draws only that
// slot's instance into its target.
//
// Hosts that want thumbnails framed like the reference implementation
// should place the camera at [DefaultCameraPosition] looking at the origin
// and aim the light along [DefaultLightDirection].
type Stage interface {
	// AddCamera creates a camera restricted to layer, rendering into target.
	AddCamera(layer int, target render.Target) StageRef

	// AddLight creates a light restricted to layer.
	AddLight(layer int) StageRef

	// Remove destroys a camera or light previously added.
	Remove(ref StageRef)

	// SetLayer restricts an object to the given visibility layer.
	SetLayer(obj ObjectRef, layer int)
}

// Default slot rig placement, matching the reference thumbnail framing.
var (
	// DefaultCameraPosition is the recommended camera position; the camera
	// looks from here at the scene origin.
	DefaultCameraPosition = [3]float64{-5, 2, -5}

	// DefaultLightDirection is the recommended direction for the slot's
	// directional light.
	DefaultLightDirection = [3]float64{1, -1, 1}
)
