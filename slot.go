// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"fmt"
	"math/bits"

	"github.com/gogpu/preview/render"
)

// MaxSlots is the largest supported slot count.
// Slot occupancy is tracked in a single 64-bit free mask.
const MaxSlots = 64

// slot is one fixed preview execution context.
//
// A slot is either fully free (zero value) or fully occupied. layerApplied
// moves false -> true at most once per occupation and resets on release.
type slot struct {
	scene    SceneID
	instance InstanceID
	target   render.Target
	camera   StageRef
	light    StageRef

	layerApplied bool
	settle       uint32
	counting     bool
}

// SlotPool owns the fixed set of preview slots.
//
// Each slot is identified by its index and by a dedicated visibility layer
// (baseLayer + index). Occupy always picks the lowest free index, keeping
// layer numbering stable across a run, which aids debugging.
//
// SlotPool is not safe for concurrent use; it is owned by the Generator's
// tick. It is exported so hosts embedding their own scheduling loop can
// drive it directly.
type SlotPool struct {
	stage     Stage
	baseLayer int
	slots     []slot
	free      uint64 // bit i set = slot i free
}

// NewSlotPool creates a pool of count slots on the given stage.
// count must be in [1, MaxSlots]; baseLayer must not collide with any
// visibility layer the host uses elsewhere.
func NewSlotPool(stage Stage, count, baseLayer int) *SlotPool {
	if count < 1 || count > MaxSlots {
		panic(fmt.Sprintf("preview: slot count %d out of range [1, %d]", count, MaxSlots))
	}
	return &SlotPool{
		stage:     stage,
		baseLayer: baseLayer,
		slots:     make([]slot, count),
		free:      ^uint64(0) >> (MaxSlots - count),
	}
}

// Len returns the number of slots in the pool.
func (p *SlotPool) Len() int {
	return len(p.slots)
}

// FreeCount returns the number of unoccupied slots.
func (p *SlotPool) FreeCount() int {
	return bits.OnesCount64(p.free)
}

// IsFull reports whether no slot is free.
func (p *SlotPool) IsFull() bool {
	return p.free == 0
}

// Layer returns the dedicated visibility layer of slot i.
func (p *SlotPool) Layer(i int) int {
	return p.baseLayer + i
}

// Occupy binds a scene, its instantiation, and a freshly allocated target
// to the lowest-index free slot, creating the slot's camera and light on
// the stage. Both are restricted to the slot's visibility layer; the camera
// renders into target.
//
// Returns the slot index and true, or 0 and false if the pool is full.
func (p *SlotPool) Occupy(id SceneID, inst InstanceID, target render.Target) (int, bool) {
	if p.free == 0 {
		return 0, false
	}

	i := bits.TrailingZeros64(p.free)
	p.free &^= 1 << i

	layer := p.Layer(i)
	s := &p.slots[i]
	s.scene = id
	s.instance = inst
	s.target = target
	s.light = p.stage.AddLight(layer)
	s.camera = p.stage.AddCamera(layer, target)
	s.counting = true
	return i, true
}

// Release destroys slot i's camera and light and returns the slot to the
// free set. The slot's target is NOT destroyed: ownership has either moved
// to the cache entry or was never handed out.
//
// Releasing an already-free slot is a programming error and panics.
func (p *SlotPool) Release(i int) {
	if p.free&(1<<i) != 0 {
		panic(fmt.Sprintf("preview: release of free slot %d", i))
	}

	s := &p.slots[i]
	p.stage.Remove(s.light)
	p.stage.Remove(s.camera)
	*s = slot{}
	p.free |= 1 << i
}

// occupied reports whether slot i is occupied.
func (p *SlotPool) occupied(i int) bool {
	return p.free&(1<<i) == 0
}
