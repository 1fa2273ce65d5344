// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the target abstraction for preview generation.
//
// This package defines where a preview slot's render output goes, allowing
// the preview scheduler to stay independent of the host's render pipeline.
//
// # Key Principle
//
// preview RECEIVES a GPU device from the host application, it does NOT
// create its own. The host implements DeviceHandle and TextureAllocator;
// this package only describes the buffers the scheduler hands around.
//
// # Core Interfaces
//
//   - Target: the image buffer one preview slot renders into
//   - TargetFactory: allocates a fresh Target per admitted scene
//   - DeviceHandle: GPU device access provided by the host
//   - TextureAllocator: host-side texture allocation for GPU targets
//
// # Target Implementations
//
//   - ImageTarget: CPU-backed *image.RGBA target (default, test-friendly)
//   - TextureTarget: GPU texture target wrapping a host texture
//
// # Usage
//
// CPU-only preview generation:
//
//	gen := preview.New(spawner, stage) // uses render.ImageFactory
//
// GPU-backed targets in a gogpu host:
//
//	factory, err := render.NewDeviceFactory(app.GPUContextProvider(), gputypes.TextureFormatUndefined)
//	if err != nil {
//	    // device unavailable; render.ImageFactory{} still works
//	}
//	gen := preview.New(spawner, stage, preview.WithTargetFactory(factory))
//
// Hosts with a custom allocator can skip the device adapter:
//
//	factory := render.NewTextureFactory(hostAllocator, gputypes.TextureFormatBGRA8Unorm)
//
// # Thread Safety
//
// Targets are written by the host render pipeline while their slot is
// occupied and must be treated as read-only once the preview is cached.
package render
