// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host application (e.g., a gogpu.App or an engine binding) implements
// DeviceHandle and passes it to preview so that texture-backed render
// targets can be allocated against the shared GPU device.
//
// Key principle: preview RECEIVES the device from the host, it does NOT
// create one. The library never initializes a GPU on its own; with no
// device, CPU image targets are used instead.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// preview-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// Texture represents a GPU texture resource owned by the host.
// This interface wraps the underlying WebGPU texture.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() uint32

	// Height returns the texture height in pixels.
	Height() uint32

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// CreateView creates a view for this texture.
	CreateView() TextureView

	// Destroy releases GPU resources associated with this texture.
	Destroy()
}

// TextureView represents a view into a texture.
// The host render pipeline binds a slot's view as its color attachment.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// TextureDescriptor describes parameters for allocating a preview texture.
// This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// MipLevelCount is the number of mipmap levels.
	// Use 1 for no mipmaps.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling.
	// Use 1 for no multisampling.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be sampled in shaders.
	TextureUsageTextureBinding

	// TextureUsageStorageBinding allows the texture to be used in a storage binding.
	TextureUsageStorageBinding

	// TextureUsageRenderAttachment allows the texture to be rendered into.
	TextureUsageRenderAttachment
)

// PreviewTextureDescriptor returns the descriptor used for preview targets.
//
// Preview textures must be renderable (the slot camera draws into them),
// samplable (the asset browser displays them), and writable by copies
// (hosts may upload placeholder content).
func PreviewTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:         width,
		Height:        height,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        format,
		Usage:         TextureUsageTextureBinding | TextureUsageCopyDst | TextureUsageRenderAttachment,
	}
}

// TextureAllocator allocates GPU textures on behalf of the preview library.
//
// The host implements TextureAllocator on top of its device; TextureFactory
// uses it to create one texture per preview slot.
type TextureAllocator interface {
	// CreateTexture allocates a texture matching the descriptor.
	CreateTexture(desc TextureDescriptor) (Texture, error)
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only preview generation where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
