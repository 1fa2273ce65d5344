// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrNoTextureAllocator is returned by NewDeviceFactory when the handle's
// device does not support texture allocation.
var ErrNoTextureAllocator = errors.New("render: device does not implement TextureAllocator")

// TargetFactory allocates a fresh render target for each admitted preview.
//
// The preview generator calls NewTarget once per slot occupation. Every call
// must return a distinct buffer: the returned target becomes the cached
// result for one scene and is never reused for another.
type TargetFactory interface {
	// NewTarget allocates a target of the given size.
	NewTarget(width, height int) (Target, error)
}

// ImageFactory allocates CPU-backed ImageTargets.
// It is the default factory when no GPU device is configured.
type ImageFactory struct{}

// NewTarget allocates a transparent RGBA image target.
func (ImageFactory) NewTarget(width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid target size %dx%d", width, height)
	}
	return NewImageTarget(width, height), nil
}

// TextureFactory allocates GPU texture targets through a host allocator.
//
// Example:
//
//	factory := render.NewTextureFactory(hostAllocator, gputypes.TextureFormatBGRA8Unorm)
//	gen := preview.New(spawner, stage, preview.WithTargetFactory(factory))
type TextureFactory struct {
	alloc  TextureAllocator
	format gputypes.TextureFormat
}

// NewTextureFactory creates a factory that allocates textures of the given
// format. If format is undefined, BGRA8Unorm is used (the usual surface
// format for thumbnails destined for screen display).
func NewTextureFactory(alloc TextureAllocator, format gputypes.TextureFormat) *TextureFactory {
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	return &TextureFactory{alloc: alloc, format: format}
}

// NewDeviceFactory creates a texture factory from a host device handle.
//
// The handle must be provided by the host application (e.g. a gogpu.App);
// the factory does NOT create its own GPU device. Its device must support
// texture allocation. If format is undefined, the handle's surface format
// is used, so previews composite onto the host surface without conversion.
//
// Example:
//
//	factory, err := render.NewDeviceFactory(app.GPUContextProvider(), gputypes.TextureFormatUndefined)
//	if err != nil {
//	    // fall back to render.ImageFactory{}
//	}
//	gen := preview.New(spawner, stage, preview.WithTargetFactory(factory))
func NewDeviceFactory(handle DeviceHandle, format gputypes.TextureFormat) (*TextureFactory, error) {
	if handle == nil {
		return nil, errors.New("render: nil device handle")
	}
	device := handle.Device()
	if device == nil {
		return nil, errors.New("render: device handle has no device")
	}
	alloc, ok := device.(TextureAllocator)
	if !ok {
		return nil, ErrNoTextureAllocator
	}
	if format == gputypes.TextureFormatUndefined {
		format = handle.SurfaceFormat()
	}
	return NewTextureFactory(alloc, format), nil
}

// NewTarget allocates a GPU texture target via the host allocator.
func (f *TextureFactory) NewTarget(width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid target size %dx%d", width, height)
	}
	if f.alloc == nil {
		return nil, fmt.Errorf("render: texture factory has no allocator")
	}
	//nolint:gosec // G115: sizes validated positive above
	desc := PreviewTextureDescriptor(uint32(width), uint32(height), f.format)
	desc.Label = "preview-target"
	tex, err := f.alloc.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("render: allocate preview texture: %w", err)
	}
	return NewTextureTarget(tex), nil
}

// Ensure factories implement TargetFactory.
var (
	_ TargetFactory = ImageFactory{}
	_ TargetFactory = (*TextureFactory)(nil)
)
