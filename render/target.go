// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Target is the image buffer a preview slot renders into.
//
// A Target is allocated when a scene is admitted into a slot, written by the
// host render pipeline while the slot is occupied, and handed to the preview
// cache on completion. From then on it is shared read-only by every caller
// that requested the scene.
//
// Two implementations are provided:
//   - ImageTarget: CPU-backed *image.RGBA, for software pipelines and tests
//   - TextureTarget: GPU texture supplied by the host device
//
// Targets may support CPU access (Pixels), GPU access (TextureView), or both.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// TextureView returns the GPU texture view for this target.
	// Returns nil for CPU-only targets.
	TextureView() TextureView

	// Pixels returns direct access to pixel data.
	// Returns nil for GPU-only targets.
	// For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	// For RGBA, this is typically Width * 4, but may include padding.
	Stride() int
}

// ImageTarget is a CPU-backed preview target using *image.RGBA.
//
// It is the default target kind: new targets start fully transparent, so an
// unfinished preview composites as empty rather than as garbage.
//
// Example:
//
//	target := render.NewImageTarget(256, 256)
//	// ... host pipeline draws the slot's instance into target ...
//	img := target.Image()
type ImageTarget struct {
	img *image.RGBA
}

// NewImageTarget creates a new CPU-backed preview target.
// The pixel data is zeroed (transparent black).
func NewImageTarget(width, height int) *ImageTarget {
	return &ImageTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageTargetFromImage wraps an existing *image.RGBA as a preview target.
// The image is used directly without copying.
func NewImageTargetFromImage(img *image.RGBA) *ImageTarget {
	return &ImageTarget{img: img}
}

// Width returns the target width in pixels.
func (t *ImageTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *ImageTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *ImageTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *ImageTarget) TextureView() TextureView {
	return nil
}

// Pixels returns direct access to the pixel data.
func (t *ImageTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *ImageTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *ImageTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *ImageTarget) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	// Convert from 16-bit to 8-bit (mask ensures value fits in uint8)
	//nolint:gosec // G115: mask ensures no overflow
	rgba := color.RGBA{
		R: uint8((r >> 8) & 0xFF),
		G: uint8((g >> 8) & 0xFF),
		B: uint8((b >> 8) & 0xFF),
		A: uint8((a >> 8) & 0xFF),
	}

	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// Ensure ImageTarget implements Target.
var _ Target = (*ImageTarget)(nil)

// TextureTarget is a GPU texture-backed preview target.
//
// The texture is allocated by the host (through a TextureAllocator) and the
// slot camera renders into its view. The asset browser samples the same
// texture when displaying the finished thumbnail.
type TextureTarget struct {
	texture Texture
	view    TextureView
}

// NewTextureTarget wraps a host-allocated texture as a preview target.
// A view is created eagerly so the render pipeline can attach it.
func NewTextureTarget(texture Texture) *TextureTarget {
	return &TextureTarget{
		texture: texture,
		view:    texture.CreateView(),
	}
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int {
	return int(t.texture.Width())
}

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int {
	return int(t.texture.Height())
}

// Format returns the pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat {
	return t.texture.Format()
}

// TextureView returns the GPU texture view.
func (t *TextureTarget) TextureView() TextureView {
	return t.view
}

// Texture returns the underlying host texture.
func (t *TextureTarget) Texture() Texture {
	return t.texture
}

// Pixels returns nil as this is a GPU-only target.
func (t *TextureTarget) Pixels() []byte {
	return nil
}

// Stride returns 0 as this is a GPU-only target.
func (t *TextureTarget) Stride() int {
	return 0
}

// Destroy releases the view and texture.
// Call only when no cached preview references this target anymore.
func (t *TextureTarget) Destroy() {
	if t.view != nil {
		t.view.Destroy()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
}

// Ensure TextureTarget implements Target.
var _ Target = (*TextureTarget)(nil)
