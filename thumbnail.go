// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/preview/render"
)

// ErrNoPixelAccess is returned when a thumbnail is requested from a target
// that has no CPU-readable pixels (e.g., a GPU-only texture target).
var ErrNoPixelAccess = errors.New("preview: target has no CPU pixel access")

// Thumbnail returns a scaled-down RGBA copy of a finished preview.
//
// Asset browsers often display previews at icon size; Thumbnail resamples a
// CPU-accessible target with Catmull-Rom filtering, which keeps edges crisp
// at small sizes. The source target is not modified.
//
// For GPU-only targets this returns [ErrNoPixelAccess]; downscale those on
// the GPU by sampling the target's texture view instead.
func Thumbnail(t render.Target, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("preview: invalid thumbnail size %dx%d", width, height)
	}

	px := t.Pixels()
	if px == nil {
		return nil, ErrNoPixelAccess
	}

	src := &image.RGBA{
		Pix:    px,
		Stride: t.Stride(),
		Rect:   image.Rect(0, 0, t.Width(), t.Height()),
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
