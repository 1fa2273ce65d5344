package preview

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/preview/render"
)

// gpuOnlyTarget is a Target with no CPU pixel access.
type gpuOnlyTarget struct{}

func (gpuOnlyTarget) Width() int                      { return 256 }
func (gpuOnlyTarget) Height() int                     { return 256 }
func (gpuOnlyTarget) Format() gputypes.TextureFormat  { return gputypes.TextureFormatBGRA8Unorm }
func (gpuOnlyTarget) TextureView() render.TextureView { return nil }
func (gpuOnlyTarget) Pixels() []byte                  { return nil }
func (gpuOnlyTarget) Stride() int                     { return 0 }

func TestThumbnailDownscale(t *testing.T) {
	target := render.NewImageTarget(8, 8)
	target.Clear(color.RGBA{R: 255, A: 255})

	thumb, err := Thumbnail(target, 4, 4)
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}

	if got := thumb.Bounds().Dx(); got != 4 {
		t.Errorf("thumbnail width = %d, want 4", got)
	}
	if got := thumb.Bounds().Dy(); got != 4 {
		t.Errorf("thumbnail height = %d, want 4", got)
	}

	// A solid source must downscale to the same solid color.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := thumb.RGBAAt(x, y); got.R != 255 || got.A != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want solid red", x, y, got)
			}
		}
	}
}

func TestThumbnailSourceUntouched(t *testing.T) {
	target := render.NewImageTarget(8, 8)
	target.Clear(color.RGBA{G: 200, A: 255})

	if _, err := Thumbnail(target, 2, 2); err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}

	if got := target.Image().RGBAAt(3, 3); got.G != 200 {
		t.Error("Thumbnail modified the source target")
	}
}

func TestThumbnailInvalidSize(t *testing.T) {
	target := render.NewImageTarget(8, 8)

	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Thumbnail(target, tt.width, tt.height); err == nil {
				t.Error("Thumbnail() accepted an invalid size")
			}
		})
	}
}

func TestThumbnailGPUOnlyTarget(t *testing.T) {
	_, err := Thumbnail(gpuOnlyTarget{}, 4, 4)
	if !errors.Is(err, ErrNoPixelAccess) {
		t.Errorf("Thumbnail() error = %v, want ErrNoPixelAccess", err)
	}
}
