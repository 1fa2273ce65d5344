package preview

import "github.com/gogpu/preview/render"

// Default configuration values.
const (
	// DefaultResolution is the default edge length of generated previews.
	DefaultResolution = 256

	// DefaultSlotCount is the default number of concurrent preview slots.
	DefaultSlotCount = 8

	// DefaultBaseLayer is the first visibility layer reserved for preview
	// slots. Slot i uses layer DefaultBaseLayer + i; the host must not use
	// these layers for anything else.
	DefaultBaseLayer = 128

	// DefaultSettleFrames is the number of consecutive ticks an instance
	// must stay structurally ready before its render counts as final.
	// Shadow maps, temporal effects, and streamed textures can lag a few
	// frames behind readiness.
	DefaultSettleFrames = 8
)

// Option configures a Generator during creation.
// Use functional options to customize Generator behavior.
//
// Example:
//
//	// Defaults: 256x256, 8 slots, base layer 128, 8 settle frames
//	gen := preview.New(spawner, stage)
//
//	// Small icons, two concurrent renders
//	gen := preview.New(spawner, stage,
//	    preview.WithResolution(64, 64),
//	    preview.WithSlotCount(2),
//	)
type Option func(*config)

// config holds resolved Generator configuration.
type config struct {
	width        int
	height       int
	slotCount    int
	baseLayer    int
	settleFrames uint32
	factory      render.TargetFactory
}

// defaultConfig returns the default generator configuration.
func defaultConfig() config {
	return config{
		width:        DefaultResolution,
		height:       DefaultResolution,
		slotCount:    DefaultSlotCount,
		baseLayer:    DefaultBaseLayer,
		settleFrames: DefaultSettleFrames,
		factory:      render.ImageFactory{},
	}
}

// WithResolution sets the size of generated preview images.
// Non-positive dimensions fall back to the defaults.
func WithResolution(width, height int) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithSlotCount sets the number of concurrent preview slots.
// The count is fixed at construction and clamped to [1, MaxSlots].
func WithSlotCount(count int) Option {
	return func(c *config) {
		if count < 1 {
			count = 1
		}
		if count > MaxSlots {
			count = MaxSlots
		}
		c.slotCount = count
	}
}

// WithBaseLayer sets the first visibility layer used by preview slots.
// Slot i renders on layer base + i; none of these layers may collide with
// layers the host uses elsewhere.
func WithBaseLayer(base int) Option {
	return func(c *config) {
		if base >= 0 {
			c.baseLayer = base
		}
	}
}

// WithSettleFrames sets how many consecutive ready ticks a render needs
// before completion. Values below 1 are clamped to 1, so a completion can
// never be observed in the tick that admitted the scene.
func WithSettleFrames(frames int) Option {
	return func(c *config) {
		if frames < 1 {
			frames = 1
		}
		c.settleFrames = uint32(frames)
	}
}

// WithTargetFactory sets a custom render target factory.
// Use this to allocate GPU texture targets against the host device:
//
//	factory := render.NewTextureFactory(hostAllocator, gputypes.TextureFormatBGRA8Unorm)
//	gen := preview.New(spawner, stage, preview.WithTargetFactory(factory))
func WithTargetFactory(f render.TargetFactory) Option {
	return func(c *config) {
		if f != nil {
			c.factory = f
		}
	}
}
