package app

import (
	"math"
	"time"

	"asciicube/asciigl"
	"asciicube/hal"

	"github.com/pkg/errors"
)

// Config holds every tunable of the renderer and its frame loop.
type Config struct {
	Width  int
	Height int

	CubeSize       float32
	CameraDistance float32
	FOV            float32 // degrees

	// Per-frame rotation increments, in radians.
	RotateX float32
	RotateY float32

	Interval time.Duration
	Frames   uint64 // 0 = run until stopped

	Ramp string
}

// DefaultConfig returns the stock 80x40 view.
func DefaultConfig() Config {
	return Config{
		Width:          80,
		Height:         40,
		CubeSize:       12,
		CameraDistance: 4,
		FOV:            90,
		RotateX:        0.03,
		RotateY:        0.02,
		Interval:       hal.DefaultInterval,
		Ramp:           string(asciigl.DefaultRamp),
	}
}

// Validate reports the first setting the pipeline cannot render with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if !(c.CubeSize > 0) {
		return errors.Errorf("invalid cube size %v", c.CubeSize)
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return errors.Errorf("fov %v outside (0, 180)", c.FOV)
	}
	// A rotated corner of the unit cube can reach z = -sqrt(3); the camera
	// must stay in front of it or the projection inverts.
	if !(float64(c.CameraDistance) > math.Sqrt(3)) {
		return errors.Errorf("camera distance %v must exceed %.3f", c.CameraDistance, math.Sqrt(3))
	}
	if c.Interval <= 0 {
		return errors.Errorf("invalid frame interval %v", c.Interval)
	}
	if len(c.Ramp) < 2 {
		return errors.Errorf("shade ramp %q needs at least 2 glyphs", c.Ramp)
	}
	// Cells hold one byte each, so every glyph must be a single printable
	// ASCII character.
	for i := 0; i < len(c.Ramp); i++ {
		if b := c.Ramp[i]; b < '!' || b > '~' {
			return errors.Errorf("shade ramp %q: byte %#02x at %d is not printable ASCII", c.Ramp, b, i)
		}
	}
	return nil
}

// Projector returns the projection described by c.
func (c Config) Projector() asciigl.Projector {
	return asciigl.Projector{
		Width:          c.Width,
		Height:         c.Height,
		CubeSize:       c.CubeSize,
		CameraDistance: c.CameraDistance,
		FOV:            c.FOV,
	}
}

// Renderer returns a renderer for c.
func (c Config) Renderer() *asciigl.Renderer {
	return asciigl.NewRenderer(c.Projector(), asciigl.ShadeRamp(c.Ramp))
}

// Loop returns the driver loop settings for c.
func (c Config) Loop() hal.LoopConfig {
	return hal.LoopConfig{Interval: c.Interval, Frames: c.Frames}
}
