package app

import (
	"fmt"

	"asciicube/asciigl"
	"asciicube/hal"
	"asciicube/internal/buildinfo"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Step renders the cube at rot, presents the frame on con, and returns the
// rotation for the next frame.
func Step(r *asciigl.Renderer, con hal.Console, rot asciigl.Rotation, dx, dy float32) (asciigl.Rotation, error) {
	f := r.Render(rot)
	if con != nil {
		if err := con.Present(f); err != nil {
			return rot, errors.Wrap(err, "present frame")
		}
	}
	return rot.Advance(dx, dy), nil
}

// New starts the renderer with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig returns the per-frame step function. The returned function
// owns the rotation state; each call draws one frame and advances it.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	r := cfg.Renderer()
	con := h.Console()

	if l := h.Logger(); l != nil {
		l.WriteLineString(startLine(cfg, uuid.Must(uuid.NewV7())))
	}

	var rot asciigl.Rotation
	return func() error {
		next, err := Step(r, con, rot, cfg.RotateX, cfg.RotateY)
		if err != nil {
			return err
		}
		rot = next
		return nil
	}
}

func startLine(cfg Config, session uuid.UUID) string {
	return fmt.Sprintf("asciicube %s: %dx%d fov=%g camera=%g interval=%v session=%s",
		buildinfo.Short(), cfg.Width, cfg.Height, cfg.FOV, cfg.CameraDistance, cfg.Interval, session)
}
