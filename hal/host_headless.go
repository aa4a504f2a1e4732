package hal

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// DefaultInterval paces frames at roughly 60 per second.
const DefaultInterval = 16 * time.Millisecond

// LoopConfig controls how often the step function runs and for how long.
type LoopConfig struct {
	Interval time.Duration
	Frames   uint64 // stop after N frames (0 = run until cancelled)
}

func (c LoopConfig) withDefaults() (LoopConfig, error) {
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.Interval < 0 {
		return c, errors.Errorf("invalid frame interval: %v", c.Interval)
	}
	return c, nil
}

// runLoop calls step once per interval until ctx is done, step fails, or the
// frame limit is reached. ctx is only checked between frames.
func runLoop(ctx context.Context, cfg LoopConfig, step func() error) (uint64, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return 0, err
	}

	t := time.NewTicker(cfg.Interval)
	defer t.Stop()

	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		case <-t.C:
			if err := ctx.Err(); err != nil {
				return frames, err
			}
			if step != nil {
				if err := step(); err != nil {
					return frames, err
				}
			}
			frames++
			if cfg.Frames > 0 && frames >= cfg.Frames {
				return frames, nil
			}
		}
	}
}
