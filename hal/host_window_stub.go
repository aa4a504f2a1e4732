//go:build !cgo && !windows && !darwin

package hal

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// WindowConfig controls RunWindow.
type WindowConfig struct {
	Loop  LoopConfig
	Cols  int
	Rows  int
	Scale int
	Log   io.Writer
}

func RunWindow(_ context.Context, _ func(HAL) func() error, _ WindowConfig) error {
	return errors.New("window mode on this platform requires cgo (build with CGO_ENABLED=1)")
}
