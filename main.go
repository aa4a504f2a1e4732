package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"asciicube/app"
	"asciicube/hal"
	"asciicube/internal/buildinfo"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		window  bool
		scale   int
		logPath string
		version bool
	)
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells.")
	flag.Func("cube-size", "Object-to-cell scale (default 12).", float32Flag(&cfg.CubeSize))
	flag.Func("camera-distance", "Camera distance from the cube centre (default 4).", float32Flag(&cfg.CameraDistance))
	flag.Func("fov", "Field of view in degrees (default 90).", float32Flag(&cfg.FOV))
	flag.Func("rotate-x", "Rotation about X per frame, radians (default 0.03).", float32Flag(&cfg.RotateX))
	flag.Func("rotate-y", "Rotation about Y per frame, radians (default 0.02).", float32Flag(&cfg.RotateY))
	flag.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Frame interval.")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "Stop after N frames (0 = run until interrupted).")
	flag.StringVar(&cfg.Ramp, "ramp", cfg.Ramp, "Shade glyphs, sparsest to densest.")
	flag.BoolVar(&window, "window", false, "Draw into a desktop window instead of the terminal.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&logPath, "log", "", "Append log lines to this file.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Short())
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "asciicube:", err)
		os.Exit(2)
	}
	if err := run(cfg, window, scale, logPath); err != nil {
		fmt.Fprintln(os.Stderr, "asciicube:", err)
		os.Exit(1)
	}
}

// run drives cfg on the terminal or in a window until the frame limit, a
// signal, or a quit key. An interrupted run is not an error.
func run(cfg app.Config, window bool, scale int, logPath string) error {
	var logOut io.Writer
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	var err error
	if window {
		err = hal.RunWindow(ctx, newApp, hal.WindowConfig{
			Loop:  cfg.Loop(),
			Cols:  cfg.Width,
			Rows:  cfg.Height,
			Scale: scale,
			Log:   logOut,
		})
	} else {
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{
			Loop: cfg.Loop(),
			Log:  logOut,
		})
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
