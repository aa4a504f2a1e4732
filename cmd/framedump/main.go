// Command framedump renders frames of the rotating cube as plain text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"asciicube/app"
	"asciicube/asciigl"

	"github.com/pkg/errors"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		frames int
		skip   int
		out    string
	)
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells.")
	flag.IntVar(&frames, "frames", 1, "Number of frames to write.")
	flag.IntVar(&skip, "skip", 0, "Frames to advance before the first written one.")
	flag.StringVar(&cfg.Ramp, "ramp", cfg.Ramp, "Shade glyphs, sparsest to densest.")
	flag.StringVar(&out, "out", "-", "Output file (- for stdout).")
	flag.Parse()

	if err := run(cfg, frames, skip, out); err != nil {
		fmt.Fprintln(os.Stderr, "framedump:", err)
		os.Exit(1)
	}
}

func run(cfg app.Config, frames, skip int, out string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if frames < 0 || skip < 0 {
		return errors.Errorf("invalid frame range: frames=%d skip=%d", frames, skip)
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrapf(err, "create %q", out)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := dump(bw, cfg, frames, skip); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "flush output")
}

// dump writes frames rendered from rotation skip onward, separated by a blank
// line.
func dump(w io.Writer, cfg app.Config, frames, skip int) error {
	r := cfg.Renderer()
	var rot asciigl.Rotation
	for i := 0; i < skip; i++ {
		rot = rot.Advance(cfg.RotateX, cfg.RotateY)
	}
	for i := 0; i < frames; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errors.Wrap(err, "write separator")
			}
		}
		if _, err := io.WriteString(w, r.Render(rot).String()); err != nil {
			return errors.Wrapf(err, "write frame %d", skip+i)
		}
		rot = rot.Advance(cfg.RotateX, cfg.RotateY)
	}
	return nil
}
