//go:build cgo || windows || darwin

package hal

import (
	"context"
	"image"
	"io"
	"time"

	"asciicube/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// WindowConfig controls RunWindow.
type WindowConfig struct {
	Loop LoopConfig

	// Cols and Rows size the window in grid cells.
	Cols int
	Rows int

	// Scale multiplies the window size on screen.
	Scale int

	// Log receives log lines (stderr when nil).
	Log io.Writer
}

// RunWindow opens a desktop window showing the grid and blocks until the window
// closes, ctx is cancelled, step fails, or the frame limit is reached.
func RunWindow(ctx context.Context, newApp func(HAL) func() error, cfg WindowConfig) error {
	loop, err := cfg.Loop.withDefaults()
	if err != nil {
		return err
	}
	cw, ch := GlyphCellSize()
	if cw <= 0 || ch <= 0 {
		return errors.New("window: glyph font unavailable")
	}
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return errors.Errorf("window: invalid grid size %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	fb := newHostFramebuffer(cfg.Cols*cw, cfg.Rows*ch)
	h := newHostHAL(cfg.Log, NewGlyphConsole(fb))
	step := newApp(h)

	g := &hostGame{
		ctx:   ctx,
		fb:    fb,
		step:  step,
		pacer: newFramePacer(loop.Interval, nil),
		limit: loop.Frames,
	}
	ebiten.SetWindowTitle("asciicube (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(fb.width*cfg.Scale, fb.height*cfg.Scale)
	ebiten.SetTPS(tpsFor(loop.Interval))

	err = ebiten.RunGame(g)
	h.logger.WriteLineString(stopLine(g.frames, err))
	if err != nil {
		return errors.Wrap(err, "window")
	}
	return g.err
}

func tpsFor(interval time.Duration) int {
	tps := int(time.Second / interval)
	if tps < 1 {
		return 1
	}
	return tps
}

type hostGame struct {
	ctx     context.Context
	fb      *hostFramebuffer
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
	pacer   *framePacer

	limit  uint64
	frames uint64
	err    error
}

func (g *hostGame) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.err = err
		return ebiten.Termination
	}
	for n := g.pacer.due(); n > 0; n-- {
		if g.step != nil {
			if err := g.step(); err != nil {
				return err
			}
		}
		g.frames++
		if g.limit > 0 && g.frames >= g.limit {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.width, g.fb.height
}
