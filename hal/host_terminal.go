package hal

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// TerminalStyle is applied to every cell: light grey on the terminal default
// background.
var TerminalStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)

// TerminalConsole presents grids on a tcell screen.
type TerminalConsole struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminalConsole initializes screen (the process terminal when nil) and
// hides the cursor until Close.
func NewTerminalConsole(screen tcell.Screen) (*TerminalConsole, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "terminal: open screen")
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "terminal: init screen")
	}
	screen.SetStyle(TerminalStyle)
	screen.HideCursor()
	screen.Clear()
	return &TerminalConsole{screen: screen, style: TerminalStyle}, nil
}

// Present writes every cell of g and flushes them in a single Show.
func (c *TerminalConsole) Present(g Grid) error {
	w, h := g.Size()
	for y := 0; y < h; y++ {
		row := g.Row(y)
		for x := 0; x < w && x < len(row); x++ {
			c.screen.SetContent(x, y, rune(row[x]), nil, c.style)
		}
	}
	c.screen.Show()
	return nil
}

// Close restores the terminal.
func (c *TerminalConsole) Close() error {
	c.screen.Fini()
	return nil
}

// watch handles terminal events until the screen is finalized. Ctrl-C, Esc
// and q cancel; the terminal is in raw mode so no SIGINT arrives for Ctrl-C.
func (c *TerminalConsole) watch(cancel context.CancelFunc) {
	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
			}
		}
	}
}

// TerminalConfig controls RunTerminal.
type TerminalConfig struct {
	Loop LoopConfig

	// Log receives log lines. When nil, lines are held until the terminal is
	// restored and then written to stderr.
	Log io.Writer

	// Screen overrides the process terminal (tests use a simulation screen).
	Screen tcell.Screen
}

// RunTerminal draws frames into the terminal until ctx is cancelled, the user
// presses Ctrl-C/Esc/q, step fails, or the frame limit is reached.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	var held *bytes.Buffer
	logOut := cfg.Log
	if logOut == nil {
		held = &bytes.Buffer{}
		logOut = held
	}
	defer func() {
		if held != nil && held.Len() > 0 {
			_, _ = os.Stderr.Write(held.Bytes())
		}
	}()

	con, err := NewTerminalConsole(cfg.Screen)
	if err != nil {
		return err
	}
	defer con.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go con.watch(cancel)

	h := newHostHAL(logOut, con)
	step := newApp(h)

	frames, err := runLoop(ctx, cfg.Loop, step)
	h.logger.WriteLineString(stopLine(frames, err))
	return err
}
