package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

type hostHAL struct {
	logger *hostLogger
	con    Console
}

// New returns a host HAL that logs to w (stderr when nil) and presents on con.
func New(w io.Writer, con Console) HAL {
	return newHostHAL(w, con)
}

func newHostHAL(w io.Writer, con Console) *hostHAL {
	if w == nil {
		w = os.Stderr
	}
	return &hostHAL{
		logger: &hostLogger{w: w},
		con:    con,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Console() Console { return h.con }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

func stopLine(frames uint64, err error) string {
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Sprintf("stopped after %d frames: %v", frames, err)
	}
	return fmt.Sprintf("stopped after %d frames", frames)
}
