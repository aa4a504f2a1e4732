package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

type testGrid struct {
	w, h int
	rows []string
}

func newTestGrid(rows ...string) *testGrid {
	g := &testGrid{h: len(rows), rows: rows}
	for _, r := range rows {
		if len(r) > g.w {
			g.w = len(r)
		}
	}
	return g
}

func (g *testGrid) Size() (int, int) { return g.w, g.h }
func (g *testGrid) Row(y int) []byte { return []byte(g.rows[y]) }

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, nil)
	h.Logger().WriteLineString("a")
	h.Logger().WriteLineBytes([]byte("b"))
	if got := buf.String(); got != "a\nb\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStopLine(t *testing.T) {
	if got := stopLine(3, nil); got != "stopped after 3 frames" {
		t.Fatalf("got %q", got)
	}
	if got := stopLine(3, context.Canceled); got != "stopped after 3 frames" {
		t.Fatalf("got %q", got)
	}
	if got := stopLine(1, errors.New("x")); got != "stopped after 1 frames: x" {
		t.Fatalf("got %q", got)
	}
}
