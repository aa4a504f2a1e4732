package asciigl

import (
	"strings"

	"github.com/chewxy/math32"
)

// Blank is the glyph of a cell nothing was drawn into.
const Blank = ' '

// Frame is a row-major glyph grid paired with a depth grid.
//
// Depth holds the closest fragment depth written to each cell so far, or +Inf
// for untouched cells. Glyphs holds the glyph of that closest fragment.
type Frame struct {
	Width  int
	Height int
	Glyphs []byte
	Depth  []Scalar
}

// NewFrame allocates a blank frame of the given size.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f := &Frame{
		Width:  w,
		Height: h,
		Glyphs: make([]byte, w*h),
		Depth:  make([]Scalar, w*h),
	}
	f.Reset()
	return f
}

// Reset clears glyphs to Blank and depths to +Inf.
func (f *Frame) Reset() {
	far := math32.Inf(1)
	for i := range f.Glyphs {
		f.Glyphs[i] = Blank
	}
	for i := range f.Depth {
		f.Depth[i] = far
	}
}

// Size returns the frame dimensions in cells.
func (f *Frame) Size() (w, h int) { return f.Width, f.Height }

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// At returns the glyph at (x, y), or Blank outside the frame.
func (f *Frame) At(x, y int) byte {
	if !f.inBounds(x, y) {
		return Blank
	}
	return f.Glyphs[y*f.Width+x]
}

// DepthAt returns the stored depth at (x, y), or +Inf outside the frame.
func (f *Frame) DepthAt(x, y int) Scalar {
	if !f.inBounds(x, y) {
		return math32.Inf(1)
	}
	return f.Depth[y*f.Width+x]
}

// Row returns row y of the glyph grid. The slice aliases the frame.
func (f *Frame) Row(y int) []byte {
	if y < 0 || y >= f.Height {
		return nil
	}
	off := y * f.Width
	return f.Glyphs[off : off+f.Width]
}

// String renders the grid as newline separated rows.
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		b.Write(f.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}
