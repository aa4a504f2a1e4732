package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// GlyphColor matches TerminalStyle's foreground.
var GlyphColor = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}

// GlyphConsole draws grids into an RGB565 framebuffer, one font cell per glyph.
type GlyphConsole struct {
	fb Framebuffer
	d  *fbDisplay

	font       tinyfont.Fonter
	cellWidth  int16
	cellHeight int16
	baseline   int16
}

// GlyphCellSize returns the pixel size of one grid cell.
func GlyphCellSize() (w, h int) {
	font, cw, ch, _ := glyphFont()
	if font == nil {
		return 0, 0
	}
	return int(cw), int(ch)
}

func glyphFont() (font tinyfont.Fonter, cellWidth, cellHeight, baseline int16) {
	font = &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "@")
	cellWidth = int16(outboxWidth)
	cellHeight = int16(font.GetYAdvance())
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, 0, 0, 0
	}
	// tinyfont draws from the baseline; keep descenders inside the cell.
	baseline = cellHeight - cellHeight/4
	return font, cellWidth, cellHeight, baseline
}

// NewGlyphConsole returns a console drawing into fb. fb should be at least
// GlyphCellSize() times the grid size; glyphs past the edge are clipped.
func NewGlyphConsole(fb Framebuffer) *GlyphConsole {
	font, cw, ch, base := glyphFont()
	return &GlyphConsole{
		fb:         fb,
		d:          &fbDisplay{fb: fb},
		font:       font,
		cellWidth:  cw,
		cellHeight: ch,
		baseline:   base,
	}
}

// Present clears the framebuffer, draws every non-blank cell of g and shows
// the result.
func (c *GlyphConsole) Present(g Grid) error {
	if c.fb == nil || c.font == nil {
		return nil
	}
	c.fb.ClearRGB(0, 0, 0)
	w, h := g.Size()
	for y := 0; y < h; y++ {
		row := g.Row(y)
		py := int16(y)*c.cellHeight + c.baseline
		for x := 0; x < w && x < len(row); x++ {
			if row[x] == ' ' {
				continue
			}
			tinyfont.DrawChar(c.d, c.font, int16(x)*c.cellWidth, py, rune(row[x]), GlyphColor)
		}
	}
	return c.fb.Present()
}

func (c *GlyphConsole) Close() error { return nil }

// fbDisplay adapts a Framebuffer to drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := rgb565FromRGBA(c)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error { return nil }
