package app

import (
	"image/color"
	"strings"
	"sync"

	"mathgraph/graph/raster"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

const (
	consoleRows    = 4
	consoleHistory = 64
)

var colorConsoleBG = color.RGBA{A: 0xFF}

// console keeps the most recent diagnostic lines and draws the tail of them with tinyterm.
type console struct {
	mu    sync.Mutex
	lines []string
	dirty bool
}

func (c *console) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		c.lines = append(c.lines, strings.ReplaceAll(line, "\t", " "))
	}
	if n := len(c.lines) - consoleHistory; n > 0 {
		c.lines = append(c.lines[:0], c.lines[n:]...)
	}
	c.dirty = true
}

func (c *console) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.dirty = true
}

func (c *console) tail(n int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > len(c.lines) {
		n = len(c.lines)
	}
	out := make([]string, n)
	copy(out, c.lines[len(c.lines)-n:])
	return out
}

// takeDirty reports whether lines changed since the last call.
func (c *console) takeDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.dirty
	c.dirty = false
	return d
}

// render redraws the panel from scratch. The terminal is rebuilt every time and never
// fed more lines than it has rows, so it never scrolls.
func (c *console) render(r *raster.Region, font *tinyfont.Font, lineHeight int) {
	w, h := r.Size()
	_ = r.FillRectangle(0, 0, w, h, colorConsoleBG)

	_, charWidth := tinyfont.LineWidth(font, "0")
	if lineHeight <= 0 || charWidth == 0 {
		return
	}
	rows := int(h) / lineHeight
	cols := int(w) / int(charWidth)
	if rows <= 0 || cols <= 1 {
		return
	}

	t := tinyterm.NewTerminal(r)
	t.Configure(&tinyterm.Config{
		Font:       font,
		FontHeight: int16(lineHeight),
		FontOffset: int16(raster.FontAscent(font)),
	})
	for i, line := range c.tail(rows) {
		if i > 0 {
			t.Write([]byte("\r\n"))
		}
		// A full row would wrap the cursor onto the next one.
		line, _ = takeRunes(line, cols-1)
		t.Write([]byte(line))
	}
}
