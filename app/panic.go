package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"mathgraph/graph/raster"

	"tinygo.org/x/tinyfont"
)

// guard wraps step so that a panic is logged with its stack, shown on screen and turned
// into an error that stops the host loop.
func (p *plotter) guard(step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			stack := debug.Stack()
			p.showPanic(r, stack)
			err = fmt.Errorf("panic: %v", r)
		}()
		return step()
	}
}

func (p *plotter) showPanic(value any, stack []byte) {
	lines := []string{"mathgraph panic:", fmt.Sprintf("panic: %v", value)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := p.h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := p.h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	scale := disp.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	font, lineHeight := raster.FontForSize(chromeFontSize * scale)
	drawPanicText(raster.NewDisplay(fb), font, lineHeight, lines)
	_ = fb.Present()
}

func drawPanicText(d *raster.Display, font *tinyfont.Font, lineHeight int, lines []string) {
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int(outboxWidth)
	if fontWidth <= 0 || lineHeight <= 0 {
		return
	}
	w, h := d.Size()
	cols := int(w) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	fg := color.RGBA{A: 255}
	ascent := raster.FontAscent(font)
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lineHeight > int(h) {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, int16(y+ascent), chunk, fg)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
