package app

import (
	"image/color"

	"mathgraph/graph/raster"
	"mathgraph/internal/buildinfo"

	"tinygo.org/x/tinyfont"
)

var (
	colorStatusBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorStatusFG = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorFocus    = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
)

const statusHints = "Tab field  Enter draw  Esc revert  F1 example  F2 color  F3 clear"

const statusPad = 2

// statusBar draws the editable fields on the first row and key hints on the second.
type statusBar struct {
	font       *tinyfont.Font
	lineHeight int
	ascent     int
	gap        int16
}

func newStatusBar(font *tinyfont.Font, lineHeight int) statusBar {
	_, space := tinyfont.LineWidth(font, " ")
	return statusBar{
		font:       font,
		lineHeight: lineHeight,
		ascent:     raster.FontAscent(font),
		gap:        int16(space),
	}
}

// height is the bar height in device pixels.
func (s statusBar) height() int { return 2*s.lineHeight + 2*statusPad }

func (s statusBar) render(r *raster.Region, fm *form, swatch color.RGBA) {
	w, h := r.Size()
	_ = r.FillRectangle(0, 0, w, h, colorStatusBG)

	y := int16(statusPad + s.ascent)
	x := int16(statusPad)
	for id := fieldID(0); id < fieldCount; id++ {
		x = s.text(r, x, y, fieldLabels[id], colorDim)
		f := &fm.fields[id]
		fg := colorStatusFG
		if id == fm.focus {
			fg = colorFocus
		}
		start := x
		x = s.text(r, x, y, f.String(), fg)
		if id == fm.focus {
			_, pre := tinyfont.LineWidth(s.font, string(f.text[:f.cursor]))
			cx := start + int16(pre)
			_ = r.FillRectangle(cx, y-int16(s.ascent), 1, int16(s.ascent)+2, colorFocus)
		}
		if id == fieldColor {
			sz := int16(s.ascent)
			_ = r.FillRectangle(x, y-sz, sz, sz, swatch)
			x += sz
		}
		x += s.gap * 2
	}

	y += int16(s.lineHeight)
	s.text(r, statusPad, y, statusHints, colorDim)

	id := "mathgraph " + buildinfo.Short()
	_, iw := tinyfont.LineWidth(s.font, id)
	s.text(r, w-int16(iw)-statusPad, y, id, colorDim)
}

// text draws s with its baseline at y and returns the x after it.
func (s statusBar) text(r *raster.Region, x, y int16, str string, fg color.RGBA) int16 {
	if str == "" {
		return x
	}
	tinyfont.WriteLine(r, s.font, x, y, str, fg)
	_, w := tinyfont.LineWidth(s.font, str)
	return x + int16(w)
}
