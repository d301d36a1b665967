package plot

import "image/color"

// TextAlign is the horizontal anchor of FillText.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical anchor of FillText.
type TextBaseline uint8

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
)

// Canvas is an immediate-mode 2D drawing API in logical pixels.
//
// Paths are built with BeginPath/MoveTo/LineTo and drawn by Stroke using the current
// stroke colour and line width. A MoveTo starts a new subpath.
type Canvas interface {
	// SetScale sets the device pixels per logical pixel. It replaces, not multiplies,
	// any previous scale.
	SetScale(s float64)
	ClearRect(x, y, w, h float64)

	SetStrokeColor(c color.RGBA)
	SetFillColor(c color.RGBA)
	SetLineWidth(w float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	SetFontSize(px float64)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	FillText(s string, x, y float64)
}

// Logger receives diagnostic lines. hal.Logger satisfies it.
type Logger interface {
	WriteLineString(s string)
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
