package raster

import (
	"image"
	"image/color"
	"math"

	"mathgraph/graph/plot"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

var _ plot.Canvas = (*Canvas)(nil)

// White is the default background.
var White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Text at or above this many device pixels switches to the large font.
const largeFontPx = 20

// Canvas implements plot.Canvas on a Region of a framebuffer.
//
// Logical coordinates are multiplied by the scale and offset by the region origin.
// Everything is clipped to the region.
type Canvas struct {
	d      *Display
	region *Region

	scale      float64
	background color.RGBA

	stroke    color.RGBA
	fill      color.RGBA
	lineWidth float64
	fontSize  float64
	align     plot.TextAlign
	baseline  plot.TextBaseline

	path [][]plot.Point
}

// NewCanvas returns a canvas drawing into bounds (framebuffer pixels) of d.
func NewCanvas(d *Display, bounds image.Rectangle) *Canvas {
	return &Canvas{
		d:          d,
		region:     d.Region(bounds),
		scale:      1,
		background: White,
		lineWidth:  1,
		fontSize:   10,
	}
}

// SetBounds moves the canvas to a new rectangle of the framebuffer.
func (c *Canvas) SetBounds(r image.Rectangle) { c.region = c.d.Region(r) }

// SetDisplay retargets the canvas at another display, keeping its bounds.
func (c *Canvas) SetDisplay(d *Display) {
	c.d = d
	c.region = d.Region(c.region.Bounds())
}

func (c *Canvas) Bounds() image.Rectangle { return c.region.Bounds() }

// SetBackground sets the colour ClearRect paints with.
func (c *Canvas) SetBackground(col color.RGBA) { c.background = col }

func (c *Canvas) SetScale(s float64) {
	if s > 0 && !math.IsInf(s, 0) {
		c.scale = s
	}
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0 := int(math.Floor(x * c.scale))
	y0 := int(math.Floor(y * c.scale))
	x1 := int(math.Ceil((x + w) * c.scale))
	y1 := int(math.Ceil((y + h) * c.scale))
	c.region.fill(image.Rect(x0, y0, x1, y1), c.background)
}

func (c *Canvas) SetStrokeColor(col color.RGBA) { c.stroke = col }
func (c *Canvas) SetFillColor(col color.RGBA)   { c.fill = col }
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.lineWidth = w
	}
}

func (c *Canvas) BeginPath() { c.path = c.path[:0] }

func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, []plot.Point{{X: x, Y: y}})
}

func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.path) - 1
	c.path[last] = append(c.path[last], plot.Point{X: x, Y: y})
}

// Stroke draws every subpath with at least two points. The path is kept, as on an HTML
// canvas, until the next BeginPath.
func (c *Canvas) Stroke() {
	w, h := c.region.Size()
	if w <= 0 || h <= 0 {
		return
	}
	xmax, ymax := float64(w-1), float64(h-1)

	width := roundInt(c.lineWidth * c.scale)
	if width < 1 {
		width = 1
	}

	for _, sub := range c.path {
		for i := 1; i < len(sub); i++ {
			x0, y0 := sub[i-1].X*c.scale, sub[i-1].Y*c.scale
			x1, y1 := sub[i].X*c.scale, sub[i].Y*c.scale
			if !finite(x0, y0, x1, y1) {
				continue
			}
			cx0, cy0, cx1, cy1, ok := clipLine(x0, y0, x1, y1, 0, 0, xmax, ymax)
			if !ok {
				continue
			}
			c.line(roundInt(cx0), roundInt(cy0), roundInt(cx1), roundInt(cy1), width)
		}
	}
}

func (c *Canvas) line(x0, y0, x1, y1, width int) {
	if width == 1 {
		bresenham(x0, y0, x1, y1, func(x, y int) {
			c.region.SetPixel(int16(x), int16(y), c.stroke)
		})
		return
	}
	off := (width - 1) / 2
	bresenham(x0, y0, x1, y1, func(x, y int) {
		c.region.fill(image.Rect(x-off, y-off, x-off+width, y-off+width), c.stroke)
	})
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (c *Canvas) SetFontSize(px float64) {
	if px > 0 {
		c.fontSize = px
	}
}

func (c *Canvas) SetTextAlign(a plot.TextAlign)       { c.align = a }
func (c *Canvas) SetTextBaseline(b plot.TextBaseline) { c.baseline = b }

// Font returns the font FillText uses at the current size and scale.
func (c *Canvas) Font() tinyfont.Fonter {
	f, _ := FontForSize(c.fontSize * c.scale)
	return f
}

func (c *Canvas) FillText(s string, x, y float64) {
	if s == "" {
		return
	}
	f := c.Font()
	px := x * c.scale
	py := y * c.scale
	if !finite(px, py) {
		return
	}

	_, outbox := tinyfont.LineWidth(f, s)
	switch c.align {
	case plot.AlignCenter:
		px -= float64(outbox) / 2
	case plot.AlignRight:
		px -= float64(outbox)
	}

	ascent := FontAscent(f)
	switch c.baseline {
	case plot.BaselineTop:
		py += float64(ascent)
	case plot.BaselineMiddle:
		py += float64(ascent) / 2
	}

	w, h := c.region.Size()
	if px > float64(w) || py < 0 || px+float64(outbox) < 0 || py-float64(ascent) > float64(h) {
		return
	}
	tinyfont.WriteLine(c.region, f, int16(roundInt(px)), int16(roundInt(py)), s, c.fill)
}

// FontForSize returns the font for text of px device pixels and its line height.
func FontForSize(px float64) (*tinyfont.Font, int) {
	f := &proggy.TinySZ8pt7b
	if px >= largeFontPx {
		f = &freemono.Regular9pt7b
	}
	return f, int(f.GetYAdvance())
}

// FontAscent is the height of a digit above the baseline.
func FontAscent(f tinyfont.Fonter) int {
	info := f.GetGlyph('0').Info()
	if info.YOffset < 0 {
		return -int(info.YOffset)
	}
	return int(info.Height)
}
