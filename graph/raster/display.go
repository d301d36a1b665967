package raster

import (
	"image"
	"image/color"

	"mathgraph/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Display)(nil)

// Display writes pixels straight into a framebuffer. Size follows the framebuffer, so a
// Display stays valid across host window resizes.
type Display struct {
	fb hal.Framebuffer
}

func NewDisplay(fb hal.Framebuffer) *Display {
	return &Display{fb: fb}
}

func (d *Display) Framebuffer() hal.Framebuffer { return d.fb }

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
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

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	d.fill(image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)), c)
	return nil
}

func (d *Display) fill(r image.Rectangle, c color.RGBA) {
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	r = r.Intersect(image.Rect(0, 0, d.fb.Width(), d.fb.Height()))
	if r.Empty() {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * stride
		for px := r.Min.X; px < r.Max.X; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// SetScroll is a no-op: the framebuffer has no hardware scrolling.
func (d *Display) SetScroll(line int16) {}

// Region returns a view of r. Coordinates passed to the region are relative to r.Min and
// everything outside r is discarded.
func (d *Display) Region(r image.Rectangle) *Region {
	return &Region{d: d, r: r.Canon()}
}

// Region is a clipped, translated window into a Display.
type Region struct {
	d *Display
	r image.Rectangle
}

var _ drivers.Displayer = (*Region)(nil)

// Bounds returns the region rectangle in framebuffer pixels.
func (g *Region) Bounds() image.Rectangle { return g.r }

func (g *Region) Size() (x, y int16) {
	return int16(g.r.Dx()), int16(g.r.Dy())
}

func (g *Region) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= g.r.Dx() || int(y) >= g.r.Dy() {
		return
	}
	g.d.SetPixel(int16(g.r.Min.X)+x, int16(g.r.Min.Y)+y, c)
}

func (g *Region) Display() error { return g.d.Display() }

func (g *Region) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	g.fill(image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)), c)
	return nil
}

// fill paints r, given in region coordinates, clipped to the region.
func (g *Region) fill(r image.Rectangle, c color.RGBA) {
	if g.d.fb == nil || g.d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	r = r.Add(g.r.Min).Intersect(g.r)
	if r.Empty() {
		return
	}
	g.d.fill(r, c)
}

func (g *Region) SetRotation(rotation drivers.Rotation) error { return nil }

func (g *Region) SetScroll(line int16) {}
