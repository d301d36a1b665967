package plot

import (
	"fmt"
	"image/color"
)

var colorAxis = color.RGBA{A: 0xFF}

const (
	axisWidth  = 1
	curveWidth = 2
	fontSize   = 10

	tickHalf       = 5
	tickLabelGap   = 8
	yTickLabelLift = 6
)

// Options configures a Renderer.
type Options struct {
	Evaluator Evaluator
	// Logger receives per-render diagnostics. Optional.
	Logger Logger
	// View returns the current view. Resize uses it to repaint. Optional; without it a
	// resize only clears the surface.
	View func() ViewConfig
}

// Stats summarizes the last render pass.
type Stats struct {
	Expression string
	Samples    int
	Gaps       int
	Failures   int
	Paths      int
	Points     int
}

// Renderer owns the coordinate transform, the sampling loop and the draw calls for one
// canvas. It is not safe for concurrent use; Render and Resize run to completion.
type Renderer struct {
	c    Canvas
	opts Options

	width  float64
	height float64
	scale  float64

	last Stats
}

func NewRenderer(c Canvas, opts Options) *Renderer {
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	return &Renderer{c: c, opts: opts, scale: 1}
}

// Size returns the logical drawing size set by the last Resize.
func (r *Renderer) Size() (w, h float64) { return r.width, r.height }

// Scale returns the device pixel ratio set by the last Resize.
func (r *Renderer) Scale() float64 { return r.scale }

// Stats returns the summary of the last completed render.
func (r *Renderer) Stats() Stats { return r.last }

// Resize adopts a new surface size and repaints the whole surface.
// A surface with a non-positive dimension or scale leaves nothing to draw on.
func (r *Renderer) Resize(s Surface) {
	if !s.valid() {
		r.width, r.height = 0, 0
		return
	}
	r.scale = s.Scale
	r.width, r.height = s.Logical()
	r.c.SetScale(r.scale)

	if r.opts.View == nil {
		r.clear()
		return
	}
	if err := r.Render(r.opts.View()); err != nil {
		r.opts.Logger.WriteLineString("plot: " + err.Error())
	}
}

// Render clears the surface, then draws the axes with their ticks and the function curve.
//
// The only error it returns is a *ViewError for bounds that cannot be mapped to the
// screen; in that case the surface is left cleared. Expression failures are drawn as gaps.
func (r *Renderer) Render(v ViewConfig) error {
	if err := v.Validate(); err != nil {
		r.clear()
		r.last = Stats{Expression: v.Expression}
		return err
	}
	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	r.clear()
	r.drawAxesAndTicks(v)
	r.drawFunctionCurve(v)
	return nil
}

func (r *Renderer) clear() {
	if r.width <= 0 || r.height <= 0 {
		return
	}
	r.c.ClearRect(0, 0, r.width, r.height)
}

func (r *Renderer) drawAxesAndTicks(v ViewConfig) {
	c := r.c
	tr := NewTransform(v, r.width, r.height)

	c.SetStrokeColor(colorAxis)
	c.SetLineWidth(axisWidth)

	// Both zero lines are drawn even when 0 is outside the view; the canvas clips them.
	yZero := tr.ScreenY(0)
	c.BeginPath()
	c.MoveTo(0, yZero)
	c.LineTo(r.width, yZero)
	c.Stroke()

	xZero := tr.ScreenX(0)
	c.BeginPath()
	c.MoveTo(xZero, 0)
	c.LineTo(xZero, r.height)
	c.Stroke()

	c.SetFontSize(fontSize)
	c.SetFillColor(colorAxis)
	c.SetTextBaseline(BaselineTop)

	c.SetTextAlign(AlignCenter)
	for _, x := range Ticks(v.DomainMin, v.DomainMax) {
		sx := tr.ScreenX(x)
		c.BeginPath()
		c.MoveTo(sx, yZero-tickHalf)
		c.LineTo(sx, yZero+tickHalf)
		c.Stroke()
		c.FillText(FormatTick(x), sx, yZero+tickLabelGap)
	}

	c.SetTextAlign(AlignRight)
	for _, y := range Ticks(v.RangeMin, v.RangeMax) {
		sy := tr.ScreenY(y)
		c.BeginPath()
		c.MoveTo(xZero-tickHalf, sy)
		c.LineTo(xZero+tickHalf, sy)
		c.Stroke()
		c.FillText(FormatTick(y), xZero-tickLabelGap, sy-yTickLabelLift)
	}
}

func (r *Renderer) drawFunctionCurve(v ViewConfig) {
	log := r.opts.Logger

	var fn Func
	if r.opts.Evaluator != nil {
		f, err := r.opts.Evaluator.Compile(v.Expression)
		if err != nil {
			log.WriteLineString(fmt.Sprintf("plot: %q: %v", v.Expression, err))
		} else {
			fn = f
		}
	}

	curve := SampleCurve(v, r.width, r.height, fn)
	if fn != nil && curve.Failures > 0 {
		log.WriteLineString(fmt.Sprintf("plot: eval x=%g: %v", curve.ErrX, curve.Err))
		log.WriteLineString(fmt.Sprintf("plot: %d of %d samples failed", curve.Failures, curve.Samples))
	}

	c := r.c
	c.SetStrokeColor(v.Stroke)
	c.SetLineWidth(curveWidth)
	c.BeginPath()
	for _, path := range curve.Paths {
		c.MoveTo(path[0].X, path[0].Y)
		for _, p := range path[1:] {
			c.LineTo(p.X, p.Y)
		}
	}
	c.Stroke()

	r.last = Stats{
		Expression: v.Expression,
		Samples:    curve.Samples,
		Gaps:       curve.Gaps,
		Failures:   curve.Failures,
		Paths:      len(curve.Paths),
		Points:     curve.Points(),
	}
}
