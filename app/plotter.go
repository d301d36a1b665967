package app

import (
	"fmt"
	"image"
	"image/color"
	"unicode"

	"mathgraph/graph/expr"
	"mathgraph/graph/plot"
	"mathgraph/graph/raster"
	"mathgraph/hal"
	"mathgraph/internal/config"
)

// Chrome text is 10 logical pixels tall, like the tick labels.
const chromeFontSize = 10

// Evaluator compiles plot expressions with the expr package.
var Evaluator = plot.EvaluatorFunc(func(src string) (plot.Func, error) {
	p, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Eval, nil
})

// plotter is the interactive function plotter: a status bar with the view fields, the
// plot region and a console panel, stacked top to bottom.
type plotter struct {
	h   hal.HAL
	cfg Config
	log hal.Logger
	con *console

	view plot.ViewConfig
	form form

	d        *raster.Display
	canvas   *raster.Canvas
	renderer *plot.Renderer

	// Layout inputs seen by the last layout pass.
	fbW, fbH int
	scale    float64

	status        statusBar
	statusRect    image.Rectangle
	plotRect      image.Rectangle
	consoleRect   image.Rectangle
	consoleLineHt int

	example int
	palette int

	needPlot   bool
	needStatus bool
	renders    int
}

func newPlotter(h hal.HAL, cfg Config) *plotter {
	con := &console{}
	p := &plotter{
		h:    h,
		cfg:  cfg,
		con:  con,
		log:  teeLogger{out: h.Logger(), con: con},
		view: cfg.View,
	}
	p.form.load(p.view)
	p.palette = paletteIndex(cfg.Palette, p.view.Stroke)
	p.example = -1

	if disp := h.Display(); disp != nil {
		if fb := disp.Framebuffer(); fb != nil {
			p.d = raster.NewDisplay(fb)
			p.canvas = raster.NewCanvas(p.d, image.Rectangle{})
			p.renderer = plot.NewRenderer(p.canvas, plot.Options{
				Evaluator: Evaluator,
				Logger:    p.log,
				View:      func() plot.ViewConfig { return p.view },
			})
		}
	}
	return p
}

// paletteIndex returns the palette entry with colour c, or -1.
func paletteIndex(palette []config.PaletteEntry, c color.RGBA) int {
	for i, e := range palette {
		if e.Color.R == c.R && e.Color.G == c.G && e.Color.B == c.B {
			return i
		}
	}
	return -1
}

func (p *plotter) step() error {
	if p.renderer == nil {
		return nil
	}

	p.drainKeys()

	disp := p.h.Display()
	fb := disp.Framebuffer()
	scale := disp.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	if fb != p.d.Framebuffer() || fb.Width() != p.fbW || fb.Height() != p.fbH || scale != p.scale {
		p.layout(fb, scale)
	}

	drew := false
	if p.needPlot {
		p.needPlot = false
		p.render()
		drew = true
	}
	if p.needStatus {
		p.needStatus = false
		p.status.render(p.d.Region(p.statusRect), &p.form, p.view.Stroke)
		drew = true
	}
	if p.con.takeDirty() || drew {
		font, _ := raster.FontForSize(chromeFontSize * p.scale)
		p.con.render(p.d.Region(p.consoleRect), font, p.consoleLineHt)
		drew = true
	}
	if drew {
		return fb.Present()
	}
	return nil
}

// layout splits the framebuffer into status bar, plot region and console, then hands the
// plot region to the renderer, which repaints it.
func (p *plotter) layout(fb hal.Framebuffer, scale float64) {
	if fb != p.d.Framebuffer() {
		p.d = raster.NewDisplay(fb)
		p.canvas.SetDisplay(p.d)
	}
	w, h := fb.Width(), fb.Height()
	p.fbW, p.fbH, p.scale = w, h, scale

	font, lh := raster.FontForSize(chromeFontSize * scale)
	p.status = newStatusBar(font, lh)
	p.consoleLineHt = lh

	statusH := p.status.height()
	consoleH := consoleRows*lh + 2*statusPad
	if statusH+consoleH > h {
		consoleH = 0
	}
	p.statusRect = image.Rect(0, 0, w, min(statusH, h))
	p.consoleRect = image.Rect(0, h-consoleH, w, h)
	p.plotRect = image.Rect(0, p.statusRect.Max.Y, w, p.consoleRect.Min.Y)
	if p.plotRect.Empty() {
		p.plotRect = image.Rectangle{}
	}

	p.canvas.SetBounds(p.plotRect)
	p.renderer.Resize(plot.Surface{
		PixelWidth:  p.plotRect.Dx(),
		PixelHeight: p.plotRect.Dy(),
		Scale:       scale,
	})
	p.afterRender()

	p.needPlot = false
	p.needStatus = true
}

func (p *plotter) render() {
	if err := p.renderer.Render(p.view); err != nil {
		p.log.WriteLineString("plot: " + err.Error())
		return
	}
	p.afterRender()
}

func (p *plotter) afterRender() {
	w, h := p.renderer.Size()
	if w <= 0 || h <= 0 {
		return
	}
	p.renders++
	if p.cfg.Headless {
		st := p.renderer.Stats()
		p.log.WriteLineString(fmt.Sprintf("render: expr=%q segments=%d points=%d gaps=%d",
			st.Expression, st.Paths, st.Points, st.Gaps))
	}
}

func (p *plotter) drainKeys() {
	in := p.h.Input()
	if in == nil {
		return
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return
	}
	ch := kbd.Events()
	for {
		select {
		case ev := <-ch:
			p.handleKey(ev)
		default:
			return
		}
	}
}

func (p *plotter) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	p.needStatus = true

	switch ev.Code {
	case hal.KeyTab, hal.KeyDown:
		p.form.next()
	case hal.KeyUp:
		p.form.prev()
	case hal.KeyLeft:
		p.form.left()
	case hal.KeyRight:
		p.form.right()
	case hal.KeyHome:
		p.form.home()
	case hal.KeyEnd:
		p.form.end()
	case hal.KeyBackspace:
		p.form.backspace()
	case hal.KeyDelete:
		p.form.del()
	case hal.KeyEnter:
		p.apply()
	case hal.KeyEscape:
		p.form.load(p.view)
	case hal.KeyF1:
		p.nextExample()
	case hal.KeyF2:
		p.nextColor()
	case hal.KeyF3:
		p.con.clear()
	case hal.KeyUnknown:
		if ev.Rune != 0 && unicode.IsPrint(ev.Rune) {
			p.form.insert(ev.Rune)
		}
	}
}

// apply is the draw action: parse the fields and plot them, or report why not.
func (p *plotter) apply() {
	v, err := p.form.view(p.view)
	if err != nil {
		p.log.WriteLineString("input: " + err.Error())
		return
	}
	p.view = v
	p.form.load(v)
	p.palette = paletteIndex(p.cfg.Palette, v.Stroke)
	p.needPlot = true
}

func (p *plotter) nextExample() {
	if len(p.cfg.Examples) == 0 {
		return
	}
	p.example = (p.example + 1) % len(p.cfg.Examples)
	ex := p.cfg.Examples[p.example]
	p.view.Expression = ex.Expression
	p.form.fields[fieldExpr].set(ex.Expression)
	p.log.WriteLineString(fmt.Sprintf("example: %s = %s", ex.Label, ex.Expression))
	p.needPlot = true
}

func (p *plotter) nextColor() {
	if len(p.cfg.Palette) == 0 {
		return
	}
	p.palette = (p.palette + 1) % len(p.cfg.Palette)
	e := p.cfg.Palette[p.palette]
	p.view.Stroke = e.Color.RGBA
	p.form.fields[fieldColor].set(e.Color.String())
	p.needPlot = true
}
