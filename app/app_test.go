package app

import (
	"strings"
	"sync"
	"testing"

	"mathgraph/graph/raster"
	"mathgraph/hal"
	"mathgraph/internal/config"
)

type testLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLog) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *testLog) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type testHAL struct {
	fb    hal.Framebuffer
	scale float64
	keys  chan hal.KeyEvent
	log   *testLog
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		fb:    hal.NewFramebuffer(w, h),
		scale: 1,
		keys:  make(chan hal.KeyEvent, 256),
		log:   &testLog{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return testDisplay{h} }
func (h *testHAL) Input() hal.Input     { return testInput{h} }

type testDisplay struct{ h *testHAL }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.h.fb }
func (d testDisplay) ScaleFactor() float64         { return d.h.scale }

type testInput struct{ h *testHAL }

func (in testInput) Keyboard() hal.Keyboard { return in.h }

func (h *testHAL) Events() <-chan hal.KeyEvent { return h.keys }

func (h *testHAL) press(codes ...hal.KeyCode) {
	for _, c := range codes {
		h.keys <- hal.KeyEvent{Code: c, Press: true}
		h.keys <- hal.KeyEvent{Code: c, Press: false}
	}
}

func (h *testHAL) typeText(s string) {
	for _, r := range s {
		h.keys <- hal.KeyEvent{Press: true, Rune: r}
	}
}

func (h *testHAL) backspaces(n int) {
	for i := 0; i < n; i++ {
		h.press(hal.KeyBackspace)
	}
}

func newTestPlotter(t *testing.T, h *testHAL, headless bool) *plotter {
	t.Helper()
	cfg := ConfigFrom(config.DefaultConfig())
	cfg.Headless = headless
	p := newPlotter(h, cfg)
	if err := p.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	return p
}

func step(t *testing.T, p *plotter) {
	t.Helper()
	if err := p.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
}

func TestPlotter_FirstStepLaysOutAndRenders(t *testing.T) {
	h := newTestHAL(400, 300)
	p := newTestPlotter(t, h, false)

	_, lh := raster.FontForSize(chromeFontSize)
	statusH := 2*lh + 2*statusPad
	consoleH := consoleRows*lh + 2*statusPad
	if p.plotRect.Min.Y != statusH || p.plotRect.Max.Y != 300-consoleH || p.plotRect.Dx() != 400 {
		t.Fatalf("plot rect=%v (status %d console %d)", p.plotRect, statusH, consoleH)
	}
	if w, ht := p.renderer.Size(); w != 400 || ht != float64(p.plotRect.Dy()) {
		t.Fatalf("renderer size=%vx%v", w, ht)
	}
	if st := p.renderer.Stats(); st.Expression != "Math.sin(x)" || st.Samples != 401 {
		t.Fatalf("stats=%+v", st)
	}
	if p.renders != 1 {
		t.Fatalf("renders=%d, want 1", p.renders)
	}

	if got := hal.PixelAt(h.fb, 1, 1); got != hal.RGB565(colorStatusBG.R, colorStatusBG.G, colorStatusBG.B) {
		t.Fatalf("status pixel=%#04x", got)
	}
	if got := hal.PixelAt(h.fb, 5, p.plotRect.Min.Y+5); got != 0xFFFF {
		t.Fatalf("plot background pixel=%#04x", got)
	}

	// Nothing changed: the next step draws nothing.
	renders := p.renders
	step(t, p)
	if p.renders != renders {
		t.Fatalf("idle step rendered again")
	}
}

func TestPlotter_EditExpressionAndDraw(t *testing.T) {
	h := newTestHAL(400, 300)
	p := newTestPlotter(t, h, false)

	h.press(hal.KeyEnd)
	h.backspaces(len("Math.sin(x)"))
	h.typeText("x*x")
	step(t, p)
	if p.view.Expression != "Math.sin(x)" {
		t.Fatalf("edit applied before Enter: %q", p.view.Expression)
	}

	h.press(hal.KeyEnter)
	step(t, p)
	if p.view.Expression != "x*x" {
		t.Fatalf("expression=%q, want x*x", p.view.Expression)
	}
	if st := p.renderer.Stats(); st.Expression != "x*x" || st.Paths != 1 {
		t.Fatalf("stats=%+v", st)
	}
}

func TestPlotter_InvalidInputKeepsView(t *testing.T) {
	h := newTestHAL(400, 300)
	p := newTestPlotter(t, h, false)
	before := p.view

	h.press(hal.KeyTab, hal.KeyEnd)
	h.backspaces(3)
	h.typeText("abc")
	h.press(hal.KeyEnter)
	step(t, p)

	if p.view != before {
		t.Fatalf("view changed on bad input: %+v", p.view)
	}
	if !h.log.contains(`input: x min: "abc" is not a number`) {
		t.Fatalf("log=%v", h.log.lines)
	}
	if !strings.Contains(strings.Join(p.con.tail(consoleRows), "\n"), "abc") {
		t.Fatalf("console misses the error: %v", p.con.tail(consoleRows))
	}

	h.press(hal.KeyEscape)
	step(t, p)
	if got := p.form.fields[fieldXMin].String(); got != "-10" {
		t.Fatalf("x min after Escape=%q, want -10", got)
	}
}

func TestPlotter_DegenerateBoundsRejected(t *testing.T) {
	h := newTestHAL(400, 300)
	p := newTestPlotter(t, h, false)
	before := p.view

	// x max := -10, equal to x min.
	h.press(hal.KeyTab, hal.KeyTab, hal.KeyHome)
	h.typeText("-")
	h.press(hal.KeyEnter)
	step(t, p)

	if p.view != before {
		t.Fatalf("view changed: %+v", p.view)
	}
	if !h.log.contains("invalid view: domain") {
		t.Fatalf("log=%v", h.log.lines)
	}
}

func TestPlotter_SyntaxErrorStillDrawsAxes(t *testing.T) {
	h := newTestHAL(400, 300)
	p := newTestPlotter(t, h, false)

	h.press(hal.KeyEnd)
	h.backspaces(len("Math.sin(x)"))
	h.typeText("x+")
	h.press(hal.KeyEnter)
	step(t, p)

	if p.view.Expression != "x+" {
		t.Fatalf("expression=%q", p.view.Expression)
	}
	if !h.log.contains(`plot: "x+"`) {
		t.Fatalf("log=%v", h.log.lines)
	}
	if st := p.renderer.Stats(); st.Paths != 0 {
		t.Fatalf("stats=%+v, want no curve", st)
	}
	// The x axis sits in the middle of the plot region.
	y := p.plotRect.Min.Y + p.plotRect.Dy()/2
	if got := hal.PixelAt(h.fb, 10, y); got != 0 {
		t.Fatalf("axis pixel at y=%d is %#04x, want black", y, got)
	}
}

func TestPlotter_ExamplesAndPalette(t *testing.T) {
	h := newTestHAL(400, 300)
	p := newTestPlotter(t, h, false)

	h.press(hal.KeyF1, hal.KeyF1)
	step(t, p)
	if p.view.Expression != "Math.cos(x)" {
		t.Fatalf("expression after two F1=%q", p.view.Expression)
	}
	if p.form.fields[fieldExpr].String() != "Math.cos(x)" {
		t.Fatalf("field=%q", p.form.fields[fieldExpr].String())
	}
	if st := p.renderer.Stats(); st.Expression != "Math.cos(x)" {
		t.Fatalf("stats=%+v", st)
	}
	if !h.log.contains("example: cosine = Math.cos(x)") {
		t.Fatalf("log=%v", h.log.lines)
	}

	h.press(hal.KeyF2)
	step(t, p)
	if got := p.form.fields[fieldColor].String(); got != "#e74c3c" {
		t.Fatalf("color field=%q", got)
	}
	if p.view.Stroke.R != 0xE7 || p.view.Stroke.G != 0x4C || p.view.Stroke.B != 0x3C {
		t.Fatalf("stroke=%v", p.view.Stroke)
	}

	for i := 0; i < 4; i++ {
		h.press(hal.KeyF2)
	}
	step(t, p)
	if got := p.form.fields[fieldColor].String(); got != "#3498db" {
		t.Fatalf("palette did not wrap: %q", got)
	}
}

func TestPlotter_ClearConsole(t *testing.T) {
	h := newTestHAL(400, 300)
	p := newTestPlotter(t, h, false)
	p.log.WriteLineString("hello")
	if len(p.con.tail(consoleRows)) == 0 {
		t.Fatalf("console empty after a log line")
	}
	h.press(hal.KeyF3)
	step(t, p)
	if n := len(p.con.tail(consoleRows)); n != 0 {
		t.Fatalf("console has %d lines after F3", n)
	}
}

func TestPlotter_FollowsResizeAndScale(t *testing.T) {
	h := newTestHAL(400, 300)
	p := newTestPlotter(t, h, false)

	h.fb = hal.NewFramebuffer(800, 600)
	h.scale = 2
	step(t, p)

	w, ht := p.renderer.Size()
	if w != 400 || ht != float64(p.plotRect.Dy())/2 {
		t.Fatalf("renderer size=%vx%v for plot rect %v at scale 2", w, ht, p.plotRect)
	}
	if p.renderer.Scale() != 2 {
		t.Fatalf("renderer scale=%v", p.renderer.Scale())
	}
	if p.renders != 2 {
		t.Fatalf("renders=%d, want 2", p.renders)
	}
}

func TestPlotter_TinySurfaceDoesNotRender(t *testing.T) {
	h := newTestHAL(400, 8)
	p := newTestPlotter(t, h, false)
	if w, ht := p.renderer.Size(); w != 0 || ht != 0 {
		t.Fatalf("renderer size=%vx%v, want nothing to draw on", w, ht)
	}
	if p.renders != 0 {
		t.Fatalf("renders=%d", p.renders)
	}
}

func TestPlotter_HeadlessSummary(t *testing.T) {
	h := newTestHAL(400, 300)
	newTestPlotter(t, h, true)
	if !h.log.contains(`render: expr="Math.sin(x)" segments=1 points=401 gaps=0`) {
		t.Fatalf("log=%v", h.log.lines)
	}
}

func TestGuard_RecoversPanic(t *testing.T) {
	h := newTestHAL(200, 100)
	p := newPlotter(h, ConfigFrom(config.DefaultConfig()))
	step := p.guard(func() error { panic("boom") })

	err := step()
	if err == nil || !strings.Contains(err.Error(), "panic: boom") {
		t.Fatalf("err=%v", err)
	}
	if !h.log.contains("mathgraph panic:") {
		t.Fatalf("log=%v", h.log.lines)
	}
	// White screen with black text.
	var black, white int
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			switch hal.PixelAt(h.fb, x, y) {
			case 0:
				black++
			case 0xFFFF:
				white++
			}
		}
	}
	if white == 0 || black == 0 {
		t.Fatalf("panic screen white=%d black=%d", white, black)
	}
}

func TestNewWithConfig_LogsBuild(t *testing.T) {
	h := newTestHAL(400, 300)
	step := New(h)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !h.log.contains("mathgraph ") {
		t.Fatalf("log=%v", h.log.lines)
	}
}
