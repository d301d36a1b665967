package plot

import "image/color"

// OpKind identifies a recorded canvas call.
type OpKind uint8

const (
	OpScale OpKind = iota + 1
	OpClearRect
	OpStrokeColor
	OpFillColor
	OpLineWidth
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpStroke
	OpFontSize
	OpTextAlign
	OpTextBaseline
	OpFillText
)

// Op is one recorded canvas call. Only the fields relevant to Kind are set.
type Op struct {
	Kind     OpKind
	X, Y     float64
	W, H     float64
	Color    color.RGBA
	Text     string
	Align    TextAlign
	Baseline TextBaseline
}

// StrokeRecord is one Stroke call with the subpaths it drew.
type StrokeRecord struct {
	Color color.RGBA
	Width float64
	Paths [][]Point
}

// TextRecord is one FillText call with the state it was drawn with.
type TextRecord struct {
	Text     string
	X, Y     float64
	Color    color.RGBA
	Align    TextAlign
	Baseline TextBaseline
}

// Recorder is a Canvas that records calls instead of drawing them.
type Recorder struct {
	ops []Op
}

func (r *Recorder) add(op Op) { r.ops = append(r.ops, op) }

func (r *Recorder) SetScale(s float64)             { r.add(Op{Kind: OpScale, X: s, Y: s}) }
func (r *Recorder) ClearRect(x, y, w, h float64)   { r.add(Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h}) }
func (r *Recorder) SetStrokeColor(c color.RGBA)    { r.add(Op{Kind: OpStrokeColor, Color: c}) }
func (r *Recorder) SetFillColor(c color.RGBA)      { r.add(Op{Kind: OpFillColor, Color: c}) }
func (r *Recorder) SetLineWidth(w float64)         { r.add(Op{Kind: OpLineWidth, W: w}) }
func (r *Recorder) BeginPath()                     { r.add(Op{Kind: OpBeginPath}) }
func (r *Recorder) MoveTo(x, y float64)            { r.add(Op{Kind: OpMoveTo, X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64)            { r.add(Op{Kind: OpLineTo, X: x, Y: y}) }
func (r *Recorder) Stroke()                        { r.add(Op{Kind: OpStroke}) }
func (r *Recorder) SetFontSize(px float64)         { r.add(Op{Kind: OpFontSize, H: px}) }
func (r *Recorder) SetTextAlign(a TextAlign)       { r.add(Op{Kind: OpTextAlign, Align: a}) }
func (r *Recorder) SetTextBaseline(b TextBaseline) { r.add(Op{Kind: OpTextBaseline, Baseline: b}) }
func (r *Recorder) FillText(s string, x, y float64) {
	r.add(Op{Kind: OpFillText, Text: s, X: x, Y: y})
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.ops = nil }

// Strokes replays the recording and returns every Stroke call with its paths.
func (r *Recorder) Strokes() []StrokeRecord {
	var (
		out   []StrokeRecord
		paths [][]Point
		col   color.RGBA
		width = 1.0
	)
	for _, op := range r.ops {
		switch op.Kind {
		case OpStrokeColor:
			col = op.Color
		case OpLineWidth:
			width = op.W
		case OpBeginPath:
			paths = nil
		case OpMoveTo:
			paths = append(paths, []Point{{X: op.X, Y: op.Y}})
		case OpLineTo:
			if len(paths) == 0 {
				paths = append(paths, []Point{{X: op.X, Y: op.Y}})
				continue
			}
			last := len(paths) - 1
			paths[last] = append(paths[last], Point{X: op.X, Y: op.Y})
		case OpStroke:
			cp := make([][]Point, len(paths))
			copy(cp, paths)
			out = append(out, StrokeRecord{Color: col, Width: width, Paths: cp})
		}
	}
	return out
}

// Texts replays the recording and returns every FillText call.
func (r *Recorder) Texts() []TextRecord {
	var (
		out      []TextRecord
		col      color.RGBA
		align    TextAlign
		baseline TextBaseline
	)
	for _, op := range r.ops {
		switch op.Kind {
		case OpFillColor:
			col = op.Color
		case OpTextAlign:
			align = op.Align
		case OpTextBaseline:
			baseline = op.Baseline
		case OpFillText:
			out = append(out, TextRecord{Text: op.Text, X: op.X, Y: op.Y, Color: col, Align: align, Baseline: baseline})
		}
	}
	return out
}
