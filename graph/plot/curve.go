package plot

import (
	"errors"
	"math"
)

// Func evaluates a compiled expression at x.
type Func func(x float64) (float64, error)

// Evaluator compiles expression text.
type Evaluator interface {
	Compile(src string) (Func, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(src string) (Func, error)

func (f EvaluatorFunc) Compile(src string) (Func, error) { return f(src) }

// Point is a position in logical screen pixels.
type Point struct {
	X, Y float64
}

// Curve is the sampled function in screen space.
type Curve struct {
	// Paths holds one polyline per pen-down run. A path with a single point is a lone
	// valid sample between two gaps.
	Paths [][]Point

	Samples int
	Gaps    int

	// Err is the first evaluation error, at domain value ErrX.
	Err  error
	ErrX float64
	// Failures counts samples whose evaluation returned an error.
	Failures int
}

// Points returns the total number of points over all paths.
func (c Curve) Points() int {
	n := 0
	for _, p := range c.Paths {
		n += len(p)
	}
	return n
}

type penState uint8

const (
	penUp penState = iota
	penDown
)

var errNoFunc = errors.New("no expression")

// SampleCount returns how many intervals a curve of the given logical width is sampled at.
func SampleCount(width float64) int {
	n := int(math.Round(width))
	if n < 1 {
		n = 1
	}
	return n
}

// SampleCurve evaluates fn at SampleCount(width)+1 evenly spaced domain values from
// DomainMin to DomainMax inclusive and converts the results to screen space.
//
// A sample whose evaluation fails or is not finite lifts the pen: it is left out and the
// next valid sample starts a new path.
func SampleCurve(v ViewConfig, width, height float64, fn Func) Curve {
	n := SampleCount(width)
	c := Curve{Samples: n + 1}
	if fn == nil {
		c.Gaps = c.Samples
		c.Err = errNoFunc
		c.ErrX = v.DomainMin
		return c
	}

	tr := NewTransform(v, width, height)
	span := v.DomainMax - v.DomainMin
	pen := penUp
	for i := 0; i <= n; i++ {
		x := v.DomainMin + span*float64(i)/float64(n)
		if i == n {
			x = v.DomainMax
		}

		y, err := fn(x)
		if err != nil {
			if c.Err == nil {
				c.Err = err
				c.ErrX = x
			}
			c.Failures++
		}
		if err != nil || !isFinite(y) {
			c.Gaps++
			pen = penUp
			continue
		}

		p := Point{X: tr.ScreenX(x), Y: tr.ScreenY(y)}
		switch pen {
		case penUp:
			c.Paths = append(c.Paths, []Point{p})
			pen = penDown
		case penDown:
			last := len(c.Paths) - 1
			c.Paths[last] = append(c.Paths[last], p)
		}
	}
	return c
}
