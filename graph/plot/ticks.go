package plot

import (
	"math"
	"strconv"
)

const (
	tickDivisions = 10
	// maxTicks bounds tick iteration; a division of an interval into ten steps never
	// needs more than eleven marks.
	maxTicks = tickDivisions + 2
)

// Ticks returns the tick positions for [lo, hi]: every multiple of (hi-lo)/10 inside the
// interval, starting at the first one at or above lo.
func Ticks(lo, hi float64) []float64 {
	step := (hi - lo) / tickDivisions
	if !(step > 0) || !isFinite(step) || !isFinite(lo) {
		return nil
	}
	first := math.Ceil(lo / step)
	if !isFinite(first) {
		return nil
	}
	eps := step * 1e-9

	out := make([]float64, 0, maxTicks)
	for i := 0; i < maxTicks; i++ {
		v := (first + float64(i)) * step
		if v > hi+eps {
			break
		}
		if math.Abs(v) < eps {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// FormatTick renders a tick label with one decimal.
func FormatTick(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}
