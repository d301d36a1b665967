package expr

import (
	"errors"
	"math"
)

var (
	ErrParse = errors.New("parse error")
	ErrEval  = errors.New("eval error")
	// ErrUnknownVar is returned when evaluating an expression with an undefined identifier.
	ErrUnknownVar = errors.New("unknown variable")
	// ErrUnknownFunc is returned when calling a function outside the allow-list.
	ErrUnknownFunc = errors.New("unknown function")
)

// VarX is the name of the free variable bound on every evaluation.
const VarX = "x"

var constants = map[string]float64{
	"pi":  math.Pi,
	"tau": 2 * math.Pi,
	"e":   math.E,
	"phi": math.Phi,

	// Names of the JavaScript Math object, reachable with or without the "Math." prefix.
	"PI":      math.Pi,
	"E":       math.E,
	"LN2":     math.Ln2,
	"LN10":    math.Ln10,
	"LOG2E":   math.Log2E,
	"LOG10E":  math.Log10E,
	"SQRT2":   math.Sqrt2,
	"SQRT1_2": math.Sqrt2 / 2,
}

// env is the evaluation environment for one program.
type env struct {
	x float64
}

func (e *env) lookup(name string) (float64, bool) {
	if name == VarX {
		return e.x, true
	}
	v, ok := constants[name]
	return v, ok
}
