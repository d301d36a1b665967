package expr

import (
	"fmt"
	"math"
	"sort"
)

// builtin describes a numeric function callable from expressions.
type builtin struct {
	minArgs int
	maxArgs int
	fn      func(args []float64) float64
}

func (b builtin) arityText() string {
	switch {
	case b.maxArgs < 0:
		return fmt.Sprintf("expects at least %d argument(s)", b.minArgs)
	case b.minArgs == b.maxArgs:
		return fmt.Sprintf("expects %d argument(s)", b.minArgs)
	default:
		return fmt.Sprintf("expects %d..%d arguments", b.minArgs, b.maxArgs)
	}
}

func unary(fn func(float64) float64) builtin {
	return builtin{minArgs: 1, maxArgs: 1, fn: func(args []float64) float64 { return fn(args[0]) }}
}

func binary(fn func(a, b float64) float64) builtin {
	return builtin{minArgs: 2, maxArgs: 2, fn: func(args []float64) float64 { return fn(args[0], args[1]) }}
}

var builtins = map[string]builtin{
	// Trigonometry.
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"atan2": binary(math.Atan2),

	// Hyperbolic.
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"asinh": unary(math.Asinh),
	"acosh": unary(math.Acosh),
	"atanh": unary(math.Atanh),

	// Exponentials and logs. log is the natural logarithm, as in JavaScript.
	"exp":   unary(math.Exp),
	"expm1": unary(math.Expm1),
	"log":   unary(math.Log),
	"ln":    unary(math.Log),
	"log10": unary(math.Log10),
	"log2":  unary(math.Log2),
	"log1p": unary(math.Log1p),

	// Powers and roots.
	"sqrt":  unary(math.Sqrt),
	"cbrt":  unary(math.Cbrt),
	"pow":   binary(math.Pow),
	"hypot": binary(math.Hypot),

	// Rounding.
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"trunc": unary(math.Trunc),
	"round": unary(roundHalfUp),

	// Misc.
	"abs":  unary(math.Abs),
	"sign": unary(sign),
	"mod":  binary(math.Mod),
	"clamp": {minArgs: 3, maxArgs: 3, fn: func(args []float64) float64 {
		lo, hi := args[1], args[2]
		if lo > hi {
			lo, hi = hi, lo
		}
		return math.Max(lo, math.Min(hi, args[0]))
	}},

	// Variadic.
	"min": {minArgs: 1, maxArgs: -1, fn: func(args []float64) float64 {
		m := args[0]
		for _, v := range args[1:] {
			m = math.Min(m, v)
		}
		return m
	}},
	"max": {minArgs: 1, maxArgs: -1, fn: func(args []float64) float64 {
		m := args[0]
		for _, v := range args[1:] {
			m = math.Max(m, v)
		}
		return m
	}},
}

// roundHalfUp matches Math.round: halves round towards +Inf.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Floor(x + 0.5)
}

func sign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// Functions returns the names of all callable functions.
func Functions() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
