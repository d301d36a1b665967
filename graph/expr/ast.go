package expr

// This file contains the AST node types and the interpreter.

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type node interface {
	Eval(e *env) (float64, error)
	String() string
}

type nodeNumber struct{ v float64 }

func (n nodeNumber) Eval(_ *env) (float64, error) { return n.v, nil }

func (n nodeNumber) String() string { return strconv.FormatFloat(n.v, 'g', -1, 64) }

type nodeIdent struct{ name string }

func (n nodeIdent) Eval(e *env) (float64, error) {
	v, ok := e.lookup(n.name)
	if !ok {
		return 0, fmt.Errorf("%w: %w %q", ErrEval, ErrUnknownVar, n.name)
	}
	return v, nil
}

func (n nodeIdent) String() string { return n.name }

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) Eval(e *env) (float64, error) {
	v, err := n.x.Eval(e)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return v, nil
	case '-':
		return -v, nil
	default:
		return 0, fmt.Errorf("%w: unary %q", ErrEval, n.op)
	}
}

func (n nodeUnary) String() string { return "(" + string(n.op) + n.x.String() + ")" }

type nodeBinary struct {
	op    byte
	left  node
	right node
}

func (n nodeBinary) Eval(e *env) (float64, error) {
	a, err := n.left.Eval(e)
	if err != nil {
		return 0, err
	}
	b, err := n.right.Eval(e)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		// IEEE semantics: x/0 is +-Inf or NaN, which callers treat as a gap.
		return a / b, nil
	case '%':
		return math.Mod(a, b), nil
	case '^':
		return math.Pow(a, b), nil
	default:
		return 0, fmt.Errorf("%w: binary %q", ErrEval, n.op)
	}
}

func (n nodeBinary) String() string {
	return "(" + n.left.String() + " " + string(n.op) + " " + n.right.String() + ")"
}

type nodeCall struct {
	name string
	args []node
}

func (n nodeCall) Eval(e *env) (float64, error) {
	b, ok := builtins[n.name]
	if !ok {
		return 0, fmt.Errorf("%w: %w %q", ErrEval, ErrUnknownFunc, n.name)
	}
	if len(n.args) < b.minArgs || (b.maxArgs >= 0 && len(n.args) > b.maxArgs) {
		return 0, fmt.Errorf("%w: %s: %s", ErrEval, n.name, b.arityText())
	}

	var buf [4]float64
	args := buf[:0]
	for _, a := range n.args {
		v, err := a.Eval(e)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	return b.fn(args), nil
}

func (n nodeCall) String() string {
	parts := make([]string, len(n.args))
	for i, a := range n.args {
		parts[i] = a.String()
	}
	return n.name + "(" + strings.Join(parts, ", ") + ")"
}
