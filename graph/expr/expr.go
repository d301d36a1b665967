package expr

// Program is a compiled expression in the single free variable x.
//
// A Program keeps its own evaluation environment and is not safe for concurrent use.
type Program struct {
	src  string
	root node
	e    env
}

// Compile parses src. Syntax errors wrap ErrParse; unknown names and arity problems
// are only reported by Eval, wrapped in ErrEval.
func Compile(src string) (*Program, error) {
	root, err := parse(src)
	if err != nil {
		return nil, err
	}
	return &Program{src: src, root: root}, nil
}

// Eval evaluates the program with x bound to the given value.
//
// NaN and infinite results are returned as values, not errors.
func (p *Program) Eval(x float64) (float64, error) {
	p.e.x = x
	return p.root.Eval(&p.e)
}

// Source returns the text the program was compiled from.
func (p *Program) Source() string { return p.src }

// String returns the fully parenthesized form of the parsed expression.
func (p *Program) String() string { return p.root.String() }

// Evaluate compiles src and evaluates it once at x.
func Evaluate(src string, x float64) (float64, error) {
	p, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return p.Eval(x)
}
