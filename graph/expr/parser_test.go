package expr

import (
	"errors"
	"testing"
)

func TestCompile_CanonicalForm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "x", want: "x"},
		{in: "1+2*3", want: "(1 + (2 * 3))"},
		{in: "(1+2)*3", want: "((1 + 2) * 3)"},
		{in: "-x^2", want: "(-(x ^ 2))"},
		{in: "2^3^2", want: "(2 ^ (3 ^ 2))"},
		{in: "2**-x", want: "(2 ^ (-x))"},
		{in: "x % 3", want: "(x % 3)"},
		{in: "Math.sin(x)", want: "sin(x)"},
		{in: "Math.PI*x", want: "(PI * x)"},
		{in: "atan2(x, 1)", want: "atan2(x, 1)"},
		{in: "[x+1]/2", want: "((x + 1) / 2)"},
		{in: ".5e1 + 1.", want: "(5 + 1)"},
		{in: "  sqrt( x )  ", want: "sqrt(x)"},
	}

	for _, tt := range tests {
		p, err := Compile(tt.in)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", tt.in, err)
		}
		if got := p.String(); got != tt.want {
			t.Fatalf("Compile(%q)=%s, want %s", tt.in, got, tt.want)
		}
		if p.Source() != tt.in {
			t.Fatalf("Source()=%q, want %q", p.Source(), tt.in)
		}
	}
}

func TestCompile_SyntaxErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"x+",
		"*x",
		"sin(x",
		"(x",
		"x)",
		"1 2",
		"x $ 2",
		"sin(x,)",
		"Foo.sin(x)",
		"Math.a.b",
		".",
		"x = 1",
	}

	for _, in := range tests {
		_, err := Compile(in)
		if err == nil {
			t.Fatalf("Compile(%q) succeeded, want error", in)
		}
		if !errors.Is(err, ErrParse) {
			t.Fatalf("Compile(%q) err=%v, want ErrParse", in, err)
		}
	}
}

func TestLexer_Tokens(t *testing.T) {
	l := lexer{s: "Math.sqrt(x) ** 2.5e-1 % y"}
	var kinds []tokenKind
	for {
		tok := l.next()
		kinds = append(kinds, tok.kind)
		if tok.kind == tokEOF {
			break
		}
	}
	want := []tokenKind{tokIdent, tokLParen, tokIdent, tokRParen, tokCaret, tokNumber, tokPercent, tokIdent, tokEOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds=%v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d kind=%v, want %v", i, kinds[i], want[i])
		}
	}
}
