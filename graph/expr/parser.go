package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIllegal
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	start := l.i
	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+", pos: start}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-", pos: start}
	case '*':
		l.i++
		if l.i < len(l.s) && l.s[l.i] == '*' {
			l.i++
			return token{kind: tokCaret, text: "**", pos: start}
		}
		return token{kind: tokStar, text: "*", pos: start}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/", pos: start}
	case '%':
		l.i++
		return token{kind: tokPercent, text: "%", pos: start}
	case '^':
		l.i++
		return token{kind: tokCaret, text: "^", pos: start}
	case '(', '[':
		l.i++
		return token{kind: tokLParen, text: "(", pos: start}
	case ')', ']':
		l.i++
		return token{kind: tokRParen, text: ")", pos: start}
	case ',':
		l.i++
		return token{kind: tokComma, text: ",", pos: start}
	}

	ch := rune(l.s[l.i])
	if isIdentStart(ch) {
		l.i = scanIdent(l.s, l.i)
		return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
	}
	if ch == '.' || unicode.IsDigit(ch) {
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			err = nil
		}
		if err != nil || l.i == start {
			if l.i == start {
				l.i++
				txt = l.s[start:l.i]
			}
			return token{kind: tokIllegal, text: txt, pos: start}
		}
		return token{kind: tokNumber, text: txt, pos: start, num: f}
	}

	l.i++
	return token{kind: tokIllegal, text: string(ch), pos: start}
}

// scanIdent consumes an identifier, including dotted segments such as "Math.sin".
func scanIdent(s string, i int) int {
	i++
	for {
		for i < len(s) && isIdentContinue(rune(s[i])) {
			i++
		}
		if i+1 < len(s) && s[i] == '.' && isIdentStart(rune(s[i+1])) {
			i++
			continue
		}
		return i
	}
}

func scanNumber(s string, i int) int {
	start := i
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
	}
	if i == start+1 && s[start] == '.' {
		return start
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && unicode.IsDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r))
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

type parser struct {
	l   lexer
	cur token
}

func (p *parser) next() { p.cur = p.l.next() }

func parse(s string) (node, error) {
	p := &parser{l: lexer{s: s}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	ex, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return ex, nil
}

func (p *parser) unexpected() error {
	switch p.cur.kind {
	case tokEOF:
		return fmt.Errorf("%w: unexpected end of input", ErrParse)
	case tokIllegal:
		return fmt.Errorf("%w: illegal character %q at %d", ErrParse, p.cur.text, p.cur.pos)
	default:
		return fmt.Errorf("%w: unexpected %q at %d", ErrParse, p.cur.text, p.cur.pos)
	}
}

func (p *parser) parseExpr() (node, error) {
	return p.parseSum()
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash || p.cur.kind == tokPercent {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// parseUnary binds looser than exponentiation, so -x^2 is -(x^2).
func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.next()
		// Right associative; the exponent may carry its own sign (2^-x).
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: '^', left: base, right: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		tok := p.cur
		name, err := resolveName(tok)
		if err != nil {
			return nil, err
		}
		p.next()
		if p.cur.kind != tokLParen {
			return nodeIdent{name: name}, nil
		}
		p.next()
		var args []node
		if p.cur.kind != tokRParen {
			for {
				ex, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, ex)
				if p.cur.kind == tokComma {
					p.next()
					continue
				}
				break
			}
		}
		if p.cur.kind != tokRParen {
			if p.cur.kind == tokEOF {
				return nil, fmt.Errorf("%w: expected ')'", ErrParse)
			}
			return nil, p.unexpected()
		}
		p.next()
		return nodeCall{name: name, args: args}, nil
	case tokLParen:
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			if p.cur.kind == tokEOF {
				return nil, fmt.Errorf("%w: expected ')'", ErrParse)
			}
			return nil, p.unexpected()
		}
		p.next()
		return ex, nil
	default:
		return nil, p.unexpected()
	}
}

// resolveName strips the "Math." namespace. Any other dotted name is rejected.
func resolveName(tok token) (string, error) {
	name := tok.text
	if !strings.Contains(name, ".") {
		return name, nil
	}
	ns, rest, _ := strings.Cut(name, ".")
	if ns != "Math" || strings.Contains(rest, ".") {
		return "", fmt.Errorf("%w: unknown name %q at %d", ErrParse, name, tok.pos)
	}
	return rest, nil
}
