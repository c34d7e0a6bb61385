package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// evalExpression evaluates a restricted arithmetic expression over
// + - * / ( ) and numeric literals. Deliberately not a general evaluator:
// formulas come from template data and must never reach a code path that
// executes them.
//
// Grammar:
//
//	expr   = term   { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = number | "-" factor | "(" expr ")"
func evalExpression(input string) (float64, error) {
	toks, err := tokenize(input)
	if err != nil {
		return 0, err
	}
	p := &exprParser{toks: toks}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if !p.done() {
		return 0, fmt.Errorf("unexpected token %q", p.peek())
	}
	return v, nil
}

type exprParser struct {
	toks []string
	pos  int
}

func (p *exprParser) done() bool { return p.pos >= len(p.toks) }

func (p *exprParser) peek() string {
	if p.done() {
		return ""
	}
	return p.toks[p.pos]
}

func (p *exprParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *exprParser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case "+":
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case "-":
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case "*":
			p.next()
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case "/":
			p.next()
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	tok := p.next()
	switch tok {
	case "":
		return 0, fmt.Errorf("unexpected end of expression")
	case "-":
		v, err := p.parseFactor()
		return -v, err
	case "(":
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.next() != ")" {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		return v, nil
	case ")", "+", "*", "/":
		return 0, fmt.Errorf("unexpected token %q", tok)
	default:
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", tok)
		}
		return v, nil
	}
}

// tokenize splits the expression into numbers and single-character operators,
// rejecting everything else.
func tokenize(input string) ([]string, error) {
	var toks []string
	var num strings.Builder

	flush := func() {
		if num.Len() > 0 {
			toks = append(toks, num.String())
			num.Reset()
		}
	}

	for _, r := range input {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			num.WriteRune(r)
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t':
			flush()
		default:
			return nil, fmt.Errorf("invalid character %q in expression", r)
		}
	}
	flush()
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	return toks, nil
}
