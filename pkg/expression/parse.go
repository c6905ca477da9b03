// Package expression parses and evaluates plain arithmetic: numeric literals,
// the four basic operators, unary signs and parentheses. Nothing else is
// accepted, so evaluating user input can never do more than arithmetic.
package expression

import (
	"fmt"
	"strconv"
)

// Expr is a parsed arithmetic expression.
type Expr interface {
	expr()
}

// Number is a numeric literal.
type Number struct {
	Literal string
	Value   float64
}

// Unary is a sign applied to an operand.
type Unary struct {
	Op byte // '+' or '-'
	X  Expr
}

// Binary is an infix operation.
type Binary struct {
	Op          byte // '+', '-', '*' or '/'
	Left, Right Expr
}

func (Number) expr() {}
func (Unary) expr()  {}
func (Binary) expr() {}

// ParseError reports malformed input and the byte offset where parsing stopped.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

type parser struct {
	input string
	pos   int
}

// Parse builds an Expr from s using the usual precedence: '*' and '/' bind
// tighter than '+' and '-', operators of equal precedence associate left, and
// parentheses group. Only ASCII whitespace may separate tokens.
func Parse(s string) (Expr, error) {
	p := &parser{input: s}
	p.skipSpaces()
	if p.isEnd() {
		return nil, p.errorf("empty expression")
	}

	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if !p.isEnd() {
		return nil, p.errorf("unexpected character %q", p.peek())
	}
	return e, nil
}

func (p *parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpaces()
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpaces()
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	p.skipSpaces()
	if op := p.peek(); op == '+' || op == '-' {
		p.pos++
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Unary{Op: op, X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	p.skipSpaces()
	if p.isEnd() {
		return nil, p.errorf("unexpected end of expression")
	}

	if p.peek() == '(' {
		p.pos++
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return nil, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return inner, nil
	}

	return p.parseNumber()
}

func (p *parser) parseNumber() (Expr, error) {
	start := p.pos
	intDigits, fracDigits := 0, 0
	dotSeen := false

scan:
	for !p.isEnd() {
		ch := p.peek()
		switch {
		case ch >= '0' && ch <= '9':
			if dotSeen {
				fracDigits++
			} else {
				intDigits++
			}
		case ch == '.' && !dotSeen:
			dotSeen = true
		default:
			break scan
		}
		p.pos++
	}

	literal := p.input[start:p.pos]
	if intDigits == 0 && fracDigits == 0 {
		if literal == "" && !p.isEnd() {
			return nil, &ParseError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", p.peek())}
		}
		return nil, &ParseError{Pos: start, Msg: "expected number"}
	}
	if !dotSeen && hasLeadingZero(literal) {
		return nil, &ParseError{Pos: start, Msg: fmt.Sprintf("leading zeros in integer literal %q", literal)}
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// Out-of-range literals still parse to ±Inf; anything else is malformed.
		if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
			return nil, &ParseError{Pos: start, Msg: fmt.Sprintf("invalid number %q", literal)}
		}
	}
	return Number{Literal: literal, Value: value}, nil
}

// hasLeadingZero reports integer literals such as "007"; "0" and "000" are fine.
func hasLeadingZero(literal string) bool {
	if len(literal) < 2 || literal[0] != '0' {
		return false
	}
	for i := 1; i < len(literal); i++ {
		if literal[i] != '0' {
			return true
		}
	}
	return false
}

// skipSpaces skips ASCII whitespace only. Other Unicode spaces are not
// token separators and stop the parser.
func (p *parser) skipSpaces() {
	for !p.isEnd() && isSpace(p.peek()) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func (p *parser) peek() byte {
	if p.isEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) isEnd() bool {
	return p.pos >= len(p.input)
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}
