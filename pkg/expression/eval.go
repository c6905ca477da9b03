package expression

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonFinite is returned when a value overflows to infinity.
	ErrNonFinite = errors.New("result is not a finite number")
)

// Eval computes the value of e with float64 arithmetic.
func Eval(e Expr) (float64, error) {
	v, err := eval(e)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNonFinite
	}
	return v, nil
}

func eval(e Expr) (float64, error) {
	switch n := e.(type) {
	case Number:
		return n.Value, nil
	case Unary:
		x, err := eval(n.X)
		if err != nil {
			return 0, err
		}
		if n.Op == '-' {
			return -x, nil
		}
		return x, nil
	case Binary:
		left, err := eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := eval(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return left + right, nil
		case '-':
			return left - right, nil
		case '*':
			return left * right, nil
		case '/':
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			return left / right, nil
		}
		return 0, fmt.Errorf("unknown operator %q", n.Op)
	case nil:
		return 0, errors.New("nil expression")
	}
	return 0, fmt.Errorf("unsupported expression type %T", e)
}

// Evaluate parses and evaluates s in one step.
func Evaluate(s string) (float64, error) {
	e, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return Eval(e)
}

// Format renders v in plain decimal notation using the fewest digits that
// round-trip, so whole numbers print without a fractional part.
func Format(v float64) string {
	if v == 0 {
		// Normalizes negative zero.
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
