package calculator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/iwvelando/finance-calculator/pkg/expression"
)

const allowedExpressionChars = "0123456789+-*/()."

var consecutiveOperators = regexp.MustCompile(`[+\-*/]{2,}`)

// ExpressionRequest is the input of the standard calculator.
type ExpressionRequest struct {
	Expression string `json:"expression"`
}

// ExpressionResult is the outcome of the standard calculator.
type ExpressionResult struct {
	ExpressionRequest
	Value string `json:"value,omitempty"`
}

// NewExpressionRequest reads the expression field.
func NewExpressionRequest(fields Fields) ExpressionRequest {
	return ExpressionRequest{Expression: fields.Get(FieldExpression)}
}

// EvaluateExpression evaluates the submitted arithmetic expression.
func EvaluateExpression(fields Fields) (ExpressionResult, error) {
	return NewExpressionRequest(fields).Evaluate()
}

// Evaluate validates the expression and computes its value.
func (r ExpressionRequest) Evaluate() (result ExpressionResult, err error) {
	defer recoverCalculation(&err)

	result.ExpressionRequest = r
	expr := strings.TrimSpace(r.Expression)
	if expr == "" {
		return result, ErrNoExpression
	}

	for _, c := range expr {
		if !strings.ContainsRune(allowedExpressionChars, c) && !unicode.IsSpace(c) {
			return result, ErrInvalidCharacters
		}
	}

	if loc := consecutiveOperators.FindStringIndex(expr); loc != nil {
		return result, newError(InvalidExpression, errConsecutiveOperators(expr[loc[0]:loc[1]]))
	}

	parsed, err := expression.Parse(expr)
	if err != nil {
		return result, newError(InvalidExpression, err)
	}
	value, err := expression.Eval(parsed)
	if err != nil {
		return result, newError(InvalidExpression, err)
	}

	result.Value = expression.Format(value)
	return result, nil
}

type errConsecutiveOperators string

func (e errConsecutiveOperators) Error() string {
	return "consecutive operators " + string(e)
}
