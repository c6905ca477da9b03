// Package calculator implements the standard, simple interest and installment
// calculators. Each one is a pure function of submitted form fields.
package calculator

import (
	"net/url"
	"strings"
)

// Form field names.
const (
	FieldExpression = "expression"
	FieldPrincipal  = "principal"
	FieldRate       = "rate"
	FieldTime       = "time"
	FieldAnnualRate = "annual_rate"
	FieldMonths     = "months"
)

// Fields holds submitted form values by name.
type Fields map[string]string

// FieldsFromValues keeps the first value of every key.
func FieldsFromValues(values url.Values) Fields {
	fields := make(Fields, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			fields[key] = vals[0]
		}
	}
	return fields
}

// Get returns the named value with surrounding whitespace removed.
func (f Fields) Get(name string) string {
	return strings.TrimSpace(f[name])
}

func anyEmpty(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}
