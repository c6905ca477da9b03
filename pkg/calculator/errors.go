package calculator

import (
	"errors"
	"fmt"
)

// Kind classifies a calculator failure. Every kind maps to one user-facing message.
type Kind string

// Error kinds.
const (
	NoExpression            Kind = "NoExpression"
	InvalidCharacters       Kind = "InvalidCharacters"
	InvalidExpression       Kind = "InvalidExpression"
	MissingFields           Kind = "MissingFields"
	InvalidNumber           Kind = "InvalidNumber"
	InvalidRange            Kind = "InvalidRange"
	PrincipalMustBePositive Kind = "PrincipalMustBePositive"
	RateMustBe13Or15        Kind = "RateMustBe13Or15"
	MonthsOutOfRange        Kind = "MonthsOutOfRange"
	CalculationError        Kind = "CalculationError"
)

var messages = map[Kind]string{
	NoExpression:            "No expression provided",
	InvalidCharacters:       "Invalid characters in expression",
	InvalidExpression:       "Invalid calculation",
	MissingFields:           "All fields are required",
	InvalidNumber:           "Please enter valid numbers",
	InvalidRange:            "Principal and time must be positive, rate cannot be negative",
	PrincipalMustBePositive: "Principal must be positive",
	RateMustBe13Or15:        "Rate must be 13 or 15",
	MonthsOutOfRange:        "Months must be between 2 and 12",
	CalculationError:        "Calculation error occurred",
}

// Message returns the text shown to the user for this kind.
func (k Kind) Message() string {
	if msg, ok := messages[k]; ok {
		return msg
	}
	return messages[CalculationError]
}

// Error is returned by every calculator. Err, when set, carries the internal cause.
type Error struct {
	Kind Kind
	Err  error
}

// Sentinels for errors.Is; only the Kind is compared.
var (
	ErrNoExpression            = &Error{Kind: NoExpression}
	ErrInvalidCharacters       = &Error{Kind: InvalidCharacters}
	ErrInvalidExpression       = &Error{Kind: InvalidExpression}
	ErrMissingFields           = &Error{Kind: MissingFields}
	ErrInvalidNumber           = &Error{Kind: InvalidNumber}
	ErrInvalidRange            = &Error{Kind: InvalidRange}
	ErrPrincipalMustBePositive = &Error{Kind: PrincipalMustBePositive}
	ErrRateMustBe13Or15        = &Error{Kind: RateMustBe13Or15}
	ErrMonthsOutOfRange        = &Error{Kind: MonthsOutOfRange}
	ErrCalculation             = &Error{Kind: CalculationError}
)

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind.Message(), e.Err)
	}
	return e.Kind.Message()
}

// Unwrap returns the internal cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the Kind from err. Errors that did not come from a
// calculator are reported as CalculationError.
func KindOf(err error) Kind {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr.Kind
	}
	return CalculationError
}

// Message returns the user-facing message for err.
func Message(err error) string {
	return KindOf(err).Message()
}

// recoverCalculation turns a panic inside a calculator into a CalculationError.
func recoverCalculation(err *error) {
	if r := recover(); r != nil {
		*err = newError(CalculationError, fmt.Errorf("recovered: %v", r))
	}
}
