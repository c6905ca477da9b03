package calculator

import (
	"fmt"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// InterestRequest is the input of the simple interest calculator.
type InterestRequest struct {
	Principal string `json:"principal"`
	Rate      string `json:"rate"`
	Time      string `json:"time"`
}

// InterestResult holds the computed interest and total, each with two decimals.
type InterestResult struct {
	InterestRequest
	Interest string `json:"interest,omitempty"`
	Total    string `json:"total,omitempty"`
}

// NewInterestRequest reads the principal, rate and time fields.
func NewInterestRequest(fields Fields) InterestRequest {
	return InterestRequest{
		Principal: fields.Get(FieldPrincipal),
		Rate:      fields.Get(FieldRate),
		Time:      fields.Get(FieldTime),
	}
}

// ComputeSimpleInterest computes principal * rate * time / 100 and the resulting total.
func ComputeSimpleInterest(fields Fields) (InterestResult, error) {
	return NewInterestRequest(fields).Compute()
}

// Compute validates the request and applies the simple interest formula with
// exact decimal arithmetic.
func (r InterestRequest) Compute() (result InterestResult, err error) {
	defer recoverCalculation(&err)

	result.InterestRequest = r
	if anyEmpty(r.Principal, r.Rate, r.Time) {
		return result, ErrMissingFields
	}

	principal, err := parseDecimal(FieldPrincipal, r.Principal)
	if err != nil {
		return result, err
	}
	rate, err := parseDecimal(FieldRate, r.Rate)
	if err != nil {
		return result, err
	}
	period, err := parseDecimal(FieldTime, r.Time)
	if err != nil {
		return result, err
	}

	if !principal.IsPositive() || rate.IsNegative() || !period.IsPositive() {
		return result, ErrInvalidRange
	}

	interest := mathutil.ApplyPercentage(principal.Mul(rate), period)
	total := principal.Add(interest)

	result.Interest = mathutil.FormatCurrency(interest)
	result.Total = mathutil.FormatCurrency(total)
	return result, nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, newError(InvalidNumber, fmt.Errorf("%s: %w", field, err))
	}
	if !mathutil.WithinLimits(d) {
		return decimal.Zero, newError(InvalidNumber, fmt.Errorf("%s: %q exceeds %d integer or %d fractional digits",
			field, value, constants.MaxIntegerDigits, constants.MaxFractionDigits))
	}
	return d, nil
}
