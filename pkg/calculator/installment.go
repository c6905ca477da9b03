package calculator

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// InstallmentRequest is the input of the installment calculator.
type InstallmentRequest struct {
	Principal  string `json:"principal"`
	AnnualRate string `json:"annual_rate"`
	Months     string `json:"months"`
}

// InstallmentResult holds the fixed installment and the totals over the term.
type InstallmentResult struct {
	InstallmentRequest
	EMI           string `json:"emi,omitempty"`
	TotalPayment  string `json:"total_payment,omitempty"`
	TotalInterest string `json:"total_interest,omitempty"`
}

// NewInstallmentRequest reads the principal, annual_rate and months fields.
func NewInstallmentRequest(fields Fields) InstallmentRequest {
	return InstallmentRequest{
		Principal:  fields.Get(FieldPrincipal),
		AnnualRate: fields.Get(FieldAnnualRate),
		Months:     fields.Get(FieldMonths),
	}
}

// ComputeInstallment computes principal * (1 + rate*months) / months where
// rate is the annual rate as a fraction.
func ComputeInstallment(fields Fields) (InstallmentResult, error) {
	return NewInstallmentRequest(fields).Compute()
}

// AllowedMonths lists every accepted installment term.
func AllowedMonths() []int {
	months := make([]int, 0, constants.MaxInstallmentMonths-constants.MinInstallmentMonths+1)
	for m := constants.MinInstallmentMonths; m <= constants.MaxInstallmentMonths; m++ {
		months = append(months, m)
	}
	return months
}

// Compute validates the request and applies the installment formula. The
// first failing check decides the error: principal, then rate, then months.
func (r InstallmentRequest) Compute() (result InstallmentResult, err error) {
	defer recoverCalculation(&err)

	result.InstallmentRequest = r
	if anyEmpty(r.Principal, r.AnnualRate, r.Months) {
		return result, ErrMissingFields
	}

	principal, err := parseDecimal(FieldPrincipal, r.Principal)
	if err != nil {
		return result, err
	}
	ratePercent, err := parseDecimal(FieldAnnualRate, r.AnnualRate)
	if err != nil {
		return result, err
	}
	months, err := strconv.Atoi(r.Months)
	if err != nil {
		return result, newError(InvalidNumber, fmt.Errorf("%s: %w", FieldMonths, err))
	}

	if !principal.IsPositive() {
		return result, ErrPrincipalMustBePositive
	}
	// Compared as a percentage so 13 and 15 match exactly.
	if !mathutil.ContainsInt(ratePercent, constants.InstallmentRates) {
		return result, ErrRateMustBe13Or15
	}
	if months < constants.MinInstallmentMonths || months > constants.MaxInstallmentMonths {
		return result, ErrMonthsOutOfRange
	}

	term := decimal.NewFromInt(int64(months))
	rate := mathutil.PercentToFraction(ratePercent)
	totalPayment := principal.Mul(decimal.NewFromInt(1).Add(rate.Mul(term)))
	totalInterest := totalPayment.Sub(principal)
	emi := mathutil.Divide(totalPayment, term)

	result.EMI = mathutil.FormatCurrency(emi)
	result.TotalPayment = mathutil.FormatCurrency(totalPayment)
	result.TotalInterest = mathutil.FormatCurrency(totalInterest)
	return result, nil
}
