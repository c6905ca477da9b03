package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeInstallment(t *testing.T) {
	tests := []struct {
		name          string
		principal     string
		annualRate    string
		months        string
		emi           string
		totalPayment  string
		totalInterest string
	}{
		{"Thirteen percent over six months", "10000", "13", "6", "2966.67", "17800.00", "7800.00"},
		{"Fifteen percent over twelve months", "12000", "15", "12", "2800.00", "33600.00", "21600.00"},
		{"Shortest term", "500", "15", "2", "325.00", "650.00", "150.00"},
		{"Rate written with decimals", "1000", "13.0", "3", "463.33", "1390.00", "390.00"},
		{"Fractional principal", "999.99", "13", "4", "380.00", "1519.98", "519.99"},
		{"Installment just above half a cent", "0.012500000000000000000025", "15", "4", "0.01", "0.02", "0.01"},
		{"Repeating installment", "100", "13", "7", "27.29", "191.00", "91.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeInstallment(Fields{
				FieldPrincipal:  tt.principal,
				FieldAnnualRate: tt.annualRate,
				FieldMonths:     tt.months,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.emi, result.EMI)
			assert.Equal(t, tt.totalPayment, result.TotalPayment)
			assert.Equal(t, tt.totalInterest, result.TotalInterest)
		})
	}
}

func TestComputeInstallmentMatchesFormula(t *testing.T) {
	result, err := ComputeInstallment(Fields{FieldPrincipal: "10000", FieldAnnualRate: "13", FieldMonths: "6"})
	require.NoError(t, err)

	principal := decimal.NewFromInt(10000)
	months := decimal.NewFromInt(6)
	total := principal.Mul(decimal.NewFromInt(1).Add(decimal.RequireFromString("0.13").Mul(months)))

	assert.Equal(t, total.DivRound(months, 40).StringFixedBank(2), result.EMI)
	assert.Equal(t, total.StringFixedBank(2), result.TotalPayment)
	assert.Equal(t, total.Sub(principal).StringFixedBank(2), result.TotalInterest)
}

func TestComputeInstallmentErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		kind   Kind
	}{
		{"Missing months", Fields{FieldPrincipal: "10000", FieldAnnualRate: "13"}, MissingFields},
		{"Non-numeric principal", Fields{FieldPrincipal: "ten", FieldAnnualRate: "13", FieldMonths: "6"}, InvalidNumber},
		{"Huge exponent principal", Fields{FieldPrincipal: "1e200000", FieldAnnualRate: "13", FieldMonths: "6"}, InvalidNumber},
		{"Huge exponent rate", Fields{FieldPrincipal: "10000", FieldAnnualRate: "13e20000000", FieldMonths: "6"}, InvalidNumber},
		{"Fractional months", Fields{FieldPrincipal: "10000", FieldAnnualRate: "13", FieldMonths: "6.5"}, InvalidNumber},
		{"Negative principal", Fields{FieldPrincipal: "-10000", FieldAnnualRate: "13", FieldMonths: "6"}, PrincipalMustBePositive},
		{"Zero principal", Fields{FieldPrincipal: "0", FieldAnnualRate: "13", FieldMonths: "6"}, PrincipalMustBePositive},
		{"Unsupported rate", Fields{FieldPrincipal: "10000", FieldAnnualRate: "10", FieldMonths: "6"}, RateMustBe13Or15},
		{"Near miss rate", Fields{FieldPrincipal: "10000", FieldAnnualRate: "13.0001", FieldMonths: "6"}, RateMustBe13Or15},
		{"Negative rate", Fields{FieldPrincipal: "10000", FieldAnnualRate: "-13", FieldMonths: "6"}, RateMustBe13Or15},
		{"Too many months", Fields{FieldPrincipal: "10000", FieldAnnualRate: "13", FieldMonths: "20"}, MonthsOutOfRange},
		{"Too few months", Fields{FieldPrincipal: "10000", FieldAnnualRate: "15", FieldMonths: "1"}, MonthsOutOfRange},
		{"Principal checked before rate", Fields{FieldPrincipal: "-1", FieldAnnualRate: "10", FieldMonths: "20"}, PrincipalMustBePositive},
		{"Rate checked before months", Fields{FieldPrincipal: "1", FieldAnnualRate: "10", FieldMonths: "20"}, RateMustBe13Or15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeInstallment(tt.fields)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Empty(t, result.EMI)
		})
	}
}

func TestComputeInstallmentMessages(t *testing.T) {
	_, err := ComputeInstallment(Fields{FieldPrincipal: "-10000", FieldAnnualRate: "13", FieldMonths: "6"})
	assert.Equal(t, "Principal must be positive", Message(err))

	_, err = ComputeInstallment(Fields{FieldPrincipal: "10000", FieldAnnualRate: "10", FieldMonths: "6"})
	assert.Equal(t, "Rate must be 13 or 15", Message(err))

	_, err = ComputeInstallment(Fields{FieldPrincipal: "10000", FieldAnnualRate: "13", FieldMonths: "20"})
	assert.Equal(t, "Months must be between 2 and 12", Message(err))
}

func TestAllowedMonths(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, AllowedMonths())
}
