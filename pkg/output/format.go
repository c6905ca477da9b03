// Package output renders calculator results for the command line.
package output

import (
	"encoding/json"
	"io"

	"github.com/iwvelando/finance-calculator/pkg/calculator"
	"github.com/iwvelando/finance-calculator/pkg/format"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts below this are exactly representable to the cent as float64.
var floatSafeLimit = decimal.New(1, 12)

type row struct {
	label string
	value string
}

// PrettyExpression writes a human-readable summary of an evaluated expression.
func PrettyExpression(w io.Writer, result calculator.ExpressionResult) error {
	return pretty(w, "Standard Calculator", []row{
		{"Expression", result.Expression},
		{"Result", format.Number(result.Value)},
	})
}

// PrettyInterest writes a human-readable summary of a simple interest calculation.
func PrettyInterest(w io.Writer, result calculator.InterestResult) error {
	p := message.NewPrinter(language.English)
	return pretty(w, "Interest Calculator", []row{
		{"Principal", currency(p, result.Principal)},
		{"Rate", result.Rate + "%"},
		{"Time", result.Time},
		{"Simple Interest", currency(p, result.Interest)},
		{"Total Amount", currency(p, result.Total)},
	})
}

// PrettyInstallment writes a human-readable summary of an installment plan.
func PrettyInstallment(w io.Writer, result calculator.InstallmentResult) error {
	p := message.NewPrinter(language.English)
	return pretty(w, "Installment Calculator", []row{
		{"Principal", currency(p, result.Principal)},
		{"Annual Rate", result.AnnualRate + "%"},
		{"Months", result.Months},
		{"Monthly EMI", currency(p, result.EMI)},
		{"Total Payment", currency(p, result.TotalPayment)},
		{"Total Interest", currency(p, result.TotalInterest)},
	})
}

// JSONFormat writes v as indented JSON.
func JSONFormat(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func pretty(w io.Writer, title string, rows []row) error {
	p := message.NewPrinter(language.English)

	width := 0
	for _, r := range rows {
		if len(r.label) > width {
			width = len(r.label)
		}
	}

	if _, err := p.Fprintf(w, "--- %s ---\n", title); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := p.Fprintf(w, "%-*s | %s\n", width, r.label, r.value); err != nil {
			return err
		}
	}
	return nil
}

// currency groups digits with the printer's locale. Amounts too large for
// float64 to hold to the cent are grouped from their exact string instead.
func currency(p *message.Printer, amount string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}
	if d.Abs().GreaterThanOrEqual(floatSafeLimit) || d.Exponent() < -2 {
		return format.Currency(amount)
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + p.Sprintf("$%.2f", d.Abs().InexactFloat64())
}
