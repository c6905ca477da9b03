package mathutil

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Round half to even down", "1.225", "1.22"},
		{"Round half to even up", "1.235", "1.24"},
		{"Round down below midpoint", "1.234", "1.23"},
		{"No rounding needed", "1.23", "1.23"},
		{"Large number", "12345.678", "12345.68"},
		{"Negative number", "-1.236", "-1.24"},
		{"Zero", "0", "0"},
		{"Very small positive", "0.001", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundCurrency(decimal.RequireFromString(tt.input))
			if !result.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("RoundCurrency(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Whole number", "100", "100.00"},
		{"One decimal", "2.5", "2.50"},
		{"Repeating fraction", "2966.6666666666666667", "2966.67"},
		{"Negative", "-7.005", "-7.00"},
		{"Zero", "0", "0.00"},
		{"Just above half a cent", "0.00500000000000000000100", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatCurrency(decimal.RequireFromString(tt.input))
			if result != tt.expected {
				t.Errorf("FormatCurrency(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPercentToFraction(t *testing.T) {
	result := PercentToFraction(decimal.NewFromInt(13))
	if !result.Equal(decimal.RequireFromString("0.13")) {
		t.Errorf("PercentToFraction(13) = %v, expected 0.13", result)
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		percentage string
		expected   string
	}{
		{"Simple percentage", "1000", "10", "100"},
		{"Fractional percentage", "200", "2.5", "5"},
		{"Zero percentage", "500", "0", "0"},
		{"No intermediate rounding", "0.500000000000000000100", "1", "0.00500000000000000000100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(decimal.RequireFromString(tt.value), decimal.RequireFromString(tt.percentage))
			if !result.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}

func TestContainsInt(t *testing.T) {
	allowed := []int64{13, 15}
	tests := []struct {
		input    string
		expected bool
	}{
		{"13", true},
		{"15", true},
		{"13.0", true},
		{"13.01", false},
		{"14", false},
		{"-13", false},
	}

	for _, tt := range tests {
		if got := ContainsInt(decimal.RequireFromString(tt.input), allowed); got != tt.expected {
			t.Errorf("ContainsInt(%s) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        int64
		expected string
	}{
		{"Exact", "17800", 6, "2966.6666666666666666666666666666666666666667"},
		{"Terminating", "1390", 4, "347.5"},
		{"Beyond default precision", "0.02000000000000000000004", 4, "0.00500000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Divide(decimal.RequireFromString(tt.a), decimal.NewFromInt(tt.b))
			if !result.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("Divide(%s, %d) = %v, expected %s", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestWithinLimits(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"0", true},
		{"1000.50", true},
		{"1e3", true},
		{"9999999999999999999999999999", true},
		{"99999999999999999999999999999", false},
		{"0.1234567890123456789012345678", true},
		{"0.12345678901234567890123456789", false},
		{"1e28", false},
		{"1e20000000", false},
		{"1e-20000000", false},
		{"-1e27", true},
	}

	for _, tt := range tests {
		if got := WithinLimits(decimal.RequireFromString(tt.input)); got != tt.expected {
			t.Errorf("WithinLimits(%s) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
