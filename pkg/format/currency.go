// Package format renders exact decimal strings for people.
package format

import "strings"

// Currency returns a currency string with a dollar sign and thousands separators
// (e.g., "-$1,234.56"). The amount is taken as a plain decimal string and is
// never converted to float, so any magnitude keeps every digit.
func Currency(amount string) string {
	sign, digits := splitSign(amount)
	return sign + "$" + group(digits)
}

// Number inserts thousands separators without a currency symbol (e.g., "-1,234.5").
func Number(value string) string {
	sign, digits := splitSign(value)
	return sign + group(digits)
}

func splitSign(value string) (string, string) {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "-"):
		return "-", value[1:]
	case strings.HasPrefix(value, "+"):
		return "", value[1:]
	}
	return "", value
}

func group(digits string) string {
	intPart, fracPart, hasFrac := strings.Cut(digits, ".")

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if hasFrac {
		return intPart + "." + fracPart
	}
	return intPart
}
