// Package format renders amounts for display.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	value := decimal.NewFromFloat(amount).Round(2)
	formatted := formatPositiveCurrency(value.Abs())
	if value.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	value := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	return sign + formatPositiveCurrency(value.Abs())
}

// Fixed returns the amount with exactly two decimals and no separators (e.g., "1234.50").
func Fixed(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(2)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

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

	return intPart + "." + decPart
}
