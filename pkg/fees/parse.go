package fees

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iwvelando/lease-fees/pkg/mathutil"
)

// ParseAmount reads a user-entered dollar amount such as "$1,250.50". The
// label names the input in the error message, e.g. "advertising cost".
func ParseAmount(raw, label string) (float64, error) {
	const op = "fees.ParseAmount"

	amount, err := parseNumber(raw, true)
	if err != nil {
		return 0, amountError(op, "amount", label, err)
	}
	if err := validateAmount(op, "amount", label, amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// ParseWeeks reads a user-entered number of weeks remaining.
func ParseWeeks(raw string) (float64, error) {
	const op = "fees.ParseWeeks"

	weeks, err := parseNumber(raw, false)
	if err != nil {
		return 0, weeksError(op, err)
	}
	if err := validateWeeks(op, weeks); err != nil {
		return 0, err
	}
	return weeks, nil
}

// ParseMultiplier reads an optional letting fee multiplier. Blank input means
// none was supplied and yields nil.
func ParseMultiplier(raw string) (*float64, error) {
	const op = "fees.ParseMultiplier"

	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	multiplier, err := parseNumber(raw, false)
	if err != nil {
		return nil, multiplierError(op, err)
	}
	if err := validateMultiplier(op, multiplier); err != nil {
		return nil, err
	}
	return &multiplier, nil
}

// plainDecimal matches signed decimal text with an optional exponent. Hex
// floats, underscores, Inf and NaN are not plain decimals.
var plainDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func parseNumber(raw string, currency bool) (float64, error) {
	value := strings.TrimSpace(raw)
	if currency {
		value = strings.TrimPrefix(value, "$")
		value = strings.ReplaceAll(value, ",", "")
	}
	if value == "" {
		return 0, errors.New("no value entered")
	}
	if !plainDecimal.MatchString(value) {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if !mathutil.IsFinite(n) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return n, nil
}
