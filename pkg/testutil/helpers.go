// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"
	"time"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/mathutil"
)

// Date returns midnight UTC on the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AssertCurrency fails the test when got and want differ by more than a tenth
// of a cent.
func AssertCurrency(t testing.TB, what string, got, want float64) {
	t.Helper()
	if !mathutil.WithinTolerance(got, want, constants.CurrencyTolerance/10) {
		t.Errorf("%s = %.4f, expected %.4f", what, got, want)
	}
}

// Float returns a pointer to v, for optional numeric inputs.
func Float(v float64) *float64 {
	return &v
}
