// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/fees"
	"github.com/iwvelando/lease-fees/pkg/mathutil"
)

// ValidateDefaultTerm checks that a configured default term is an allowed term.
func ValidateDefaultTerm(weeks int) error {
	if !fees.Term(weeks).Valid() {
		return fmt.Errorf("default term must be one of %v weeks, got %d", fees.Terms(), weeks)
	}
	return nil
}

// ValidateDefaultMultiplier checks that a configured letting fee multiplier is in (0, 2].
func ValidateDefaultMultiplier(multiplier float64) error {
	if !mathutil.IsPositiveFinite(multiplier) || multiplier > constants.MaxLettingFeeMultiplier {
		return fmt.Errorf("default letting fee multiplier must be greater than 0 and at most %v, got %v",
			constants.MaxLettingFeeMultiplier, multiplier)
	}
	return nil
}

// ConfigValidator collects the settings that are checked together.
type ConfigValidator struct {
	OutputFormat      string
	DefaultTerm       int
	DefaultMultiplier float64
	StoreDriver       string
	StorePath         string
	RedisAddr         string
}

// ValidateAll returns every hard error found.
func (cv *ConfigValidator) ValidateAll() []error {
	var errs []error

	if err := ValidateOutputFormat(cv.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateDefaultTerm(cv.DefaultTerm); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateDefaultMultiplier(cv.DefaultMultiplier); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateStoreDriver(cv.StoreDriver); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// Warnings returns advisories for settings that work but are probably unintended.
func (cv *ConfigValidator) Warnings() []string {
	var warnings []string

	if cv.DefaultMultiplier > 0 && cv.DefaultMultiplier != constants.DefaultLettingFeeMultiplier {
		warnings = append(warnings, fmt.Sprintf("Default letting fee multiplier is %v weeks instead of %v",
			cv.DefaultMultiplier, constants.DefaultLettingFeeMultiplier))
	}

	switch cv.StoreDriver {
	case constants.StoreDriverMemory:
		warnings = append(warnings, "Form store driver is memory; saved forms are lost when the process exits")
	case constants.StoreDriverSQLite:
		if cv.StorePath == "" {
			warnings = append(warnings, fmt.Sprintf("SQLite store path is empty; using %s", constants.DefaultStorePath))
		}
	case constants.StoreDriverRedis:
		if cv.RedisAddr == "" {
			warnings = append(warnings, fmt.Sprintf("Redis address is empty; using %s", constants.DefaultRedisAddr))
		}
	}

	return warnings
}
