package fees

import (
	"fmt"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/mathutil"
)

// RelettingResult holds the GST-inclusive weekly rent and the capped fee, both
// rounded to cents.
type RelettingResult struct {
	WeeklyRentWithGST float64
	MaximumFee        float64
	Multiplier        float64
}

type relettingOptions struct {
	multiplier    float64
	hasMultiplier bool
}

// RelettingOption adjusts a reletting fee calculation.
type RelettingOption func(*relettingOptions)

// WithLettingFeeMultiplier sets the letting fee in weeks of GST-inclusive rent.
// It must be greater than 0 and at most 2; without it 2 weeks apply.
func WithLettingFeeMultiplier(multiplier float64) RelettingOption {
	return func(o *relettingOptions) {
		o.multiplier = multiplier
		o.hasMultiplier = true
	}
}

// RelettingFee caps the letting fee a departing tenant owes by pro-rating it
// over the weeks remaining against three quarters of the agreed term.
func RelettingFee(baseRent, weeks float64, term Term, opts ...RelettingOption) (RelettingResult, error) {
	const op = "fees.RelettingFee"

	options := relettingOptions{multiplier: constants.DefaultLettingFeeMultiplier}
	for _, opt := range opts {
		opt(&options)
	}

	if err := validateAmount(op, "baseRent", "weekly rent amount", baseRent); err != nil {
		return RelettingResult{}, err
	}
	if err := validateWeeks(op, weeks); err != nil {
		return RelettingResult{}, err
	}
	if err := validateTerm(op, term); err != nil {
		return RelettingResult{}, err
	}
	if options.hasMultiplier {
		if err := validateMultiplier(op, options.multiplier); err != nil {
			return RelettingResult{}, err
		}
	}

	weeklyRentWithGST := baseRent * (1 + constants.GSTRate)
	feeBasis := weeklyRentWithGST * options.multiplier
	maximumFee := feeBasis * weeks / float64(term.EffectiveWeeks())

	return RelettingResult{
		WeeklyRentWithGST: mathutil.Round(weeklyRentWithGST),
		MaximumFee:        mathutil.Round(maximumFee),
		Multiplier:        options.multiplier,
	}, nil
}

func validateMultiplier(op string, multiplier float64) error {
	if !mathutil.IsPositiveFinite(multiplier) || multiplier > constants.MaxLettingFeeMultiplier {
		return multiplierError(op, fmt.Errorf("%v is outside (0, %v]", multiplier, constants.MaxLettingFeeMultiplier))
	}
	return nil
}
