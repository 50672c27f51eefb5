package fees

import "github.com/iwvelando/lease-fees/pkg/mathutil"

// AdvertisingFee pro-rates the landlord's advertising cost over the weeks
// remaining, against three quarters of the agreed term. The fee is rounded to
// cents.
func AdvertisingFee(cost, weeks float64, term Term) (float64, error) {
	const op = "fees.AdvertisingFee"

	if err := validateAmount(op, "cost", "advertising cost", cost); err != nil {
		return 0, err
	}
	if err := validateWeeks(op, weeks); err != nil {
		return 0, err
	}
	if err := validateTerm(op, term); err != nil {
		return 0, err
	}

	fee := cost * weeks / float64(term.EffectiveWeeks())
	return mathutil.Round(fee), nil
}
