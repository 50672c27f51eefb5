package fees

import (
	"fmt"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/mathutil"
)

// RentResult holds the move-in amounts for a weekly rent.
type RentResult struct {
	Advance float64
	Bond    float64
	Total   float64
}

// RentCost returns two weeks of rent in advance plus the bond. The bond is four
// weeks of rent up to and including BondThreshold per week, six weeks above
// it. Amounts are not rounded.
func RentCost(weeklyRent float64) (RentResult, error) {
	if err := validateAmount("fees.RentCost", "weeklyRent", "weekly rent amount", weeklyRent); err != nil {
		return RentResult{}, err
	}

	bondWeeks := float64(constants.BondWeeksStandard)
	if weeklyRent > constants.BondThreshold {
		bondWeeks = constants.BondWeeksHigh
	}

	advance := weeklyRent * constants.AdvanceRentWeeks
	bond := weeklyRent * bondWeeks
	return RentResult{
		Advance: advance,
		Bond:    bond,
		Total:   advance + bond,
	}, nil
}

func validateAmount(op, field, label string, amount float64) error {
	if !mathutil.IsPositiveFinite(amount) {
		return amountError(op, field, label, fmt.Errorf("%v is not a positive amount", amount))
	}
	return nil
}

func validateWeeks(op string, weeks float64) error {
	if !mathutil.IsPositiveFinite(weeks) {
		return weeksError(op, fmt.Errorf("%v is not a positive number of weeks", weeks))
	}
	return nil
}
