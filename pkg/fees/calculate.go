package fees

import "fmt"

// Request is the input to Calculate for any calculator. Term, Weeks, Dates and
// Multiplier are ignored by the rent calculator. When Dates is set the weeks
// remaining are derived from it and Weeks is ignored. A nil Multiplier means
// the default letting fee applies.
type Request struct {
	Kind       Kind
	Amount     float64
	Term       Term
	Weeks      float64
	Dates      *DateRange
	Multiplier *float64
}

// Calculate validates req and runs the calculator it names.
func Calculate(req Request) (FeeResult, error) {
	switch req.Kind {
	case KindRent:
		rent, err := RentCost(req.Amount)
		if err != nil {
			return FeeResult{}, err
		}
		return rent.FeeResult(), nil

	case KindAdvertising:
		if err := validateAmount("fees.AdvertisingFee", "cost", req.Kind.AmountLabel(), req.Amount); err != nil {
			return FeeResult{}, err
		}
		weeks, err := req.weeks()
		if err != nil {
			return FeeResult{}, err
		}
		fee, err := AdvertisingFee(req.Amount, weeks, req.Term)
		if err != nil {
			return FeeResult{}, err
		}
		return advertisingResult(fee, weeks, req.Term), nil

	case KindReletting:
		if err := validateAmount("fees.RelettingFee", "baseRent", req.Kind.AmountLabel(), req.Amount); err != nil {
			return FeeResult{}, err
		}
		weeks, err := req.weeks()
		if err != nil {
			return FeeResult{}, err
		}
		var opts []RelettingOption
		if req.Multiplier != nil {
			opts = append(opts, WithLettingFeeMultiplier(*req.Multiplier))
		}
		reletting, err := RelettingFee(req.Amount, weeks, req.Term, opts...)
		if err != nil {
			return FeeResult{}, err
		}
		return reletting.FeeResult(weeks, req.Term), nil
	}

	return FeeResult{}, kindError("fees.Calculate", fmt.Errorf("unknown calculator %q", req.Kind))
}

func (req Request) weeks() (float64, error) {
	if req.Dates == nil {
		return req.Weeks, nil
	}
	weeks, err := req.Dates.Weeks()
	if err != nil {
		return 0, err
	}
	return float64(weeks), nil
}
