package fees

import (
	"math"
	"testing"

	"github.com/iwvelando/lease-fees/pkg/testutil"
)

func TestRelettingFee(t *testing.T) {
	tests := []struct {
		name               string
		baseRent           float64
		weeks              float64
		term               Term
		opts               []RelettingOption
		expectedWeeklyRent float64
		expectedMaximumFee float64
		expectedMultiplier float64
	}{
		{
			name:               "One year example",
			baseRent:           400,
			weeks:              10,
			term:               TermOneYear,
			opts:               []RelettingOption{WithLettingFeeMultiplier(2)},
			expectedWeeklyRent: 440,
			expectedMaximumFee: 225.64,
			expectedMultiplier: 2,
		},
		{
			name:               "Default multiplier is two weeks",
			baseRent:           400,
			weeks:              10,
			term:               TermOneYear,
			expectedWeeklyRent: 440,
			expectedMaximumFee: 225.64,
			expectedMultiplier: 2,
		},
		{
			name:               "One week letting fee",
			baseRent:           400,
			weeks:              10,
			term:               TermOneYear,
			opts:               []RelettingOption{WithLettingFeeMultiplier(1)},
			expectedWeeklyRent: 440,
			expectedMaximumFee: 112.82,
			expectedMultiplier: 1,
		},
		{
			name:               "Six month term",
			baseRent:           500,
			weeks:              20,
			term:               TermSixMonths,
			expectedWeeklyRent: 550,
			expectedMaximumFee: 1100,
			expectedMultiplier: 2,
		},
		{
			name:               "Half week letting fee",
			baseRent:           300,
			weeks:              39,
			term:               TermOneYear,
			opts:               []RelettingOption{WithLettingFeeMultiplier(0.5)},
			expectedWeeklyRent: 330,
			expectedMaximumFee: 165,
			expectedMultiplier: 0.5,
		},
		{
			name:               "Unrounded GST rent feeds the fee",
			baseRent:           0.05,
			weeks:              39,
			term:               TermOneYear,
			expectedWeeklyRent: 0.06,
			expectedMaximumFee: 0.11,
			expectedMultiplier: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RelettingFee(tt.baseRent, tt.weeks, tt.term, tt.opts...)
			if err != nil {
				t.Fatalf("RelettingFee() unexpected error: %v", err)
			}
			testutil.AssertCurrency(t, "WeeklyRentWithGST", result.WeeklyRentWithGST, tt.expectedWeeklyRent)
			testutil.AssertCurrency(t, "MaximumFee", result.MaximumFee, tt.expectedMaximumFee)
			if result.Multiplier != tt.expectedMultiplier {
				t.Errorf("Multiplier = %v, expected %v", result.Multiplier, tt.expectedMultiplier)
			}
		})
	}
}

func TestRelettingFeeInvalid(t *testing.T) {
	tests := []struct {
		name     string
		baseRent float64
		weeks    float64
		term     Term
		opts     []RelettingOption
		expected ErrorKind
	}{
		{name: "Zero rent", baseRent: 0, weeks: 10, term: TermOneYear, expected: InvalidAmount},
		{name: "Infinite rent", baseRent: math.Inf(1), weeks: 10, term: TermOneYear, expected: InvalidAmount},
		{name: "Negative weeks", baseRent: 400, weeks: -1, term: TermOneYear, expected: InvalidWeeks},
		{name: "Unknown term", baseRent: 400, weeks: 10, term: Term(30), expected: InvalidTerm},
		{
			name: "Zero multiplier", baseRent: 400, weeks: 10, term: TermOneYear,
			opts: []RelettingOption{WithLettingFeeMultiplier(0)}, expected: InvalidMultiplier,
		},
		{
			name: "Negative multiplier", baseRent: 400, weeks: 10, term: TermOneYear,
			opts: []RelettingOption{WithLettingFeeMultiplier(-1)}, expected: InvalidMultiplier,
		},
		{
			name: "Multiplier above two", baseRent: 400, weeks: 10, term: TermOneYear,
			opts: []RelettingOption{WithLettingFeeMultiplier(2.01)}, expected: InvalidMultiplier,
		},
		{
			name: "NaN multiplier", baseRent: 400, weeks: 10, term: TermOneYear,
			opts: []RelettingOption{WithLettingFeeMultiplier(math.NaN())}, expected: InvalidMultiplier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RelettingFee(tt.baseRent, tt.weeks, tt.term, tt.opts...)
			if !IsKind(err, tt.expected) {
				t.Fatalf("RelettingFee() error = %v, expected %s", err, tt.expected)
			}
			if result != (RelettingResult{}) {
				t.Errorf("RelettingFee() returned partial result %+v", result)
			}
		})
	}
}

func TestRelettingFeeIdempotent(t *testing.T) {
	first, err := RelettingFee(512.34, 23, TermThreeYears, WithLettingFeeMultiplier(1.5))
	if err != nil {
		t.Fatalf("RelettingFee() unexpected error: %v", err)
	}
	second, err := RelettingFee(512.34, 23, TermThreeYears, WithLettingFeeMultiplier(1.5))
	if err != nil {
		t.Fatalf("RelettingFee() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("RelettingFee() not idempotent: %+v != %+v", first, second)
	}
}
