package fees

import (
	"testing"

	"github.com/iwvelando/lease-fees/pkg/testutil"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		req        Request
		components map[string]float64
		total      float64
		weeks      float64
	}{
		{
			name:       "Rent",
			req:        Request{Kind: KindRent, Amount: 800},
			components: map[string]float64{ComponentAdvance: 1600, ComponentBond: 3200},
			total:      4800,
		},
		{
			name:       "Rent ignores term and weeks",
			req:        Request{Kind: KindRent, Amount: 500, Term: Term(30), Weeks: -1},
			components: map[string]float64{ComponentAdvance: 1000, ComponentBond: 2000},
			total:      3000,
		},
		{
			name:       "Advertising with weeks",
			req:        Request{Kind: KindAdvertising, Amount: 1000, Term: TermOneYear, Weeks: 10},
			components: map[string]float64{ComponentAdvertisingFee: 256.41},
			total:      256.41,
			weeks:      10,
		},
		{
			name: "Advertising with dates",
			req: Request{
				Kind:   KindAdvertising,
				Amount: 1000,
				Term:   TermOneYear,
				Weeks:  99,
				Dates:  &DateRange{MoveOut: testutil.Date(2024, 1, 1), AgreementEnd: testutil.Date(2024, 3, 11)},
			},
			components: map[string]float64{ComponentAdvertisingFee: 256.41},
			total:      256.41,
			weeks:      10,
		},
		{
			name:       "Reletting with default multiplier",
			req:        Request{Kind: KindReletting, Amount: 400, Term: TermOneYear, Weeks: 10},
			components: map[string]float64{ComponentWeeklyRentWithGST: 440, ComponentMaximumFee: 225.64},
			total:      225.64,
			weeks:      10,
		},
		{
			name:       "Reletting with multiplier",
			req:        Request{Kind: KindReletting, Amount: 400, Term: TermOneYear, Weeks: 10, Multiplier: testutil.Float(1)},
			components: map[string]float64{ComponentWeeklyRentWithGST: 440, ComponentMaximumFee: 112.82},
			total:      112.82,
			weeks:      10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.req)
			if err != nil {
				t.Fatalf("Calculate() unexpected error: %v", err)
			}
			if result.Kind != tt.req.Kind {
				t.Errorf("Kind = %s, expected %s", result.Kind, tt.req.Kind)
			}
			if len(result.Components) != len(tt.components) {
				t.Fatalf("Components = %+v, expected %d entries", result.Components, len(tt.components))
			}
			for name, expected := range tt.components {
				got, ok := result.Amount(name)
				if !ok {
					t.Fatalf("component %s missing from %+v", name, result.Components)
				}
				testutil.AssertCurrency(t, name, got, expected)
			}
			for _, c := range result.Components {
				if c.Label == "" {
					t.Errorf("component %s has no label", c.Name)
				}
			}
			testutil.AssertCurrency(t, "Total", result.Total, tt.total)
			if result.Weeks != tt.weeks {
				t.Errorf("Weeks = %v, expected %v", result.Weeks, tt.weeks)
			}
		})
	}
}

func TestCalculateInvalid(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		expected ErrorKind
	}{
		{"Unknown kind", Request{Kind: "deposit", Amount: 100}, InvalidKind},
		{"Empty kind", Request{Amount: 100}, InvalidKind},
		{"Rent zero amount", Request{Kind: KindRent}, InvalidAmount},
		{"Advertising zero cost", Request{Kind: KindAdvertising, Term: TermOneYear, Weeks: 10}, InvalidAmount},
		{"Advertising negative weeks", Request{Kind: KindAdvertising, Amount: 1000, Term: TermOneYear, Weeks: -1}, InvalidWeeks},
		{"Advertising bad term", Request{Kind: KindAdvertising, Amount: 1000, Term: Term(30), Weeks: 10}, InvalidTerm},
		{
			name: "Advertising reversed dates",
			req: Request{
				Kind: KindAdvertising, Amount: 1000, Term: TermOneYear,
				Dates: &DateRange{MoveOut: testutil.Date(2024, 2, 1), AgreementEnd: testutil.Date(2024, 1, 1)},
			},
			expected: InvalidRange,
		},
		{
			name: "Advertising missing date",
			req: Request{
				Kind: KindAdvertising, Amount: 1000, Term: TermOneYear,
				Dates: &DateRange{AgreementEnd: testutil.Date(2024, 1, 1)},
			},
			expected: InvalidDate,
		},
		{
			name: "Dates with no whole week remaining",
			req: Request{
				Kind: KindReletting, Amount: 400, Term: TermOneYear,
				Dates: &DateRange{MoveOut: testutil.Date(2024, 1, 1), AgreementEnd: testutil.Date(2024, 1, 4)},
			},
			expected: InvalidWeeks,
		},
		{"Reletting bad multiplier", Request{Kind: KindReletting, Amount: 400, Term: TermOneYear, Weeks: 10, Multiplier: testutil.Float(3)}, InvalidMultiplier},
		{"Reletting zero rent", Request{Kind: KindReletting, Term: Term(30), Weeks: -1}, InvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.req)
			if !IsKind(err, tt.expected) {
				t.Fatalf("Calculate() error = %v, expected %s", err, tt.expected)
			}
			if result.Kind != "" || len(result.Components) != 0 || result.Total != 0 {
				t.Errorf("Calculate() returned partial result %+v", result)
			}
		})
	}
}

func TestCalculateIdempotent(t *testing.T) {
	req := Request{Kind: KindReletting, Amount: 615.5, Term: TermTwoYears, Weeks: 31, Multiplier: testutil.Float(1.25)}
	first, err := Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	second, err := Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() unexpected error: %v", err)
	}
	if first.Total != second.Total || len(first.Components) != len(second.Components) {
		t.Fatalf("Calculate() not idempotent: %+v != %+v", first, second)
	}
	for i := range first.Components {
		if first.Components[i] != second.Components[i] {
			t.Errorf("component %d differs: %+v != %+v", i, first.Components[i], second.Components[i])
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(" " + string(kind) + " ")
		if err != nil {
			t.Fatalf("ParseKind(%q) unexpected error: %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("ParseKind(%q) = %q", kind, parsed)
		}
	}
	if kind, err := ParseKind("RELETTING"); err != nil || kind != KindReletting {
		t.Errorf("ParseKind(RELETTING) = %q, %v", kind, err)
	}
	if _, err := ParseKind("bond"); !IsKind(err, InvalidKind) {
		t.Errorf("ParseKind(bond) error = %v, expected %s", err, InvalidKind)
	}
}
