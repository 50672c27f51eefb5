package fees

import (
	"fmt"
	"strings"

	"github.com/iwvelando/lease-fees/pkg/mathutil"
)

// Kind names one of the calculators.
type Kind string

const (
	KindRent        Kind = "rent"
	KindAdvertising Kind = "advertising"
	KindReletting   Kind = "reletting"
)

// Component names used in FeeResult.
const (
	ComponentAdvance           = "advance"
	ComponentBond              = "bond"
	ComponentAdvertisingFee    = "advertisingFee"
	ComponentWeeklyRentWithGST = "weeklyRentWithGST"
	ComponentMaximumFee        = "maximumFee"
)

var componentLabels = map[string]string{
	ComponentAdvance:           "Two Weeks Advance",
	ComponentBond:              "Bond Amount",
	ComponentAdvertisingFee:    "Advertising Fee",
	ComponentWeeklyRentWithGST: "Weekly Rent incl. GST",
	ComponentMaximumFee:        "Maximum Reletting Fee",
}

// Kinds returns every calculator.
func Kinds() []Kind {
	return []Kind{KindRent, KindAdvertising, KindReletting}
}

// Valid reports whether k names a calculator.
func (k Kind) Valid() bool {
	switch k {
	case KindRent, KindAdvertising, KindReletting:
		return true
	}
	return false
}

// Title returns the calculator's display name.
func (k Kind) Title() string {
	switch k {
	case KindRent:
		return "Rent Calculator"
	case KindAdvertising:
		return "Advertising Fee Calculator"
	case KindReletting:
		return "Reletting Fee Calculator"
	}
	return string(k)
}

// AmountLabel describes the monetary input the calculator expects.
func (k Kind) AmountLabel() string {
	if k == KindAdvertising {
		return "advertising cost"
	}
	return "weekly rent amount"
}

// TotalLabel describes FeeResult.Total for the calculator.
func (k Kind) TotalLabel() string {
	if k == KindRent {
		return "Total Move-in Cost"
	}
	return "Calculated Fee"
}

// UsesTerm reports whether the calculator needs a term and weeks remaining.
func (k Kind) UsesTerm() bool {
	return k == KindAdvertising || k == KindReletting
}

// ParseKind reads a calculator name, ignoring case and surrounding space.
func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", kindError("fees.ParseKind", fmt.Errorf("unknown calculator %q", raw))
	}
	return kind, nil
}

// Component is one named amount of a result.
type Component struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// FeeResult is the display form of any calculator's output. Amounts are
// rounded to cents.
type FeeResult struct {
	Kind       Kind        `json:"kind" yaml:"kind"`
	Components []Component `json:"components" yaml:"components"`
	Total      float64     `json:"total" yaml:"total"`
	Weeks      float64     `json:"weeks,omitempty" yaml:"weeks,omitempty"`
	Term       Term        `json:"term,omitempty" yaml:"term,omitempty"`
	Multiplier float64     `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
}

// Amount looks up a component by name.
func (r FeeResult) Amount(name string) (float64, bool) {
	for _, c := range r.Components {
		if c.Name == name {
			return c.Amount, true
		}
	}
	return 0, false
}

func newComponent(name string, amount float64) Component {
	return Component{Name: name, Label: componentLabels[name], Amount: mathutil.Round(amount)}
}

// FeeResult converts the move-in amounts for display.
func (r RentResult) FeeResult() FeeResult {
	return FeeResult{
		Kind: KindRent,
		Components: []Component{
			newComponent(ComponentAdvance, r.Advance),
			newComponent(ComponentBond, r.Bond),
		},
		Total: mathutil.Round(r.Total),
	}
}

// FeeResult converts the reletting amounts for display.
func (r RelettingResult) FeeResult(weeks float64, term Term) FeeResult {
	return FeeResult{
		Kind: KindReletting,
		Components: []Component{
			newComponent(ComponentWeeklyRentWithGST, r.WeeklyRentWithGST),
			newComponent(ComponentMaximumFee, r.MaximumFee),
		},
		Total:      r.MaximumFee,
		Weeks:      weeks,
		Term:       term,
		Multiplier: r.Multiplier,
	}
}

func advertisingResult(fee, weeks float64, term Term) FeeResult {
	return FeeResult{
		Kind:       KindAdvertising,
		Components: []Component{newComponent(ComponentAdvertisingFee, fee)},
		Total:      fee,
		Weeks:      weeks,
		Term:       term,
	}
}
