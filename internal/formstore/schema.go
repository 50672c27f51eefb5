// Package formstore persists calculator form state between runs: the raw text
// a user last entered into each calculator and the result it produced.
package formstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/lease-fees/pkg/fees"
)

// SchemaVersion is the version written with every saved FormState.
const SchemaVersion = 1

var (
	// ErrNotFound is returned when no form state is stored for a calculator.
	ErrNotFound = errors.New("form state not found")

	// ErrSchemaVersion is returned for state written by a newer schema.
	ErrSchemaVersion = errors.New("unsupported form state schema version")
)

// FormState is the stored form of one calculator. Inputs are kept as the raw
// text the user entered so they can be shown again unchanged.
type FormState struct {
	Version      int             `json:"version" yaml:"version"`
	Calculator   fees.Kind       `json:"calculator" yaml:"calculator"`
	Amount       string          `json:"amount" yaml:"amount"`
	Term         int             `json:"term,omitempty" yaml:"term,omitempty"`
	UseDates     bool            `json:"useDates" yaml:"useDates"`
	Weeks        string          `json:"weeks,omitempty" yaml:"weeks,omitempty"`
	MoveOut      string          `json:"moveOut,omitempty" yaml:"moveOut,omitempty"`
	AgreementEnd string          `json:"agreementEnd,omitempty" yaml:"agreementEnd,omitempty"`
	Multiplier   string          `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	LastResult   *fees.FeeResult `json:"lastResult,omitempty" yaml:"lastResult,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt" yaml:"updatedAt"`
}

// Defaults fill in a FormState's blank term and multiplier.
type Defaults struct {
	Term       fees.Term
	Multiplier float64
}

// Validate checks the schema version and calculator name.
func (s FormState) Validate() error {
	if s.Version > SchemaVersion || s.Version < 0 {
		return fmt.Errorf("%w: %d", ErrSchemaVersion, s.Version)
	}
	if !s.Calculator.Valid() {
		return fmt.Errorf("invalid calculator %q", s.Calculator)
	}
	return nil
}

// Request parses the raw form inputs into a calculator request.
func (s FormState) Request(defaults Defaults) (fees.Request, error) {
	kind, err := fees.ParseKind(string(s.Calculator))
	if err != nil {
		return fees.Request{}, err
	}

	amount, err := fees.ParseAmount(s.Amount, kind.AmountLabel())
	if err != nil {
		return fees.Request{}, err
	}
	req := fees.Request{Kind: kind, Amount: amount}
	if !kind.UsesTerm() {
		return req, nil
	}

	req.Term = fees.Term(s.Term)
	if s.Term == 0 {
		req.Term = defaults.Term
	}

	if s.UseDates {
		dates, err := fees.ParseDateRange(s.MoveOut, s.AgreementEnd)
		if err != nil {
			return fees.Request{}, err
		}
		req.Dates = &dates
	} else {
		req.Weeks, err = fees.ParseWeeks(s.Weeks)
		if err != nil {
			return fees.Request{}, err
		}
	}

	if kind == fees.KindReletting {
		req.Multiplier, err = fees.ParseMultiplier(s.Multiplier)
		if err != nil {
			return fees.Request{}, err
		}
		if req.Multiplier == nil && defaults.Multiplier > 0 {
			m := defaults.Multiplier
			req.Multiplier = &m
		}
	}

	return req, nil
}

// Calculate parses the form and runs its calculator.
func (s FormState) Calculate(defaults Defaults) (fees.FeeResult, error) {
	req, err := s.Request(defaults)
	if err != nil {
		return fees.FeeResult{}, err
	}
	return fees.Calculate(req)
}

// prepare stamps the schema version and update time and encodes the state.
func prepare(state FormState, now time.Time) (FormState, []byte, error) {
	if state.Version == 0 {
		state.Version = SchemaVersion
	}
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = now.UTC()
	}
	if err := state.Validate(); err != nil {
		return FormState{}, nil, err
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return FormState{}, nil, fmt.Errorf("failed to encode form state: %w", err)
	}
	return state, payload, nil
}

func decode(payload []byte) (FormState, error) {
	var state FormState
	if err := json.Unmarshal(payload, &state); err != nil {
		return FormState{}, fmt.Errorf("failed to decode form state: %w", err)
	}
	if err := state.Validate(); err != nil {
		return FormState{}, err
	}
	return state, nil
}
