// Package fees computes residential leasing amounts: rent in advance plus
// bond, the pro-rated advertising fee and the capped reletting fee owed when a
// tenant leaves early, and the whole weeks remaining on an agreement.
//
// Every function is pure. Invalid input is reported as a *Error value whose
// Kind identifies the failure and whose Message is fit for the end user.
package fees

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/mathutil"
)

// Term is an agreed lease duration in weeks.
type Term int

// Allowed terms.
const (
	TermSixMonths  Term = constants.TermSixMonths
	TermOneYear    Term = constants.TermOneYear
	TermTwoYears   Term = constants.TermTwoYears
	TermThreeYears Term = constants.TermThreeYears
)

var termLabels = map[Term]string{
	TermSixMonths:  "6 Months",
	TermOneYear:    "1 Year",
	TermTwoYears:   "2 Years",
	TermThreeYears: "3 Years",
}

// Terms returns the allowed terms, shortest first.
func Terms() []Term {
	return []Term{TermSixMonths, TermOneYear, TermTwoYears, TermThreeYears}
}

// Valid reports whether t is one of the allowed terms.
func (t Term) Valid() bool {
	_, ok := termLabels[t]
	return ok
}

// Label returns the display name, e.g. "1 Year".
func (t Term) Label() string {
	if label, ok := termLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("%d weeks", int(t))
}

// EffectiveWeeks is the pro-rata denominator: three quarters of the term,
// rounded half up to whole weeks.
func (t Term) EffectiveWeeks() int {
	return mathutil.RoundHalfUp(float64(t) * constants.EffectiveTermRatio)
}

func (t Term) String() string {
	return strconv.Itoa(int(t))
}

// ParseTerm reads a term given in weeks.
func ParseTerm(raw string) (Term, error) {
	const op = "fees.ParseTerm"

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, termError(op, err)
	}
	term := Term(n)
	if !term.Valid() {
		return 0, termError(op, fmt.Errorf("%d weeks is not an allowed term", n))
	}
	return term, nil
}

func validateTerm(op string, term Term) error {
	if !term.Valid() {
		return termError(op, fmt.Errorf("%d weeks is not an allowed term", int(term)))
	}
	return nil
}
