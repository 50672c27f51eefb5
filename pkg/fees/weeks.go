package fees

import (
	"errors"
	"time"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/datetime"
)

// DateRange is the period from the tenant moving out to the end of the
// agreement.
type DateRange struct {
	MoveOut      time.Time
	AgreementEnd time.Time
}

// Weeks returns the whole weeks remaining in the range.
func (r DateRange) Weeks() (int, error) {
	return WeeksRemaining(r.MoveOut, r.AgreementEnd)
}

// WeeksRemaining converts the days between moveOut and agreementEnd into whole
// weeks. Leftover days after the complete weeks count as an extra week only
// when there are at least five of them; zero to four leftover days are
// dropped. Only the calendar date of each input is used.
func WeeksRemaining(moveOut, agreementEnd time.Time) (int, error) {
	const op = "fees.WeeksRemaining"

	if moveOut.IsZero() {
		return 0, dateError(op, "moveOut", errors.New("move out date is missing"))
	}
	if agreementEnd.IsZero() {
		return 0, dateError(op, "agreementEnd", errors.New("agreement end date is missing"))
	}

	diffDays := datetime.DaysBetween(moveOut, agreementEnd)
	if diffDays < 0 {
		return 0, rangeError(op)
	}

	completeWeeks := diffDays / constants.DaysPerWeek
	if diffDays%constants.DaysPerWeek >= constants.RoundUpRemainderDays {
		completeWeeks++
	}
	return completeWeeks, nil
}

// WeeksRemainingOrZero is WeeksRemaining for callers that only display a
// preview: any failure yields 0.
func WeeksRemainingOrZero(moveOut, agreementEnd time.Time) int {
	weeks, err := WeeksRemaining(moveOut, agreementEnd)
	if err != nil || weeks < 0 {
		return 0
	}
	return weeks
}

// ParseDate normalizes user-entered text into a calendar date, trying
// day-first layouts before month-first ones.
func ParseDate(field, raw string) (time.Time, error) {
	t, err := datetime.Normalize(raw)
	if err != nil {
		return time.Time{}, dateError("fees.ParseDate", field, err)
	}
	return t, nil
}

// ParseDateRange parses both ends of a range and checks their order.
func ParseDateRange(rawMoveOut, rawAgreementEnd string) (DateRange, error) {
	moveOut, err := ParseDate("moveOut", rawMoveOut)
	if err != nil {
		return DateRange{}, err
	}
	agreementEnd, err := ParseDate("agreementEnd", rawAgreementEnd)
	if err != nil {
		return DateRange{}, err
	}
	if agreementEnd.Before(moveOut) {
		return DateRange{}, rangeError("fees.ParseDateRange")
	}
	return DateRange{MoveOut: moveOut, AgreementEnd: agreementEnd}, nil
}
