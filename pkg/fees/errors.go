package fees

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	InvalidAmount     ErrorKind = "invalid_amount"
	InvalidWeeks      ErrorKind = "invalid_weeks"
	InvalidDate       ErrorKind = "invalid_date"
	InvalidRange      ErrorKind = "invalid_range"
	InvalidTerm       ErrorKind = "invalid_term"
	InvalidMultiplier ErrorKind = "invalid_multiplier"
	InvalidKind       ErrorKind = "invalid_kind"
)

// Sentinel errors, one per ErrorKind, for use with errors.Is.
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidWeeks      = errors.New("invalid weeks")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrInvalidTerm       = errors.New("invalid term")
	ErrInvalidMultiplier = errors.New("invalid letting fee multiplier")
	ErrInvalidKind       = errors.New("invalid calculator")
)

var sentinels = map[ErrorKind]error{
	InvalidAmount:     ErrInvalidAmount,
	InvalidWeeks:      ErrInvalidWeeks,
	InvalidDate:       ErrInvalidDate,
	InvalidRange:      ErrInvalidRange,
	InvalidTerm:       ErrInvalidTerm,
	InvalidMultiplier: ErrInvalidMultiplier,
	InvalidKind:       ErrInvalidKind,
}

// Error is a validation failure returned by every calculator. Message is the
// text shown to the end user.
type Error struct {
	Op      string
	Kind    ErrorKind
	Field   string
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

// Unwrap exposes both the kind's sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, 2)
	if sentinel, ok := sentinels[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the ErrorKind carried by err, or "" when err is not a
// calculator validation error.
func KindOf(err error) ErrorKind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsKind reports whether err is a validation error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return kind != "" && KindOf(err) == kind
}

// UserMessage returns the end-user text for err. Errors that are not
// validation errors fall back to err.Error().
func UserMessage(err error) string {
	var fe *Error
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func amountError(op, field, label string, cause error) *Error {
	return &Error{
		Op:      op,
		Kind:    InvalidAmount,
		Field:   field,
		Message: "Please enter a valid " + label,
		Err:     cause,
	}
}

func weeksError(op string, cause error) *Error {
	return &Error{
		Op:      op,
		Kind:    InvalidWeeks,
		Field:   "weeks",
		Message: "Please enter valid weeks remaining",
		Err:     cause,
	}
}

func dateError(op, field string, cause error) *Error {
	return &Error{
		Op:      op,
		Kind:    InvalidDate,
		Field:   field,
		Message: "Please enter a valid date",
		Err:     cause,
	}
}

func rangeError(op string) *Error {
	return &Error{
		Op:      op,
		Kind:    InvalidRange,
		Field:   "moveOut",
		Message: "Move out date cannot be after end date",
	}
}

func termError(op string, cause error) *Error {
	return &Error{
		Op:      op,
		Kind:    InvalidTerm,
		Field:   "term",
		Message: "Please select a valid agreed term",
		Err:     cause,
	}
}

func multiplierError(op string, cause error) *Error {
	return &Error{
		Op:      op,
		Kind:    InvalidMultiplier,
		Field:   "multiplier",
		Message: "Letting fee multiplier must be greater than 0 and at most 2",
		Err:     cause,
	}
}

func kindError(op string, cause error) *Error {
	return &Error{
		Op:      op,
		Kind:    InvalidKind,
		Field:   "calculator",
		Message: "Unknown calculator",
		Err:     cause,
	}
}
