package fees

import (
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/lease-fees/pkg/datetime"
)

func TestErrorSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"Amount", amountError("op", "cost", "advertising cost", nil), ErrInvalidAmount},
		{"Weeks", weeksError("op", nil), ErrInvalidWeeks},
		{"Date", dateError("op", "moveOut", nil), ErrInvalidDate},
		{"Range", rangeError("op"), ErrInvalidRange},
		{"Term", termError("op", nil), ErrInvalidTerm},
		{"Multiplier", multiplierError("op", nil), ErrInvalidMultiplier},
		{"Kind", kindError("op", nil), ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			if UserMessage(tt.err) == "" {
				t.Errorf("UserMessage(%v) is empty", tt.err)
			}
		})
	}
}

func TestErrorWrapsCause(t *testing.T) {
	_, err := ParseDate("agreementEnd", "whenever")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if !errors.Is(err, datetime.ErrUnrecognizedDate) {
		t.Errorf("expected cause datetime.ErrUnrecognizedDate, got %v", err)
	}
	if !strings.Contains(err.Error(), "field=agreementEnd") {
		t.Errorf("Error() = %q, expected field name", err.Error())
	}
	if msg := UserMessage(err); msg != "Please enter a valid date" {
		t.Errorf("UserMessage() = %q", msg)
	}
}

func TestKindOfForeignError(t *testing.T) {
	err := errors.New("disk full")
	if kind := KindOf(err); kind != "" {
		t.Errorf("KindOf(foreign) = %q, expected empty", kind)
	}
	if IsKind(err, "") {
		t.Errorf("IsKind(foreign, \"\") = true")
	}
	if UserMessage(err) != "disk full" {
		t.Errorf("UserMessage(foreign) = %q", UserMessage(err))
	}
	if UserMessage(nil) != "" {
		t.Errorf("UserMessage(nil) = %q", UserMessage(nil))
	}
}

func TestRangeErrorMessage(t *testing.T) {
	_, err := ParseDateRange("20/01/2024", "01/01/2024")
	if msg := UserMessage(err); msg != "Move out date cannot be after end date" {
		t.Errorf("UserMessage() = %q", msg)
	}
}
