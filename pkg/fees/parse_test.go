package fees

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"450", 450, false},
		{" 450.75 ", 450.75, false},
		{"$1,250.50", 1250.5, false},
		{"1e3", 1000, false},
		{"0", 0, true},
		{"-20", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"12abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"0x1p4", 0, true},
		{"0x10", 0, true},
		{"1_000", 0, true},
		{"$.5", 0.5, false},
		{"1.", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseAmount(tt.input, "advertising cost")
			if tt.wantErr {
				if !IsKind(err, InvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, expected %s", tt.input, err, InvalidAmount)
				}
				if msg := UserMessage(err); msg != "Please enter a valid advertising cost" {
					t.Errorf("UserMessage() = %q", msg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if amount != tt.expected {
				t.Errorf("ParseAmount(%q) = %v, expected %v", tt.input, amount, tt.expected)
			}
		})
	}
}

func TestParseWeeks(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"10", 10, false},
		{"2.5", 2.5, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"ten", 0, true},
		{"$10", 0, true},
		{"0x1p4", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			weeks, err := ParseWeeks(tt.input)
			if tt.wantErr {
				if !IsKind(err, InvalidWeeks) {
					t.Fatalf("ParseWeeks(%q) error = %v, expected %s", tt.input, err, InvalidWeeks)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWeeks(%q) unexpected error: %v", tt.input, err)
			}
			if weeks != tt.expected {
				t.Errorf("ParseWeeks(%q) = %v, expected %v", tt.input, weeks, tt.expected)
			}
		})
	}
}

func TestParseMultiplier(t *testing.T) {
	m, err := ParseMultiplier("  ")
	if err != nil || m != nil {
		t.Fatalf("ParseMultiplier(blank) = %v, %v; expected nil, nil", m, err)
	}

	m, err = ParseMultiplier("1.5")
	if err != nil {
		t.Fatalf("ParseMultiplier(1.5) unexpected error: %v", err)
	}
	if m == nil || *m != 1.5 {
		t.Fatalf("ParseMultiplier(1.5) = %v, expected 1.5", m)
	}

	m, err = ParseMultiplier("2")
	if err != nil || m == nil || *m != 2 {
		t.Fatalf("ParseMultiplier(2) = %v, %v; expected 2", m, err)
	}

	for _, input := range []string{"0", "2.5", "-1", "two", "0x1p0", "NaN"} {
		if _, err := ParseMultiplier(input); !IsKind(err, InvalidMultiplier) {
			t.Errorf("ParseMultiplier(%q) error = %v, expected %s", input, err, InvalidMultiplier)
		}
	}
}
