package parser

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"25.99", 25.99, false},
		{"1,234.56", 1234.56, false},
		{"₱25.99", 25.99, false},
		{"PHP 1,000.00", 1000.00, false},
		{"-25.99", -25.99, false},
		{"₱1,234,567.89", 1234567.89, false},
		{"0.00", 0.00, false},
		{" 25.99 ", 25.99, false},
		{"", 0, true},
		{"Reference", 0, true},
		{"12a.00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestParseAmount_SeparatorIdempotence(t *testing.T) {
	// "1,234.56" and "1234.56" must parse to the identical float
	a, err := parseAmount("1,234.56")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := parseAmount("1234.56")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b || a != 1234.56 {
		t.Errorf("got %f and %f, want both 1234.56", a, b)
	}
}

func TestParseAmountPtr(t *testing.T) {
	if got := parseAmountPtr("garbled"); got != nil {
		t.Errorf("expected nil for unparseable value, got %f", *got)
	}
	if got := parseAmountPtr(""); got != nil {
		t.Errorf("expected nil for empty value, got %f", *got)
	}
	got := parseAmountPtr("50.00")
	if got == nil || *got != 50.00 {
		t.Errorf("got %v, want 50.00", got)
	}
}
