package parser

import (
	"strconv"
	"strings"
)

// parseAmount converts a string like "1,234.56" or "₱1,234.56" to a float64.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// Remove currency markers and whitespace (including Unicode variants)
	s = strings.ReplaceAll(s, "₱", "")
	s = strings.ReplaceAll(s, "PHP", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space

	if s == "" {
		return 0, strconv.ErrSyntax
	}

	return strconv.ParseFloat(s, 64)
}

// parseAmountPtr parses a numeric column value, returning nil when the text
// is empty or not a number. Parse failure is an expected condition here:
// the column may carry non-numeric boilerplate.
func parseAmountPtr(s string) *float64 {
	v, err := parseAmount(s)
	if err != nil {
		return nil
	}
	return &v
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(v float64) *float64 {
	return &v
}
