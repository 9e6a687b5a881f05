package parser

import (
	"regexp"
	"strings"
)

// dateRangePattern matches the statement's period banner, e.g.
// "2024-01-01 to 2024-01-31".
var dateRangePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\s+to\s+\d{4}-\d{2}-\d{2}\b`)

// boilerplateMarkers identify header, footer, and section-total rows that
// must never reach the transaction list.
var boilerplateMarkers = []string{
	"transaction history",
	"starting balance",
	"ending balance",
	"total debit",
	"total credit",
}

// rowClass is the Noise Filter's verdict on one row.
type rowClass int

const (
	rowData rowClass = iota
	rowNoise
	rowDateRange
)

// classifyRow inspects a row's concatenated text. Rules are checked in
// order, first match wins: the date-range banner is captured (and the row
// dropped), boilerplate is dropped, everything else is data.
func classifyRow(text string) (rowClass, string) {
	if m := dateRangePattern.FindString(text); m != "" {
		return rowDateRange, m
	}
	if isBoilerplateRow(text) {
		return rowNoise, ""
	}
	return rowData, ""
}

func isBoilerplateRow(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return isColumnHeaderRow(lower)
}

// isColumnHeaderRow detects the table's own header line
// ("Date Description Reference Debit Credit Balance").
func isColumnHeaderRow(lower string) bool {
	return strings.Contains(lower, "date") &&
		strings.Contains(lower, "description") &&
		strings.Contains(lower, "balance")
}
