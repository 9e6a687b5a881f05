package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tiketera/payment-extractor/internal/models"
)

// Band maps one semantic column of the statement table to a fixed
// [Start, End) x-coordinate interval.
type Band struct {
	Field string
	Start float64
	End   float64
}

// Bands is the column layout of one statement template.
type Bands []Band

// Statement column fields.
const (
	fieldDate        = "date"
	fieldDescription = "description"
	fieldReference   = "reference"
	fieldDebit       = "debit"
	fieldCredit      = "credit"
	fieldBalance     = "balance"
)

// statementBands is the layout of the supported e-wallet statement template.
// The intervals are in PDF layout units and are tied to this template's font
// size and margins; a template change requires redeploying with new values.
var statementBands = Bands{
	{Field: fieldDate, Start: 40, End: 120},
	{Field: fieldDescription, Start: 120, End: 300},
	{Field: fieldReference, Start: 300, End: 380},
	{Field: fieldDebit, Start: 380, End: 460},
	{Field: fieldCredit, Start: 460, End: 500},
	{Field: fieldBalance, Start: 500, End: 600},
}

// validate checks that no two bands overlap, so every token maps to at most
// one field. Run once at parser construction, not per document.
func (b Bands) validate() error {
	sorted := make(Bands, len(b))
	copy(sorted, b)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i, band := range sorted {
		if band.End <= band.Start {
			return fmt.Errorf("column band %q has empty interval [%v, %v)", band.Field, band.Start, band.End)
		}
		if i > 0 && band.Start < sorted[i-1].End {
			return fmt.Errorf("column bands %q and %q overlap", sorted[i-1].Field, band.Field)
		}
	}
	return nil
}

// lookup returns the band containing x, or "" when x falls outside every
// band (page-margin artifacts are dropped silently).
func (b Bands) lookup(x float64) string {
	for _, band := range b {
		if x >= band.Start && x < band.End {
			return band.Field
		}
	}
	return ""
}

// draft is one in-progress transaction built from a single row. A draft
// with a nil date is a fragment: a wrapped continuation of the previous
// transaction's description rather than a new transaction.
type draft struct {
	date        *string
	description string
	reference   *string
	debit       *float64
	credit      *float64
	balance     *float64
}

// blank reports whether the draft carries no content at all.
func (d draft) blank() bool {
	return d.date == nil && d.description == "" && d.reference == nil &&
		d.debit == nil && d.credit == nil && d.balance == nil
}

// assignColumns partitions a row's tokens by column band and builds a
// transaction draft. Same-field tokens concatenate left to right; numeric
// columns that fail to parse become nil rather than an error.
func assignColumns(row []models.Token, bands Bands) draft {
	cells := make(map[string][]string, 6)
	for _, t := range row {
		field := bands.lookup(t.X)
		if field == "" {
			continue
		}
		cells[field] = append(cells[field], t.Text)
	}

	cell := func(field string) string {
		return strings.TrimSpace(strings.Join(cells[field], " "))
	}

	d := draft{description: cell(fieldDescription)}
	if s := cell(fieldDate); s != "" {
		d.date = strPtr(s)
	}
	if s := cell(fieldReference); s != "" {
		d.reference = strPtr(s)
	}
	d.debit = parseAmountPtr(cell(fieldDebit))
	d.credit = parseAmountPtr(cell(fieldCredit))
	d.balance = parseAmountPtr(cell(fieldBalance))
	return d
}
