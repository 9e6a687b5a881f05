package parser

import (
	"fmt"

	"github.com/tiketera/payment-extractor/internal/models"
)

// StatementParser turns the positioned tokens of an e-wallet statement into
// an ordered transaction list. It is a pure transformation: it holds no
// per-call state and is safe for concurrent use.
type StatementParser struct {
	bands Bands
}

// NewStatementParser validates the column layout once and returns a parser.
func NewStatementParser() (*StatementParser, error) {
	if err := statementBands.validate(); err != nil {
		return nil, fmt.Errorf("statement column layout: %w", err)
	}
	return &StatementParser{bands: statementBands}, nil
}

// Parse processes all pages of one document, in document order:
// cluster tokens into rows, assign rows to columns, drop noise rows
// (capturing the date-range banner), then merge wrapped continuation
// fragments into their transactions.
//
// Parse cannot fail. A document with no recognizable rows yields an empty
// transaction list, never an error — callers that require completeness
// check the result themselves.
func (p *StatementParser) Parse(pages [][]models.Token) *models.StatementResult {
	result := &models.StatementResult{Transactions: []models.Transaction{}}

	var drafts []draft
	for _, page := range pages {
		for _, row := range clusterRows(page) {
			class, dateRange := classifyRow(rowText(row))
			switch class {
			case rowDateRange:
				// Only the first banner in document order counts.
				if result.DateRange == nil {
					result.DateRange = strPtr(dateRange)
				}
				continue
			case rowNoise:
				continue
			}

			d := assignColumns(row, p.bands)
			// A row whose every field came up blank is layout residue. A
			// lone balance is kept: that is a zero-description transaction,
			// not noise.
			if d.blank() {
				continue
			}
			drafts = append(drafts, d)
		}
	}

	if merged := mergeDrafts(drafts); merged != nil {
		result.Transactions = merged
	}
	return result
}
