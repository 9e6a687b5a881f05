package parser

import (
	"strings"

	"github.com/tiketera/payment-extractor/internal/models"
)

// mergeDrafts folds the ordered surviving drafts of a whole document into
// the final transaction list in a single forward pass.
//
// A draft with a date starts a new transaction. A date-less draft is a
// fragment — a wrapped continuation line — and is merged into the previous
// transaction: its description is appended, and reference/debit/credit/
// balance coalesce (the first non-nil value wins; an existing value is never
// overwritten). A fragment arriving before any transaction exists is
// dropped: there is nothing to attach it to.
func mergeDrafts(drafts []draft) []models.Transaction {
	var result []models.Transaction

	for _, d := range drafts {
		if d.date != nil {
			result = append(result, models.Transaction{
				Date:        *d.date,
				Description: strings.TrimSpace(d.description),
				Reference:   d.reference,
				Debit:       d.debit,
				Credit:      d.credit,
				Balance:     d.balance,
			})
			continue
		}

		if len(result) == 0 {
			continue
		}

		last := &result[len(result)-1]
		last.Description = strings.TrimSpace(last.Description + " " + d.description)
		if last.Reference == nil {
			last.Reference = d.reference
		}
		if last.Debit == nil {
			last.Debit = d.debit
		}
		if last.Credit == nil {
			last.Credit = d.credit
		}
		if last.Balance == nil {
			last.Balance = d.balance
		}
	}

	return result
}
