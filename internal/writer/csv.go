package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tiketera/payment-extractor/internal/models"
)

// CSVWriter writes extracted statement transactions to CSV.
type CSVWriter struct {
	IncludeHeader bool
}

// Write writes the statement result in CSV format to the given writer.
// Nil columns become empty cells.
func (w *CSVWriter) Write(out io.Writer, res *models.StatementResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader && res.DateRange != nil {
		writer.Write([]string{"# Statement Period", *res.DateRange})
	}

	header := []string{"Date", "Description", "Reference", "Debit", "Credit", "Balance"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range res.Transactions {
		row := []string{
			txn.Date,
			txn.Description,
			strOrEmpty(txn.Reference),
			formatAmount(txn.Debit),
			formatAmount(txn.Credit),
			formatAmount(txn.Balance),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatAmount(amount *float64) string {
	if amount == nil {
		return ""
	}
	return strconv.FormatFloat(*amount, 'f', 2, 64)
}
