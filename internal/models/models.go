package models

import "time"

// Token is a single positioned text fragment from a statement page,
// as produced by the PDF text-extraction step.
type Token struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Transaction represents one finalized statement transaction.
// Reference and the numeric columns are pointers because any of them
// may be absent from the source row; Date is always present.
type Transaction struct {
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Reference   *string  `json:"reference"`
	Debit       *float64 `json:"debit"`
	Credit      *float64 `json:"credit"`
	Balance     *float64 `json:"balance"`
}

// StatementResult is the output of the statement pipeline for one document.
type StatementResult struct {
	DateRange    *string       `json:"dateRange"`
	Transactions []Transaction `json:"transactions"`
}

// ReceiptRecord holds the fields recovered from a photographed payment
// receipt. Every field is independently nullable: partial extraction is a
// normal outcome, not an error.
type ReceiptRecord struct {
	RecipientName   *string    `json:"recipientName"`
	RecipientNumber *string    `json:"recipientNumber"`
	Amount          *float64   `json:"amount"`
	ReferenceNumber *string    `json:"referenceNumber"`
	Timestamp       *time.Time `json:"timestamp"`
}
