package parser

import (
	"testing"
)

func TestMergeDrafts_FragmentDescription(t *testing.T) {
	drafts := []draft{
		{
			date:        strPtr("2024-01-05"),
			description: "Coffee Shop",
			reference:   strPtr("REF123"),
			debit:       floatPtr(50.00),
			balance:     floatPtr(1000.00),
		},
		{description: "downtown branch"},
	}

	result := mergeDrafts(drafts)
	if len(result) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(result))
	}

	txn := result[0]
	if txn.Description != "Coffee Shop downtown branch" {
		t.Errorf("description: got %q, want %q", txn.Description, "Coffee Shop downtown branch")
	}
	if txn.Reference == nil || *txn.Reference != "REF123" {
		t.Errorf("reference: got %v, want REF123", txn.Reference)
	}
	if txn.Debit == nil || *txn.Debit != 50.00 {
		t.Errorf("debit: got %v, want 50.00", txn.Debit)
	}
	if txn.Balance == nil || *txn.Balance != 1000.00 {
		t.Errorf("balance: got %v, want 1000.00", txn.Balance)
	}
}

func TestMergeDrafts_CoalesceNeverOverwrites(t *testing.T) {
	// The fragment carries conflicting values; the transaction's own
	// non-nil fields must win, and only its nil fields fill from the
	// fragment.
	drafts := []draft{
		{
			date:        strPtr("2024-01-05"),
			description: "Transfer",
			debit:       floatPtr(50.00),
		},
		{
			description: "via app",
			reference:   strPtr("REF999"),
			debit:       floatPtr(999.99),
			balance:     floatPtr(500.00),
		},
	}

	result := mergeDrafts(drafts)
	if len(result) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(result))
	}

	txn := result[0]
	if txn.Debit == nil || *txn.Debit != 50.00 {
		t.Errorf("debit: got %v, want 50.00 (must not be overwritten)", txn.Debit)
	}
	if txn.Reference == nil || *txn.Reference != "REF999" {
		t.Errorf("reference: got %v, want REF999 (fills nil field)", txn.Reference)
	}
	if txn.Balance == nil || *txn.Balance != 500.00 {
		t.Errorf("balance: got %v, want 500.00 (fills nil field)", txn.Balance)
	}
}

func TestMergeDrafts_LeadingFragmentDropped(t *testing.T) {
	drafts := []draft{
		{description: "orphan continuation"},
		{date: strPtr("2024-01-05"), description: "First real"},
	}

	result := mergeDrafts(drafts)
	if len(result) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(result))
	}
	if result[0].Description != "First real" {
		t.Errorf("description: got %q, want %q (orphan must not attach)", result[0].Description, "First real")
	}
}

func TestMergeDrafts_ConsecutiveFragments(t *testing.T) {
	// Any run of date-less drafts keeps folding into the same transaction.
	drafts := []draft{
		{date: strPtr("2024-01-05"), description: "Payment"},
		{description: "to a very long"},
		{description: "merchant name", balance: floatPtr(900.00)},
	}

	result := mergeDrafts(drafts)
	if len(result) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(result))
	}
	if result[0].Description != "Payment to a very long merchant name" {
		t.Errorf("description: got %q", result[0].Description)
	}
	if result[0].Balance == nil || *result[0].Balance != 900.00 {
		t.Errorf("balance: got %v, want 900.00", result[0].Balance)
	}
}

func TestMergeDrafts_Empty(t *testing.T) {
	if result := mergeDrafts(nil); len(result) != 0 {
		t.Errorf("got %d transactions, want 0", len(result))
	}
}
