package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/tiketera/payment-extractor/internal/models"
)

// Receipt line rules. OCR output from photographed e-wallet receipts is
// noisy: the currency sign garbles, spaces drop before AM/PM, and digits
// gain stray spaces. Each rule tolerates the artifacts seen in real uploads.
var (
	// "Ref No. 1234567890123 Jan 5, 2024 1:23 PM"
	refLinePattern = regexp.MustCompile(`(?i)^Ref\.?\s*No\.?\s*(\d+)(?:\s+(.*))?$`)

	// "Total Amount Sent ₱1,250.00" — the peso sign often arrives garbled,
	// so anything non-numeric between the label and the number is skipped.
	amountLinePattern = regexp.MustCompile(`(?i)Total\s+Amount\s+Sent\D*([\d,]+(?:\.\d+)?)`)

	// "Juan Dela Cruz +63 912 345 6789" — name text, then a country-code
	// number whose digits may be interspersed with OCR-inserted spaces.
	nameNumberPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z.,'\- ]*?)\s+\+63((?:\s*\d)+)\s*$`)

	// A country-code number on a line of its own; used by the fallback pass.
	numberOnlyPattern = regexp.MustCompile(`^\+63((?:\s*\d)+)\s*$`)

	// OCR frequently drops the space before the meridiem: "1:23PM".
	meridiemPattern = regexp.MustCompile(`(?i)(\d)\s*([AP]M)\b`)

	hasLetterPattern = regexp.MustCompile(`[A-Za-z]`)
)

// receiptTimeLayouts are the timestamp shapes observed on receipts.
var receiptTimeLayouts = []string{
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 3:04:05 PM",
	"January 2, 2006 3:04 PM",
}

// ParseReceipt scans raw OCR text from a payment receipt and recovers the
// receipt fields. It is total over any input, including the empty string:
// fields that cannot be located stay nil and no error is ever produced.
//
// The primary pass tries the line rules in order; a line is consumed by the
// first rule that matches it. A fallback pass then recovers the recipient
// name from the line preceding a bare number line — OCR segmentation often
// splits name and number across two lines, and the fallback handles that
// split without loosening the combined pattern.
func ParseReceipt(text string) models.ReceiptRecord {
	var rec models.ReceiptRecord

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	for _, line := range lines {
		if line == "" {
			continue
		}

		if m := refLinePattern.FindStringSubmatch(line); m != nil {
			if rec.ReferenceNumber == nil {
				rec.ReferenceNumber = strPtr(m[1])
			}
			if rec.Timestamp == nil {
				if ts, ok := parseReceiptTime(m[2]); ok {
					rec.Timestamp = &ts
				}
			}
			continue
		}

		if m := amountLinePattern.FindStringSubmatch(line); m != nil {
			if rec.Amount == nil {
				rec.Amount = parseAmountPtr(m[1])
			}
			continue
		}

		if m := nameNumberPattern.FindStringSubmatch(line); m != nil {
			if rec.RecipientName == nil {
				rec.RecipientName = strPtr(strings.TrimSpace(m[1]))
			}
			if rec.RecipientNumber == nil {
				rec.RecipientNumber = strPtr(joinNumber(m[2]))
			}
			continue
		}
	}

	if rec.RecipientName == nil {
		fallbackRecipient(lines, &rec)
	}

	return rec
}

// fallbackRecipient locates a bare country-code number line and treats the
// preceding line as the recipient name, provided it looks like one.
func fallbackRecipient(lines []string, rec *models.ReceiptRecord) {
	for i, line := range lines {
		m := numberOnlyPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if i > 0 {
			prev := lines[i-1]
			if prev != "" && len(prev) > 2 && hasLetterPattern.MatchString(prev) {
				rec.RecipientName = strPtr(prev)
			}
		}
		if rec.RecipientNumber == nil {
			rec.RecipientNumber = strPtr(joinNumber(m[1]))
		}
		return
	}
}

// joinNumber rebuilds "+63" plus the digits with OCR-inserted spaces removed.
func joinNumber(digits string) string {
	return "+63" + strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, digits)
}

// parseReceiptTime normalizes the missing-space-before-meridiem artifact and
// tries the known timestamp layouts. An unparseable string is discarded
// silently: a missing timestamp is a normal partial-extraction outcome.
func parseReceiptTime(s string) (time.Time, bool) {
	s = meridiemPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := meridiemPattern.FindStringSubmatch(m)
		return sub[1] + " " + strings.ToUpper(sub[2])
	})
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range receiptTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
