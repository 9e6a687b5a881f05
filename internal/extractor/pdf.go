package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tiketera/payment-extractor/internal/models"
)

// ErrWrongPassword reports that the statement PDF could not be decrypted
// with the supplied password. It is distinct from "no transactions found",
// which is not an error at all.
var ErrWrongPassword = errors.New("statement PDF: wrong password")

// ExtractTokens opens an (optionally password-protected) statement PDF and
// returns the positioned text tokens of each page, in page order.
//
// The tokens carry only (x, y) positions and string content; reconstructing
// table structure from them is the parser's job. A document with no text is
// not an error — it yields zero tokens.
func ExtractTokens(data []byte, password string) (pages [][]models.Token, err error) {
	// The PDF library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	asked := false
	r, err := pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), func() string {
		// Offer the password once; a second ask means it was rejected.
		if asked {
			return ""
		}
		asked = true
		return password
	})
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, ErrWrongPassword
		}
		return nil, fmt.Errorf("open statement PDF: %w", err)
	}

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		height := pageHeight(page)
		content := page.Content()
		tokens := make([]models.Token, 0, len(content.Text))
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			// PDF y runs bottom-up; the parser expects reading order.
			tokens = append(tokens, models.Token{X: t.X, Y: height - t.Y, Text: t.S})
		}
		pages = append(pages, tokens)
	}

	return pages, nil
}

// defaultPageHeight is US Letter in PDF units, used when the page carries no
// usable MediaBox.
const defaultPageHeight = 792.0

func pageHeight(page pdf.Page) float64 {
	mb := page.V.Key("MediaBox")
	if mb.IsNull() || mb.Len() < 4 {
		return defaultPageHeight
	}
	h := mb.Index(3).Float64() - mb.Index(1).Float64()
	if h <= 0 {
		return defaultPageHeight
	}
	return h
}
