package parser

import (
	"sort"
	"strings"

	"github.com/tiketera/payment-extractor/internal/models"
)

// rowTolerance is the maximum vertical distance (in layout units) between
// two tokens that still belong to the same visual line.
const rowTolerance = 5.0

// clusterRows groups the flat token set of one page into visual rows.
//
// Tokens are sorted by (y, x) and walked in order: a token joins the current
// row while its y stays within rowTolerance of the previous token, otherwise
// it starts a new row. Whitespace-only tokens are discarded up front — they
// contribute no content and would corrupt the tolerance walk.
func clusterRows(tokens []models.Token) [][]models.Token {
	filtered := make([]models.Token, 0, len(tokens))
	for _, t := range tokens {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		filtered = append(filtered, t)
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Y != filtered[j].Y {
			return filtered[i].Y < filtered[j].Y
		}
		return filtered[i].X < filtered[j].X
	})

	var rows [][]models.Token
	var buf []models.Token
	lastY := filtered[0].Y

	flush := func() {
		if len(buf) == 0 {
			return
		}
		sort.Slice(buf, func(i, j int) bool { return buf[i].X < buf[j].X })
		rows = append(rows, buf)
		buf = nil
	}

	for _, t := range filtered {
		if abs(t.Y-lastY) > rowTolerance {
			flush()
		}
		buf = append(buf, t)
		lastY = t.Y
	}
	// Trailing buffer at end of page
	flush()

	return rows
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// rowText joins a row's token texts left to right, for classification.
func rowText(row []models.Token) string {
	parts := make([]string, 0, len(row))
	for _, t := range row {
		parts = append(parts, t.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
