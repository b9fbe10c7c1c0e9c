package spend

import (
	"unicode/utf8"
)

// Bounds of the text fields of an Expense, in bytes.
const (
	DateLen        = 10
	CategoryLen    = 31
	DescriptionLen = 127
)

// Expense is a single ledger entry.
type Expense struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"` // DD-MM-YYYY
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// bounded returns a copy of e with every text field truncated to its bound.
func (e Expense) bounded() Expense {
	e.Date = truncate(e.Date, DateLen)
	e.Category = truncate(e.Category, CategoryLen)
	e.Description = truncate(e.Description, DescriptionLen)
	return e
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
