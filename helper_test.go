package spend

import (
	"testing"
)

// newTestStore returns a new store holding the given expenses, added in order.
func newTestStore(t *testing.T, expenses ...Expense) *Store {
	t.Helper()
	s := NewStore()
	for _, e := range expenses {
		s.Add(e)
	}
	return s
}

// X is a helper for test to create an expense from consts.
func X(date string, amount float64, category, description string) Expense {
	return Expense{Date: date, Amount: amount, Category: category, Description: description}
}
