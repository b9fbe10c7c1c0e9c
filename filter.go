package spend

import (
	"errors"
	"fmt"
	"strings"
)

// Filter selects expenses. Empty fields are not applied, the others are
// all required to match.
type Filter struct {
	Category string // exact category name
	From     string // inclusive lower bound, DD-MM-YYYY
	To       string // inclusive upper bound, DD-MM-YYYY
	Contains string // case sensitive substring of the description
}

// IsZero reports whether the filter accepts every expense.
func (f Filter) IsZero() bool { return f == Filter{} }

// Validate checks that the date bounds, when set, are valid dates.
func (f Filter) Validate() error {
	var errs error
	if f.From != "" && !IsValidDate(f.From) {
		errs = errors.Join(errs, fmt.Errorf("from date %q: %w", f.From, ErrInvalidDate))
	}
	if f.To != "" && !IsValidDate(f.To) {
		errs = errors.Join(errs, fmt.Errorf("to date %q: %w", f.To, ErrInvalidDate))
	}
	return errs
}

// match returns a predicate implementing f.
//
// A bound whose date key cannot be computed is ignored. When at least one
// bound is active, expenses with an unparsable date never match.
func (f Filter) match() func(Expense) bool {
	from, hasFrom := -1, false
	to, hasTo := -1, false
	if f.From != "" {
		from, hasFrom = DateKey(f.From)
	}
	if f.To != "" {
		to, hasTo = DateKey(f.To)
	}
	return func(e Expense) bool {
		if f.Category != "" && e.Category != f.Category {
			return false
		}
		if hasFrom || hasTo {
			k, ok := DateKey(e.Date)
			if !ok {
				return false
			}
			if hasFrom && k < from {
				return false
			}
			if hasTo && k > to {
				return false
			}
		}
		if f.Contains != "" && !strings.Contains(e.Description, f.Contains) {
			return false
		}
		return true
	}
}

// Filtered returns the expenses matching f, in store order.
func (s *Store) Filtered(f Filter) []Expense {
	match := f.match()
	var out []Expense
	for _, e := range s.expenses {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}
