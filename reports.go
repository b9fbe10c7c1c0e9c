package spend

import (
	"math"

	"github.com/shopspring/decimal"
)

// Group is the total spent in a category, with its expenses.
type Group struct {
	Category string
	Total    decimal.Decimal
	Expenses []Expense // in store order
}

// Grouped returns the expenses grouped by category.
//
// When the registry holds categories, groups follow the registry order and
// categories whose total is zero or negative are left out, as are expenses
// whose category is not registered. When the registry is empty, categories
// are discovered in the order they first appear in the store and every
// group is returned whatever its total.
func (s *Store) Grouped() []Group {
	if len(s.expenses) == 0 {
		return nil
	}
	if s.categories.Len() > 0 {
		var groups []Group
		for _, name := range s.categories.names {
			g := s.group(name)
			if !g.Total.IsPositive() {
				continue
			}
			groups = append(groups, g)
		}
		return groups
	}

	var names []string
	seen := make(map[string]bool)
	for _, e := range s.expenses {
		if !seen[e.Category] {
			seen[e.Category] = true
			names = append(names, e.Category)
		}
	}
	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, s.group(name))
	}
	return groups
}

func (s *Store) group(name string) Group {
	g := Group{Category: name}
	for _, e := range s.expenses {
		if e.Category != name {
			continue
		}
		g.Total = g.Total.Add(amount(e))
		g.Expenses = append(g.Expenses, e)
	}
	return g
}

// Summary is the activity of a single month.
type Summary struct {
	Month      string // MM-YYYY
	Total      decimal.Decimal
	Count      int // matching expenses
	ActiveDays int // distinct days with at least one expense
}

// HasActivity reports whether at least one day of the month had expenses.
func (s Summary) HasActivity() bool { return s.ActiveDays > 0 }

// Average returns the total spent per active day, or zero without activity.
func (s Summary) Average() decimal.Decimal {
	if !s.HasActivity() {
		return decimal.Zero
	}
	return s.Total.Div(decimal.NewFromInt(int64(s.ActiveDays)))
}

// MonthlySummary summarizes the expenses of a month given as MM-YYYY.
//
// An expense belongs to the month when the MM-YYYY part of its date is
// exactly month. The average is computed per active day, not per expense.
func (s *Store) MonthlySummary(month string) Summary {
	sum := Summary{Month: month}
	var days [32]bool
	for _, e := range s.expenses {
		if len(e.Date) < DateLen || e.Date[3:DateLen] != month {
			continue
		}
		sum.Total = sum.Total.Add(amount(e))
		sum.Count++
		if day, ok := leadingDay(e.Date); ok {
			days[day] = true
		}
	}
	for _, active := range days {
		if active {
			sum.ActiveDays++
		}
	}
	return sum
}

// leadingDay reads the day of month from the first two bytes of a date.
func leadingDay(d string) (int, bool) {
	day, ok := digits(d[0:2])
	if !ok {
		// a single digit day followed by a separator
		day, ok = digits(d[0:1])
	}
	if !ok || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}

// amount returns the exact decimal value of the expense amount. Values
// that are not finite, only found in corrupted snapshots, count as zero.
func amount(e Expense) decimal.Decimal {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(e.Amount)
}
