package renderer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/spend"
	"github.com/shopspring/decimal"
)

// Amount is a decimal value displayed in a currency.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// NewAmount converts an expense amount. Values that are not finite count as zero.
func NewAmount(v float64, currency string) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{Currency: currency}
	}
	return Amount{Value: decimal.NewFromFloat(v), Currency: currency}
}

// String formats the amount with the currency symbol and separators, or
// with two plain decimals when the currency is unknown.
func (a Amount) String() string {
	c := money.GetCurrency(a.Currency)
	if c == nil {
		return a.Value.StringFixed(2)
	}
	minor := a.Value.Shift(int32(c.Fraction)).Round(0).IntPart()
	return money.New(minor, c.Code).Display()
}

// Expense is a single row of an expense table.
type Expense struct {
	ID          int
	Date        string
	Amount      Amount
	Category    string
	Description string
}

func newExpense(e spend.Expense, opts Options) Expense {
	return Expense{
		ID:          e.ID,
		Date:        cell(e.Date),
		Amount:      NewAmount(e.Amount, opts.Currency),
		Category:    cell(e.Category),
		Description: cell(e.Description),
	}
}

func newExpenses(expenses []spend.Expense, opts Options) []Expense {
	rows := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, newExpense(e, opts))
	}
	return rows
}

// ExpenseList is a titled list of expenses with its total.
type ExpenseList struct {
	Title    string
	Expenses []Expense
	Total    Amount
}

// NewExpenseList creates the view of a list of expenses.
func NewExpenseList(title string, expenses []spend.Expense, opts Options) *ExpenseList {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(NewAmount(e.Amount, opts.Currency).Value)
	}
	return &ExpenseList{
		Title:    title,
		Expenses: newExpenses(expenses, opts),
		Total:    Amount{Value: total, Currency: opts.Currency},
	}
}

// Group is the view of a category total.
type Group struct {
	Category string
	Total    Amount
	Expenses []Expense
}

// Grouped is the view of expenses grouped by category.
type Grouped struct {
	Groups []Group
}

// NewGrouped creates the view of grouped expenses.
func NewGrouped(groups []spend.Group, opts Options) *Grouped {
	g := &Grouped{Groups: make([]Group, 0, len(groups))}
	for _, group := range groups {
		g.Groups = append(g.Groups, Group{
			Category: cell(group.Category),
			Total:    Amount{Value: group.Total, Currency: opts.Currency},
			Expenses: newExpenses(group.Expenses, opts),
		})
	}
	return g
}

// Monthly is the view of a monthly summary.
type Monthly struct {
	Month       string
	Total       Amount
	Average     Amount
	Count       int
	ActiveDays  int
	HasActivity bool
}

// NewMonthly creates the view of a monthly summary.
func NewMonthly(s spend.Summary, opts Options) *Monthly {
	return &Monthly{
		Month:       s.Month,
		Total:       Amount{Value: s.Total, Currency: opts.Currency},
		Average:     Amount{Value: s.Average(), Currency: opts.Currency},
		Count:       s.Count,
		ActiveDays:  s.ActiveDays,
		HasActivity: s.HasActivity(),
	}
}

// CategoryList is the view of the category registry.
type CategoryList struct {
	Names    []string
	Capacity int
}

// NewCategoryList creates the view of the registered categories.
func NewCategoryList(names []string) *CategoryList {
	return &CategoryList{Names: names, Capacity: spend.MaxCategories}
}

// Import is the view of a CSV import report.
type Import struct {
	File     string
	Imported int
	Skipped  string // comma separated line numbers
}

// NewImport creates the view of an import report.
func NewImport(file string, r spend.ImportReport) *Import {
	lines := make([]string, 0, len(r.Skipped))
	for _, l := range r.Skipped {
		lines = append(lines, strconv.Itoa(l))
	}
	return &Import{
		File:     file,
		Imported: len(r.Imported),
		Skipped:  strings.Join(lines, ", "),
	}
}

// CategoryTotal is the amount spent in a category, as computed by a query.
type CategoryTotal struct {
	Category string
	Amount   float64
	Count    int
}

// TotalRow is a single row of a totals table.
type TotalRow struct {
	Category string
	Amount   Amount
	Count    int
}

// Totals is the view of per category totals over a period.
type Totals struct {
	Period string
	Rows   []TotalRow
	Total  Amount
}

// NewTotals creates the view of per category totals.
func NewTotals(period string, totals []CategoryTotal, opts Options) *Totals {
	v := &Totals{Period: period, Rows: make([]TotalRow, 0, len(totals))}
	sum := decimal.Zero
	for _, t := range totals {
		a := NewAmount(t.Amount, opts.Currency)
		sum = sum.Add(a.Value)
		v.Rows = append(v.Rows, TotalRow{Category: cell(t.Category), Amount: a, Count: t.Count})
	}
	v.Total = Amount{Value: sum, Currency: opts.Currency}
	return v
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

var _ fmt.Stringer = Amount{}
