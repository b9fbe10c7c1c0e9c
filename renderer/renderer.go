package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/spend"
)

// Options holds the configuration shared by every report.
type Options struct {
	Currency string // ISO 4217 code used to display amounts, none if empty.
}

// RenderExpenses renders a list of expenses as a markdown table.
func RenderExpenses(title string, expenses []spend.Expense, opts Options) string {
	partials := map[string]string{
		"expense_table": "expense_table.md",
	}
	return renderTemplate("expenses", "expenses.md", partials, NewExpenseList(title, expenses, opts))
}

// RenderGrouped renders the expenses grouped by category, one table per category.
func RenderGrouped(groups []spend.Group, opts Options) string {
	partials := map[string]string{
		"expense_table": "expense_table.md",
	}
	return renderTemplate("grouped", "grouped.md", partials, NewGrouped(groups, opts))
}

// RenderMonthly renders a monthly summary.
func RenderMonthly(s spend.Summary, opts Options) string {
	return renderTemplate("monthly", "monthly.md", nil, NewMonthly(s, opts))
}

// RenderCategories renders the category registry.
func RenderCategories(names []string) string {
	return renderTemplate("categories", "categories.md", nil, NewCategoryList(names))
}

// RenderImport renders the outcome of a CSV import.
func RenderImport(file string, r spend.ImportReport) string {
	return renderTemplate("import", "import.md", nil, NewImport(file, r))
}

// RenderTotals renders per category totals over a period.
func RenderTotals(period string, totals []CategoryTotal, opts Options) string {
	return renderTemplate("totals", "totals.md", nil, NewTotals(period, totals, opts))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
