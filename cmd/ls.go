package cmd

import (
	"context"
	"flag"

	"github.com/etnz/spend"
	"github.com/etnz/spend/renderer"
	"github.com/google/subcommands"
)

type lsCmd struct {
	filter spend.Filter
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list expenses, optionally filtered" }
func (*lsCmd) Usage() string {
	return `spend ls [-c <category>] [-from <DD-MM-YYYY>] [-to <DD-MM-YYYY>] [-q <text>]

  Lists the expenses in the order they were recorded. Every given flag
  must match: the category exactly, the dates as inclusive bounds, the
  text as a substring of the description.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter.Category, "c", "", "Only expenses of this category")
	f.StringVar(&c.filter.From, "from", "", "Only expenses on or after this date (DD-MM-YYYY)")
	f.StringVar(&c.filter.To, "to", "", "Only expenses on or before this date (DD-MM-YYYY)")
	f.StringVar(&c.filter.Contains, "q", "", "Only expenses whose description contains this text")
}

func (c *lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.filter.Validate(); err != nil {
		return usage("%v", err)
	}
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}

	title := "Expenses"
	if !c.filter.IsZero() {
		title = "Filtered Expenses"
	}
	printMarkdown(renderer.RenderExpenses(title, s.Filtered(c.filter), renderOptions()))
	return subcommands.ExitSuccess
}
