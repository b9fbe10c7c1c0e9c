package cmd

import (
	"context"
	"flag"

	"github.com/etnz/spend"
	"github.com/etnz/spend/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "summarize the expenses of a month" }
func (*monthlyCmd) Usage() string {
	return `spend monthly <MM-YYYY>

  Shows the total spent in the month and the average per active day, a
  day being active when it has at least one expense.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage("monthly requires exactly one month")
	}
	month := f.Arg(0)
	if !spend.IsValidMonth(month) {
		return usage("invalid month %q, want MM-YYYY", month)
	}

	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.RenderMonthly(s.MonthlySummary(month), renderOptions()))
	return subcommands.ExitSuccess
}
