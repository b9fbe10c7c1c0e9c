package cmd

import (
	"context"
	"flag"

	"github.com/etnz/spend/renderer"
	"github.com/google/subcommands"
)

type groupedCmd struct{}

func (*groupedCmd) Name() string     { return "grouped" }
func (*groupedCmd) Synopsis() string { return "show the total spent per category" }
func (*groupedCmd) Usage() string {
	return `spend grouped

  Shows the expenses grouped by category, in the order of the category
  registry. Categories without a positive total are not shown.
`
}

func (c *groupedCmd) SetFlags(f *flag.FlagSet) {}

func (c *groupedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.RenderGrouped(s.Grouped(), renderOptions()))
	return subcommands.ExitSuccess
}
