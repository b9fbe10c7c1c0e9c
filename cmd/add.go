package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/spend"
	"github.com/google/subcommands"
)

type addCmd struct {
	date        string
	category    string
	amount      string
	description string
	create      bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `spend add -d <DD-MM-YYYY> -c <category> -a <amount> [-m <description>] [-create]

  Records a new expense. The date must be a real calendar date and the
  amount a non-negative number. An unknown category is refused unless
  -create is given.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the expense (DD-MM-YYYY)")
	f.StringVar(&c.category, "c", "", "Category of the expense")
	f.StringVar(&c.amount, "a", "", "Amount of the expense")
	f.StringVar(&c.description, "m", "", "Description of the expense")
	f.BoolVar(&c.create, "create", false, "Register the category if it is unknown")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !spend.IsValidDate(c.date) {
		return usage("%v: %q", spend.ErrInvalidDate, c.date)
	}
	amount, ok := spend.ParseAmount(c.amount)
	if !ok {
		return usage("%v: %q", spend.ErrInvalidAmount, c.amount)
	}
	if c.category == "" {
		return usage("%v", spend.ErrEmptyCategory)
	}

	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	if !s.HasCategory(c.category) {
		if !c.create {
			return fail("%v %q, use -create to register it", spend.ErrUnknownCategory, c.category)
		}
		if err := s.AddCategory(c.category); err != nil {
			return fail("%v", err)
		}
	}

	id := s.Add(spend.Expense{
		Date:        c.date,
		Amount:      amount,
		Category:    c.category,
		Description: c.description,
	})
	if err := saveStore(s); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Added expense %d.\n", id)
	return subcommands.ExitSuccess
}
