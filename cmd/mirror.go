package cmd

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/etnz/spend"
	"github.com/etnz/spend/renderer"
	"github.com/etnz/spend/sqlite"
	"github.com/google/subcommands"
)

type mirrorCmd struct {
	output string
	period spend.Filter
}

func (*mirrorCmd) Name() string     { return "mirror" }
func (*mirrorCmd) Synopsis() string { return "copy the ledger into a SQLite database" }
func (*mirrorCmd) Usage() string {
	return `spend mirror [-o <file.db>] [-from <DD-MM-YYYY>] [-to <DD-MM-YYYY>]

  Writes the ledger into a SQLite database, replacing its previous
  content, so that it can be explored with SQL. The database sits next
  to the snapshot by default.

  The totals per category are then queried from the database, for the
  dates between -from and -to when they are set.
`
}

func (c *mirrorCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Path of the SQLite database (defaults to the snapshot path with a .db extension)")
	f.StringVar(&c.period.From, "from", "", "Only total expenses on or after this date (DD-MM-YYYY)")
	f.StringVar(&c.period.To, "to", "", "Only total expenses on or before this date (DD-MM-YYYY)")
}

func (c *mirrorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.period.Validate(); err != nil {
		return usage("%v", err)
	}
	from, to := 0, 99991231
	if c.period.From != "" {
		from, _ = spend.DateKey(c.period.From)
	}
	if c.period.To != "" {
		to, _ = spend.DateKey(c.period.To)
	}

	output := c.output
	if output == "" {
		output = strings.TrimSuffix(config.DBFile, filepath.Ext(config.DBFile)) + ".db"
	}
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}

	db, err := sqlite.Open(output)
	if err != nil {
		return fail("%v", err)
	}
	defer db.Close()
	if err := db.Write(ctx, s); err != nil {
		return fail("%v", err)
	}

	// Everything reported below is read back from the database.
	mirrored, err := db.Expenses(ctx)
	if err != nil {
		return fail("%v", err)
	}
	totals, err := db.Totals(ctx, from, to)
	if err != nil {
		return fail("%v", err)
	}
	rows := make([]renderer.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, renderer.CategoryTotal{Category: t.Category, Amount: t.Amount, Count: t.Count})
	}

	fmt.Fprintf(stdout, "Mirrored %d expenses into %s.\n\n", len(mirrored), output)
	printMarkdown(renderer.RenderTotals(c.periodTitle(), rows, renderOptions()))
	return subcommands.ExitSuccess
}

// periodTitle describes the dates covered by the totals.
func (c *mirrorCmd) periodTitle() string {
	switch {
	case c.period.From != "" && c.period.To != "":
		return fmt.Sprintf("from %s to %s", c.period.From, c.period.To)
	case c.period.From != "":
		return "from " + c.period.From
	case c.period.To != "":
		return "until " + c.period.To
	}
	return "for all dates"
}
