package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/spend"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as CSV" }
func (*exportCmd) Usage() string {
	return `spend export [-o <file>]

  Writes every expense into a CSV file, the configured export file by
  default. See 'spend topic csv' for the format.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Path of the CSV file (defaults to -export-file)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	output := c.output
	if output == "" {
		output = config.ExportFile
	}
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	if err := spend.SaveCSV(output, s); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Exported %d expenses to %s.\n", s.Len(), output)
	return subcommands.ExitSuccess
}
