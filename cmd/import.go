package cmd

import (
	"context"
	"flag"

	"github.com/etnz/spend"
	"github.com/etnz/spend/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// defaultImportFile is imported when no file is given.
const defaultImportFile = "data/sample_import.csv"

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "append expenses from a CSV file" }
func (*importCmd) Usage() string {
	return `spend import [<file>]

  Appends the expenses of a CSV file to the ledger, data/sample_import.csv
  by default. Malformed lines are skipped and reported. See
  'spend topic csv' for the format.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

// PredictArgs completes CSV files.
func (c *importCmd) PredictArgs(Config) complete.Predictor { return predict.Files("*.csv") }

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return usage("import accepts at most one file")
	}
	file := defaultImportFile
	if f.NArg() == 1 {
		file = f.Arg(0)
	}

	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	report, err := spend.LoadCSV(file, s)
	if err != nil {
		return fail("%v", err)
	}
	if err := saveStore(s); err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.RenderImport(file, report))
	return subcommands.ExitSuccess
}
