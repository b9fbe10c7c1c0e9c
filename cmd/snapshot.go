package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/spend"
	"github.com/google/subcommands"
)

type snapshotCmd struct {
	output string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "save a copy of the ledger into another snapshot" }
func (*snapshotCmd) Usage() string {
	return `spend snapshot -o <file>

  Writes the ledger into another binary snapshot, for instance as a
  backup. The snapshot is only readable on a machine with the same
  byte order.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Path of the snapshot to write")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		return usage("snapshot requires -o")
	}
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	if err := spend.SaveSnapshot(c.output, s); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Saved %d expenses to %s.\n", s.Len(), c.output)
	return subcommands.ExitSuccess
}

type restoreCmd struct {
	input string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the ledger with another snapshot" }
func (*restoreCmd) Usage() string {
	return `spend restore -i <file>

  Replaces the ledger with the content of another binary snapshot. The
  ledger is left unchanged if the snapshot cannot be read.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Path of the snapshot to read")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		return usage("restore requires -i")
	}
	s := spend.NewStore()
	if err := spend.LoadSnapshot(c.input, s); err != nil {
		return fail("%v", err)
	}
	if err := saveStore(s); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Restored %d expenses from %s.\n", s.Len(), c.input)
	return subcommands.ExitSuccess
}
