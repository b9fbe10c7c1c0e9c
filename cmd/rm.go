package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete expenses by id" }
func (*rmCmd) Usage() string {
	return `spend rm <id>...

  Deletes the expenses with the given ids. Ids are never reused.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usage("rm requires at least one id")
	}
	ids := make([]int, 0, f.NArg())
	for _, arg := range f.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return usage("invalid id %q", arg)
		}
		ids = append(ids, id)
	}

	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}

	status := subcommands.ExitSuccess
	deleted := 0
	for _, id := range ids {
		if err := s.Delete(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		deleted++
	}
	if deleted > 0 {
		if err := saveStore(s); err != nil {
			return fail("%v", err)
		}
	}
	fmt.Fprintf(stdout, "Deleted %d expenses.\n", deleted)
	return status
}
