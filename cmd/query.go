package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "select parts of the ledger with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `spend query <jsonpath>

  Evaluates a JSONPath expression on the JSON form of the ledger and
  prints the result as JSON. The ledger is an object with "nextId",
  "categories" and "expenses", each expense having "id", "date",
  "amount", "category" and "description". For instance:

    spend query '$.expenses[?(@.category == "Food")].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage("query requires exactly one JSONPath expression")
	}
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fail("cannot encode the ledger: %v", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fail("cannot decode the ledger: %v", err)
	}

	result, err := jsonpath.Get(f.Arg(0), v)
	if err != nil {
		return fail("invalid query %q: %v", f.Arg(0), err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fail("cannot encode the result: %v", err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
