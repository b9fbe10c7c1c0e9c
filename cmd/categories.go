package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/spend/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the registered categories" }
func (*categoriesCmd) Usage() string {
	return `spend categories

  Lists the registered categories in registration order.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.RenderCategories(s.Categories()))
	return subcommands.ExitSuccess
}

type addCategoryCmd struct{}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "register a new category" }
func (*addCategoryCmd) Usage() string {
	return `spend add-category <name>

  Registers a category. Names are case sensitive and at most 31 bytes
  long, longer names are truncated. Registering an existing name does
  nothing.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage("add-category requires exactly one name")
	}
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	if err := s.AddCategory(f.Arg(0)); err != nil {
		return fail("%v", err)
	}
	if err := saveStore(s); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Category %q registered.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type rmCategoryCmd struct{}

func (*rmCategoryCmd) Name() string     { return "rm-category" }
func (*rmCategoryCmd) Synopsis() string { return "unregister an unused category" }
func (*rmCategoryCmd) Usage() string {
	return `spend rm-category <name>

  Unregisters a category. A category used by an expense cannot be
  removed.
`
}

func (c *rmCategoryCmd) SetFlags(f *flag.FlagSet) {}

// PredictArgs completes registered categories.
func (c *rmCategoryCmd) PredictArgs(cfg Config) complete.Predictor {
	return predictCategories(cfg.DBFile)
}

func (c *rmCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage("rm-category requires exactly one name")
	}
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	if err := s.RemoveCategory(f.Arg(0)); err != nil {
		return fail("%v", err)
	}
	if err := saveStore(s); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Category %q removed.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type renameCategoryCmd struct{}

func (*renameCategoryCmd) Name() string     { return "rename-category" }
func (*renameCategoryCmd) Synopsis() string { return "rename a category and its expenses" }
func (*renameCategoryCmd) Usage() string {
	return `spend rename-category <old> <new>

  Renames a category, updating every expense using it. The new name
  must not be registered already.
`
}

func (c *renameCategoryCmd) SetFlags(f *flag.FlagSet) {}

// PredictArgs completes registered categories.
func (c *renameCategoryCmd) PredictArgs(cfg Config) complete.Predictor {
	return predictCategories(cfg.DBFile)
}

func (c *renameCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usage("rename-category requires the old and the new name")
	}
	s, err := openStore()
	if err != nil {
		return fail("%v", err)
	}
	if err := s.RenameCategory(f.Arg(0), f.Arg(1)); err != nil {
		return fail("%v", err)
	}
	if err := saveStore(s); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Category %q renamed to %q.\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}
