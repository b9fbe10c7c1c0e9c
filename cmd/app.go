// Package cmd implements the CLI application to manage an expense ledger.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/spend"
	"github.com/etnz/spend/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "expenses")
	c.Register(&rmCmd{}, "expenses")
	c.Register(&lsCmd{}, "expenses")
	c.Register(&groupedCmd{}, "expenses")
	c.Register(&monthlyCmd{}, "expenses")
	c.Register(&queryCmd{}, "expenses")

	c.Register(&categoriesCmd{}, "categories")
	c.Register(&addCategoryCmd{}, "categories")
	c.Register(&rmCategoryCmd{}, "categories")
	c.Register(&renameCategoryCmd{}, "categories")

	c.Register(&snapshotCmd{}, "files")
	c.Register(&restoreCmd{}, "files")
	c.Register(&exportCmd{}, "files")
	c.Register(&importCmd{}, "files")
	c.Register(&mirrorCmd{}, "files")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// config is the configuration of the running command, see Setup.
var config = DefaultConfig()

// stdout receives the user facing output of the commands.
var stdout io.Writer = os.Stdout

// openStore loads the ledger from the configured snapshot.
// A missing snapshot is an empty ledger.
func openStore() (*spend.Store, error) {
	s := spend.NewStore()
	err := spend.LoadSnapshot(config.DBFile, s)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ledger does not exist, starting with an empty one", "file", config.DBFile)
		return spend.NewStore(), nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// saveStore writes the ledger back into the configured snapshot.
func saveStore(s *spend.Store) error {
	return spend.SaveSnapshot(config.DBFile, s)
}

// renderOptions returns the report options from the configuration.
func renderOptions() renderer.Options {
	return renderer.Options{Currency: config.Currency}
}

// printMarkdown prints md to stdout, formatted for the terminal unless the raw output is configured.
func printMarkdown(md string) {
	if config.Raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		slog.Debug("cannot create the markdown renderer", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Debug("cannot render markdown", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// fail prints an error on stderr and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// usage prints a usage error on stderr and returns the usage error status.
func usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}
