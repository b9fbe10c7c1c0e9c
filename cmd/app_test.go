package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/spend"
	"github.com/google/subcommands"
)

// useTempConfig points the configuration to a temporary folder for the test.
func useTempConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	old := config
	config = Config{
		DBFile:     filepath.Join(tmp, "data", "expenses.bin"),
		ExportFile: filepath.Join(tmp, "data", "export.csv"),
		Raw:        true,
		LogLevel:   "info",
	}
	t.Cleanup(func() { config = old })
	return tmp
}

// run executes c with args and returns its status and output.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse %v: %v", args, err)
	}

	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	status := c.Execute(context.Background(), f)
	return status, out.String()
}

// mustRun executes c and fails the test if it does not succeed.
func mustRun(t *testing.T, c subcommands.Command, args ...string) string {
	t.Helper()
	status, out := run(t, c, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("%s %v = %v, want success; output:\n%s", c.Name(), args, status, out)
	}
	return out
}

// loadStore reads the ledger written by the commands.
func loadStore(t *testing.T) *spend.Store {
	t.Helper()
	s := spend.NewStore()
	if err := spend.LoadSnapshot(config.DBFile, s); err != nil {
		t.Fatalf("cannot load the ledger: %v", err)
	}
	return s
}

func TestOpenStoreMissingFile(t *testing.T) {
	useTempConfig(t)
	s, err := openStore()
	if err != nil {
		t.Fatalf("openStore() error: %v", err)
	}
	if s.Len() != 0 || s.NextID() != 1 {
		t.Errorf("openStore() on a missing file has %d expenses and next id %d", s.Len(), s.NextID())
	}
}

func TestRegister(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("spend", flag.ContinueOnError), "spend")
	Register(commander)

	names := map[string]bool{}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if names[c.Name()] {
			t.Errorf("command %q registered twice", c.Name())
		}
		names[c.Name()] = true
	})
	for _, want := range []string{"add", "rm", "ls", "grouped", "monthly", "query", "categories",
		"add-category", "rm-category", "rename-category", "snapshot", "restore", "export", "import", "mirror", "topic"} {
		if !names[want] {
			t.Errorf("command %q is not registered", want)
		}
	}
}
