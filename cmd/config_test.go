package cmd

import (
	"errors"
	"flag"
	"log/slog"
	"testing"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv(EnvDBFile, "ledger.bin")
	t.Setenv(EnvCurrency, " usd ")
	t.Setenv(EnvVerbose, "true")

	c := DefaultConfig()
	if c.DBFile != "ledger.bin" {
		t.Errorf("DBFile = %q, want %q", c.DBFile, "ledger.bin")
	}
	if c.Currency != "USD" {
		t.Errorf("Currency = %q, want %q", c.Currency, "USD")
	}
	if c.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", c.Level())
	}
	if c.ExportFile != "data/export.csv" {
		t.Errorf("ExportFile = %q, want the default", c.ExportFile)
	}
}

func TestConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv(EnvDBFile, "env.bin")
	c := DefaultConfig()
	f := flag.NewFlagSet("spend", flag.ContinueOnError)
	c.RegisterFlags(f)
	if err := f.Parse([]string{"-db", "flag.bin", "-raw"}); err != nil {
		t.Fatal(err)
	}
	if c.DBFile != "flag.bin" || !c.Raw {
		t.Errorf("flags not applied: %+v", c)
	}
}

func TestConfigValidate(t *testing.T) {
	c := Config{Currency: "NOPE", LogLevel: "loud"}
	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want every problem")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 4 {
		t.Errorf("Validate() = %v, want 4 problems", err)
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
