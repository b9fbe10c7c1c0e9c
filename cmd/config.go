package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/lmittmann/tint"
)

// Environment variables read by DefaultConfig and passed to extensions.
const (
	EnvDBFile     = "SPEND_DB_FILE"
	EnvExportFile = "SPEND_EXPORT_FILE"
	EnvCurrency   = "SPEND_CURRENCY"
	EnvVerbose    = "SPEND_VERBOSE"
	EnvRaw        = "SPEND_RAW"
	EnvLogLevel   = "LOG_LEVEL"
)

// Config holds the global settings of the application.
type Config struct {
	DBFile     string // binary snapshot of the ledger
	ExportFile string // default CSV export file
	Currency   string // ISO 4217 code to display amounts, none if empty
	Verbose    bool   // debug logs
	Raw        bool   // print markdown as is
	LogLevel   string // debug, info, warn or error
}

// DefaultConfig returns the configuration from the environment, with defaults for unset variables.
func DefaultConfig() Config {
	c := Config{
		DBFile:     "data/expenses.bin",
		ExportFile: "data/export.csv",
		Currency:   "EUR",
		LogLevel:   "info",
	}
	if v, ok := os.LookupEnv(EnvDBFile); ok {
		c.DBFile = v
	}
	if v, ok := os.LookupEnv(EnvExportFile); ok {
		c.ExportFile = v
	}
	if v, ok := os.LookupEnv(EnvCurrency); ok {
		c.Currency = strings.ToUpper(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	c.Verbose = envBool(EnvVerbose)
	c.Raw = envBool(EnvRaw)
	return c
}

func envBool(name string) bool {
	b, _ := strconv.ParseBool(os.Getenv(name))
	return b
}

// RegisterFlags registers the global flags overriding c.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&c.DBFile, "db", c.DBFile, "Path to the ledger snapshot ($"+EnvDBFile+")")
	f.StringVar(&c.ExportFile, "export-file", c.ExportFile, "Default path of the CSV export ($"+EnvExportFile+")")
	f.StringVar(&c.Currency, "currency", c.Currency, "Currency used to display amounts, empty for none ($"+EnvCurrency+")")
	f.BoolVar(&c.Verbose, "v", c.Verbose, "Enable debug logs ($"+EnvVerbose+")")
	f.BoolVar(&c.Raw, "raw", c.Raw, "Print raw markdown instead of formatting it for the terminal ($"+EnvRaw+")")
	f.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error ($"+EnvLogLevel+")")
}

// Validate reports every problem in c.
func (c Config) Validate() error {
	var errs []error
	if c.DBFile == "" {
		errs = append(errs, errors.New("ledger snapshot path is empty"))
	}
	if c.ExportFile == "" {
		errs = append(errs, errors.New("CSV export path is empty"))
	}
	if c.Currency != "" && money.GetCurrency(c.Currency) == nil {
		errs = append(errs, fmt.Errorf("unknown currency %q", c.Currency))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the log level, verbose meaning debug.
func (c Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Setup validates c, makes it the configuration of the commands and configures the logs.
func Setup(c Config) error {
	c.Currency = strings.ToUpper(c.Currency)
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	config = c
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      c.Level(),
			TimeFormat: time.Kitchen,
		}),
	))
	return nil
}
