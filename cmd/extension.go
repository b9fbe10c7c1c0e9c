package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// ExtensionPrefix starts the name of the external binaries extending spend.
const ExtensionPrefix = "spend-"

// RunExtension attempts to find and execute an external spend-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The extension receives the global configuration as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("external command not found in PATH", "command", name, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvDBFile+"="+config.DBFile,
		EnvExportFile+"="+config.ExportFile,
		EnvCurrency+"="+config.Currency,
		EnvVerbose+"="+strconv.FormatBool(config.Verbose),
		EnvRaw+"="+strconv.FormatBool(config.Raw),
		EnvLogLevel+"="+config.LogLevel,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
