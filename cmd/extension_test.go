package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// installExtension writes an executable shell script named spend-<name> in a PATH directory.
func installExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in tests")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, ExtensionPrefix+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("cannot write extension: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestExtensionMechanism(t *testing.T) {
	useTempConfig(t)
	config.Currency = "XYZ"
	config.Verbose = true
	config.LogLevel = "debug"
	installExtension(t, "hello", `echo "db=$SPEND_DB_FILE"
echo "currency=$SPEND_CURRENCY"
echo "verbose=$SPEND_VERBOSE"
echo "level=$LOG_LEVEL"
echo "args=$*"
`)

	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d, want true, 0", found, code)
	}

	for _, want := range []string{
		"db=" + config.DBFile,
		"currency=XYZ",
		"verbose=true",
		"level=debug",
		"args=a b",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("extension output does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestExtensionExitCode(t *testing.T) {
	useTempConfig(t)
	installExtension(t, "fail", "exit 3\n")

	found, code := RunExtension("fail", nil)
	if !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d, want true, 3", found, code)
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Errorf("RunExtension() found a missing extension")
	}
}
