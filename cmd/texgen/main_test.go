// Package main provides the entry point for the texgen CLI.
package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/ojedal/texgen/internal/output"
)

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// runInDir runs testFunc with the working directory set to dir.
func runInDir(t *testing.T, dir string, testFunc func()) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	defer func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Errorf("failed to restore dir: %v", err)
		}
	}()
	testFunc()
}

// isolateConfig points the config dir at a fresh temp dir and clears the
// template/author environment so tests don't read the host setup.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("TEXGEN_CONFIG_HOME", t.TempDir())
	t.Setenv("LATEX_AUTOR", "")
	t.Setenv("LATEX_TEMPLATES_DIR", "")
	os.Unsetenv("LATEX_AUTOR")
	os.Unsetenv("LATEX_TEMPLATES_DIR")
}

func TestRootShowsHelp(t *testing.T) {
	isolateConfig(t)
	out, err := executeCommand(t)
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}
	for _, want := range []string{"texgen", "new", "types", "doctor", "serve"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestRootJSONWithoutCommand(t *testing.T) {
	isolateConfig(t)
	_, err := executeCommand(t, "--json")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestBuildVersion(t *testing.T) {
	if got := buildVersion(); got != "dev" {
		t.Errorf("buildVersion() = %q, want %q for default build info", got, "dev")
	}
}
