// Package main provides the entry point for the texgen CLI.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ojedal/texgen/internal/output"
)

func TestDoctorHealthyWithBuiltins(t *testing.T) {
	isolateConfig(t)
	// No template dir anywhere: everything falls back to built-ins,
	// which is warnings at worst, never a failure.
	t.Setenv("HOME", t.TempDir())

	out, err := executeCommand(t, "doctor", "--json")
	if err != nil {
		t.Fatalf("doctor failed: %v\nOutput: %s", err, out)
	}

	var result struct {
		Checks []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"checks"`
		Summary struct {
			Failed int `json:"failed"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, out)
	}

	if result.Summary.Failed != 0 {
		t.Errorf("failed = %d, want 0", result.Summary.Failed)
	}
	for _, c := range result.Checks {
		if c.Status == "fail" {
			t.Errorf("check %s failed unexpectedly", c.Name)
		}
	}
}

func TestDoctorFailsOnMissingExplicitDir(t *testing.T) {
	isolateConfig(t)
	t.Setenv("LATEX_TEMPLATES_DIR", filepath.Join(t.TempDir(), "no-such-dir"))

	_, err := executeCommand(t, "doctor", "--json")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestDoctorPassesOnCompleteExplicitDir(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	for _, name := range []string{
		"articulo.tex", "ensayo.tex", "presentacion.tex",
		"referencias.bib", "Makefile", "gitignore",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	t.Setenv("LATEX_TEMPLATES_DIR", dir)
	t.Setenv("LATEX_AUTOR", "Autor de Prueba")

	out, err := executeCommand(t, "doctor", "--json")
	if err != nil {
		t.Fatalf("doctor failed: %v\nOutput: %s", err, out)
	}

	var result struct {
		Summary struct {
			Passed   int `json:"passed"`
			Warnings int `json:"warnings"`
			Failed   int `json:"failed"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result.Summary.Failed != 0 || result.Summary.Warnings != 0 {
		t.Errorf("summary = %+v, want all passing", result.Summary)
	}
}

func TestDoctorHumanQuiet(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	for _, name := range []string{
		"articulo.tex", "ensayo.tex", "presentacion.tex",
		"referencias.bib", "Makefile", "gitignore",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	t.Setenv("LATEX_TEMPLATES_DIR", dir)
	t.Setenv("LATEX_AUTOR", "Autor de Prueba")

	out, err := executeCommand(t, "doctor", "--quiet")
	if err != nil {
		t.Fatalf("doctor failed: %v\nOutput: %s", err, out)
	}
	// All checks pass, so quiet mode shows only the summary line.
	if !strings.Contains(out, "passed") || strings.Contains(out, "template:articulo.tex") {
		t.Errorf("quiet output should hide passing checks:\n%s", out)
	}
}
