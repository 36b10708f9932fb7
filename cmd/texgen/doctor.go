// Package main provides the entry point for the texgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ojedal/texgen/internal/config"
	"github.com/ojedal/texgen/internal/output"
	"github.com/ojedal/texgen/internal/templates"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results.
type doctorResult struct {
	Version string        `json:"version"`
	Checks  []checkResult `json:"checks"`
	Summary doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	quiet bool
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check template and configuration health",
		Long: `Check template and configuration health.

Verifies the configuration file, the default author, and the template
directory: whether each template file is provided there or will come
from the built-in set.

Each check reports:
  Pass    - Check passed
  Warning - Works, but worth knowing (e.g. built-in fallback in use)
  Fail    - Needs attention before 'texgen new' will work

Examples:
  texgen doctor           # Run all health checks
  texgen doctor --quiet   # Only show failures and warnings
  texgen doctor --json    # Output results as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, flags *doctorFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	result := gatherDoctorChecks()

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		printDoctorHuman(printer, result, flags.quiet)
	}

	if result.Summary.Failed > 0 {
		return output.NewUserError(fmt.Sprintf("%d check(s) failed", result.Summary.Failed))
	}
	return nil
}

// gatherDoctorChecks runs every health check.
func gatherDoctorChecks() doctorResult {
	result := doctorResult{Version: buildVersion()}

	result.Checks = append(result.Checks, checkConfig())
	result.Checks = append(result.Checks, checkAuthor())
	result.Checks = append(result.Checks, checkTemplateDir()...)

	for _, c := range result.Checks {
		switch c.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}
	return result
}

// checkConfig verifies that the config file, if present, parses.
func checkConfig() checkResult {
	if _, err := config.Load(); err != nil {
		return checkResult{
			Name:    "config",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "fix or remove the config file",
		}
	}
	return checkResult{
		Name:    "config",
		Status:  checkPass,
		Message: "configuration loads cleanly",
	}
}

// checkAuthor reports whether a default author is configured anywhere.
func checkAuthor() checkResult {
	cfg, err := config.Load()
	if err == nil && cfg.Author != "" {
		return checkResult{
			Name:    "author",
			Status:  checkPass,
			Message: fmt.Sprintf("default author: %s", cfg.Author),
		}
	}
	return checkResult{
		Name:    "author",
		Status:  checkWarn,
		Message: fmt.Sprintf("no default author; documents will say %q", config.DefaultAuthor),
		Hint:    "set $" + config.EnvAuthor + " or author: in config.yaml, or pass --author",
	}
}

// checkTemplateDir reports on the template directory and each template file.
func checkTemplateDir() []checkResult {
	cfg, _ := config.Load()

	dir := cfg.TemplatesDir
	explicit := dir != ""
	if dir == "" {
		dir = templates.DefaultDir()
	}

	var checks []checkResult

	info, statErr := os.Stat(dir)
	switch {
	case statErr == nil && info.IsDir():
		checks = append(checks, checkResult{
			Name:    "templates_dir",
			Status:  checkPass,
			Message: dir,
		})
	case explicit:
		// A configured directory that doesn't exist will fail every new.
		return append(checks, checkResult{
			Name:    "templates_dir",
			Status:  checkFail,
			Message: fmt.Sprintf("configured template directory not found: %s", dir),
			Hint:    "create it or unset $" + config.EnvTemplatesDir,
		})
	default:
		checks = append(checks, checkResult{
			Name:    "templates_dir",
			Status:  checkWarn,
			Message: fmt.Sprintf("%s not found; using built-in templates", dir),
			Hint:    "create the directory and drop template files there to customize",
		})
	}

	for _, c := range templates.Verify(dir) {
		switch {
		case c.Present:
			checks = append(checks, checkResult{
				Name:    "template:" + c.Name,
				Status:  checkPass,
				Message: "provided by " + dir,
			})
		case explicit:
			checks = append(checks, checkResult{
				Name:    "template:" + c.Name,
				Status:  checkFail,
				Message: "missing from configured directory",
				Hint:    "add " + c.Name + " to " + dir,
			})
		default:
			checks = append(checks, checkResult{
				Name:    "template:" + c.Name,
				Status:  checkWarn,
				Message: "using built-in",
			})
		}
	}
	return checks
}

// printDoctorHuman renders check results for the terminal.
func printDoctorHuman(printer *output.Printer, result doctorResult, quiet bool) {
	styles := printer.Styles()

	printer.Section("Health checks")
	for _, c := range result.Checks {
		if quiet && c.Status == checkPass {
			continue
		}
		var mark string
		switch c.Status {
		case checkPass:
			mark = styles.Success.Render("✓")
		case checkWarn:
			mark = styles.Warning.Render("!")
		case checkFail:
			mark = styles.Error.Render("✗")
		}
		printer.Print("%s %s — %s\n", mark, styles.Bold.Render(c.Name), c.Message)
		if c.Hint != "" && c.Status != checkPass {
			printer.Print("    %s\n", styles.Dim.Render(c.Hint))
		}
	}

	printer.Println()
	printer.Print("%d passed, %d warnings, %d failed\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Failed)
}
