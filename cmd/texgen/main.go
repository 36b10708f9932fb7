// Package main provides the entry point for the texgen CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ojedal/texgen/internal/config"
	"github.com/ojedal/texgen/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the effective color setting from the --color flag
// and TTY detection on the command's output.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the texgen CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texgen",
		Short: "Scaffold LaTeX projects from templates",
		Long: `Texgen - scaffold LaTeX document projects from predefined templates.

Given a title and a project type, texgen creates a ready-to-compile
project directory:

  <slug>/            directory named after the slugified title
    <slug>.tex       main document with title/author/date filled in
    referencias.bib  bibliography
    Makefile         all/quick/clean/purge/watch build targets
    figuras/         directory for images
    .gitignore       LaTeX build artifacts

Templates resolve from $LATEX_TEMPLATES_DIR (or ~/.latex-templates),
falling back to the built-in set shipped with the binary. The default
author comes from $LATEX_AUTOR or the config file.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'texgen --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) so LATEX_AUTOR and friends can live in
	// per-directory files. Environment variables always take precedence.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newTypesCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-directory override, gitignored)
//  2. $CWD/.env         (per-directory)
//  3. ~/.config/texgen/env (global fallback)
func loadEnvFiles() {
	_ = config.LoadEnvFile(".env.local")
	_ = config.LoadEnvFile(".env")

	if dir := config.Dir(); dir != "" {
		_ = config.LoadEnvFile(filepath.Join(dir, "env"))
	}
}
