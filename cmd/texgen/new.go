// Package main provides the entry point for the texgen CLI.
package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ojedal/texgen/internal/config"
	"github.com/ojedal/texgen/internal/output"
	"github.com/ojedal/texgen/internal/project"
	"github.com/ojedal/texgen/internal/templates"
)

// newFlags holds the command-line flags for the new command.
type newFlags struct {
	title        string
	typeCode     string
	author       string
	dir          string
	templatesDir string

	// Spanish aliases from the predecessor script, applied when the
	// primary flag is unset.
	nombre     string
	tipo       string
	autor      string
	directorio string
}

// applyAliases fills primary flags from their deprecated aliases.
func (f *newFlags) applyAliases() {
	if f.title == "" {
		f.title = f.nombre
	}
	if f.typeCode == "" {
		f.typeCode = f.tipo
	}
	if f.author == "" {
		f.author = f.autor
	}
	if f.dir == "" || f.dir == "." {
		if f.directorio != "" {
			f.dir = f.directorio
		}
	}
}

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a LaTeX project from a template",
		Long: `Create a LaTeX project from a template.

The title is used verbatim inside the document and slugified for the
directory and file names ("Análisis de Redes" → analisis-de-redes/).
The target directory must not exist; texgen never overwrites.

Examples:
  texgen new -n "Análisis de datos" -t art
  texgen new -n "Ética en IA" -t ens -a "María López"
  texgen new -n "Avances en ML" -t pres -d ~/docs
  texgen new -n "Informe" -t art --templates-dir ./plantillas`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNew(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.title, "title", "n", "", "Project title (required)")
	cmd.Flags().StringVarP(&flags.typeCode, "type", "t", "", "Project type: art, ens or pres (required)")
	cmd.Flags().StringVarP(&flags.author, "author", "a", "", "Document author (default: configured author)")
	cmd.Flags().StringVarP(&flags.dir, "dir", "d", ".", "Base directory to create the project under")
	cmd.Flags().StringVar(&flags.templatesDir, "templates-dir", "", "Template directory (overrides config and $LATEX_TEMPLATES_DIR)")

	// Aliases kept for users of the predecessor script.
	cmd.Flags().StringVar(&flags.nombre, "nombre", "", "Alias for --title (deprecated)")
	cmd.Flags().StringVar(&flags.tipo, "tipo", "", "Alias for --type (deprecated)")
	cmd.Flags().StringVar(&flags.autor, "autor", "", "Alias for --author (deprecated)")
	cmd.Flags().StringVar(&flags.directorio, "directorio", "", "Alias for --dir (deprecated)")
	for _, alias := range []string{"nombre", "tipo", "autor", "directorio"} {
		_ = cmd.Flags().MarkHidden(alias)
	}

	return cmd
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, flags *newFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	flags.applyAliases()
	for _, missing := range []struct{ value, flag string }{
		{flags.title, "--title"},
		{flags.typeCode, "--type"},
	} {
		if missing.value == "" {
			exitErr := output.NewUserError("missing required flag: " + missing.flag)
			printer.Error(exitErr)
			return exitErr
		}
	}

	cfg, err := config.Load()
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	author := project.ResolveAuthor(flags.author, cfg.Author)
	if flags.dir == "" {
		flags.dir = "."
	}

	req, err := project.NewRequest(flags.title, flags.typeCode, author, flags.dir, time.Now())
	if err != nil {
		return reportScaffoldError(printer, err)
	}

	opts := templateOptions(cfg, flags.templatesDir)
	set, err := templates.Resolve(opts, req.Type.TemplateFile, req.Slug)
	if err != nil {
		return reportScaffoldError(printer, err)
	}

	result, err := project.Write(req, set)
	if err != nil {
		return reportScaffoldError(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": "ok",
			"title":  req.Title,
			"type":   req.Type.Code,
			"author": req.Author,
			"slug":   req.Slug,
			"dir":    result.Dir,
			"files":  result.Files,
		})
	}

	printNewSummary(printer, req, result)
	return nil
}

// templateOptions combines the --templates-dir flag with the loaded
// config. Any user-supplied directory is authoritative (no built-in
// fallback for files it lacks).
func templateOptions(cfg config.Config, flagDir string) templates.Options {
	dir := flagDir
	if dir == "" {
		dir = cfg.TemplatesDir
	}
	return templates.Options{Dir: dir, Explicit: dir != ""}
}

// reportScaffoldError maps pipeline errors onto the exit-code taxonomy,
// prints them, and returns the coded error for the process exit status.
func reportScaffoldError(printer *output.Printer, err error) error {
	var exitErr *output.ExitError
	switch {
	case errors.Is(err, project.ErrDestinationExists):
		exitErr = output.NewConflictError(err.Error() + " (choose another title or remove the directory)")
	case errors.Is(err, project.ErrUnknownType),
		errors.Is(err, project.ErrInvalidTitle),
		errors.Is(err, templates.ErrTemplateNotFound):
		exitErr = output.NewUserError(err.Error())
	default:
		exitErr = output.NewSystemErrorWithCause(err.Error(), err)
	}
	printer.Error(exitErr)
	return exitErr
}

// printNewSummary renders the human-readable success report.
func printNewSummary(printer *output.Printer, req *project.Request, result *project.Result) {
	styles := printer.Styles()

	printer.Println()
	printer.Println(styles.Success.Render("✓ Project created"))
	printer.Println()
	printer.KeyValue("Type", fmt.Sprintf("%s (%s)", req.Type.Name, req.Type.Class))
	printer.KeyValue("Title", req.Title)
	printer.KeyValue("Author", req.Author)
	printer.KeyValue("Directory", result.Dir+"/")

	printer.Section("Files")
	for _, f := range result.Files {
		printer.Println("  " + f)
	}
	printer.Println("  " + project.FiguresDir + "/")

	next := strings.Join([]string{
		"cd " + result.Dir,
		"make        # full build (pdflatex + biber)",
		"make quick  # pdflatex only, no bibliography",
		"make watch  # continuous build (requires latexmk)",
	}, "\n")
	printer.Println()
	printer.Box("Next steps", next)
}
