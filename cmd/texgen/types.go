// Package main provides the entry point for the texgen CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ojedal/texgen/internal/output"
	"github.com/ojedal/texgen/internal/project"
)

// typeRow is the JSON shape for one project type.
type typeRow struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Class    string `json:"class"`
	Template string `json:"template"`
}

// newTypesCmd creates the types command.
func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List available project types",
		Long: `List the available project types.

Each type maps to a LaTeX document class and a main template file:

  art   → Artículo (article)
  ens   → Ensayo (report)
  pres  → Presentación (beamer)

This command only prints; it never touches the filesystem.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTypes(cmd)
		},
	}
}

// runTypes executes the types command.
func runTypes(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
	types := project.Types()

	if printer.IsJSON() {
		rows := make([]typeRow, 0, len(types))
		for _, t := range types {
			rows = append(rows, typeRow{Code: t.Code, Name: t.Name, Class: t.Class, Template: t.TemplateFile})
		}
		return printer.WriteJSON(map[string]any{"types": rows})
	}

	headers := []string{"CODE", "NAME", "CLASS"}
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{t.Code, t.Name, t.Class})
	}
	printer.Table(headers, rows)
	printer.Println()
	printer.Print("Create a project with: %s\n",
		printer.Styles().Accent.Render(fmt.Sprintf("texgen new -n \"Título\" -t %s", types[0].Code)))
	return nil
}
