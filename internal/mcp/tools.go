package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ojedal/texgen/internal/config"
	"github.com/ojedal/texgen/internal/project"
	"github.com/ojedal/texgen/internal/templates"
)

// --- list_types tool ---

// ListTypesInput is the input for the list_types tool (no parameters).
type ListTypesInput struct{}

// TypeInfo describes one project type.
type TypeInfo struct {
	Code  string `json:"code"  jsonschema:"type code used by create_project"`
	Name  string `json:"name"  jsonschema:"display name"`
	Class string `json:"class" jsonschema:"LaTeX document class"`
}

// ListTypesOutput is the output for the list_types tool.
type ListTypesOutput struct {
	Types []TypeInfo `json:"types" jsonschema:"available project types"`
}

func handleListTypes() mcp.ToolHandlerFor[ListTypesInput, ListTypesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListTypesInput) (*mcp.CallToolResult, ListTypesOutput, error) {
		types := project.Types()
		out := ListTypesOutput{Types: make([]TypeInfo, 0, len(types))}
		for _, t := range types {
			out.Types = append(out.Types, TypeInfo{Code: t.Code, Name: t.Name, Class: t.Class})
		}
		return nil, out, nil
	}
}

// --- create_project tool ---

// CreateProjectInput is the input for the create_project tool.
type CreateProjectInput struct {
	Title  string `json:"title"            jsonschema:"project title, used verbatim as {{TITULO}} and slugified for the directory name"`
	Type   string `json:"type"             jsonschema:"project type code (art, ens or pres)"`
	Author string `json:"author,omitempty" jsonschema:"document author; defaults to the configured author"`
	Dir    string `json:"dir,omitempty"    jsonschema:"base directory to create the project under; defaults to the current directory"`
}

// CreateProjectOutput is the output for the create_project tool.
type CreateProjectOutput struct {
	Dir   string   `json:"dir"   jsonschema:"created project directory"`
	Slug  string   `json:"slug"  jsonschema:"filesystem slug derived from the title"`
	Files []string `json:"files" jsonschema:"files written inside the project directory"`
}

func handleCreateProject(cfg config.Config) mcp.ToolHandlerFor[CreateProjectInput, CreateProjectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in CreateProjectInput) (*mcp.CallToolResult, CreateProjectOutput, error) {
		author := project.ResolveAuthor(in.Author, cfg.Author)

		req, err := project.NewRequest(in.Title, in.Type, author, in.Dir, time.Now())
		if err != nil {
			return nil, CreateProjectOutput{}, err
		}

		set, err := templates.Resolve(templates.Options{
			Dir:      cfg.TemplatesDir,
			Explicit: cfg.TemplatesDir != "",
		}, req.Type.TemplateFile, req.Slug)
		if err != nil {
			return nil, CreateProjectOutput{}, err
		}

		res, err := project.Write(req, set)
		if err != nil {
			return nil, CreateProjectOutput{}, fmt.Errorf("creating project: %w", err)
		}

		return nil, CreateProjectOutput{
			Dir:   res.Dir,
			Slug:  req.Slug,
			Files: res.Files,
		}, nil
	}
}
