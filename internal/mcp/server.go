// Package mcp provides a Model Context Protocol server for texgen.
// It exposes project scaffolding as MCP tools that any MCP-capable agent
// can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ojedal/texgen/internal/config"
)

// NewServer creates an MCP server with the texgen tools registered.
func NewServer(version string, cfg config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "texgen",
		Version: version,
	}, nil)
	registerTools(server, cfg)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, never
// overwrites existing directories).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds the texgen tools to the server.
func registerTools(server *mcp.Server, cfg config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_types",
		Description: "List the available LaTeX project types: code, display name and document class.",
		Annotations: readOnlyAnnotations(),
	}, handleListTypes())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_project",
		Description: "Scaffold a LaTeX project from templates: creates <dir>/<slug>/ with the main .tex file, referencias.bib, Makefile, figuras/ and .gitignore. Fails if the directory already exists.",
		Annotations: writeAnnotations(),
	}, handleCreateProject(cfg))
}
