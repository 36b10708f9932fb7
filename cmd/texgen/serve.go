// Package main provides the entry point for the texgen CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/ojedal/texgen/internal/config"
	texgenmcp "github.com/ojedal/texgen/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run texgen as a Model Context Protocol (MCP) server over stdio.

This exposes project scaffolding as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI,
etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "texgen": {
        "command": "texgen",
        "args": ["serve"]
      }
    }
  }

Available tools: create_project, list_types`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			server := texgenmcp.NewServer(buildVersion(), cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
