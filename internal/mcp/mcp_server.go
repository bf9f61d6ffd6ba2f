// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/repochurn/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the repochurn MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Repochurn Contribution Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_contribution_stats ---
	s.AddTool(mcp.NewTool("get_contribution_stats",
		mcp.WithDescription("Mine git history of one or more repositories and attribute added plus deleted lines to each contributor."),
		mcp.WithString("repos", mcp.Description("Comma-separated repositories as owner/repo, clone URLs or local paths."), mcp.Required()),
		mcp.WithString("credit", mcp.Description("How co-authored commits are credited. Defaults to 'full'."), mcp.Enum("full", "split")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of contributors returned per repository.")),
	), h.handleGetContributionStats)

	return s
}

// StartMCPServer starts the repochurn MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
