package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/repochurn/core"
	"github.com/huangsam/repochurn/internal/contract"
	"github.com/huangsam/repochurn/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleGetContributionStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	var repos []schema.RepoDescriptor
	for arg := range strings.SplitSeq(request.GetString("repos", ""), ",") {
		if arg = strings.TrimSpace(arg); arg != "" {
			repos = append(repos, core.DescriptorFromArg(arg))
		}
	}
	if len(repos) == 0 {
		return mcp.NewToolResultError("repos is required (e.g. 'owner/repo,owner/other')"), nil
	}

	if c := request.GetString("credit", ""); c != "" {
		credit := schema.CreditPolicy(strings.ToLower(c))
		if !schema.ValidCreditPolicies[credit] {
			return mcp.NewToolResultError(fmt.Sprintf("invalid credit policy '%s'. must be full, split", c)), nil
		}
		cfg.Credit = credit
	}

	limit := request.GetInt("limit", 0)
	if limit < 0 {
		return mcp.NewToolResultError("limit cannot be negative"), nil
	}

	results, summary := core.FetchContributionStats(ctx, cfg, h.client, repos)
	if limit > 0 {
		for i := range results {
			if len(results[i].ContributionData) > limit {
				results[i].ContributionData = results[i].ContributionData[:limit]
			}
		}
	}

	jsonData, err := json.MarshalIndent(struct {
		Repositories []schema.RepoDescriptor `json:"repositories"`
		Summary      schema.BatchSummary     `json:"summary"`
	}{results, summary}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
