// Package core has core logic for mining and attributing repository churn.
package core

import (
	"context"
	"time"

	"github.com/huangsam/repochurn/internal/contract"
)

// ExecuteContributionStats mines the configured repositories and hands the
// results to writer. It serves as the main entry point for the 'stats' command.
func ExecuteContributionStats(ctx context.Context, cfg *contract.Config, client contract.GitClient, writer contract.ResultWriter) error {
	start := time.Now()
	repos, err := BuildDescriptors(cfg.Repos, cfg.InputFile)
	if err != nil {
		return err
	}
	results, summary := FetchContributionStats(ctx, cfg, client, repos)
	return writer.WriteContributions(results, summary, cfg, time.Since(start))
}
