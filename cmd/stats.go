package cmd

import (
	"github.com/huangsam/repochurn/core"
	"github.com/huangsam/repochurn/internal/contract"
	"github.com/huangsam/repochurn/internal/outwriter"
	"github.com/spf13/cobra"
)

// statsCmd mines contribution statistics for one or more repositories.
var statsCmd = &cobra.Command{
	Use:   "stats [owner/repo | url | path ...]",
	Short: "Show the contributors of each repository ranked by line churn.",
	Long: `Clone each repository without file contents, walk the non-merge history of its
default branch and credit every added or deleted line to the commit author and
any Co-authored-by trailers. Identities sharing an email are merged.

Repositories fail independently: a repository that cannot be cloned or has no
history is reported with no contributors while the rest are still mined.

Examples:
  # Mine two GitHub repositories
  repochurn stats octo/hello octo/world

  # Read a list of {"url", "name"} objects and write JSON
  repochurn stats --input repos.json --output json

  # Split co-authored commits evenly and export to Parquet
  repochurn stats octo/hello --credit split --output parquet --output-file churn.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContributionStats(rootCtx, cfg, newGitClient(), outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot mine contribution stats", err)
		}
	},
}
