package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/huangsam/repochurn/internal/contract"
	"github.com/huangsam/repochurn/internal/parquet"
	"github.com/huangsam/repochurn/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteContributionResults outputs the mined results, dispatching based on the output format configured.
func WriteContributionResults(results []schema.RepoDescriptor, summary schema.BatchSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResults(w, results)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResults(w, results)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := parquet.ConvertDescriptors(results, time.Now())
		if err := parquet.WriteContributionsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		contract.Log().WithField("file", cfg.OutputFile).WithField("rows", len(rows)).Info("Wrote Parquet")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContributionTable(w, results, summary, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeJSONResults writes the descriptor list as is. Skipped descriptors keep
// a null contribution_data.
func writeJSONResults(w io.Writer, results []schema.RepoDescriptor) error {
	if results == nil {
		results = []schema.RepoDescriptor{}
	}
	return writeJSON(w, results)
}

// writeCSVResults writes one record per contributor.
func writeCSVResults(w io.Writer, results []schema.RepoDescriptor) error {
	header := []string{"owner", "name", "login", "stats"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, repo := range results {
			owner := repo.Owner
			if owner == "" {
				owner = schema.OwnerFromURL(repo.URL)
			}
			for _, c := range repo.ContributionData {
				rec := []string{owner, repo.Name, c.Login, strconv.FormatUint(uint64(c.Stats), 10)}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeContributionTable generates and writes the human-readable table.
func writeContributionTable(w io.Writer, results []schema.RepoDescriptor, summary schema.BatchSummary, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Repo", "Rank", "Contributor", "Churn", "Share", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, repo := range results {
		if len(repo.ContributionData) == 0 {
			continue
		}
		total := repo.TotalStats()
		repoName := contract.TruncatePath(repo.FullName(), nameWidth)
		for i, c := range repo.ContributionData {
			if i >= cfg.Limit {
				break
			}
			share := schema.SharePercent(c.Stats, total)
			data = append(data, []string{
				repoName,
				strconv.Itoa(i + 1),
				fitLogin(c.Login, nameWidth),
				strconv.FormatUint(uint64(c.Stats), 10),
				fmt.Sprintf("%.1f%%", share),
				shareLabel(share, cfg.UseColors),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Mined %d of %d repositories (empty: %d, failed: %d, skipped: %d, total churn: %d)\n",
		summary.Succeeded, summary.Total, summary.Empty, summary.Failed, summary.Skipped, summary.TotalChurn); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Mining completed in %v with %d workers.\n", duration.Round(time.Millisecond), cfg.Workers); err != nil {
		return err
	}
	return nil
}

// fitLogin shortens a login to at most width runes, abbreviating the last
// name before falling back to truncation.
func fitLogin(login string, width int) string {
	if utf8.RuneCountInString(login) > width {
		login = schema.AbbreviateLogin(login)
	}
	return contract.TruncatePath(login, width)
}

// shareLabel returns the label for a share, colored when enabled.
func shareLabel(share float64, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(share)
	}
	return contract.GetPlainLabel(share)
}
