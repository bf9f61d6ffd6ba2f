// Package parquet provides data structures and functions for exporting
// contribution statistics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/repochurn/schema"
	"github.com/parquet-go/parquet-go"
)

// ContributionRow is one contributor of one repository.
type ContributionRow struct {
	// Owner is the repository owner derived from its URL
	Owner string `parquet:"owner,snappy"`

	// Repo is the repository name
	Repo string `parquet:"repo,snappy"`

	// URL is the repository URL as supplied by the caller
	URL string `parquet:"url,snappy"`

	// Rank is the 1-based position of the contributor within the repository
	Rank int32 `parquet:"rank,snappy"`

	// Login is the canonical contributor name
	Login string `parquet:"login,snappy"`

	// Stats is the number of added plus deleted lines
	Stats int64 `parquet:"stats,snappy"`

	// Share is the contributor's percentage of the repository churn
	Share float64 `parquet:"share,snappy"`

	// MinedAt is when the batch finished (stored as TIMESTAMP with nanosecond precision)
	MinedAt time.Time `parquet:"mined_at,snappy"`
}

// WriteContributionsParquet writes rows to a Parquet file at outputPath.
func WriteContributionsParquet(rows []ContributionRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return writeRows(file, rows)
}

// writeRows encodes rows into out and closes it. A failed close is reported
// since the file footer may not have reached disk.
func writeRows(out io.WriteCloser, rows []ContributionRow) (err error) {
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close parquet file: %w", closeErr)
		}
	}()

	// The schema is derived from the ContributionRow struct tags
	writer := parquet.NewGenericWriter[ContributionRow](out)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertDescriptors flattens mined descriptors into one row per contributor.
// Descriptors without contribution data produce no rows.
func ConvertDescriptors(repos []schema.RepoDescriptor, minedAt time.Time) []ContributionRow {
	var rows []ContributionRow
	for _, repo := range repos {
		total := repo.TotalStats()
		owner := repo.Owner
		if owner == "" {
			owner = schema.OwnerFromURL(repo.URL)
		}
		for i, c := range repo.ContributionData {
			rows = append(rows, ContributionRow{
				Owner:   owner,
				Repo:    repo.Name,
				URL:     repo.URL,
				Rank:    int32(i + 1),
				Login:   c.Login,
				Stats:   int64(c.Stats),
				Share:   schema.SharePercent(c.Stats, total),
				MinedAt: minedAt,
			})
		}
	}
	return rows
}
