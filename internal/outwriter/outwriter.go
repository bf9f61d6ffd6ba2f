// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/repochurn/internal/contract"
	"github.com/huangsam/repochurn/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.ResultWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteContributions prints mined contribution statistics using the configured output format.
func (ow *OutWriter) WriteContributions(results []schema.RepoDescriptor, summary schema.BatchSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteContributionResults(results, summary, cfg, duration)
}
