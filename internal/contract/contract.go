// Package contract provides interfaces and shared utilities for repochurn's internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/repochurn/schema"
)

// GitClient defines the git operations needed to mine a repository's history.
// This allows the mining logic to be tested without needing a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns its stdout.
	// An empty repoPath runs git without -C.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Transfer ---

	// Clone performs a blob-less, checkout-less clone of url into dir.
	Clone(ctx context.Context, url, dir string) error

	// FetchAll fetches every branch of origin with the same blob filter.
	FetchAll(ctx context.Context, repoPath string) error

	// --- Reference Resolution ---

	// SymbolicRef returns the short name a symbolic ref points to (e.g. origin/main).
	SymbolicRef(ctx context.Context, repoPath, ref string) (string, error)

	// SetRemoteHead asks the remote for its HEAD and records it locally.
	SetRemoteHead(ctx context.Context, repoPath, remote string) error

	// LsRemoteSymref returns the raw output of 'git ls-remote --symref <remote> HEAD'.
	LsRemoteSymref(ctx context.Context, repoPath, remote string) ([]byte, error)

	// ShowRef verifies that a fully qualified ref exists.
	ShowRef(ctx context.Context, repoPath, ref string) error

	// RevList returns the newest commit hash reachable from ref.
	RevList(ctx context.Context, repoPath, ref string) (string, error)

	// --- Activity Logs ---

	// GetContributionLog returns the non-merge commit log of ref with one
	// "Name <email>" header per commit, co-author trailers, and numstat lines.
	GetContributionLog(ctx context.Context, repoPath, ref string) ([]byte, error)
}

// ResultWriter renders the outcome of a mining batch.
type ResultWriter interface {
	WriteContributions(results []schema.RepoDescriptor, summary schema.BatchSummary, cfg *Config, duration time.Duration) error
}
