package core

import (
	"context"

	"github.com/huangsam/repochurn/internal/contract"
)

// mineCommitLog clones cloneURL into the empty workDir and returns the
// contribution log of the default branch. A nil log with a nil error means the
// repository has no data: the ref could not be resolved or has no commits.
//
// Clone and fetch failures do not stop mining since a partial clone may still
// hold a usable history. When the ref then cannot be resolved, the clone error
// is returned instead.
func mineCommitLog(ctx context.Context, client contract.GitClient, cloneURL, workDir string) ([]byte, error) {
	log := taskLogger(ctx)
	repo := contract.RedactURL(cloneURL)

	cloneErr := client.Clone(ctx, cloneURL, workDir)
	if cloneErr != nil {
		log.WithField("step", "clone").WithError(cloneErr).Warn("clone failed, continuing")
	}

	if err := client.FetchAll(ctx, workDir); err != nil {
		log.WithField("step", "fetch").WithError(err).Warn("fetch failed, continuing")
	}

	ref := resolveDefaultRef(ctx, client, workDir)
	if ref == "" {
		if cloneErr != nil {
			return nil, contract.NewMiningError(repo, "clone", cloneErr)
		}
		return nil, nil
	}

	if _, err := client.RevList(ctx, workDir, ref); err != nil {
		log.WithField("step", "rev-list").WithError(err).Debug("ref has no commits")
		return nil, nil
	}

	out, err := client.GetContributionLog(ctx, workDir, ref)
	if err != nil {
		return nil, contract.NewMiningError(repo, "log", err)
	}
	log.WithField("ref", ref).WithField("bytes", len(out)).Debug("contribution log read")
	return out, nil
}
