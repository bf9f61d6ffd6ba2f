package core

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/repochurn/core/agg"
	"github.com/huangsam/repochurn/internal/contract"
	"github.com/huangsam/repochurn/schema"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// repoTask is one schedulable repository.
type repoTask struct {
	index    int
	id       string
	repo     schema.RepoDescriptor
	cloneURL string
}

// repoResult is what a worker reports back for one task.
type repoResult struct {
	index int
	stats []schema.ContributionStat
	err   error
}

// batchCounter guards the summary shared by all workers.
type batchCounter struct {
	mu      sync.Mutex
	summary schema.BatchSummary
}

func (b *batchCounter) record(stats []schema.ContributionStat, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case err != nil:
		b.summary.Failed++
	case len(stats) == 0:
		b.summary.Empty++
	default:
		b.summary.Succeeded++
		for _, s := range stats {
			b.summary.TotalChurn += s.Stats
		}
	}
}

// FetchContributionStats mines every schedulable repository concurrently and
// returns a copy of repos with ContributionData attached by position.
// Descriptors without an owner/name pair are skipped and keep a nil
// ContributionData. A failed repository gets an empty list; failures never
// cancel other repositories and are never returned.
func FetchContributionStats(ctx context.Context, cfg *contract.Config, client contract.GitClient, repos []schema.RepoDescriptor) ([]schema.RepoDescriptor, schema.BatchSummary) {
	start := time.Now()
	results := slices.Clone(repos)
	counter := &batchCounter{summary: schema.BatchSummary{Total: len(repos)}}

	tasks := planTasks(cfg, results, &counter.summary)
	counter.summary.Scheduled = len(tasks)
	if len(tasks) == 0 {
		return results, counter.summary
	}

	var limiter *rate.Limiter
	if cfg.CloneRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.CloneRate), 1)
	}

	workers := min(max(1, min(cfg.Workers, contract.MaxWorkers)), len(tasks))
	taskCh := make(chan repoTask, len(tasks))
	resultCh := make(chan repoResult, len(tasks))
	var wg sync.WaitGroup

	// Start worker pool
	for range workers {
		wg.Go(func() {
			for t := range taskCh {
				stats, err := mineRepository(ctx, cfg, client, limiter, t)
				counter.record(stats, err)
				resultCh <- repoResult{index: t.index, stats: stats, err: err}
			}
		})
	}

	for _, t := range tasks {
		taskCh <- t
	}
	close(taskCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Attach results in completion order
	for res := range resultCh {
		if res.stats == nil {
			res.stats = []schema.ContributionStat{}
		}
		results[res.index].ContributionData = res.stats
	}

	counter.mu.Lock()
	summary := counter.summary
	counter.mu.Unlock()

	contract.Log().WithFields(logrus.Fields{
		"total":     summary.Total,
		"scheduled": summary.Scheduled,
		"skipped":   summary.Skipped,
		"succeeded": summary.Succeeded,
		"empty":     summary.Empty,
		"failed":    summary.Failed,
		"churn":     summary.TotalChurn,
		"elapsed":   time.Since(start).Round(time.Millisecond),
	}).Info("contribution batch finished")
	return results, summary
}

// planTasks builds one task per schedulable descriptor and counts the rest as skipped.
func planTasks(cfg *contract.Config, repos []schema.RepoDescriptor, summary *schema.BatchSummary) []repoTask {
	tasks := make([]repoTask, 0, len(repos))
	for i, repo := range repos {
		cloneURL, err := contract.CloneURL(repo, cfg.Token)
		if err != nil {
			summary.Skipped++
			contract.Log().WithFields(logrus.Fields{"index": i, "url": contract.RedactURL(repo.URL)}).Debug("skipping descriptor")
			continue
		}
		tasks = append(tasks, repoTask{index: i, id: uuid.NewString(), repo: repo, cloneURL: cloneURL})
	}
	return tasks
}

// mineRepository runs one task end to end inside its own work dir. Panics are
// converted to errors so a single repository cannot take down the batch.
func mineRepository(ctx context.Context, cfg *contract.Config, client contract.GitClient, limiter *rate.Limiter, t repoTask) (stats []schema.ContributionStat, err error) {
	log := contract.Log().WithFields(logrus.Fields{"repo": t.repo.FullName(), "task": t.id})
	ctx = withTaskLogger(ctx, log)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			stats, err = nil, fmt.Errorf("panic while mining %s: %v", t.repo.FullName(), r)
		}
		if err != nil {
			log.WithError(err).Warn("repository failed")
			return
		}
		log.WithField("contributors", len(stats)).WithField("elapsed", time.Since(start).Round(time.Millisecond)).Debug("repository mined")
	}()

	if cfg.RepoTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RepoTimeout)
		defer cancel()
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for clone slot: %w", err)
		}
	}

	err = withWorkDir(cfg.TmpDir, contract.DefaultTmpPrefix, func(dir string) error {
		out, err := mineCommitLog(ctx, client, t.cloneURL, dir)
		if err != nil || out == nil {
			return err
		}
		totals, err := agg.ParseCommitLog(bytes.NewReader(out), cfg.Credit)
		if err != nil {
			return err
		}
		stats = agg.ToContributionStats(agg.MergeIdentities(totals))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
