package core

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/huangsam/repochurn/internal/contract"
)

// Remote and fallback branch names probed when resolving the default ref.
const (
	remoteName    = "origin"
	remoteHeadRef = "refs/remotes/origin/HEAD"
	symrefPrefix  = "ref: refs/heads/"
	symrefSuffix  = "\tHEAD"
)

var fallbackBranches = []string{"main", "master"}

// resolveDefaultRef returns a ref naming the default branch of origin in
// workDir, or "" when none of the probes succeed. Probe failures are logged
// at debug level and never returned.
func resolveDefaultRef(ctx context.Context, client contract.GitClient, workDir string) string {
	log := taskLogger(ctx).WithField("step", "resolve-ref")

	// 1. The remote HEAD recorded at clone time, refreshed once if missing
	if ref := symbolicRemoteHead(ctx, client, workDir); ref != "" {
		return ref
	}
	if err := client.SetRemoteHead(ctx, workDir, remoteName); err != nil {
		log.WithError(err).Debug("remote set-head failed")
	} else if ref := symbolicRemoteHead(ctx, client, workDir); ref != "" {
		return ref
	}

	// 2. Ask the remote directly
	out, err := client.LsRemoteSymref(ctx, workDir, remoteName)
	if err != nil {
		log.WithError(err).Debug("ls-remote --symref failed")
	} else if branch := parseSymref(out); branch != "" {
		return remoteName + "/" + branch
	}

	// 3. Conventional branch names
	for _, branch := range fallbackBranches {
		if err := client.ShowRef(ctx, workDir, "refs/remotes/"+remoteName+"/"+branch); err == nil {
			return remoteName + "/" + branch
		}
	}

	log.Debug("default ref unresolved")
	return ""
}

// symbolicRemoteHead returns the short name origin/HEAD points to, or "".
func symbolicRemoteHead(ctx context.Context, client contract.GitClient, workDir string) string {
	ref, err := client.SymbolicRef(ctx, workDir, remoteHeadRef)
	if err != nil {
		taskLogger(ctx).WithField("step", "resolve-ref").WithError(err).Debug("symbolic-ref failed")
		return ""
	}
	return strings.TrimSpace(ref)
}

// parseSymref extracts the branch from "ref: refs/heads/<branch>\tHEAD" in
// ls-remote --symref output.
func parseSymref(out []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !strings.HasPrefix(line, symrefPrefix) || !strings.HasSuffix(line, symrefSuffix) {
			continue
		}
		branch := strings.TrimSuffix(strings.TrimPrefix(line, symrefPrefix), symrefSuffix)
		if branch = strings.TrimSpace(branch); branch != "" {
			return branch
		}
	}
	return ""
}
