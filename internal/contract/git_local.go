package contract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ContributionLogFormat prints the author header followed by any co-author trailers.
const ContributionLogFormat = "--format=%aN <%aE>%n%(trailers:key=Co-authored-by)"

// blobFilter defers file contents; numstat only needs commits and trees.
const blobFilter = "--filter=blob:none"

// waitDelay bounds how long Run waits for pipes after the process is killed.
const waitDelay = 5 * time.Second

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct {
	env     map[string]string
	timeout time.Duration
}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a local Git client. env is layered on top of the
// hardened defaults and timeout bounds every single git invocation (0 = none).
func NewLocalGitClient(env map[string]string, timeout time.Duration) *LocalGitClient {
	merged := DefaultGitEnv()
	maps.Copy(merged, env)
	return &LocalGitClient{env: merged, timeout: timeout}
}

// Env returns a copy of the environment overrides used for every command.
func (c *LocalGitClient) Env() map[string]string {
	return maps.Clone(c.env)
}

// Run executes a git command and returns its stdout. Failures are returned as
// *GitError with stdout and stderr captured.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	fullArgs := args
	if repoPath != "" {
		fullArgs = append([]string{"-C", repoPath}, args...)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	cmd.Env = c.environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	gitErr := &GitError{
		Args:     redactArgs(fullArgs),
		Stdout:   RedactURL(strings.TrimSpace(stdout.String())),
		Stderr:   RedactURL(strings.TrimSpace(stderr.String())),
		ExitCode: -1,
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		gitErr.ExitCode = exitErr.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		gitErr.Err = fmt.Errorf("%w: %w", ctxErr, err)
	}
	return stdout.Bytes(), gitErr
}

// environ layers the client overrides on top of the process environment.
// exec uses the last value for duplicate keys.
func (c *LocalGitClient) environ() []string {
	env := os.Environ()
	for k, v := range c.env {
		env = append(env, k+"="+v)
	}
	return env
}

// Clone implements the GitClient interface.
func (c *LocalGitClient) Clone(ctx context.Context, url, dir string) error {
	_, err := c.Run(ctx, "", "clone", blobFilter, "--no-checkout", "--quiet", url, dir)
	return err
}

// FetchAll implements the GitClient interface.
func (c *LocalGitClient) FetchAll(ctx context.Context, repoPath string) error {
	_, err := c.Run(ctx, repoPath, "fetch", "--quiet", blobFilter, "origin", "+refs/heads/*:refs/remotes/origin/*")
	return err
}

// SymbolicRef implements the GitClient interface.
func (c *LocalGitClient) SymbolicRef(ctx context.Context, repoPath, ref string) (string, error) {
	out, err := c.Run(ctx, repoPath, "symbolic-ref", "--quiet", "--short", ref)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// SetRemoteHead implements the GitClient interface.
func (c *LocalGitClient) SetRemoteHead(ctx context.Context, repoPath, remote string) error {
	_, err := c.Run(ctx, repoPath, "remote", "set-head", remote, "--auto")
	return err
}

// LsRemoteSymref implements the GitClient interface.
func (c *LocalGitClient) LsRemoteSymref(ctx context.Context, repoPath, remote string) ([]byte, error) {
	return c.Run(ctx, repoPath, "ls-remote", "--symref", remote, "HEAD")
}

// ShowRef implements the GitClient interface.
func (c *LocalGitClient) ShowRef(ctx context.Context, repoPath, ref string) error {
	_, err := c.Run(ctx, repoPath, "show-ref", "--verify", "--quiet", ref)
	return err
}

// RevList implements the GitClient interface.
func (c *LocalGitClient) RevList(ctx context.Context, repoPath, ref string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-list", "-n", "1", ref, "--")
	if err != nil {
		return "", err
	}
	hash := strings.TrimSpace(string(out))
	if hash == "" {
		return "", fmt.Errorf("ref %q has no commits", ref)
	}
	return hash, nil
}

// GetContributionLog implements the GitClient interface.
func (c *LocalGitClient) GetContributionLog(ctx context.Context, repoPath, ref string) ([]byte, error) {
	// A checkout-less clone has no working tree .mailmap, so read it from ref.
	args := []string{
		"-c", "mailmap.blob=" + ref + ":.mailmap",
		"log",
		ref,
		"--use-mailmap",
		"--no-merges",
		"--numstat",
		ContributionLogFormat,
		"--",
	}
	return c.Run(ctx, repoPath, args...)
}
