package contract

import (
	"errors"
	"fmt"
	"strings"
)

// GitError reports a git invocation that failed or exited non-zero.
type GitError struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s: exit %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *GitError) Unwrap() error { return e.Err }

// MiningError reports a repository whose history could not be read.
type MiningError struct {
	Repo   string
	Step   string
	Stdout string
	Stderr string
	Err    error
}

// NewMiningError wraps err for repo, copying captured output from a *GitError.
func NewMiningError(repo, step string, err error) *MiningError {
	me := &MiningError{Repo: repo, Step: step, Err: err}
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		me.Stdout = gitErr.Stdout
		me.Stderr = gitErr.Stderr
	}
	return me
}

func (e *MiningError) Error() string {
	return fmt.Sprintf("mining %s failed at %s: %v", e.Repo, e.Step, e.Err)
}

func (e *MiningError) Unwrap() error { return e.Err }
