package core

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/repochurn/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCloneURL = "https://tok@github.com/octo/hello.git"

// resolvedClient returns a mock whose clone, fetch and ref resolution succeed.
func resolvedClient() *contract.MockGitClient {
	client := &contract.MockGitClient{}
	client.On("Clone", mock.Anything, testCloneURL, "/w").Return(nil)
	client.On("FetchAll", mock.Anything, "/w").Return(nil)
	client.On("SymbolicRef", mock.Anything, "/w", "refs/remotes/origin/HEAD").Return("origin/main", nil)
	return client
}

func TestMineCommitLog_Success(t *testing.T) {
	client := resolvedClient()
	client.On("RevList", mock.Anything, "/w", "origin/main").Return("abc123", nil)
	client.On("GetContributionLog", mock.Anything, "/w", "origin/main").Return([]byte("Alice <a@x.com>\n\n1\t2\tf\n"), nil)

	out, err := mineCommitLog(context.Background(), client, testCloneURL, "/w")
	require.NoError(t, err)
	assert.Equal(t, "Alice <a@x.com>\n\n1\t2\tf\n", string(out))
	client.AssertExpectations(t)
}

func TestMineCommitLog_CloneAndFetchFailuresContinue(t *testing.T) {
	client := &contract.MockGitClient{}
	client.On("Clone", mock.Anything, testCloneURL, "/w").Return(errors.New("early EOF"))
	client.On("FetchAll", mock.Anything, "/w").Return(errors.New("fetch failed"))
	client.On("SymbolicRef", mock.Anything, "/w", "refs/remotes/origin/HEAD").Return("origin/main", nil)
	client.On("RevList", mock.Anything, "/w", "origin/main").Return("abc123", nil)
	client.On("GetContributionLog", mock.Anything, "/w", "origin/main").Return([]byte("partial"), nil)

	out, err := mineCommitLog(context.Background(), client, testCloneURL, "/w")
	require.NoError(t, err)
	assert.Equal(t, "partial", string(out))
}

func TestMineCommitLog_UnresolvedRef(t *testing.T) {
	client := &contract.MockGitClient{}
	client.On("Clone", mock.Anything, testCloneURL, "/w").Return(nil)
	client.On("FetchAll", mock.Anything, "/w").Return(nil)
	client.On("SymbolicRef", mock.Anything, "/w", mock.Anything).Return("", errProbe)
	client.On("SetRemoteHead", mock.Anything, "/w", "origin").Return(errProbe)
	client.On("LsRemoteSymref", mock.Anything, "/w", "origin").Return(nil, errProbe)
	client.On("ShowRef", mock.Anything, "/w", mock.Anything).Return(errProbe)

	out, err := mineCommitLog(context.Background(), client, testCloneURL, "/w")
	require.NoError(t, err)
	assert.Nil(t, out)
	client.AssertNotCalled(t, "GetContributionLog", mock.Anything, mock.Anything, mock.Anything)
}

func TestMineCommitLog_UnresolvedAfterCloneFailure(t *testing.T) {
	cloneErr := &contract.GitError{Args: []string{"clone"}, Stderr: "repository not found", ExitCode: 128, Err: errors.New("exit status 128")}
	client := &contract.MockGitClient{}
	client.On("Clone", mock.Anything, testCloneURL, "/w").Return(cloneErr)
	client.On("FetchAll", mock.Anything, "/w").Return(errProbe)
	client.On("SymbolicRef", mock.Anything, "/w", mock.Anything).Return("", errProbe)
	client.On("SetRemoteHead", mock.Anything, "/w", "origin").Return(errProbe)
	client.On("LsRemoteSymref", mock.Anything, "/w", "origin").Return(nil, errProbe)
	client.On("ShowRef", mock.Anything, "/w", mock.Anything).Return(errProbe)

	_, err := mineCommitLog(context.Background(), client, testCloneURL, "/w")
	require.Error(t, err)

	var miningErr *contract.MiningError
	require.ErrorAs(t, err, &miningErr)
	assert.Equal(t, "clone", miningErr.Step)
	assert.Equal(t, "repository not found", miningErr.Stderr)
	assert.NotContains(t, err.Error(), "tok@")
}

func TestMineCommitLog_EmptyRepository(t *testing.T) {
	client := resolvedClient()
	client.On("RevList", mock.Anything, "/w", "origin/main").Return("", errors.New("unknown revision"))

	out, err := mineCommitLog(context.Background(), client, testCloneURL, "/w")
	require.NoError(t, err)
	assert.Nil(t, out)
	client.AssertNotCalled(t, "GetContributionLog", mock.Anything, mock.Anything, mock.Anything)
}

func TestMineCommitLog_LogFailure(t *testing.T) {
	gitErr := &contract.GitError{Args: []string{"log"}, Stdout: "half", Stderr: "fatal: bad object", ExitCode: 128, Err: errors.New("exit status 128")}
	client := resolvedClient()
	client.On("RevList", mock.Anything, "/w", "origin/main").Return("abc123", nil)
	client.On("GetContributionLog", mock.Anything, "/w", "origin/main").Return(nil, gitErr)

	_, err := mineCommitLog(context.Background(), client, testCloneURL, "/w")

	var miningErr *contract.MiningError
	require.ErrorAs(t, err, &miningErr)
	assert.Equal(t, "log", miningErr.Step)
	assert.Equal(t, "half", miningErr.Stdout)
	assert.Equal(t, "fatal: bad object", miningErr.Stderr)
	assert.ErrorIs(t, err, gitErr)
}
