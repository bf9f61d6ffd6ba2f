package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock of the GitClient interface.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// Clone implements the GitClient interface.
func (m *MockGitClient) Clone(ctx context.Context, url, dir string) error {
	return m.Called(ctx, url, dir).Error(0)
}

// FetchAll implements the GitClient interface.
func (m *MockGitClient) FetchAll(ctx context.Context, repoPath string) error {
	return m.Called(ctx, repoPath).Error(0)
}

// SymbolicRef implements the GitClient interface.
func (m *MockGitClient) SymbolicRef(ctx context.Context, repoPath, ref string) (string, error) {
	ret := m.Called(ctx, repoPath, ref)
	return ret.String(0), ret.Error(1)
}

// SetRemoteHead implements the GitClient interface.
func (m *MockGitClient) SetRemoteHead(ctx context.Context, repoPath, remote string) error {
	return m.Called(ctx, repoPath, remote).Error(0)
}

// LsRemoteSymref implements the GitClient interface.
func (m *MockGitClient) LsRemoteSymref(ctx context.Context, repoPath, remote string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, remote)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// ShowRef implements the GitClient interface.
func (m *MockGitClient) ShowRef(ctx context.Context, repoPath, ref string) error {
	return m.Called(ctx, repoPath, ref).Error(0)
}

// RevList implements the GitClient interface.
func (m *MockGitClient) RevList(ctx context.Context, repoPath, ref string) (string, error) {
	ret := m.Called(ctx, repoPath, ref)
	return ret.String(0), ret.Error(1)
}

// GetContributionLog implements the GitClient interface.
func (m *MockGitClient) GetContributionLog(ctx context.Context, repoPath, ref string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, ref)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}
