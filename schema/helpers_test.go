package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAuthorKey(t *testing.T) {
	key := NewAuthorKey("  Alice \t Smith ", " Alice@Example.COM ")
	assert.Equal(t, AuthorKey{Name: "Alice Smith", Email: "alice@example.com"}, key)
}

func TestAbbreviateLogin(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two words", "Samuel Huang", "Samuel H"},
		{"three words", "Mary Jane Watson", "Mary W"},
		{"single word", "alice", "alice"},
		{"bot account", "dependabot[bot]", "dependabot[bot]"},
		{"quoted", "\"Bob Stone\"", "Bob S"},
		{"unicode", "Zoë Ådahl", "Zoë Å"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AbbreviateLogin(tt.input))
		})
	}
}

func TestOwnerFromURL(t *testing.T) {
	assert.Equal(t, "owner", OwnerFromURL("https://github.com/owner/repo"))
	assert.Equal(t, "host", OwnerFromURL("https://host/owner"))
	assert.Equal(t, "", OwnerFromURL("repo"))
	assert.Equal(t, "", OwnerFromURL(""))
}

func TestRepoDescriptorFullName(t *testing.T) {
	d := RepoDescriptor{URL: "https://github.com/octo/hello", Name: " hello "}
	assert.Equal(t, "octo/hello", d.FullName())

	d.Owner = "other"
	assert.Equal(t, "other/hello", d.FullName())
}

func TestCommitChangeChurn(t *testing.T) {
	assert.Equal(t, uint(12), CommitChange{Added: 10, Deleted: 2}.Churn())
}

func TestSharePercent(t *testing.T) {
	assert.InDelta(t, 25.0, SharePercent(1, 4), 1e-9)
	assert.InDelta(t, 100.0, SharePercent(7, 7), 1e-9)
	assert.Zero(t, SharePercent(3, 0))
}

func TestRepoDescriptorTotalStats(t *testing.T) {
	d := RepoDescriptor{ContributionData: []ContributionStat{{Login: "a", Stats: 3}, {Login: "b", Stats: 4}}}
	assert.Equal(t, uint(7), d.TotalStats())
	assert.Zero(t, RepoDescriptor{}.TotalStats())
}
