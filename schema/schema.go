// Package schema has models and constants shared by all parts of repochurn.
package schema

// RepoDescriptor identifies one repository to mine. It is supplied by the caller
// and only ContributionData is written back by the miner.
type RepoDescriptor struct {
	Owner string `json:"owner,omitempty"`
	Name  string `json:"name"`
	URL   string `json:"url"`

	// ContributionData is nil for descriptors that were never scheduled and an
	// empty slice for repositories that failed or had no history.
	ContributionData []ContributionStat `json:"contribution_data"`
}

// ContributionStat is the churn attributed to one contributor of a repository.
type ContributionStat struct {
	Login string `json:"login"`
	Stats uint   `json:"stats"`
}

// AuthorKey is a normalized (name, email) identity seen in a commit header or
// co-author trailer.
type AuthorKey struct {
	Name  string
	Email string
}

// CommitChange holds added and deleted line counts.
type CommitChange struct {
	Added   uint
	Deleted uint
}

// Churn returns added plus deleted lines.
func (c CommitChange) Churn() uint {
	return c.Added + c.Deleted
}

// AuthorAggregate is one canonical contributor after identity merging.
type AuthorAggregate struct {
	CanonicalName string
	KnownNames    map[string]struct{}
	KnownEmails   map[string]struct{}
	Stats         uint
}

// BatchSummary counts the outcome of one coordinator run.
type BatchSummary struct {
	Total      int  `json:"total"`
	Scheduled  int  `json:"scheduled"`
	Skipped    int  `json:"skipped"`
	Succeeded  int  `json:"succeeded"`
	Empty      int  `json:"empty"`
	Failed     int  `json:"failed"`
	TotalChurn uint `json:"total_churn"`
}
