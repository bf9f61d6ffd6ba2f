package agg

import (
	"fmt"
	"strings"
)

// commitScenario represents a single commit for test data generation.
type commitScenario struct {
	author    string
	email     string
	coAuthors []string // raw trailer values, e.g. "Carol <c@y.com>"
	files     []fileChange
}

// fileChange represents a single file change in a commit. Negative counts
// render as "-" like git does for binary files.
type fileChange struct {
	path      string
	additions int
	deletions int
}

// generateContributionLog renders scenarios the way the contribution log
// format prints them: header, trailers, blank line, numstat lines.
func generateContributionLog(scenarios []commitScenario) string {
	var lines []string
	for _, s := range scenarios {
		lines = append(lines, fmt.Sprintf("%s <%s>", s.author, s.email))
		for _, co := range s.coAuthors {
			lines = append(lines, "Co-authored-by: "+co)
		}
		lines = append(lines, "")
		for _, f := range s.files {
			lines = append(lines, fmt.Sprintf("%s\t%s\t%s", count(f.additions), count(f.deletions), f.path))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func count(n int) string {
	if n < 0 {
		return "-"
	}
	return fmt.Sprint(n)
}

// sumChurn returns the total churn a set of scenarios should produce, counting
// each commit's delta once.
func sumChurn(scenarios []commitScenario) uint {
	var total uint
	for _, s := range scenarios {
		for _, f := range s.files {
			if f.additions >= 0 && f.deletions >= 0 {
				total += uint(f.additions + f.deletions)
			}
		}
	}
	return total
}

// generateMixedScenarios covers renames, binaries, co-authors and mailmapped names.
func generateMixedScenarios() []commitScenario {
	return []commitScenario{
		{author: "Alice", email: "a@x.com", files: []fileChange{{"README.md", 10, 2}}},
		{author: "Alice Smith", email: "A@X.com", files: []fileChange{{"main.go", 5, 1}, {"logo.png", -1, -1}}},
		{author: "Bob", email: "b@x.com", coAuthors: []string{"Carol <c@y.com>"}, files: []fileChange{{"core/{old => new}.go", 4, 0}}},
		{author: "Dave", email: "d@x.com", coAuthors: []string{"Erin <e@y.com>", "Frank <f@y.com>"}, files: []fileChange{{"a.go", 7, 5}, {"b.go", 1, 0}}},
		{author: "Bob", email: "b@x.com", files: nil},
	}
}
