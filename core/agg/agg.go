// Package agg has aggregation logic for contribution data mined from git logs.
package agg

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"

	"github.com/huangsam/repochurn/schema"
)

// maxLineSize bounds a single log line; numstat paths can be long in generated trees.
const maxLineSize = 1024 * 1024

var (
	// coAuthorPattern matches a Co-authored-by trailer in any letter case.
	coAuthorPattern = regexp.MustCompile(`(?i)^\s*co-authored-by:\s*(.*?)\s*<([^<>]*)>\s*$`)

	// headerPattern matches the "%aN <%aE>" commit header. Tabs only occur in
	// numstat lines, so a path like "templates/<T>" never matches.
	headerPattern = regexp.MustCompile(`^([^\t]*?) *<([^<>\t]*)> *$`)

	// numstatPattern matches "added<TAB>deleted<TAB>path". Binary files use "-" and never match.
	numstatPattern = regexp.MustCompile(`^(\d+)\t(\d+)\t`)
)

// AuthorTotals holds the raw per-identity line counts of one repository.
type AuthorTotals struct {
	Order   []schema.AuthorKey // first-seen order
	Totals  map[schema.AuthorKey]schema.CommitChange
	Commits int
}

// NewAuthorTotals returns an empty AuthorTotals.
func NewAuthorTotals() *AuthorTotals {
	return &AuthorTotals{Totals: make(map[schema.AuthorKey]schema.CommitChange)}
}

// Churn returns the sum of added and deleted lines over all identities.
func (t *AuthorTotals) Churn() uint {
	var total uint
	for _, change := range t.Totals {
		total += change.Churn()
	}
	return total
}

// credit adds a delta to key, recording key the first time it is seen.
func (t *AuthorTotals) credit(key schema.AuthorKey, added, deleted uint) {
	change, ok := t.Totals[key]
	if !ok {
		t.Order = append(t.Order, key)
	}
	change.Added += added
	change.Deleted += deleted
	t.Totals[key] = change
}

// ParseCommitLog reads the contribution log stream and attributes every numstat
// line to the authors of the commit it belongs to. On a read error the totals
// gathered so far are returned along with the error.
func ParseCommitLog(r io.Reader, policy schema.CreditPolicy) (*AuthorTotals, error) {
	totals := NewAuthorTotals()
	var authors []schema.AuthorKey

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()

		// Numstat paths may end in '>' so they are checked first.
		if added, deleted, ok := parseNumstat(line); ok {
			if len(authors) > 0 {
				creditAuthors(totals, authors, added, deleted, policy)
			}
			continue
		}

		// Trailers also end in '>' so they are checked before headers.
		if m := coAuthorPattern.FindStringSubmatch(line); m != nil {
			if len(authors) > 0 {
				key := schema.NewAuthorKey(m[1], m[2])
				if !slices.Contains(authors, key) {
					authors = append(authors, key)
				}
			}
			continue
		}

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			authors = []schema.AuthorKey{schema.NewAuthorKey(m[1], m[2])}
			totals.Commits++
			continue
		}
	}

	if err := scanner.Err(); err != nil {
		return totals, fmt.Errorf("reading commit log: %w", err)
	}
	return totals, nil
}

// parseNumstat extracts the added and deleted counts from a numstat line.
func parseNumstat(line string) (uint, uint, bool) {
	m := numstatPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	added, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	deleted, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return uint(added), uint(deleted), true
}

// creditAuthors applies one file delta to the commit's authors. authors[0] is
// the primary author and receives any remainder under SplitCredit.
func creditAuthors(totals *AuthorTotals, authors []schema.AuthorKey, added, deleted uint, policy schema.CreditPolicy) {
	if policy != schema.SplitCredit || len(authors) == 1 {
		for _, key := range authors {
			totals.credit(key, added, deleted)
		}
		return
	}

	n := uint(len(authors))
	addShare, delShare := added/n, deleted/n
	totals.credit(authors[0], addShare+added%n, delShare+deleted%n)
	for _, key := range authors[1:] {
		totals.credit(key, addShare, delShare)
	}
}
