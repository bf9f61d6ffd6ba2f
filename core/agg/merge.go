package agg

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/huangsam/repochurn/schema"
)

// groupKey decides which aggregate an identity belongs to. Identities without
// an email fall back to their case-folded name.
func groupKey(key schema.AuthorKey) string {
	if key.Email != "" {
		return "email:" + key.Email
	}
	return "name:" + strings.ToLower(key.Name)
}

// MergeIdentities folds raw identities into one aggregate per email address.
// Aggregates are returned in the order their first identity was seen.
func MergeIdentities(totals *AuthorTotals) []schema.AuthorAggregate {
	if totals == nil {
		return nil
	}

	index := make(map[string]int)
	var merged []schema.AuthorAggregate
	for _, key := range totals.Order {
		churn := totals.Totals[key].Churn()
		gk := groupKey(key)

		i, ok := index[gk]
		if !ok {
			index[gk] = len(merged)
			merged = append(merged, schema.AuthorAggregate{
				CanonicalName: key.Name,
				KnownNames:    map[string]struct{}{key.Name: {}},
				KnownEmails:   map[string]struct{}{key.Email: {}},
				Stats:         churn,
			})
			continue
		}

		agg := &merged[i]
		agg.KnownNames[key.Name] = struct{}{}
		agg.KnownEmails[key.Email] = struct{}{}
		agg.Stats += churn
		if utf8.RuneCountInString(key.Name) > utf8.RuneCountInString(agg.CanonicalName) {
			agg.CanonicalName = key.Name
		}
	}
	return merged
}

// ToContributionStats converts aggregates to the output shape, sorted by stats
// descending and then by login.
func ToContributionStats(aggregates []schema.AuthorAggregate) []schema.ContributionStat {
	stats := make([]schema.ContributionStat, 0, len(aggregates))
	for _, agg := range aggregates {
		login := agg.CanonicalName
		if login == "" {
			for email := range agg.KnownEmails {
				login = email
			}
		}
		stats = append(stats, schema.ContributionStat{Login: login, Stats: agg.Stats})
	}
	slices.SortFunc(stats, func(a, b schema.ContributionStat) int {
		if c := cmp.Compare(b.Stats, a.Stats); c != 0 {
			return c
		}
		return cmp.Compare(a.Login, b.Login)
	})
	return stats
}
