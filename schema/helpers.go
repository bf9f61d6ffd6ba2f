package schema

import (
	"strings"
	"unicode"
)

// NewAuthorKey builds an AuthorKey with whitespace collapsed in the name and the
// email trimmed and case-folded.
func NewAuthorKey(name, email string) AuthorKey {
	return AuthorKey{
		Name:  NormalizeName(name),
		Email: NormalizeEmail(email),
	}
}

// NormalizeName trims the name and collapses inner runs of whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeEmail trims the email and lower-cases it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// cleanParts trims non-alphanumeric punctuation from the ends of each name part,
// and additionally trims trailing periods for looser handling.
func cleanParts(parts []string) []string {
	var cleaned []string
	for _, p := range parts {
		cp := strings.TrimFunc(p, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' && r != '\'' && r != '.'
		})
		cp = strings.TrimSuffix(cp, ".")
		if cp != "" {
			cleaned = append(cleaned, cp)
		}
	}
	return cleaned
}

// AbbreviateLogin formats "Samuel Huang" to "Samuel H" for narrow tables.
// Bot accounts (e.g. dependabot[bot]) and single-word logins are kept as is.
func AbbreviateLogin(login string) string {
	trimmed := NormalizeName(login)
	if strings.Contains(trimmed, "[bot]") {
		return trimmed
	}

	cleaned := cleanParts(strings.Fields(strings.Trim(trimmed, "()\"'`")))
	switch {
	case len(cleaned) >= 2:
		last := []rune(cleaned[len(cleaned)-1])
		return cleaned[0] + " " + string(last[0])
	case len(cleaned) == 1:
		return cleaned[0]
	default:
		return trimmed
	}
}

// OwnerFromURL returns the second to last '/' separated segment of a repository
// URL, or "" when the URL has fewer than two segments.
func OwnerFromURL(url string) string {
	parts := strings.Split(strings.TrimSpace(url), "/")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-2])
}

// FullName returns "owner/name" for a descriptor.
func (d RepoDescriptor) FullName() string {
	owner := d.Owner
	if owner == "" {
		owner = OwnerFromURL(d.URL)
	}
	return owner + "/" + strings.TrimSpace(d.Name)
}

// SharePercent returns part as a percentage of total, or 0 when total is 0.
func SharePercent(part, total uint) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// TotalStats sums the stats of every contributor of the descriptor.
func (d RepoDescriptor) TotalStats() uint {
	var total uint
	for _, c := range d.ContributionData {
		total += c.Stats
	}
	return total
}
