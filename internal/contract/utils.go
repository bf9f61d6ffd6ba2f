package contract

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/repochurn/schema"
)

// Share label constants.
const (
	CoreValue    = "Core"     // Core contributor
	MajorValue   = "Major"    // Major contributor
	MinorValue   = "Minor"    // Minor contributor
	DriveByValue = "Drive-by" // Drive-by contributor
)

// Color variables for console output.
var (
	CoreColor    = color.New(color.FgRed, color.Bold)     // CoreColor marks owners of most of the churn.
	MajorColor   = color.New(color.FgMagenta, color.Bold) // MajorColor marks a substantial share.
	MinorColor   = color.New(color.FgYellow)              // MinorColor marks a visible share.
	DriveByColor = color.New(color.FgCyan)                // DriveByColor marks occasional contributors.
)

// GetPlainLabel returns a plain text label for a contributor's share of a
// repository's churn, expressed as a percentage.
func GetPlainLabel(share float64) string {
	switch {
	case share >= 50:
		return CoreValue
	case share >= 20:
		return MajorValue
	case share >= 5:
		return MinorValue
	default:
		return DriveByValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(share float64) string {
	text := GetPlainLabel(share)

	switch text {
	case CoreValue:
		return CoreColor.Sprint(text)
	case MajorValue:
		return MajorColor.Sprint(text)
	case MinorValue:
		return MinorColor.Sprint(text)
	default:
		return DriveByColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// DefaultGitEnv returns the environment that keeps git non-interactive.
func DefaultGitEnv() map[string]string {
	return map[string]string{
		"GIT_TERMINAL_PROMPT": "0",
		"GIT_ASKPASS":         "true",
		"GIT_PAGER":           "cat",
		"GIT_OPTIONAL_LOCKS":  "0",
		"GCM_INTERACTIVE":     "never",
	}
}

// ParseGitEnv parses "KEY=VALUE,KEY2=VALUE2" into a map.
func ParseGitEnv(s string) (map[string]string, error) {
	env := make(map[string]string)
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid git-env entry '%s', expected KEY=VALUE", part)
		}
		env[k] = strings.TrimSpace(v)
	}
	return env, nil
}

// MergeGitEnv returns base overlaid with overrides without touching either map.
func MergeGitEnv(base, overrides map[string]string) map[string]string {
	merged := maps.Clone(base)
	if merged == nil {
		merged = make(map[string]string, len(overrides))
	}
	maps.Copy(merged, overrides)
	return merged
}

// errUnschedulable is returned by CloneURL for descriptors without an owner/name pair.
var errUnschedulable = errors.New("repository has no owner/name pair")

// IsSchedulable reports whether an owner/name pair can be derived from repo.
func IsSchedulable(repo schema.RepoDescriptor) bool {
	return len(strings.Split(strings.TrimSpace(repo.URL), "/")) > 1 && strings.TrimSpace(repo.Name) != ""
}

// CloneURL derives the URL to clone for repo. For http(s) URLs the last path
// segment is replaced by "<name>.git" and token, when set, becomes the userinfo.
// Other URLs and local paths only get their last segment replaced.
func CloneURL(repo schema.RepoDescriptor, token string) (string, error) {
	if !IsSchedulable(repo) {
		return "", errUnschedulable
	}
	raw := strings.TrimRight(strings.TrimSpace(repo.URL), "/")
	name := strings.TrimSuffix(strings.TrimSpace(repo.Name), ".git")

	if u, err := url.Parse(raw); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		out := url.URL{
			Scheme: u.Scheme,
			Host:   u.Host,
			Path:   path.Join(path.Dir(u.Path), name+".git"),
		}
		if token != "" {
			out.User = url.User(token)
		} else if u.User != nil {
			out.User = u.User
		}
		return out.String(), nil
	}

	idx := strings.LastIndex(raw, "/")
	if idx < 0 {
		return "", errUnschedulable
	}
	return raw[:idx+1] + name, nil
}

var userinfoPattern = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)[^/@\s]+@`)

// RedactURL hides the userinfo part of every URL inside s.
func RedactURL(s string) string {
	return userinfoPattern.ReplaceAllString(s, "${1}***@")
}

// redactArgs returns a copy of args with credentials removed.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = RedactURL(a)
	}
	return out
}

// TruncatePath truncates a string to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to leave room for the "..." prefix.
func TruncatePath(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
