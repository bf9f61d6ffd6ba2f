package contract

import (
	"strings"
	"testing"
)

// FuzzRedactURL ensures credentials never survive redaction.
func FuzzRedactURL(f *testing.F) {
	seeds := []string{
		"https://token@github.com/owner/repo.git",
		"fatal: could not read from 'https://x:y@host/a'",
		"file:///tmp/owner/repo",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, secret string) {
		if secret == "" || strings.ContainsAny(secret, "/@* \t\n\r\f") {
			return
		}
		in := "clone https://" + secret + "@example.com/o/r.git"
		if out := RedactURL(in); strings.Contains(out, secret+"@") {
			t.Fatalf("secret leaked: %q", out)
		}
	})
}

// FuzzParseGitEnv ensures arbitrary input never panics.
func FuzzParseGitEnv(f *testing.F) {
	for _, seed := range []string{"A=1,B=2", "=", ",,,", "KEY=", ""} {
		f.Add(seed)
	}
	f.Fuzz(func(_ *testing.T, s string) {
		_, _ = ParseGitEnv(s)
	})
}
