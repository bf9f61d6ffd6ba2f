package outwriter

import (
	"os"

	"github.com/huangsam/repochurn/internal/contract"
	"golang.org/x/term"
)

// Bounds for the variable-width table columns.
const (
	minNameWidth = 12
	maxNameWidth = 40
)

// GetMaxTableNameWidth calculates how wide the Repo and Contributor columns
// may each be, based on terminal width and the fixed columns of the table.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Churn + Share + Label, plus borders and padding
	baseWidth := 6 + 10 + 9 + 10 + 20

	// Two name columns share the rest
	available := (termWidth - baseWidth) / 2
	return max(minNameWidth, min(maxNameWidth, available))
}
