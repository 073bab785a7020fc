package gamelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PlayerTotal is one player's accumulated session time across the log.
type PlayerTotal struct {
	Player  string
	Seconds int64
}

// Hours returns whole hours, floor truncation.
func (t PlayerTotal) Hours() int64 {
	return t.Seconds / 3600
}

// Minutes returns whole minutes of the remainder, floor truncation.
func (t PlayerTotal) Minutes() int64 {
	return (t.Seconds % 3600) / 60
}

// Report is one cycle's connection-time document: totals first, then the
// deduplicated chronological entries. Totals keep first-completion order.
type Report struct {
	Totals  []PlayerTotal
	Entries []string
}

// Render produces the plain-text report document.
func (r *Report) Render() string {
	var b strings.Builder
	b.WriteString("Total Connection Time\n\n")

	for _, t := range r.Totals {
		h, m := t.Hours(), t.Minutes()
		fmt.Fprintf(&b, "%s: %d %s %d %s\n", t.Player, h, pluralize(h, "hour"), m, pluralize(m, "minute"))
	}

	b.WriteString("\n---\n\n")

	for _, entry := range r.Entries {
		b.WriteString(entry)
		b.WriteString("\n\n")
	}
	return b.String()
}

// WriteFile renders the report to the given staging path.
func (r *Report) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(r.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// pluralize picks the unit word; singular only on exactly 1.
func pluralize(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
