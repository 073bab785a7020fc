// Package status derives the server's lifecycle state from the scraped
// status label.
package status

import (
	"strings"

	"github.com/minewatch-io/minewatch/internal/browser"
)

// State is the canonical classification of the remote server's condition.
type State string

// Lifecycle states.
const (
	Offline   State = "offline"
	Starting  State = "starting"
	Queued    State = "queued"
	Preparing State = "preparing"
	Loading   State = "loading"
	Stopping  State = "stopping"
	Saving    State = "saving"
	Online    State = "online"
	Unknown   State = "unknown"
)

// classifyRules are evaluated in order; first match wins. Raw labels can
// contain overlapping substrings ("Offline — waiting in queue"), so "offline"
// and "online" outrank the transitional states.
var classifyRules = []struct {
	substr string
	state  State
}{
	{"offline", Offline},
	{"online", Online},
	{"preparing", Preparing},
	{"loading", Loading},
	{"starting", Starting},
	{"stopping", Stopping},
	{"saving", Saving},
	{"queue", Queued},
}

// Classify maps a raw status label to a lifecycle state. Matching is
// case-insensitive; an unrecognized label is Unknown, never an error.
func Classify(label string) State {
	lower := strings.ToLower(label)
	for _, rule := range classifyRules {
		if strings.Contains(lower, rule.substr) {
			return rule.state
		}
	}
	return Unknown
}

// Monitor polls the status label through the UI driver.
type Monitor struct {
	driver browser.Driver
}

// NewMonitor creates a monitor over the given driver.
func NewMonitor(d browser.Driver) *Monitor {
	return &Monitor{driver: d}
}

// Poll reads and classifies the current status label. Read failures yield
// Unknown — the label may be mid-rerender — so Poll is safe every tick.
func (m *Monitor) Poll() State {
	text, err := m.driver.ReadText(browser.SelStatusLabel)
	if err != nil {
		return Unknown
	}
	return Classify(strings.TrimSpace(text))
}
