// Package gamelog turns the server's raw event log into a per-player
// connection-time report.
package gamelog

import (
	"regexp"
	"strings"
	"time"
)

// Action is the event direction in a log line.
type Action string

const (
	Connected    Action = "connected"
	Disconnected Action = "disconnected"
)

// Title returns the capitalized form used in rendered entries.
func (a Action) Title() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[0])) + string(a[1:])
}

// Event is one parsed connect/disconnect log line, minute precision.
type Event struct {
	Time   time.Time
	Action Action
	Player string
}

// linePattern anchors on the bracketed timestamp. Seconds and anything else
// inside the brackets (thread, level) are discarded; the player name runs to
// the next comma or end of line.
var linePattern = regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2}):\d{2}[^\]]*\]\s+Player\s+(connected|disconnected):\s+([^,\n]+)`)

// ParseLine extracts an event from one raw log line. Lines that don't match
// the expected shape produce nothing — the log is full of chatter.
func ParseLine(line string) (Event, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Event{}, false
	}

	ts, err := time.Parse("2006-01-02 15:04", m[1]+" "+m[2])
	if err != nil {
		return Event{}, false
	}

	action := Connected
	if m[3] == "disconnected" {
		action = Disconnected
	}

	return Event{
		Time:   ts,
		Action: action,
		Player: strings.TrimSpace(m[4]),
	}, true
}
