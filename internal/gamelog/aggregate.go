package gamelog

import (
	"fmt"
	"strings"
	"time"
)

// entryTimeLayout is the display format for rendered entries.
const entryTimeLayout = "02/01/06 03:04 PM"

// Aggregator pairs connect/disconnect events into per-player session totals
// and renders the chronological entry list.
type Aggregator struct {
	// BotPlayer is excluded from events before any other processing.
	BotPlayer string

	// Symbols maps known players to display markers; anyone else gets
	// DefaultSymbol.
	Symbols       map[string]string
	DefaultSymbol string
}

// Aggregate parses raw log text into a report. Returns nil when no player
// activity was found — the caller then skips report creation and archival.
//
// Pairing rules: a second connect for a player silently replaces the open
// session (the prior one is discarded, not counted); a disconnect with no
// open session contributes nothing. Events are presumed time-ordered within
// the log, so totals can never go negative.
func (a *Aggregator) Aggregate(raw string) *Report {
	open := make(map[string]time.Time)
	totals := make(map[string]int64)
	var order []string
	var entries []string

	for _, line := range strings.Split(raw, "\n") {
		ev, ok := ParseLine(line)
		if !ok {
			continue
		}
		if ev.Player == a.BotPlayer {
			continue
		}

		// Immediate-neighbor dedup only: the panel repeats the tail of
		// the log across page loads, always in runs.
		entry := a.renderEntry(ev)
		if len(entries) == 0 || entries[len(entries)-1] != entry {
			entries = append(entries, entry)
		}

		switch ev.Action {
		case Connected:
			open[ev.Player] = ev.Time
		case Disconnected:
			start, found := open[ev.Player]
			if !found {
				continue
			}
			if _, seen := totals[ev.Player]; !seen {
				order = append(order, ev.Player)
			}
			totals[ev.Player] += int64(ev.Time.Sub(start).Seconds())
			delete(open, ev.Player)
		}
	}

	if len(entries) == 0 {
		return nil
	}

	report := &Report{Entries: entries}
	for _, player := range order {
		report.Totals = append(report.Totals, PlayerTotal{Player: player, Seconds: totals[player]})
	}
	return report
}

func (a *Aggregator) renderEntry(ev Event) string {
	return fmt.Sprintf("%s [%s] %s %s",
		a.symbol(ev.Player), ev.Time.Format(entryTimeLayout), ev.Player, ev.Action.Title())
}

func (a *Aggregator) symbol(player string) string {
	if s, ok := a.Symbols[player]; ok {
		return s
	}
	return a.DefaultSymbol
}
