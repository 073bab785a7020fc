package gamelog

import (
	"strings"
	"testing"
)

func testAggregator() *Aggregator {
	return &Aggregator{
		BotPlayer:     "Bot",
		Symbols:       map[string]string{"Shayan1509": "◆"},
		DefaultSymbol: "•",
	}
}

func TestAggregateSimplePair(t *testing.T) {
	raw := "[2024-01-01 10:00:00] Player connected: Alice\n" +
		"[2024-01-01 10:45:00] Player disconnected: Alice\n"

	report := testAggregator().Aggregate(raw)
	if report == nil {
		t.Fatal("Aggregate returned nil, want report")
	}

	if len(report.Totals) != 1 {
		t.Fatalf("len(Totals) = %d, want 1", len(report.Totals))
	}
	total := report.Totals[0]
	if total.Player != "Alice" || total.Seconds != 45*60 {
		t.Errorf("Totals[0] = %+v, want Alice with 2700s", total)
	}

	if len(report.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(report.Entries))
	}
	if report.Entries[0] != "• [01/01/24 10:00 AM] Alice Connected" {
		t.Errorf("Entries[0] = %q", report.Entries[0])
	}
	if report.Entries[1] != "• [01/01/24 10:45 AM] Alice Disconnected" {
		t.Errorf("Entries[1] = %q", report.Entries[1])
	}

	rendered := report.Render()
	if !strings.Contains(rendered, "Alice: 0 hours 45 minutes\n") {
		t.Errorf("rendered totals missing Alice line:\n%s", rendered)
	}
}

func TestAggregateUnmatchedDisconnect(t *testing.T) {
	raw := "[2024-01-01 10:45:00] Player disconnected: Alice\n"

	report := testAggregator().Aggregate(raw)
	if report == nil {
		t.Fatal("Aggregate returned nil, want report with entries only")
	}
	if len(report.Totals) != 0 {
		t.Errorf("len(Totals) = %d, want 0 — unmatched disconnect must not count", len(report.Totals))
	}
	if len(report.Entries) != 1 {
		t.Errorf("len(Entries) = %d, want 1", len(report.Entries))
	}
}

func TestAggregateReconnectReplacesOpenSession(t *testing.T) {
	raw := "[2024-01-01 10:00:00] Player connected: Alice\n" +
		"[2024-01-01 10:30:00] Player connected: Alice\n" +
		"[2024-01-01 10:45:00] Player disconnected: Alice\n"

	report := testAggregator().Aggregate(raw)
	if report == nil {
		t.Fatal("Aggregate returned nil")
	}
	// Only the newer connect pairs up; the first open session is discarded.
	if report.Totals[0].Seconds != 15*60 {
		t.Errorf("Seconds = %d, want 900", report.Totals[0].Seconds)
	}
}

func TestAggregateAccumulatesAcrossPairs(t *testing.T) {
	raw := "[2024-01-01 10:00:00] Player connected: Alice\n" +
		"[2024-01-01 10:30:00] Player disconnected: Alice\n" +
		"[2024-01-01 11:00:00] Player connected: Alice\n" +
		"[2024-01-01 11:31:00] Player disconnected: Alice\n"

	report := testAggregator().Aggregate(raw)
	if report == nil {
		t.Fatal("Aggregate returned nil")
	}
	if got := report.Totals[0].Seconds; got != 61*60 {
		t.Errorf("Seconds = %d, want 3660", got)
	}

	// 3660s is exactly 1 hour 1 minute: singular on both units.
	if !strings.Contains(report.Render(), "Alice: 1 hour 1 minute\n") {
		t.Errorf("singular forms not used:\n%s", report.Render())
	}
}

func TestAggregateExcludesBotAccount(t *testing.T) {
	raw := "[2024-01-01 10:00:00] Player connected: Bot\n" +
		"[2024-01-01 10:05:00] Player connected: Alice\n" +
		"[2024-01-01 10:10:00] Player disconnected: Bot\n" +
		"[2024-01-01 10:15:00] Player disconnected: Alice\n"

	report := testAggregator().Aggregate(raw)
	if report == nil {
		t.Fatal("Aggregate returned nil")
	}
	if len(report.Totals) != 1 || report.Totals[0].Player != "Alice" {
		t.Errorf("Totals = %+v, want only Alice", report.Totals)
	}
	for _, e := range report.Entries {
		if strings.Contains(e, "Bot") {
			t.Errorf("entry mentions the bot account: %q", e)
		}
	}
}

func TestAggregateAdjacentDedup(t *testing.T) {
	// The same connect line repeated back to back collapses; the later
	// non-adjacent duplicate is kept.
	raw := "[2024-01-01 10:00:00] Player connected: Alice\n" +
		"[2024-01-01 10:00:00] Player connected: Alice\n" +
		"[2024-01-01 10:05:00] Player disconnected: Alice\n" +
		"[2024-01-01 10:00:00] Player connected: Alice\n"

	report := testAggregator().Aggregate(raw)
	if report == nil {
		t.Fatal("Aggregate returned nil")
	}
	if len(report.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3: %q", len(report.Entries), report.Entries)
	}
	if report.Entries[0] != report.Entries[2] {
		t.Errorf("non-adjacent duplicate was altered: %q vs %q", report.Entries[0], report.Entries[2])
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if report := testAggregator().Aggregate(""); report != nil {
		t.Errorf("Aggregate(\"\") = %+v, want nil", report)
	}
	if report := testAggregator().Aggregate("no matching lines here\nat all\n"); report != nil {
		t.Errorf("Aggregate(chatter) = %+v, want nil", report)
	}
}

func TestAggregateSymbolLookup(t *testing.T) {
	raw := "[2024-01-01 10:00:00] Player connected: Shayan1509\n" +
		"[2024-01-01 10:01:00] Player connected: Stranger\n"

	report := testAggregator().Aggregate(raw)
	if report == nil {
		t.Fatal("Aggregate returned nil")
	}
	if !strings.HasPrefix(report.Entries[0], "◆ ") {
		t.Errorf("known player symbol missing: %q", report.Entries[0])
	}
	if !strings.HasPrefix(report.Entries[1], "• ") {
		t.Errorf("default symbol missing: %q", report.Entries[1])
	}
}

func TestAggregateTotalsOrder(t *testing.T) {
	// Totals keep first-completion order, not alphabetical.
	raw := "[2024-01-01 10:00:00] Player connected: Zed\n" +
		"[2024-01-01 10:01:00] Player connected: Alice\n" +
		"[2024-01-01 10:10:00] Player disconnected: Zed\n" +
		"[2024-01-01 10:11:00] Player disconnected: Alice\n"

	report := testAggregator().Aggregate(raw)
	if report == nil {
		t.Fatal("Aggregate returned nil")
	}
	if report.Totals[0].Player != "Zed" || report.Totals[1].Player != "Alice" {
		t.Errorf("Totals order = %+v, want Zed then Alice", report.Totals)
	}
}
