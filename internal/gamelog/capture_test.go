package gamelog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minewatch-io/minewatch/internal/browser"
)

// fakePage records navigation and serves canned text per selector.
type fakePage struct {
	texts       map[string]string
	failWait    map[string]bool
	navigations []string
}

func (p *fakePage) Navigate(url string) error {
	p.navigations = append(p.navigations, url)
	return nil
}
func (p *fakePage) Fill(string, string) error { return nil }
func (p *fakePage) Click(string) error        { return nil }
func (p *fakePage) IsVisible(string) bool     { return false }
func (p *fakePage) IsEnabled(string) bool     { return false }
func (p *fakePage) Reload() error             { return nil }
func (p *fakePage) Pause(time.Duration)       {}
func (p *fakePage) Close() error              { return nil }

func (p *fakePage) WaitFor(selector string, _ time.Duration) error {
	if p.failWait[selector] {
		return errors.New("wait expired")
	}
	return nil
}

func (p *fakePage) ReadText(selector string) (string, error) {
	if text, ok := p.texts[selector]; ok {
		return text, nil
	}
	return "", errors.New("no such element")
}

func TestCaptureStagesRawLog(t *testing.T) {
	raw := "[2024-01-01 10:00:00] Player connected: Alice\n"
	page := &fakePage{texts: map[string]string{browser.SelLogContent: raw}}
	staging := filepath.Join(t.TempDir(), "Logs.txt")

	c := NewCapturer(page, "https://panel/log/", "https://panel/server/", staging, time.Second)
	got, err := c.Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got != raw {
		t.Errorf("Capture() = %q, want %q", got, raw)
	}

	staged, err := os.ReadFile(staging)
	if err != nil {
		t.Fatalf("staging artifact missing: %v", err)
	}
	if string(staged) != raw {
		t.Errorf("staged content = %q, want %q", staged, raw)
	}

	// Log view first, then back to the server view.
	want := []string{"https://panel/log/", "https://panel/server/"}
	if len(page.navigations) != 2 || page.navigations[0] != want[0] || page.navigations[1] != want[1] {
		t.Errorf("navigations = %v, want %v", page.navigations, want)
	}
}

func TestCaptureAbandonedWhenContentMissing(t *testing.T) {
	page := &fakePage{failWait: map[string]bool{browser.SelLogContent: true}}
	staging := filepath.Join(t.TempDir(), "Logs.txt")

	c := NewCapturer(page, "https://panel/log/", "https://panel/server/", staging, time.Second)
	if _, err := c.Capture(); err == nil {
		t.Fatal("Capture() = nil error, want failure")
	}

	if _, err := os.Stat(staging); !os.IsNotExist(err) {
		t.Errorf("staging artifact produced despite failed capture")
	}

	// Still navigates back to the server view.
	if len(page.navigations) != 2 || page.navigations[1] != "https://panel/server/" {
		t.Errorf("navigations = %v, want return to server view", page.navigations)
	}
}
