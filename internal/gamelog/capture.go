package gamelog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/minewatch-io/minewatch/internal/browser"
)

// Capturer snapshots the raw event log from the panel's log view.
type Capturer struct {
	driver      browser.Driver
	logURL      string
	serverURL   string
	stagingPath string
	waitTimeout time.Duration
}

// NewCapturer creates a capturer that stages raw snapshots at stagingPath.
func NewCapturer(d browser.Driver, logURL, serverURL, stagingPath string, waitTimeout time.Duration) *Capturer {
	return &Capturer{
		driver:      d,
		logURL:      logURL,
		serverURL:   serverURL,
		stagingPath: stagingPath,
		waitTimeout: waitTimeout,
	}
}

// Capture navigates to the log view, extracts the raw text, stages it, and
// navigates back to the server view. A capture failure abandons the snapshot
// for this cycle; the lifecycle proceeds without it.
func (c *Capturer) Capture() (string, error) {
	log.Printf("Navigating to log view")
	if err := c.driver.Navigate(c.logURL); err != nil {
		return "", fmt.Errorf("open log view: %w", err)
	}
	// Return to the server view no matter what; the lifecycle loop reads
	// its status label from there.
	defer func() {
		if err := c.driver.Navigate(c.serverURL); err != nil {
			log.Printf("Failed to return to server view: %v", err)
		}
	}()

	if err := c.driver.WaitFor(browser.SelLogContent, c.waitTimeout); err != nil {
		return "", fmt.Errorf("log content did not appear: %w", err)
	}

	raw, err := c.driver.ReadText(browser.SelLogContent)
	if err != nil {
		return "", fmt.Errorf("read log content: %w", err)
	}

	// Staging is best effort — the in-memory text is what feeds the
	// aggregator.
	if err := c.stage(raw); err != nil {
		log.Printf("Failed to stage raw log: %v", err)
	}

	return raw, nil
}

func (c *Capturer) stage(raw string) error {
	if err := os.MkdirAll(filepath.Dir(c.stagingPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(c.stagingPath, []byte(raw), 0644)
}
