// Package lifecycle drives the remote server from whatever state it is in to
// online, capturing and archiving the event log along the way.
package lifecycle

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/minewatch-io/minewatch/internal/archive"
	"github.com/minewatch-io/minewatch/internal/browser"
	"github.com/minewatch-io/minewatch/internal/config"
	"github.com/minewatch-io/minewatch/internal/gamelog"
	"github.com/minewatch-io/minewatch/internal/status"
)

// bootstrapAttempts bounds login retries. Each retry discards the wedged
// page and opens a fresh one; exhausting the budget is fatal for the run.
const bootstrapAttempts = 3

// Controller owns the keep-alive loop. Single logical thread: one UI
// read/action per tick, fixed sleep, repeat.
type Controller struct {
	cfg        *config.Config
	surface    browser.Surface
	driver     browser.Driver
	monitor    *status.Monitor
	archiver   *archive.Archiver
	aggregator *gamelog.Aggregator

	// OnTransition is called once per distinct observed state, in order.
	// The CLI installs a styled printer; nil falls back to the log.
	OnTransition func(status.State)

	// OnQueueEstimate is called at most once per cycle with the queue's
	// remaining-time text.
	OnQueueEstimate func(string)

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a controller. The page is opened during bootstrap.
func New(cfg *config.Config, surface browser.Surface, archiver *archive.Archiver) *Controller {
	return &Controller{
		cfg:      cfg,
		surface:  surface,
		archiver: archiver,
		aggregator: &gamelog.Aggregator{
			BotPlayer:     cfg.BotPlayer,
			Symbols:       cfg.Symbols,
			DefaultSymbol: cfg.DefaultSymbol,
		},
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Run drives one full keep-alive cycle: bootstrap, branch on the first
// observed state, then the monitoring loop until online. The driver is
// closed on every exit path; loop panics are logged as critical and surface
// as an error rather than crashing the process.
func (c *Controller) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Critical error during monitoring: %v", r)
			err = fmt.Errorf("monitoring loop panicked: %v", r)
		}
		if c.driver != nil {
			if cerr := c.driver.Close(); cerr != nil {
				log.Printf("Failed to close driver: %v", cerr)
			}
		}
	}()

	if err := c.bootstrap(); err != nil {
		return err
	}

	// Let the page settle, then clear any consent prompt before the first
	// classification.
	c.driver.Pause(c.cfg.PollInterval)
	cyc := &cycle{}
	if c.dismissNotification() {
		cyc.notificationHandled = true
	}

	switch st := c.monitor.Poll(); st {
	case status.Online:
		log.Printf("Already online; nothing to do")
		return nil
	case status.Preparing, status.Loading, status.Starting:
		// A start is already in flight, and whoever issued it captured
		// the logs.
		log.Printf("Server is %s; start already in flight, skipping capture", st)
		cyc.startIssued = true
		cyc.startIssuedAt = c.now()
	case status.Stopping, status.Saving:
		log.Printf("Server is %s; waiting for offline before processing logs", st)
	default:
		// Offline, queued, or unreadable: snapshot the logs now, before
		// any start can wipe them.
		c.captureAndStage(cyc)
	}

	return c.loop(cyc)
}

// bootstrap authenticates and selects the managed server, retrying with a
// fresh page on any failure.
func (c *Controller) bootstrap() error {
	for attempt := 1; attempt <= bootstrapAttempts; attempt++ {
		page, err := c.surface.NewPage()
		if err != nil {
			log.Printf("Failed to open page (attempt %d/%d): %v", attempt, bootstrapAttempts, err)
			continue
		}
		if err := c.login(page); err != nil {
			log.Printf("Stuck at login, resetting page (attempt %d/%d): %v", attempt, bootstrapAttempts, err)
			_ = page.Close()
			continue
		}
		c.driver = page
		c.monitor = status.NewMonitor(page)
		return nil
	}
	return fmt.Errorf("login failed after %d attempts", bootstrapAttempts)
}

func (c *Controller) login(d browser.Driver) error {
	if err := d.Navigate(c.cfg.PanelURL); err != nil {
		return fmt.Errorf("open panel: %w", err)
	}
	if err := d.Fill(browser.SelUsername, c.cfg.Username); err != nil {
		return fmt.Errorf("fill username: %w", err)
	}
	if err := d.Fill(browser.SelPassword, c.cfg.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	if err := d.Click(browser.SelLoginButton); err != nil {
		return fmt.Errorf("submit login: %w", err)
	}
	if err := d.WaitFor(browser.SelServerCard, c.cfg.LoginTimeout); err != nil {
		return fmt.Errorf("server list did not appear: %w", err)
	}
	if err := d.Click(browser.SelServerCard); err != nil {
		return fmt.Errorf("select server: %w", err)
	}
	if err := d.WaitFor(browser.SelStatusLabel, c.cfg.WaitTimeout); err != nil {
		return fmt.Errorf("status label did not appear: %w", err)
	}
	return nil
}

// loop is the steady-state machine. The per-tick order is fixed:
// notification dismissal, classification, offline/start handling, online
// finish, queue estimate, confirm click. Later checks assume the earlier
// ones already ran this tick.
func (c *Controller) loop(cyc *cycle) error {
	log.Printf("Monitoring progress")
	var lastPrinted status.State

	for {
		if !cyc.notificationHandled && c.dismissNotification() {
			cyc.notificationHandled = true
		}

		st := c.monitor.Poll()

		if st == status.Offline {
			c.handleOffline(cyc)
		}

		if st == status.Online {
			c.transition(st, &lastPrinted)
			log.Printf("Server is now online")
			if cyc.capturePending && cyc.report != nil {
				c.archiver.Push([]byte(cyc.report.Render()))
			}
			return nil
		}

		c.transition(st, &lastPrinted)

		if st == status.Queued && !cyc.queuePrinted {
			if estimate, err := c.driver.ReadText(browser.SelQueueTime); err == nil {
				if estimate = strings.TrimSpace(estimate); estimate != "" {
					c.queueEstimate(estimate)
					cyc.queuePrinted = true
				}
			}
		}

		if c.driver.IsVisible(browser.SelConfirmButton) && c.driver.IsEnabled(browser.SelConfirmButton) {
			if err := c.driver.Click(browser.SelConfirmButton); err != nil {
				log.Printf("Confirm click failed: %v", err)
			} else {
				log.Printf("Confirm button clicked")
				// The confirmation dialog needs settle time.
				c.driver.Pause(c.cfg.ConfirmSettle)
			}
		}

		c.sleep(c.cfg.PollInterval)
	}
}

// handleOffline issues the start action (capturing logs first, once per
// cycle) and recovers from a server that silently fails to leave offline.
func (c *Controller) handleOffline(cyc *cycle) {
	if !cyc.startIssued {
		if !c.driver.IsVisible(browser.SelStartButton) || !c.driver.IsEnabled(browser.SelStartButton) {
			return
		}
		if !cyc.captured {
			c.captureAndStage(cyc)
		}
		if err := c.driver.Click(browser.SelStartButton); err != nil {
			log.Printf("Start click failed: %v", err)
			return
		}
		log.Printf("Start button clicked")
		cyc.startIssued = true
		cyc.startIssuedAt = c.now()
		return
	}

	if c.now().Sub(cyc.startIssuedAt) > c.cfg.StuckThreshold {
		log.Printf("Stuck offline for %s after start; reloading", c.cfg.StuckThreshold)
		if err := c.driver.Reload(); err != nil {
			log.Printf("Reload failed: %v", err)
		}
		c.driver.Pause(c.cfg.ReloadSettle)
		cyc.resetAfterReload(c.now())
	}
}

// captureAndStage snapshots the raw log, aggregates it, and stages the
// report for archival at online. Runs at most once per cycle; any failure
// abandons archival for this cycle without blocking the lifecycle.
func (c *Controller) captureAndStage(cyc *cycle) {
	cyc.captured = true

	capturer := gamelog.NewCapturer(c.driver, c.cfg.LogURL, c.cfg.ServerURL, c.cfg.RawLogPath(), c.cfg.WaitTimeout)
	raw, err := capturer.Capture()
	if err != nil {
		log.Printf("Failed to save logs: %v", err)
		return
	}

	report := c.aggregator.Aggregate(raw)
	if report == nil {
		log.Printf("No player activity found; skipping report creation")
		return
	}
	if err := report.WriteFile(c.cfg.ReportPath()); err != nil {
		log.Printf("Failed to stage report: %v", err)
	}

	cyc.report = report
	cyc.capturePending = true
	log.Printf("Connection report staged (%d players)", len(report.Totals))
}

// dismissNotification clears the consent prompt if present. Absence of the
// prompt is a normal outcome, not an error.
func (c *Controller) dismissNotification() bool {
	if !c.driver.IsVisible(browser.SelNotificationNo) {
		return false
	}
	if err := c.driver.Click(browser.SelNotificationNo); err != nil {
		return false
	}
	log.Printf("Notification prompt handled")
	return true
}

func (c *Controller) transition(st status.State, lastPrinted *status.State) {
	if st == *lastPrinted {
		return
	}
	*lastPrinted = st
	if c.OnTransition != nil {
		c.OnTransition(st)
		return
	}
	log.Printf("Status: %s", st)
}

func (c *Controller) queueEstimate(estimate string) {
	if c.OnQueueEstimate != nil {
		c.OnQueueEstimate(estimate)
		return
	}
	log.Printf("Queue remaining: %s", estimate)
}
