// Package browser defines the narrow browser-automation contract the rest of
// the system consumes. The panel exposes no API, so every interaction goes
// through scraped selectors; the concrete driver binding (Playwright, CDP,
// whatever the deployment ships) lives outside this module and registers
// itself via RegisterSurface.
package browser

import (
	"fmt"
	"time"
)

// Driver is one open page against the hosting panel.
//
// Implementations must not panic on missing elements: probes (IsVisible,
// IsEnabled) report false for absent controls, ReadText returns an error the
// caller treats as transient, and WaitFor returns an error on expiry. Every
// wait takes an explicit bound — an unbounded wait can hang the whole run
// with no recovery signal.
type Driver interface {
	Navigate(url string) error
	Fill(selector, value string) error
	Click(selector string) error
	IsVisible(selector string) bool
	IsEnabled(selector string) bool
	ReadText(selector string) (string, error)
	Reload() error
	WaitFor(selector string, timeout time.Duration) error
	Pause(d time.Duration)
	Close() error
}

// Surface owns a browser context and hands out fresh pages. The bootstrap
// retry path discards a wedged page and asks for a new one rather than trying
// to repair it.
type Surface interface {
	NewPage() (Driver, error)
	Close() error
}

// SurfaceFactory opens a browser surface for a run.
type SurfaceFactory func(headless bool) (Surface, error)

var surfaceFactory SurfaceFactory

// RegisterSurface installs the concrete browser binding. Called from an init
// in the deployment build; tests register fakes.
func RegisterSurface(f SurfaceFactory) {
	surfaceFactory = f
}

// OpenSurface opens a surface through the registered factory.
func OpenSurface(headless bool) (Surface, error) {
	if surfaceFactory == nil {
		return nil, fmt.Errorf("no browser surface registered: link a driver binding or run tests with a fake")
	}
	return surfaceFactory(headless)
}
