package lifecycle

import (
	"time"

	"github.com/minewatch-io/minewatch/internal/gamelog"
)

// cycle is the per-cycle control state, owned by the controller. One cycle
// spans from entering the monitoring loop until the server reaches online.
type cycle struct {
	captured            bool // log capture already attempted this cycle
	capturePending      bool // a rendered report awaits archival at online
	startIssued         bool
	startIssuedAt       time.Time
	notificationHandled bool
	queuePrinted        bool

	report *gamelog.Report
}

// resetAfterReload clears the flags the reload recovery invalidates. The
// capture flags survive — logs were already snapshotted this cycle and must
// not be captured twice.
func (cy *cycle) resetAfterReload(now time.Time) {
	cy.startIssued = false
	cy.notificationHandled = false
	cy.startIssuedAt = now
}
