package browser

// Selectors for the hosting panel. These are the full scrape surface; if the
// panel markup changes, this is the only file that needs to move.
const (
	SelUsername      = ".username"
	SelPassword      = ".password"
	SelLoginButton   = ".login-button"
	SelServerCard    = ".server-body"
	SelStartButton   = "button#start"
	SelStopButton    = "button#stop"
	SelConfirmButton = "button#confirm"
	SelStatusLabel   = "span.statuslabel-label"
	SelQueueTime     = "div.server-status-label-left.queue-time"
	SelLogContent    = "div.page-content.page-log"

	// Consent/notification prompt dismissal.
	SelNotificationNo = `button:text-is("No")`
)
