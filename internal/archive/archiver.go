package archive

import (
	"fmt"
	"log"
	"time"
)

// reportPrefix seeds both the remote filenames and the sequence counting.
const reportPrefix = "Server Logs"

// Archiver fans the rendered report out to the configured sinks. Either sink
// may be nil (not configured); each push is individually fault-tolerant.
type Archiver struct {
	Webhook *WebhookSink
	Store   *StoreSink

	// Source identifies the originating run in store commit messages.
	Source string

	now func() time.Time
}

// NewArchiver wires the sinks for one run. Empty endpoint config disables
// the corresponding sink.
func NewArchiver(webhookURL, storeRepo, storeToken, source string) *Archiver {
	a := &Archiver{Source: source, now: time.Now}
	if webhookURL != "" {
		a.Webhook = NewWebhookSink(webhookURL)
	}
	if storeRepo != "" && storeToken != "" {
		a.Store = NewStoreSink(storeRepo, storeToken)
	}
	return a
}

// Push archives one report. Sink failures are logged and swallowed — the
// run's success does not depend on archival.
func (a *Archiver) Push(report []byte) {
	name := a.nextName()
	filename := name + ".txt"

	if a.Webhook != nil {
		caption := fmt.Sprintf("**%s**", name)
		if err := a.Webhook.Push(filename, caption, report); err != nil {
			log.Printf("Webhook push failed: %v", err)
		} else {
			log.Printf("Uploaded to webhook: %s", filename)
		}
	}

	if a.Store != nil {
		if err := a.Store.Push(filename, a.Source, report); err != nil {
			log.Printf("Store push failed: %v", err)
		} else {
			log.Printf("Saved to central storage: %s", filename)
		}
	}
}

// nextName picks the next collision-avoided report name, falling back to a
// time-based suffix when the sequence cannot be determined.
func (a *Archiver) nextName() string {
	if a.Store != nil {
		n, err := a.Store.NextSequence(reportPrefix)
		if err == nil {
			return fmt.Sprintf("%s %d", reportPrefix, n)
		}
		log.Printf("Numbering error: %v. Using timestamp failsafe.", err)
	}
	return fmt.Sprintf("%s %s", reportPrefix, a.now().Format("1504"))
}
