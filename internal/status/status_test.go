package status

import (
	"errors"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected State
	}{
		{
			name:     "plain offline",
			label:    "Offline",
			expected: Offline,
		},
		{
			name:     "plain online",
			label:    "Online",
			expected: Online,
		},
		{
			name:     "offline outranks queue",
			label:    "Offline — waiting in queue",
			expected: Offline,
		},
		{
			name:     "queue position",
			label:    "Waiting in queue: 12",
			expected: Queued,
		},
		{
			name:     "preparing",
			label:    "Preparing ...",
			expected: Preparing,
		},
		{
			name:     "loading",
			label:    "Loading ...",
			expected: Loading,
		},
		{
			name:     "starting",
			label:    "Starting ...",
			expected: Starting,
		},
		{
			name:     "stopping",
			label:    "Stopping ...",
			expected: Stopping,
		},
		{
			name:     "saving",
			label:    "Saving ...",
			expected: Saving,
		},
		{
			name:     "mixed case",
			label:    "ONLINE",
			expected: Online,
		},
		{
			name:     "unrecognized label",
			label:    "Restoring backup",
			expected: Unknown,
		},
		{
			name:     "empty label",
			label:    "",
			expected: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.label); got != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.label, got, tt.expected)
			}
		})
	}
}

// fakeLabelDriver serves one status label, optionally failing the read.
type fakeLabelDriver struct {
	label string
	err   error
}

func (d *fakeLabelDriver) Navigate(string) error          { return nil }
func (d *fakeLabelDriver) Fill(string, string) error      { return nil }
func (d *fakeLabelDriver) Click(string) error             { return nil }
func (d *fakeLabelDriver) IsVisible(string) bool          { return false }
func (d *fakeLabelDriver) IsEnabled(string) bool          { return false }
func (d *fakeLabelDriver) Reload() error                  { return nil }
func (d *fakeLabelDriver) WaitFor(string, time.Duration) error { return nil }
func (d *fakeLabelDriver) Pause(time.Duration)            {}
func (d *fakeLabelDriver) Close() error                   { return nil }

func (d *fakeLabelDriver) ReadText(string) (string, error) {
	return d.label, d.err
}

func TestMonitorPoll(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		err      error
		expected State
	}{
		{
			name:     "read failure yields unknown",
			label:    "",
			err:      errors.New("label detached"),
			expected: Unknown,
		},
		{
			name:     "label is trimmed before classification",
			label:    "  Online  ",
			expected: Online,
		},
		{
			name:     "normal read",
			label:    "Offline",
			expected: Offline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMonitor(&fakeLabelDriver{label: tt.label, err: tt.err})
			if got := m.Poll(); got != tt.expected {
				t.Errorf("Poll() = %s, want %s", got, tt.expected)
			}
		})
	}
}
