package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/minewatch-io/minewatch/internal/status"
)

// Adaptive colors for CLI output.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// Lifecycle state badge styles, one hue per phase family.
var (
	badgeUp      = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	badgeWorking = lipgloss.NewStyle().Foreground(colorOrange)
	badgeQueue   = lipgloss.NewStyle().Foreground(colorYellow)
	badgeDown    = lipgloss.NewStyle().Foreground(colorRed)
	badgeDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// stateStyle picks the badge style for a lifecycle state.
func stateStyle(st status.State) lipgloss.Style {
	switch st {
	case status.Online, status.Starting:
		return badgeUp
	case status.Preparing, status.Loading:
		return badgeWorking
	case status.Queued:
		return badgeQueue
	case status.Offline, status.Stopping, status.Saving:
		return badgeDown
	default:
		return badgeDim
	}
}
