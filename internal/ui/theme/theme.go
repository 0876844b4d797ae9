package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, retro RPG battle window.
var (
	Primary      = lipgloss.Color("#3B82F6") // Royal Blue
	Secondary    = lipgloss.Color("#22D3EE") // Cyan
	Accent       = lipgloss.Color("#F59E0B") // Amber
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#EF4444") // Red
	Warning      = lipgloss.Color("#EAB308") // Yellow
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0B1020") // Night
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#475569") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Cursor
	Critical     = lipgloss.Color("#F472B6") // Pink
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	// Window is the double-bordered message window of the battle screen.
	Window = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Text).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	CriticalHit = lipgloss.NewStyle().
			Foreground(Critical).
			Bold(true)
)

// Gauges
var (
	GaugeEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)
)

// HPColor picks the gauge colour for the remaining share of hit points.
func HPColor(ratio float64) lipgloss.Style {
	switch {
	case ratio > 0.5:
		return lipgloss.NewStyle().Background(Success)
	case ratio > 0.2:
		return lipgloss.NewStyle().Background(Warning)
	default:
		return lipgloss.NewStyle().Background(Error)
	}
}
