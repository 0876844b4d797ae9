package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bokibattle/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all sections of
// a framed screen so boxes line up.
func ContentWidth(frameWidth int) int {
	// Cabinet border (2) + inner padding (4).
	return min(max(frameWidth-6, 20), 72)
}

// CabinetFrame wraps content in a double-border frame, centering it
// within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded card with a title line.
func Panel(title, content string, cw int) string {
	body := content
	if title != "" {
		body = theme.Selected.Render(title) + "\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(body)
}

// ArcadeButton renders a menu button; the selected one is highlighted.
func ArcadeButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}
