package title

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bokibattle/internal/ui/theme"
)

const bannerArt = `
 ██████╗  ██████╗ ██╗  ██╗██╗
 ██╔══██╗██╔═══██╗██║ ██╔╝██║
 ██████╔╝██║   ██║█████╔╝ ██║
 ██╔══██╗██║   ██║██╔═██╗ ██║
 ██████╔╝╚██████╔╝██║  ██╗██║
 ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  B A T T L E`

const bannerCompact = "簿 記 バ ト ル"

// renderBanner returns the title banner, falling back to a one-line
// version for narrow or short terminals.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := bannerArt
	if compact || cw < 44 {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art) + "\n" + theme.Subtitle.Render("簿記3級 仕訳バトル"))
}
