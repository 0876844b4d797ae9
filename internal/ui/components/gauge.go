package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bokibattle/internal/ui/theme"
)

// Gauge displays a horizontal bar filled to Ratio.
type Gauge struct {
	Label  string
	Ratio  float64
	Value  string
	Width  int
	Filled lipgloss.Style
}

// HPBar returns a gauge for hp out of maxHP coloured by how much is left.
func HPBar(label string, hp, maxHP, width int) Gauge {
	ratio := 0.0
	if maxHP > 0 {
		ratio = float64(hp) / float64(maxHP)
	}
	return Gauge{
		Label:  label,
		Ratio:  ratio,
		Value:  fmt.Sprintf("%d/%d", hp, maxHP),
		Width:  width,
		Filled: theme.HPColor(ratio),
	}
}

// CountdownBar returns the monster attack timer gauge. remaining runs
// from 1 down to 0.
func CountdownBar(remaining float64, width int) Gauge {
	return Gauge{
		Label:  "攻撃まで",
		Ratio:  remaining,
		Width:  width,
		Filled: lipgloss.NewStyle().Background(theme.Secondary),
	}
}

// View renders the gauge.
func (g Gauge) View() string {
	var result string
	if g.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(g.Label) + " "
	}
	value := ""
	if g.Value != "" {
		value = " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(g.Value)
	}

	barWidth := max(g.Width-lipgloss.Width(result)-lipgloss.Width(value), 4)
	filled := min(max(int(float64(barWidth)*g.Ratio+0.5), 0), barWidth)
	if g.Ratio > 0 && filled == 0 {
		filled = 1
	}

	result += g.Filled.Render(strings.Repeat(" ", filled))
	result += theme.GaugeEmpty.Render(strings.Repeat(" ", barWidth-filled))
	return result + value
}
