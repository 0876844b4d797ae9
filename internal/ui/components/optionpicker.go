package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bokibattle/internal/ui/theme"
)

// OptionPicker is the answer selector for single-choice and numeric
// questions. Options are laid out in two columns and can be picked with
// the arrow keys or directly by number.
type OptionPicker struct {
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int

	// CorrectIndex is revealed once the answer is resolved; -1 hides it.
	CorrectIndex int
}

// NewOptionPicker creates a picker over options.
func NewOptionPicker(options []string) OptionPicker {
	return OptionPicker{
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Update handles keyboard navigation and selection. Pressing a digit
// selects and submits that option at once.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if p.Submitted || len(p.Options) == 0 {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if p.Selected >= 2 {
			p.Selected -= 2
		}
	case "down", "j":
		if p.Selected+2 < len(p.Options) {
			p.Selected += 2
		}
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case "enter":
		p.submit(p.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(p.Options) {
				p.Selected = i
				p.submit(i)
			}
		}
	}
	return p, nil
}

func (p *OptionPicker) submit(i int) {
	p.Submitted = true
	p.ChosenIndex = i
}

// Chosen returns the submitted option.
func (p OptionPicker) Chosen() (string, bool) {
	if !p.Submitted || p.ChosenIndex < 0 || p.ChosenIndex >= len(p.Options) {
		return "", false
	}
	return p.Options[p.ChosenIndex], true
}

// Reveal marks the option equal to correct for display.
func (p OptionPicker) Reveal(correct string) OptionPicker {
	for i, o := range p.Options {
		if o == correct {
			p.CorrectIndex = i
		}
	}
	return p
}

// View renders the options in two columns of the given total width.
func (p OptionPicker) View(width int) string {
	colWidth := max(width/2-2, 12)
	var rows []string
	for i := 0; i < len(p.Options); i += 2 {
		cells := []string{p.cell(i, colWidth)}
		if i+1 < len(p.Options) {
			cells = append(cells, p.cell(i+1, colWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (p OptionPicker) cell(i, width int) string {
	prefix := "  "
	if i == p.Selected && !p.Submitted {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%d. %s", prefix, i+1, p.Options[i])

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case i == p.CorrectIndex:
		style = theme.Correct
	case p.Submitted && i == p.ChosenIndex:
		style = theme.Incorrect
	case p.CorrectIndex >= 0:
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	case i == p.Selected:
		style = theme.Selected
	}
	return style.Width(width).Render(line)
}
