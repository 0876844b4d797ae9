package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bokibattle/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu. A Toggle item
// flips On when chosen instead of running Action.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
	Toggle   bool
	On       bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. The cursor wraps around and skips
// disabled items.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter", "space", " ":
		item := &m.Items[m.Selected]
		if item.Disabled {
			return m, nil
		}
		if item.Toggle {
			item.On = !item.On
			return m, nil
		}
		if item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

func (m *Menu) move(step int) {
	n := len(m.Items)
	for i, j := 1, m.Selected; i < n; i++ {
		j = (j + step + n) % n
		if !m.Items[j].Disabled {
			m.Selected = j
			return
		}
	}
}

// Toggled returns the indices of toggle items that are on.
func (m Menu) Toggled() []int {
	var out []int
	for i, item := range m.Items {
		if item.Toggle && item.On {
			out = append(out, i)
		}
	}
	return out
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Toggle {
			mark := "[ ] "
			if item.On {
				mark = "[x] "
			}
			label = mark + label
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "    "
		switch {
		case item.Disabled:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
			prefix = "  ▸ "
		}
		b.WriteString(style.Render(prefix+label) + "\n")
	}
	return b.String()
}
