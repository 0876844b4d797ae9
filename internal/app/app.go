package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	game "github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/router"
	"github.com/abhisek/bokibattle/internal/screen"
	battlescreen "github.com/abhisek/bokibattle/internal/screens/battle"
	"github.com/abhisek/bokibattle/internal/screens/ranking"
	"github.com/abhisek/bokibattle/internal/screens/title"
	"github.com/abhisek/bokibattle/internal/store"
	"github.com/abhisek/bokibattle/internal/ui/layout"
)

// Options holds the dependencies shared by every screen.
type Options struct {
	Generator problemgen.Generator

	// Runs persists finished runs. Nil disables recording and the ranking.
	Runs store.RunRepo

	Profile game.Profile

	// Source names the problem source shown on the title screen.
	Source string

	// SessionOptions are applied to every battle session.
	SessionOptions []game.SessionOption
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the title screen.
func newAppModel(opts Options) AppModel {
	titleScreen := title.New(title.Config{
		Runs:    opts.Runs,
		Profile: opts.Profile,
		Source:  opts.Source,
	})
	return AppModel{
		opts:   opts,
		router: router.New(titleScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StartBattleMsg:
		next := battlescreen.New(battlescreen.Config{
			Generator:  m.opts.Generator,
			Difficulty: msg.Difficulty,
			Kinds:      msg.Kinds,
			Runs:       m.opts.Runs,
			Options:    m.opts.SessionOptions,
		})
		if msg.Replace {
			return m, m.router.Replace(next)
		}
		return m, m.router.Push(next)

	case screen.ShowRankingMsg:
		if m.opts.Runs == nil {
			return m, nil
		}
		return m, m.router.Push(ranking.New(m.opts.Runs, msg.Difficulty))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.BackCapturer); ok && c.CapturesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the frame around the active screen.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.opts.Profile.Name+"  ", m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "戻る"},
			{Key: "Ctrl+C", Description: "終了"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選択"},
		{Key: "Enter", Description: "決定"},
		{Key: "Ctrl+C", Description: "終了"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
