package title

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	game "github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/router"
	"github.com/abhisek/bokibattle/internal/screen"
	"github.com/abhisek/bokibattle/internal/store"
	"github.com/abhisek/bokibattle/internal/ui/components"
	"github.com/abhisek/bokibattle/internal/ui/layout"
	"github.com/abhisek/bokibattle/internal/ui/theme"
)

// Config holds what the title screen shows besides its menu.
type Config struct {
	// Runs feeds the best score panel and enables the ranking. May be nil.
	Runs    store.RunRepo
	Profile game.Profile

	// Source describes where problems come from, e.g. "テンプレート".
	Source string
}

type bestsLoadedMsg struct {
	Bests map[string]int
	Err   error
}

// TitleScreen is the root screen: question kinds, difficulty and the
// best score of each difficulty.
type TitleScreen struct {
	cfg    Config
	menu   components.Menu
	kinds  []catalog.Kind
	bests  map[string]int
	errMsg string
	notice string
}

var _ screen.Screen = (*TitleScreen)(nil)
var _ screen.KeyHintProvider = (*TitleScreen)(nil)
var _ router.Refresher = (*TitleScreen)(nil)

// New creates the title screen with every question kind enabled.
func New(cfg Config) *TitleScreen {
	s := &TitleScreen{cfg: cfg, kinds: catalog.AllKinds()}

	var items []components.MenuItem
	for _, k := range s.kinds {
		items = append(items, components.MenuItem{Label: "出題: " + k.Label(), Toggle: true, On: true})
	}
	for _, d := range game.Difficulties() {
		label := d.Label + "で挑戦"
		if d.Level == game.LevelPractice {
			label = "練習モード"
		}
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			return s.start(d)
		}})
	}
	items = append(items,
		components.MenuItem{Label: "ランキング", Disabled: cfg.Runs == nil, Action: func() tea.Cmd {
			return func() tea.Msg { return screen.ShowRankingMsg{} }
		}},
		components.MenuItem{Label: "終了", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	s.menu = components.NewMenu(items)
	return s
}

func (s *TitleScreen) Init() tea.Cmd {
	return s.loadBests()
}

// Refresh reloads best scores when the screen is uncovered.
func (s *TitleScreen) Refresh() tea.Cmd {
	return s.loadBests()
}

func (s *TitleScreen) loadBests() tea.Cmd {
	if s.cfg.Runs == nil {
		return nil
	}
	runs := s.cfg.Runs
	return func() tea.Msg {
		bests, err := runs.BestScores(context.Background())
		return bestsLoadedMsg{Bests: bests, Err: err}
	}
}

// SelectedKinds returns the question kinds switched on.
func (s *TitleScreen) SelectedKinds() []catalog.Kind {
	var out []catalog.Kind
	for _, i := range s.menu.Toggled() {
		out = append(out, s.kinds[i])
	}
	return out
}

func (s *TitleScreen) start(d game.Difficulty) tea.Cmd {
	kinds := s.SelectedKinds()
	if len(kinds) == 0 {
		s.notice = "出題する問題の種類を1つ以上選んでください"
		return nil
	}
	s.notice = ""
	// Every kind on means no filter.
	if len(kinds) == len(s.kinds) {
		kinds = nil
	}
	return func() tea.Msg {
		return screen.StartBattleMsg{Difficulty: d, Kinds: kinds}
	}
}

func (s *TitleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(bestsLoadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.bests = msg.Bests
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TitleScreen) Title() string {
	return "タイトル"
}

func (s *TitleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選択"},
		{Key: "Enter", Description: "決定 / 切替"},
		{Key: "Ctrl+C", Description: "終了"},
	}
}

func (s *TitleScreen) View(width, height int) string {
	compact := height+8 < 30
	cw := components.ContentWidth(width)

	sections := []string{renderBanner(cw, compact)}
	sections = append(sections, s.renderStatus(cw))
	sections = append(sections, components.Panel("", s.menu.View(), cw))
	if s.notice != "" {
		sections = append(sections, theme.Incorrect.Render(s.notice))
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *TitleScreen) renderStatus(cw int) string {
	p := s.cfg.Profile
	line := fmt.Sprintf("%s（%s）", p.Name, p.Prefecture)
	if s.cfg.Source != "" {
		line += "   出題: " + s.cfg.Source
	}

	var bests []string
	switch {
	case s.cfg.Runs == nil:
	case s.errMsg != "":
		bests = append(bests, theme.Hint.Render("ベストスコアを読み込めません"))
	default:
		for _, d := range game.Difficulties() {
			if d.Level == game.LevelPractice {
				continue
			}
			bests = append(bests, fmt.Sprintf("%s BEST %s", d.Label, layout.Number(s.bests[string(d.Level)])))
		}
	}

	body := line
	if len(bests) > 0 {
		body += "\n" + theme.Selected.Render(strings.Join(bests, "   "))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(body)
}
