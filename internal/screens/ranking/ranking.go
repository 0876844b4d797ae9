package ranking

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	game "github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/router"
	"github.com/abhisek/bokibattle/internal/screen"
	"github.com/abhisek/bokibattle/internal/store"
	"github.com/abhisek/bokibattle/internal/ui/layout"
	"github.com/abhisek/bokibattle/internal/ui/theme"
)

// rows is how many runs a tab lists.
const rows = 10

type runsLoadedMsg struct {
	Runs  []store.ScoreRecord
	Bests map[string]int
	Err   error
}

// RankingScreen lists the highest scoring recorded runs per difficulty.
type RankingScreen struct {
	repo     store.RunRepo
	tabs     []game.Level
	tab      int
	runs     []store.ScoreRecord
	bests    map[string]int
	selected int
	expanded bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*RankingScreen)(nil)
var _ screen.KeyHintProvider = (*RankingScreen)(nil)

// New creates a ranking screen opened on level's tab.
func New(repo store.RunRepo, level game.Level) *RankingScreen {
	s := &RankingScreen{repo: repo}
	for _, d := range game.Difficulties() {
		s.tabs = append(s.tabs, d.Level)
		if d.Level == level {
			s.tab = len(s.tabs) - 1
		}
	}
	return s
}

func (s *RankingScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		ctx := context.Background()
		runs, err := repo.Recent(ctx, store.RecentOpts{Limit: store.MaxHistory})
		if err != nil {
			return runsLoadedMsg{Err: err}
		}
		bests, err := repo.BestScores(ctx)
		if err != nil {
			return runsLoadedMsg{Err: err}
		}
		return runsLoadedMsg{Runs: runs, Bests: bests}
	}
}

func (s *RankingScreen) Title() string {
	return "ランキング"
}

func (s *RankingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "難易度"},
		{Key: "↑↓", Description: "選択"},
		{Key: "Enter", Description: "詳細"},
		{Key: "Esc", Description: "戻る"},
	}
}

// Level returns the difficulty of the current tab.
func (s *RankingScreen) Level() game.Level {
	return s.tabs[s.tab]
}

// Top returns the runs of the current tab, best score first. Ties keep
// the newer run first.
func (s *RankingScreen) Top() []store.ScoreRecord {
	var out []store.ScoreRecord
	for _, r := range s.runs {
		if r.Difficulty == string(s.Level()) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b store.ScoreRecord) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(out) > rows {
		out = out[:rows]
	}
	return out
}

func (s *RankingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
			s.bests = msg.Bests
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			s.switchTab(-1)
		case "right", "l", "tab":
			s.switchTab(1)
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.Top())-1 {
				s.selected++
			}
		case "enter":
			s.expanded = !s.expanded
		}
	}
	return s, nil
}

func (s *RankingScreen) switchTab(step int) {
	n := len(s.tabs)
	s.tab = (s.tab + step + n) % n
	s.selected = 0
	s.expanded = false
}

func (s *RankingScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nエラー: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  読み込み中...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n")
	best := fmt.Sprintf("BEST %s", layout.Number(s.bests[string(s.Level())]))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Title.Render(best)))
	b.WriteString("\n\n")

	top := s.Top()
	if len(top) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("まだ記録がありません。バトルに挑戦しよう！")))
		return b.String()
	}

	for i, r := range top {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%2d位  %10s点  %s  %s",
			prefix, i+1, layout.Number(r.Score), r.Date.Local().Format("2006/01/02 15:04"), r.PlayerName)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.selected && s.expanded {
			detail := fmt.Sprintf("    %s / %d問 / モンスター%d体撃破 / %s",
				r.Prefecture, r.QuestionsAnswered, r.MonstersDefeated, outcomeLabel(r.Outcome))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(detail)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *RankingScreen) renderTabs() string {
	var tabs []string
	for i, level := range s.tabs {
		label := levelLabel(level)
		if i == s.tab {
			tabs = append(tabs, theme.ButtonActive.Render(" "+label+" "))
		} else {
			tabs = append(tabs, theme.Unselected.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func levelLabel(level game.Level) string {
	d, err := game.DifficultyFor(level)
	if err != nil {
		return string(level)
	}
	return d.Label
}

func outcomeLabel(outcome string) string {
	switch game.Outcome(outcome) {
	case game.OutcomeCleared:
		return "クリア"
	case game.OutcomeDefeated:
		return "ゲームオーバー"
	}
	return outcome
}
