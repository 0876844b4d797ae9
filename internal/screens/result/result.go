package result

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	game "github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/router"
	"github.com/abhisek/bokibattle/internal/screen"
	"github.com/abhisek/bokibattle/internal/store"
	"github.com/abhisek/bokibattle/internal/ui/components"
	"github.com/abhisek/bokibattle/internal/ui/layout"
	"github.com/abhisek/bokibattle/internal/ui/theme"
)

type bestLoadedMsg struct {
	Best int
	Err  error
}

// ResultScreen shows how a finished run went and offers a retry.
type ResultScreen struct {
	snap   game.Snapshot
	kinds  []catalog.Kind
	runs   store.RunRepo
	menu   components.Menu
	best   int
	loaded bool
	errMsg string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a result screen for the final snapshot of a run. runs may
// be nil when nothing is persisted.
func New(snap game.Snapshot, kinds []catalog.Kind, runs store.RunRepo) *ResultScreen {
	s := &ResultScreen{snap: snap, kinds: kinds, runs: runs}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "もう一度挑戦", Action: func() tea.Cmd {
			return func() tea.Msg {
				return screen.StartBattleMsg{Difficulty: snap.Difficulty, Kinds: kinds, Replace: true}
			}
		}},
		{Label: "ランキング", Disabled: runs == nil, Action: func() tea.Cmd {
			return func() tea.Msg { return screen.ShowRankingMsg{Difficulty: snap.Difficulty.Level} }
		}},
		{Label: "タイトルへ", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	})
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	if s.runs == nil {
		return nil
	}
	runs, level := s.runs, string(s.snap.Difficulty.Level)
	return func() tea.Msg {
		best, err := runs.BestScore(context.Background(), level)
		return bestLoadedMsg{Best: best, Err: err}
	}
}

func (s *ResultScreen) Title() string {
	return "リザルト"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選択"},
		{Key: "Enter", Description: "決定"},
		{Key: "Esc", Description: "タイトルへ"},
	}
}

// CapturesBack sends Esc to the title screen rather than back into the
// finished battle.
func (s *ResultScreen) CapturesBack() bool { return true }

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bestLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.best = msg.Best
		return s, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// NewRecord reports whether the run set the best score of its difficulty.
func (s *ResultScreen) NewRecord() bool {
	return s.loaded && s.errMsg == "" && s.snap.Player.Score > 0 && s.snap.Player.Score >= s.best
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	sections = append(sections, s.renderBanner())
	sections = append(sections, components.Panel("", s.renderStats(), cw))

	if last := s.snap.Result; last != nil && last.Expected != nil && !last.Correct {
		sections = append(sections, components.Panel("最後の問題", renderLastProblem(last.Expected), cw))
	}

	var buttons []string
	for i, item := range s.menu.Items {
		label := item.Label
		if item.Disabled {
			label = lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
		}
		buttons = append(buttons, components.ArcadeButton(label, i == s.menu.Selected, cw/3))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *ResultScreen) renderBanner() string {
	switch s.snap.Outcome {
	case game.OutcomeCleared:
		return theme.Title.Render("★ ALL CLEAR ★") + "\n" +
			theme.Subtitle.Render("100問を戦い抜いた！")
	case game.OutcomeDefeated:
		sub := "力尽きてしまった…"
		if s.snap.Result != nil && s.snap.Result.Surrendered {
			sub = "撤退した"
		}
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("GAME OVER") + "\n" +
			theme.Subtitle.Render(sub)
	}
	return theme.Subtitle.Render("中断しました")
}

func (s *ResultScreen) renderStats() string {
	snap := s.snap
	lines := []string{
		fmt.Sprintf("難易度      %s", snap.Difficulty.Label),
		fmt.Sprintf("スコア      %s", layout.Number(snap.Player.Score)),
		fmt.Sprintf("到達        %d問目 / モンスター%d体目", snap.QuestionIndex, snap.Monster.Level),
	}
	switch {
	case !s.loaded:
	case s.errMsg != "":
		lines = append(lines, theme.Hint.Render("ベストスコアを読み込めません: "+s.errMsg))
	case s.NewRecord():
		lines = append(lines, theme.CriticalHit.Render("NEW RECORD!"))
	default:
		lines = append(lines, fmt.Sprintf("ベスト      %s", layout.Number(s.best)))
	}
	return strings.Join(lines, "\n")
}

func renderLastProblem(p *problemgen.Problem) string {
	var b strings.Builder
	b.WriteString(p.Text + "\n")
	b.WriteString(theme.Correct.Render("正解: "+components.AnswerText(p)) + "\n")
	if p.Explanation != "" {
		b.WriteString(theme.Hint.Render(p.Explanation))
	}
	return b.String()
}
