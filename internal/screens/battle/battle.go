package battle

import (
	tea "charm.land/bubbletea/v2"

	game "github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/router"
	"github.com/abhisek/bokibattle/internal/screen"
	"github.com/abhisek/bokibattle/internal/screens/result"
	"github.com/abhisek/bokibattle/internal/store"
	"github.com/abhisek/bokibattle/internal/ui/components"
	"github.com/abhisek/bokibattle/internal/ui/layout"
)

// Config holds what a battle screen needs to run a session.
type Config struct {
	Generator  problemgen.Generator
	Difficulty game.Difficulty
	Kinds      []catalog.Kind

	// Runs records finished runs and feeds the result screen. May be nil.
	Runs store.RunRepo

	// Options are extra session options (notifier, logger, profile).
	Options []game.SessionOption
}

// BattleScreen hosts one battle session.
type BattleScreen struct {
	cfg     Config
	session *game.Session
	sched   *TeaScheduler
	snap    game.Snapshot

	// Input widgets, rebuilt whenever a new problem is shown.
	problemID string
	picker    components.OptionPicker
	form      components.JournalForm

	// confirm is the open menu dialog. The countdown is paused while it
	// is shown.
	confirm bool
	ended   bool
}

var _ screen.Screen = (*BattleScreen)(nil)
var _ screen.KeyHintProvider = (*BattleScreen)(nil)
var _ screen.BackCapturer = (*BattleScreen)(nil)

// New creates a battle screen. The run starts on Init. Bell cues are
// written through the program's output so they never interleave with a
// frame.
func New(cfg Config) *BattleScreen {
	s := &BattleScreen{cfg: cfg, sched: NewTeaScheduler()}
	var opts []game.SessionOption
	if cfg.Runs != nil {
		opts = append(opts, game.WithRecorder(cfg.Runs))
	}
	opts = append(opts, cfg.Options...)
	opts = append(opts, game.AddNotifier(game.BellNotifier{Ring: s.ring}))
	s.session = game.NewSession(cfg.Generator, s.sched, opts...)
	return s
}

func (s *BattleScreen) ring() {
	s.sched.enqueue(tea.Raw("\a"))
}

func (s *BattleScreen) Init() tea.Cmd {
	s.session.Start(s.cfg.Difficulty, s.cfg.Kinds)
	return s.sync()
}

func (s *BattleScreen) Title() string {
	return "バトル - " + s.cfg.Difficulty.Label
}

// CapturesBack keeps Esc for the surrender dialog while a run is live.
func (s *BattleScreen) CapturesBack() bool {
	return s.live()
}

// Snapshot returns the view of the session last rendered.
func (s *BattleScreen) Snapshot() game.Snapshot {
	return s.snap
}

func (s *BattleScreen) live() bool {
	switch s.snap.Screen {
	case game.ScreenLoading, game.ScreenBattle, game.ScreenResolving, game.ScreenResult:
		return true
	}
	return false
}

// canSurrender reports whether a question is open to be given up.
// Once it is answered only quitting remains.
func (s *BattleScreen) canSurrender() bool {
	return s.snap.Screen == game.ScreenBattle || s.snap.Screen == game.ScreenLoading
}

func (s *BattleScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		var hints []layout.KeyHint
		if s.canSurrender() {
			hints = append(hints, layout.KeyHint{Key: "Y", Description: "降参する"})
		}
		return append(hints,
			layout.KeyHint{Key: "Q", Description: "記録せず終了"},
			layout.KeyHint{Key: "N", Description: "続ける"},
		)
	}
	switch s.snap.Screen {
	case game.ScreenBattle:
		if s.snap.Problem != nil && s.snap.Problem.Kind == catalog.KindJournal {
			return []layout.KeyHint{
				{Key: "Tab", Description: "移動"},
				{Key: "←→", Description: "候補"},
				{Key: "Enter", Description: "攻撃"},
				{Key: "Esc", Description: "メニュー"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-9", Description: "選択して攻撃"},
			{Key: "↑↓←→", Description: "移動"},
			{Key: "Enter", Description: "攻撃"},
			{Key: "Esc", Description: "メニュー"},
		}
	case game.ScreenResult:
		return []layout.KeyHint{{Key: "Enter", Description: "次へ"}}
	case game.ScreenAborted:
		return []layout.KeyHint{{Key: "any key", Description: "戻る"}}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "メニュー"}}
}

func (s *BattleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return s, s.dispatch(msg.ev)
	case tickMsg:
		ev, ok := s.sched.accept(msg)
		if !ok {
			return s, nil
		}
		return s, s.dispatch(ev)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blinks and other widget messages.
	if s.snap.Screen == game.ScreenBattle && s.snap.Problem != nil && s.snap.Problem.Kind == catalog.KindJournal {
		var cmd tea.Cmd
		s.form, cmd = s.form.Update(msg)
		return s, cmd
	}
	return s, nil
}

// dispatch hands ev to the session and returns the resulting commands.
func (s *BattleScreen) dispatch(ev game.Event) tea.Cmd {
	s.session.Dispatch(ev)
	return s.sync()
}

// sync refreshes the snapshot, rebuilds input widgets for a new problem
// and collects scheduled commands.
func (s *BattleScreen) sync() tea.Cmd {
	s.snap = s.session.Snapshot()

	var cmds []tea.Cmd
	if p := s.snap.Problem; s.snap.Screen == game.ScreenBattle && p != nil && p.ID != s.problemID {
		s.problemID = p.ID
		cmds = append(cmds, s.resetInput(p))
	}
	if s.snap.Screen == game.ScreenResult && s.snap.Result != nil && s.snap.Result.Expected != nil {
		s.picker = s.picker.Reveal(optionLabel(s.snap.Result.Expected))
	}
	cmds = append(cmds, s.sched.Flush())

	if !s.ended {
		switch s.snap.Screen {
		case game.ScreenClear, game.ScreenGameOver:
			s.ended = true
			next := result.New(s.snap, s.cfg.Kinds, s.cfg.Runs)
			cmds = append(cmds, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} })
		}
	}
	return tea.Batch(cmds...)
}

func (s *BattleScreen) resetInput(p *problemgen.Problem) tea.Cmd {
	switch p.Kind {
	case catalog.KindJournal:
		s.form = components.NewJournalForm(p.AccountOptions, p.AmountOptions)
		return s.form.Init()
	case catalog.KindNumeric:
		labels := make([]string, len(p.NumericOptions))
		for i, n := range p.NumericOptions {
			labels[i] = components.YenLabel(n)
		}
		s.picker = components.NewOptionPicker(labels)
	default:
		s.picker = components.NewOptionPicker(p.Options)
	}
	return nil
}

// optionLabel is the picker label of p's correct answer.
func optionLabel(p *problemgen.Problem) string {
	if p.Kind == catalog.KindNumeric {
		return components.YenLabel(p.NumericAnswer)
	}
	return p.Correct
}

func (s *BattleScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirm {
		switch key {
		case "y", "Y":
			if !s.canSurrender() {
				return s, nil
			}
			s.confirm = false
			cmd := s.dispatch(game.Surrender{})
			s.sched.Resume()
			return s, cmd
		case "q", "Q":
			s.confirm = false
			cmd := s.dispatch(game.Quit{})
			s.sched.Resume()
			return s, tea.Batch(cmd, func() tea.Msg { return router.PopScreenMsg{} })
		case "n", "N", "esc":
			s.confirm = false
			s.sched.Resume()
			return s, s.sched.Flush()
		}
		return s, nil
	}

	switch s.snap.Screen {
	case game.ScreenAborted:
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case game.ScreenResult:
		switch key {
		case "enter", "space", " ":
			return s, s.dispatch(game.Advance{})
		case "esc":
			s.openConfirm()
		}
		return s, nil
	case game.ScreenBattle:
		if key == "esc" {
			s.openConfirm()
			return s, nil
		}
		return s.answer(msg)
	case game.ScreenLoading:
		if key == "esc" {
			s.openConfirm()
		}
	}
	return s, nil
}

func (s *BattleScreen) openConfirm() {
	s.confirm = true
	s.sched.Pause()
}

// answer forwards a key to the input widget and submits once it is done.
func (s *BattleScreen) answer(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	p := s.snap.Problem
	if p == nil {
		return s, nil
	}

	var cmd tea.Cmd
	var ans problemgen.Answer
	switch p.Kind {
	case catalog.KindJournal:
		s.form, cmd = s.form.Update(msg)
		if s.form.Submitted {
			ans = problemgen.JournalAnswer{Entry: s.form.Entry()}
		}
	case catalog.KindNumeric:
		s.picker, cmd = s.picker.Update(msg)
		if s.picker.Submitted {
			ans = problemgen.NumericAnswer(p.NumericOptions[s.picker.ChosenIndex])
		}
	default:
		s.picker, cmd = s.picker.Update(msg)
		if chosen, ok := s.picker.Chosen(); ok {
			ans = problemgen.SelectAnswer(chosen)
		}
	}
	if ans == nil {
		return s, cmd
	}
	return s, tea.Batch(cmd, s.dispatch(game.Submit{ProblemID: p.ID, Answer: ans}))
}
