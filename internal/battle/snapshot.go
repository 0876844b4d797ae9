package battle

import (
	"time"

	"github.com/abhisek/bokibattle/internal/problemgen"
)

// Screen identifies what the presentation layer should show.
type Screen string

const (
	ScreenIdle      Screen = "idle"
	ScreenLoading   Screen = "loading"
	ScreenBattle    Screen = "battle"
	ScreenResolving Screen = "resolving"
	ScreenResult    Screen = "result"
	ScreenClear     Screen = "clear"
	ScreenGameOver  Screen = "gameover"
	ScreenAborted   Screen = "aborted"
)

// Snapshot is the read-only view handed to the presentation layer after
// every transition.
type Snapshot struct {
	Screen        Screen
	Difficulty    Difficulty
	Turn          int
	QuestionIndex int
	Problem       *problemgen.Problem
	Player        Player
	Monster       Monster
	Elapsed       time.Duration
	Interval      time.Duration
	Result        *Result
	Outcome       Outcome
}

// Remaining returns the share of the countdown left, from 1 to 0.
func (s Snapshot) Remaining() float64 {
	if s.Interval <= 0 {
		return 0
	}
	return max(0, 1-float64(s.Elapsed)/float64(s.Interval))
}

// SnapshotOf builds the presentation view of st.
func SnapshotOf(st State) Snapshot {
	run := st.Current()
	snap := Snapshot{
		Difficulty:    run.Difficulty,
		Turn:          run.Turn,
		QuestionIndex: run.QuestionIndex,
		Player:        run.Player,
		Monster:       run.Monster,
	}
	switch s := st.(type) {
	case Initializing:
		snap.Screen = ScreenIdle
	case AwaitingAnswer:
		snap.Screen = ScreenBattle
		if s.Problem == nil {
			snap.Screen = ScreenLoading
		}
		snap.Problem = s.Problem
		snap.Elapsed = s.Elapsed
		snap.Interval = s.Interval
	case Resolving:
		res := s.Result
		snap.Screen = ScreenResolving
		snap.Result = &res
		snap.Problem = res.Expected
	case ShowingResult:
		res := s.Result
		snap.Screen = ScreenResult
		snap.Result = &res
		snap.Problem = res.Expected
	case RunEnded:
		snap.Outcome = s.Outcome
		snap.Result = s.Last
		switch s.Outcome {
		case OutcomeCleared:
			snap.Screen = ScreenClear
		case OutcomeDefeated:
			snap.Screen = ScreenGameOver
		default:
			snap.Screen = ScreenAborted
		}
	}
	return snap
}
