package battle

import (
	"time"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
)

// Player is the player's side of a run.
type Player struct {
	MaxHP int
	HP    int
	Score int
	Combo int
}

// Result describes one resolved turn.
type Result struct {
	Correct         bool
	Critical        bool
	TimedOut        bool
	Surrendered     bool
	DamageDealt     int
	DamageTaken     int
	TimeBonus       int
	ScoreGained     int
	MonsterDefeated bool
	PlayerDefeated  bool

	// Expected is the problem the turn was played on. Nil when the turn
	// ended before a problem arrived.
	Expected *problemgen.Problem
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeCleared  Outcome = "cleared"
	OutcomeDefeated Outcome = "defeated"
	OutcomeAborted  Outcome = "aborted"
)

// Run is the data shared by every in-run state.
type Run struct {
	RunID         string
	Difficulty    Difficulty
	Kinds         []catalog.Kind
	Player        Player
	Monster       Monster
	MonsterIndex  int
	QuestionIndex int

	// Turn numbers each problem's lifetime. A timeout starts a new turn
	// without advancing QuestionIndex.
	Turn int
}

// State is a session state. It is one of Initializing, AwaitingAnswer,
// Resolving, ShowingResult or RunEnded.
type State interface {
	// Current returns the run data carried by the state.
	Current() Run
	isState()
}

// Initializing is the state before a run starts.
type Initializing struct{}

// AwaitingAnswer is an open turn. Problem is nil while the problem is
// still being generated; the countdown runs only once it is set.
type AwaitingAnswer struct {
	Run      Run
	Problem  *problemgen.Problem
	Elapsed  time.Duration
	Interval time.Duration
}

// Resolving shows the effect of an answer (or a lethal timeout) before
// the result is displayed.
type Resolving struct {
	Run    Run
	Result Result
}

// ShowingResult waits for the player to advance.
type ShowingResult struct {
	Run    Run
	Result Result
}

// RunEnded is terminal. Last is the final turn's result, if any.
type RunEnded struct {
	Run     Run
	Outcome Outcome
	Last    *Result
}

func (Initializing) Current() Run     { return Run{} }
func (s AwaitingAnswer) Current() Run { return s.Run }
func (s Resolving) Current() Run      { return s.Run }
func (s ShowingResult) Current() Run  { return s.Run }
func (s RunEnded) Current() Run       { return s.Run }

func (Initializing) isState()   {}
func (AwaitingAnswer) isState() {}
func (Resolving) isState()      {}
func (ShowingResult) isState()  {}
func (RunEnded) isState()       {}
