package battle

import (
	"time"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
)

// Event is an input to Transition.
type Event interface {
	isEvent()
}

// Start begins a new run.
type Start struct {
	RunID      string
	Difficulty Difficulty
	Kinds      []catalog.Kind
}

// ProblemReady delivers the outcome of a RequestProblem effect.
type ProblemReady struct {
	Turn    int
	Problem *problemgen.Problem
	Err     error
}

// Tick advances the countdown of Turn by Delta.
type Tick struct {
	Turn  int
	Delta time.Duration
}

// Submit answers the current problem. An empty ProblemID skips the
// identity check.
type Submit struct {
	ProblemID string
	Answer    problemgen.Answer
}

// Surrender gives up the run from an open turn.
type Surrender struct{}

// Advance moves on from a shown result.
type Advance struct{}

// DisplayDone ends the resolving display of Turn.
type DisplayDone struct {
	Turn int
}

// Quit abandons the run without recording it.
type Quit struct{}

func (Start) isEvent()        {}
func (ProblemReady) isEvent() {}
func (Tick) isEvent()         {}
func (Submit) isEvent()       {}
func (Surrender) isEvent()    {}
func (Advance) isEvent()      {}
func (DisplayDone) isEvent()  {}
func (Quit) isEvent()         {}
