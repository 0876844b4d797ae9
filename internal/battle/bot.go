package battle

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
)

// Bot plays a session headlessly. It answers every problem after Think,
// correctly with probability Accuracy, and advances as soon as a result
// is shown. It schedules its moves on a VirtualScheduler.
type Bot struct {
	Accuracy float64
	Think    time.Duration

	rng      *rand.Rand
	sched    *VirtualScheduler
	answered string
	advanced int
}

// NewBot creates a bot that schedules on sched.
func NewBot(sched *VirtualScheduler, accuracy float64, think time.Duration, rng *rand.Rand) *Bot {
	return &Bot{Accuracy: accuracy, Think: think, rng: rng, sched: sched}
}

// Observe is a session observer (see WithObserver).
func (b *Bot) Observe(s Snapshot) {
	switch s.Screen {
	case ScreenBattle:
		if s.Problem == nil || s.Problem.ID == b.answered {
			return
		}
		b.answered = s.Problem.ID
		answer := problemgen.WrongAnswer(s.Problem)
		if b.rng.Float64() < b.Accuracy {
			answer = problemgen.CorrectAnswer(s.Problem)
		}
		b.sched.After(b.Think, Submit{ProblemID: s.Problem.ID, Answer: answer})
	case ScreenResult:
		if s.Turn == b.advanced {
			return
		}
		b.advanced = s.Turn
		b.sched.After(0, Advance{})
	}
}

// Simulate runs a full session with a bot until the run ends or maxTime
// of virtual time passes, and returns the final state.
func Simulate(s *Session, sched *VirtualScheduler, d Difficulty, kinds []catalog.Kind, maxTime time.Duration) State {
	sched.Attach(s.Dispatch)
	s.Start(d, kinds)
	for {
		st := s.State()
		if _, done := st.(RunEnded); done {
			return st
		}
		if !sched.Step(maxTime) {
			return st
		}
	}
}
