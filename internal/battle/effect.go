package battle

import (
	"time"

	"github.com/abhisek/bokibattle/internal/problemgen"
)

// Effect is an instruction returned by Transition for the Session to
// carry out through its ports.
type Effect interface {
	isEffect()
}

// RequestProblem asks for the problem of Turn. The answer comes back as
// a ProblemReady event.
type RequestProblem struct {
	Turn    int
	Request problemgen.Request
}

// StartCountdown starts the tick source for Turn.
type StartCountdown struct {
	Turn     int
	Interval time.Duration
}

// StopCountdown cancels the tick source.
type StopCountdown struct{}

// Schedule delivers Event after Delay.
type Schedule struct {
	Delay time.Duration
	Event Event
}

// Notify emits an audio/visual cue.
type Notify struct {
	Cue Cue
}

// RecordRun persists the finished run.
type RecordRun struct {
	Outcome Outcome
}

func (RequestProblem) isEffect() {}
func (StartCountdown) isEffect() {}
func (StopCountdown) isEffect()  {}
func (Schedule) isEffect()       {}
func (Notify) isEffect()         {}
func (RecordRun) isEffect()      {}

// Cue names a sound or visual effect.
type Cue string

const (
	CueTitleBGM      Cue = "bgm-title"
	CueBattleBGMEasy Cue = "bgm-battle-easy"
	CueBattleBGMHard Cue = "bgm-battle-hard"
	CueSelect        Cue = "select"
	CueDecision      Cue = "decision"
	CueAttack        Cue = "attack"
	CueDamage        Cue = "damage"
	CueCritical      Cue = "critical"
	CueClear         Cue = "clear"
	CueGameOver      Cue = "gameover"
	CueCancel        Cue = "cancel"
)

// BattleBGM returns the battle music cue for level.
func BattleBGM(level Level) Cue {
	if level == LevelEasy {
		return CueBattleBGMEasy
	}
	return CueBattleBGMHard
}
