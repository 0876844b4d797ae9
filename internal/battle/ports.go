package battle

import (
	"context"
	"time"

	"github.com/abhisek/bokibattle/internal/store"
)

// Scheduler delivers deferred events back to the session. Implementations
// must deliver asynchronously: none of these methods may call back into
// Session.Dispatch before returning.
type Scheduler interface {
	// StartTicker delivers ev every period until StopTicker. Starting a
	// ticker replaces any running one.
	StartTicker(period time.Duration, ev Event)

	// StopTicker cancels the running ticker, if any. Ticks already in
	// flight may still arrive and are ignored by turn number.
	StopTicker()

	// After delivers ev once after d.
	After(d time.Duration, ev Event)

	// Go runs fn off the event loop and delivers its result.
	Go(fn func() Event)
}

// Notifier is a fire-and-forget sink for cues.
type Notifier interface {
	Notify(cue Cue)
}

// Recorder persists finished runs.
type Recorder interface {
	RecordRun(ctx context.Context, rec store.ScoreRecord) error
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
