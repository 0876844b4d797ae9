package battle

import (
	"log"
)

// NopNotifier discards cues.
type NopNotifier struct{}

func (NopNotifier) Notify(Cue) {}

// LogNotifier writes every cue to a logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Notify(cue Cue) {
	n.Logger.Printf("cue: %s", cue)
}

// BellNotifier rings the terminal bell on hits against the player and on
// critical strikes. Ring must hand the bell to whatever owns the
// terminal; it is called with the session lock held.
type BellNotifier struct {
	Ring func()
}

func (n BellNotifier) Notify(cue Cue) {
	if n.Ring == nil {
		return
	}
	switch cue {
	case CueDamage, CueCritical, CueGameOver:
		n.Ring()
	}
}

// MultiNotifier fans cues out to several sinks.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(cue Cue) {
	for _, n := range m {
		n.Notify(cue)
	}
}
