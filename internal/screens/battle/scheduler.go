package battle

import (
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	game "github.com/abhisek/bokibattle/internal/battle"
)

// eventMsg carries a deferred session event through the bubbletea loop.
type eventMsg struct {
	ev game.Event
}

// tickMsg is one firing of a ticker. gen identifies the ticker that
// armed it; firings of a stopped or replaced ticker are dropped.
type tickMsg struct {
	gen int
	ev  game.Event
}

// TeaScheduler implements battle.Scheduler on top of bubbletea commands.
// Scheduling calls only queue commands; the screen collects them with
// Flush after every dispatch and hands them to the runtime.
type TeaScheduler struct {
	mu      sync.Mutex
	gen     int
	ticking bool
	paused  bool
	period  time.Duration
	tickEv  game.Event
	pending []tea.Cmd
}

var _ game.Scheduler = (*TeaScheduler)(nil)

// NewTeaScheduler returns an idle scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{}
}

func (s *TeaScheduler) StartTicker(period time.Duration, ev game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.ticking = true
	s.period = period
	s.tickEv = ev
	if !s.paused {
		s.pending = append(s.pending, s.arm())
	}
}

func (s *TeaScheduler) StopTicker() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.ticking = false
}

func (s *TeaScheduler) After(d time.Duration, ev game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return eventMsg{ev: ev}
	}))
}

func (s *TeaScheduler) Go(fn func() game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, func() tea.Msg {
		return eventMsg{ev: fn()}
	})
}

// Pause holds the ticker. Firings already in flight are dropped and a
// ticker started while paused stays unarmed until Resume.
func (s *TeaScheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused {
		return
	}
	s.paused = true
	s.gen++
}

// Resume re-arms a held ticker. The next firing comes a full period
// after the call.
func (s *TeaScheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.paused {
		return
	}
	s.paused = false
	if s.ticking {
		s.gen++
		s.pending = append(s.pending, s.arm())
	}
}

// enqueue adds cmd to the next Flush.
func (s *TeaScheduler) enqueue(cmd tea.Cmd) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, cmd)
}

// arm schedules the next firing of the current ticker. Callers hold mu.
func (s *TeaScheduler) arm() tea.Cmd {
	gen, ev := s.gen, s.tickEv
	return tea.Tick(s.period, func(time.Time) tea.Msg {
		return tickMsg{gen: gen, ev: ev}
	})
}

// accept reports whether m belongs to the running ticker. If so the next
// firing is armed and the event returned for dispatch.
func (s *TeaScheduler) accept(m tickMsg) (game.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ticking || s.paused || m.gen != s.gen {
		return nil, false
	}
	s.pending = append(s.pending, s.arm())
	return m.ev, true
}

// Flush returns the commands queued since the last call as one batch.
func (s *TeaScheduler) Flush() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmds := s.pending
	s.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Ticking reports whether a ticker is running and not paused.
func (s *TeaScheduler) Ticking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticking && !s.paused
}
