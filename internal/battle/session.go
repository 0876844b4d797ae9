package battle

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/store"
)

// Profile identifies the player on recorded runs.
type Profile struct {
	Name       string
	Prefecture string
}

// DefaultProfile is used when no profile is configured.
var DefaultProfile = Profile{Name: "プレイヤー", Prefecture: "未設定"}

// Session owns one battle's state. Dispatch applies events one at a time
// and carries out the resulting effects through the ports.
type Session struct {
	mu    sync.Mutex
	state State

	gen       problemgen.Generator
	sched     Scheduler
	notifier  Notifier
	recorder  Recorder
	clock     Clock
	newID     func() string
	logger    *log.Logger
	tick      time.Duration
	profile   Profile
	observers []func(Snapshot)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithNotifier sets the cue sink.
func WithNotifier(n Notifier) SessionOption { return func(s *Session) { s.notifier = n } }

// AddNotifier sends cues to n as well as to the sink already set.
func AddNotifier(n Notifier) SessionOption {
	return func(s *Session) {
		if _, nop := s.notifier.(NopNotifier); nop {
			s.notifier = n
			return
		}
		s.notifier = MultiNotifier{s.notifier, n}
	}
}

// WithRecorder sets where finished runs are persisted.
func WithRecorder(r Recorder) SessionOption { return func(s *Session) { s.recorder = r } }

// WithClock sets the clock used to timestamp records.
func WithClock(c Clock) SessionOption { return func(s *Session) { s.clock = c } }

// WithIDSource sets the run and record identifier source.
func WithIDSource(fn func() string) SessionOption { return func(s *Session) { s.newID = fn } }

// WithLogger sets the logger for swallowed collaborator failures.
func WithLogger(l *log.Logger) SessionOption { return func(s *Session) { s.logger = l } }

// WithTick sets the countdown tick period.
func WithTick(d time.Duration) SessionOption { return func(s *Session) { s.tick = d } }

// WithProfile sets the player profile stored on records.
func WithProfile(p Profile) SessionOption { return func(s *Session) { s.profile = p } }

// WithObserver registers fn to receive a snapshot after every dispatch.
func WithObserver(fn func(Snapshot)) SessionOption {
	return func(s *Session) { s.observers = append(s.observers, fn) }
}

// NewSession creates a session in the Initializing state.
func NewSession(gen problemgen.Generator, sched Scheduler, opts ...SessionOption) *Session {
	s := &Session{
		state:    Initializing{},
		gen:      gen,
		sched:    sched,
		notifier: NopNotifier{},
		clock:    systemClock{},
		newID:    uuid.NewString,
		logger:   log.New(io.Discard, "", 0),
		tick:     DefaultTick,
		profile:  DefaultProfile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new run with a fresh run ID.
func (s *Session) Start(d Difficulty, kinds []catalog.Kind) {
	s.Dispatch(Start{RunID: s.newID(), Difficulty: d, Kinds: kinds})
}

// Dispatch applies ev and performs the resulting effects. Calls are
// serialized; observers run before Dispatch returns and must not call
// Dispatch themselves.
func (s *Session) Dispatch(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pr, ok := ev.(ProblemReady); ok && pr.Err != nil {
		s.logger.Printf("warning: problem generation failed for turn %d: %v", pr.Turn, pr.Err)
	}

	next, effects := Transition(s.state, ev)
	s.state = next
	for _, eff := range effects {
		s.perform(eff)
	}

	snap := SnapshotOf(next)
	for _, fn := range s.observers {
		fn(snap)
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the presentation view of the current state.
func (s *Session) Snapshot() Snapshot {
	return SnapshotOf(s.State())
}

func (s *Session) perform(eff Effect) {
	switch e := eff.(type) {
	case RequestProblem:
		gen, req, turn := s.gen, e.Request, e.Turn
		s.sched.Go(func() Event {
			p, err := gen.Generate(context.Background(), req)
			return ProblemReady{Turn: turn, Problem: p, Err: err}
		})
	case StartCountdown:
		s.sched.StartTicker(s.tick, Tick{Turn: e.Turn, Delta: s.tick})
	case StopCountdown:
		s.sched.StopTicker()
	case Schedule:
		s.sched.After(e.Delay, e.Event)
	case Notify:
		s.notifier.Notify(e.Cue)
	case RecordRun:
		s.record(e.Outcome)
	}
}

// record persists the finished run. Failures are logged and dropped.
func (s *Session) record(outcome Outcome) {
	if s.recorder == nil {
		return
	}
	run := s.state.Current()
	rec := store.ScoreRecord{
		ID:                s.newID(),
		Date:              s.clock.Now(),
		Score:             run.Player.Score,
		Difficulty:        string(run.Difficulty.Level),
		QuestionsAnswered: run.QuestionIndex,
		MonstersDefeated:  monstersDefeated(s.state),
		PlayerName:        s.profile.Name,
		Prefecture:        s.profile.Prefecture,
		Outcome:           string(outcome),
	}
	if err := s.recorder.RecordRun(context.Background(), rec); err != nil {
		s.logger.Printf("warning: failed to record run %s: %v", run.RunID, err)
	}
}

// monstersDefeated counts the monsters beaten in a run. The roster index
// only moves on when the next monster spawns, so a kill on the final
// answer is taken from the last result.
func monstersDefeated(st State) int {
	n := st.Current().MonsterIndex
	if end, ok := st.(RunEnded); ok && end.Last != nil && end.Last.MonsterDefeated {
		n++
	}
	return n
}
