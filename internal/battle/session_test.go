package battle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/store"
)

var testEpoch = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type fakeRecorder struct {
	recs []store.ScoreRecord
	err  error
}

func (f *fakeRecorder) RecordRun(_ context.Context, rec store.ScoreRecord) error {
	f.recs = append(f.recs, rec)
	return f.err
}

type cueLog struct {
	cues []Cue
}

func (c *cueLog) Notify(cue Cue) { c.cues = append(c.cues, cue) }

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, problemgen.Request) (*problemgen.Problem, error) {
	return nil, errors.New("no provider")
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestSession(t *testing.T, gen problemgen.Generator, opts ...SessionOption) (*Session, *VirtualScheduler) {
	t.Helper()
	if gen == nil {
		gen = problemgen.NewTemplateGenerator(problemgen.WithSeed(1, 2))
	}
	sched := NewVirtualScheduler(testEpoch)
	base := []SessionOption{WithClock(sched), WithIDSource(counterIDs())}
	s := NewSession(gen, sched, append(base, opts...)...)
	sched.Attach(s.Dispatch)
	return s, sched
}

func TestSessionStartLoadsProblem(t *testing.T) {
	s, sched := newTestSession(t, nil)

	s.Start(mustDifficulty(t, LevelEasy), nil)
	assert.Equal(t, ScreenLoading, s.Snapshot().Screen)
	assert.Equal(t, 1, sched.Pending())
	assert.False(t, sched.Ticking())

	sched.RunUntilIdle(10)

	snap := s.Snapshot()
	assert.Equal(t, ScreenBattle, snap.Screen)
	require.NotNil(t, snap.Problem)
	assert.True(t, sched.Ticking())
	assert.Equal(t, "id-1", s.State().Current().RunID)
}

func TestSessionTimeoutWithVirtualTime(t *testing.T) {
	s, sched := newTestSession(t, nil)
	s.Start(mustDifficulty(t, LevelEasy), nil)
	sched.RunUntilIdle(10)
	first := s.Snapshot().Problem

	sched.Advance(30*time.Second - DefaultTick)
	assert.Equal(t, 300, s.Snapshot().Player.HP)
	assert.Equal(t, 1, s.Snapshot().Turn)

	sched.Advance(DefaultTick)
	snap := s.Snapshot()
	assert.Equal(t, 290, snap.Player.HP)
	assert.Equal(t, 2, snap.Turn)
	assert.Zero(t, snap.QuestionIndex)
	require.NotNil(t, snap.Problem)
	assert.NotEqual(t, first.ID, snap.Problem.ID)

	// An answer to the expired problem has no effect.
	s.Dispatch(Submit{ProblemID: first.ID, Answer: problemgen.CorrectAnswer(first)})
	assert.Equal(t, ScreenBattle, s.Snapshot().Screen)
}

func TestSessionAnswerFlow(t *testing.T) {
	cues := &cueLog{}
	s, sched := newTestSession(t, nil, WithNotifier(cues))
	s.Start(mustDifficulty(t, LevelEasy), []catalog.Kind{catalog.KindSelect})
	sched.RunUntilIdle(10)

	p := s.Snapshot().Problem
	require.Equal(t, catalog.KindSelect, p.Kind)
	sched.Advance(time.Second)

	s.Dispatch(Submit{ProblemID: p.ID, Answer: problemgen.CorrectAnswer(p)})
	snap := s.Snapshot()
	assert.Equal(t, ScreenResolving, snap.Screen)
	assert.True(t, snap.Result.Critical)
	assert.False(t, sched.Ticking())

	sched.Advance(ResultDelay)
	assert.Equal(t, ScreenResult, s.Snapshot().Screen)

	s.Dispatch(Advance{})
	assert.Equal(t, ScreenLoading, s.Snapshot().Screen)
	sched.RunUntilIdle(10)

	snap = s.Snapshot()
	assert.Equal(t, ScreenBattle, snap.Screen)
	assert.Equal(t, 1, snap.QuestionIndex)
	assert.Equal(t, 400, snap.Player.Score)

	assert.Equal(t, []Cue{CueBattleBGMEasy, CueCritical, CueSelect}, cues.cues)
}

func TestSessionRecordsFinishedRun(t *testing.T) {
	rec := &fakeRecorder{}
	s, sched := newTestSession(t, nil,
		WithRecorder(rec),
		WithProfile(Profile{Name: "簿記太郎", Prefecture: "大阪府"}),
	)
	s.Start(mustDifficulty(t, LevelHard), nil)
	sched.RunUntilIdle(10)
	sched.Advance(3 * time.Second)

	s.Dispatch(Surrender{})
	s.Dispatch(Advance{})

	require.Len(t, rec.recs, 1)
	got := rec.recs[0]
	assert.Equal(t, "hard", got.Difficulty)
	assert.Equal(t, "defeated", got.Outcome)
	assert.Equal(t, "簿記太郎", got.PlayerName)
	assert.Equal(t, "大阪府", got.Prefecture)
	assert.Zero(t, got.QuestionsAnswered)
	assert.Zero(t, got.MonstersDefeated)
	assert.Equal(t, testEpoch.Add(3*time.Second), got.Date)
	assert.NotEqual(t, "id-1", got.ID)
}

func TestSessionQuitIsNotRecorded(t *testing.T) {
	rec := &fakeRecorder{}
	s, sched := newTestSession(t, nil, WithRecorder(rec))
	s.Start(mustDifficulty(t, LevelEasy), nil)
	sched.RunUntilIdle(10)

	s.Dispatch(Quit{})
	assert.Equal(t, ScreenAborted, s.Snapshot().Screen)
	assert.Empty(t, rec.recs)
	assert.False(t, sched.Ticking())
}

func TestSessionRecorderFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	rec := &fakeRecorder{err: errors.New("disk full")}
	s, sched := newTestSession(t, nil, WithRecorder(rec), WithLogger(log.New(&buf, "", 0)))
	s.Start(mustDifficulty(t, LevelEasy), nil)
	sched.RunUntilIdle(10)

	s.Dispatch(Surrender{})
	s.Dispatch(Advance{})

	assert.Equal(t, ScreenGameOver, s.Snapshot().Screen)
	assert.Contains(t, buf.String(), "failed to record run")
	assert.Contains(t, buf.String(), "disk full")
}

func TestSessionGenerationFailureAborts(t *testing.T) {
	var buf bytes.Buffer
	s, sched := newTestSession(t, failingGenerator{}, WithLogger(log.New(&buf, "", 0)))
	s.Start(mustDifficulty(t, LevelEasy), nil)
	sched.RunUntilIdle(10)

	assert.Equal(t, ScreenAborted, s.Snapshot().Screen)
	assert.Contains(t, buf.String(), "no provider")
}

func TestSessionNoTemplatesAborts(t *testing.T) {
	s, sched := newTestSession(t, nil)
	s.Start(mustDifficulty(t, LevelEasy), []catalog.Kind{"essay"})
	sched.RunUntilIdle(10)
	assert.Equal(t, ScreenAborted, s.Snapshot().Screen)
}

func TestSessionObserver(t *testing.T) {
	var screens []Screen
	s, sched := newTestSession(t, nil, WithObserver(func(snap Snapshot) {
		screens = append(screens, snap.Screen)
	}))
	s.Start(mustDifficulty(t, LevelEasy), nil)
	sched.RunUntilIdle(10)
	sched.Advance(2 * DefaultTick)

	assert.Equal(t, []Screen{ScreenLoading, ScreenBattle, ScreenBattle, ScreenBattle}, screens)
}

func TestSessionLatencyDelaysProblem(t *testing.T) {
	s, sched := newTestSession(t, nil)
	sched.Latency = 2 * time.Second
	s.Start(mustDifficulty(t, LevelEasy), nil)

	sched.Advance(time.Second)
	assert.Equal(t, ScreenLoading, s.Snapshot().Screen)
	sched.Advance(time.Second)
	assert.Equal(t, ScreenBattle, s.Snapshot().Screen)
	assert.Zero(t, s.Snapshot().Elapsed)
}

func TestSimulateCleanRun(t *testing.T) {
	rec := &fakeRecorder{}
	s, sched := newTestSession(t, nil, WithRecorder(rec))
	bot := NewBot(sched, 1, time.Second, rand.New(rand.NewPCG(3, 4)))
	s.observers = append(s.observers, bot.Observe)

	final := Simulate(s, sched, mustDifficulty(t, LevelEasy), nil, 2*time.Hour)

	end, ok := final.(RunEnded)
	require.True(t, ok, "state = %T", final)
	assert.Equal(t, OutcomeCleared, end.Outcome)
	assert.Equal(t, MaxQuestions, end.Run.QuestionIndex)
	assert.Equal(t, 300, end.Run.Player.HP)
	assert.Equal(t, MaxQuestions*400+ComboBonus*(MaxQuestions-1)*MaxQuestions/2, end.Run.Player.Score)

	require.Len(t, rec.recs, 1)
	assert.Equal(t, MaxQuestions, rec.recs[0].QuestionsAnswered)
	assert.Equal(t, "cleared", rec.recs[0].Outcome)
}

func TestSimulateHopelessRun(t *testing.T) {
	s, sched := newTestSession(t, nil)
	bot := NewBot(sched, 0, time.Second, rand.New(rand.NewPCG(5, 6)))
	s.observers = append(s.observers, bot.Observe)

	final := Simulate(s, sched, mustDifficulty(t, LevelHard), nil, time.Hour)

	end, ok := final.(RunEnded)
	require.True(t, ok, "state = %T", final)
	assert.Equal(t, OutcomeDefeated, end.Outcome)
	assert.Zero(t, end.Run.Player.HP)
	assert.Zero(t, end.Run.Player.Score)
	assert.Equal(t, 6, end.Run.QuestionIndex)
}

func TestSimulateStopsAtTimeLimit(t *testing.T) {
	s, sched := newTestSession(t, nil)
	final := Simulate(s, sched, mustDifficulty(t, LevelPractice), nil, 5*time.Second)

	assert.IsType(t, AwaitingAnswer{}, final)
	assert.LessOrEqual(t, sched.Elapsed(), 5*time.Second)
}

func TestMonstersDefeated(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  int
	}{
		{"in progress", AwaitingAnswer{Run: Run{MonsterIndex: 2}}, 2},
		{"ended without last", RunEnded{Run: Run{MonsterIndex: 3}}, 3},
		{"ended on a miss", RunEnded{Run: Run{MonsterIndex: 3}, Last: &Result{}}, 3},
		{"ended on a kill", RunEnded{Run: Run{MonsterIndex: 3}, Last: &Result{Correct: true, MonsterDefeated: true}}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, monstersDefeated(tc.state))
		})
	}
}

func TestBellNotifierRingsOnHits(t *testing.T) {
	rings := 0
	bell := BellNotifier{Ring: func() { rings++ }}
	for _, cue := range []Cue{CueAttack, CueSelect, CueCancel, CueClear} {
		bell.Notify(cue)
	}
	assert.Zero(t, rings)
	for _, cue := range []Cue{CueDamage, CueCritical, CueGameOver} {
		bell.Notify(cue)
	}
	assert.Equal(t, 3, rings)

	BellNotifier{}.Notify(CueDamage)
}

func TestAddNotifierKeepsExistingSink(t *testing.T) {
	first, second := &cueLog{}, &cueLog{}
	s, sched := newTestSession(t, nil, WithNotifier(first), AddNotifier(second))
	s.Start(mustDifficulty(t, LevelEasy), nil)
	sched.RunUntilIdle(10)
	s.Dispatch(Surrender{})

	assert.Contains(t, first.cues, CueCancel)
	assert.Equal(t, first.cues, second.cues)

	only := &cueLog{}
	s, sched = newTestSession(t, nil, AddNotifier(only))
	s.Start(mustDifficulty(t, LevelEasy), nil)
	sched.RunUntilIdle(10)
	s.Dispatch(Surrender{})
	assert.Contains(t, only.cues, CueCancel)
}
