package battle

import (
	"testing"
	"time"

	game "github.com/abhisek/bokibattle/internal/battle"
)

func TestTeaScheduler_TickerGenerations(t *testing.T) {
	s := NewTeaScheduler()
	ev := game.Tick{Turn: 1, Delta: time.Millisecond}

	s.StartTicker(time.Millisecond, ev)
	if !s.Ticking() {
		t.Fatal("expected ticker running")
	}
	first := s.gen
	if s.Flush() == nil {
		t.Fatal("expected armed tick command")
	}

	if _, ok := s.accept(tickMsg{gen: first, ev: ev}); !ok {
		t.Error("expected current tick accepted")
	}
	if s.Flush() == nil {
		t.Error("expected accepted tick to re-arm")
	}

	s.StopTicker()
	if s.Ticking() {
		t.Error("expected ticker stopped")
	}
	if _, ok := s.accept(tickMsg{gen: first, ev: ev}); ok {
		t.Error("tick after stop should be dropped")
	}

	s.StartTicker(time.Millisecond, ev)
	if _, ok := s.accept(tickMsg{gen: first, ev: ev}); ok {
		t.Error("tick of a replaced ticker should be dropped")
	}
}

func TestTeaScheduler_GoAndFlush(t *testing.T) {
	s := NewTeaScheduler()
	if s.Flush() != nil {
		t.Fatal("expected nothing pending")
	}

	s.Go(func() game.Event { return game.Advance{} })
	cmd := s.Flush()
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(eventMsg)
	if !ok {
		t.Fatalf("expected eventMsg")
	}
	if _, ok := msg.ev.(game.Advance); !ok {
		t.Errorf("expected Advance, got %T", msg.ev)
	}
	if s.Flush() != nil {
		t.Error("flush should drain the queue")
	}
}

func TestTeaScheduler_After(t *testing.T) {
	s := NewTeaScheduler()
	s.After(time.Millisecond, game.DisplayDone{Turn: 3})
	msg, ok := s.Flush()().(eventMsg)
	if !ok {
		t.Fatal("expected eventMsg")
	}
	if d, ok := msg.ev.(game.DisplayDone); !ok || d.Turn != 3 {
		t.Errorf("unexpected event %#v", msg.ev)
	}
}

func TestTeaScheduler_PauseResume(t *testing.T) {
	s := NewTeaScheduler()
	ev := game.Tick{Turn: 1, Delta: time.Millisecond}
	s.StartTicker(time.Millisecond, ev)
	s.Flush()
	before := s.gen

	s.Pause()
	if s.Ticking() {
		t.Error("paused ticker should not report ticking")
	}
	if _, ok := s.accept(tickMsg{gen: before, ev: ev}); ok {
		t.Error("tick in flight at pause should be dropped")
	}
	if _, ok := s.accept(tickMsg{gen: s.gen, ev: ev}); ok {
		t.Error("tick while paused should be dropped")
	}

	// A ticker started while paused waits for Resume.
	s.StartTicker(time.Millisecond, game.Tick{Turn: 2, Delta: time.Millisecond})
	if s.Flush() != nil {
		t.Error("ticker started while paused should not arm")
	}

	s.Resume()
	if !s.Ticking() {
		t.Fatal("expected ticker running after resume")
	}
	cmd := s.Flush()
	if cmd == nil {
		t.Fatal("expected resume to arm the ticker")
	}
	if _, ok := s.accept(tickMsg{gen: s.gen, ev: ev}); !ok {
		t.Error("expected tick of resumed ticker accepted")
	}
}

func TestTeaScheduler_ResumeAfterStop(t *testing.T) {
	s := NewTeaScheduler()
	s.StartTicker(time.Millisecond, game.Tick{Turn: 1})
	s.Flush()
	s.Pause()
	s.StopTicker()
	s.Resume()
	if s.Ticking() {
		t.Error("stopped ticker should stay stopped")
	}
	if s.Flush() != nil {
		t.Error("nothing should be armed")
	}
}
