package battle

import (
	"sort"
	"sync"
	"time"
)

// VirtualScheduler is a deterministic Scheduler driven by a virtual
// clock. Nothing happens until Advance, Step or RunUntilIdle is called.
// Events due at the same instant are delivered in the order they were
// scheduled, and before a ticker firing at that instant.
type VirtualScheduler struct {
	mu       sync.Mutex
	epoch    time.Time
	now      time.Duration
	seq      int
	queue    []pending
	ticker   *virtualTicker
	dispatch func(Event)

	// Latency delays the result of Go calls.
	Latency time.Duration
}

type pending struct {
	at  time.Duration
	seq int
	ev  Event
	fn  func() Event
}

type virtualTicker struct {
	period time.Duration
	ev     Event
	next   time.Duration
}

// NewVirtualScheduler returns a scheduler whose clock starts at epoch.
func NewVirtualScheduler(epoch time.Time) *VirtualScheduler {
	return &VirtualScheduler{epoch: epoch}
}

// Attach sets where events are delivered, usually Session.Dispatch.
func (v *VirtualScheduler) Attach(dispatch func(Event)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dispatch = dispatch
}

// Now implements Clock.
func (v *VirtualScheduler) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.epoch.Add(v.now)
}

// Elapsed returns virtual time since the epoch.
func (v *VirtualScheduler) Elapsed() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *VirtualScheduler) StartTicker(period time.Duration, ev Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ticker = &virtualTicker{period: period, ev: ev, next: v.now + period}
}

func (v *VirtualScheduler) StopTicker() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ticker = nil
}

func (v *VirtualScheduler) After(d time.Duration, ev Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.push(pending{at: v.now + d, ev: ev})
}

func (v *VirtualScheduler) Go(fn func() Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.push(pending{at: v.now + v.Latency, fn: fn})
}

func (v *VirtualScheduler) push(p pending) {
	v.seq++
	p.seq = v.seq
	v.queue = append(v.queue, p)
	sort.SliceStable(v.queue, func(i, j int) bool {
		if v.queue[i].at != v.queue[j].at {
			return v.queue[i].at < v.queue[j].at
		}
		return v.queue[i].seq < v.queue[j].seq
	})
}

// Pending reports the number of queued one-shot events.
func (v *VirtualScheduler) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.queue)
}

// Ticking reports whether a ticker is running.
func (v *VirtualScheduler) Ticking() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ticker != nil
}

// Step delivers the next due event, moving the clock forward to it, as
// long as it is due no later than limit. It returns false when nothing
// is due by then.
func (v *VirtualScheduler) Step(limit time.Duration) bool {
	v.mu.Lock()
	var ev Event
	var fn func() Event
	switch {
	case len(v.queue) > 0 && (v.ticker == nil || v.queue[0].at <= v.ticker.next):
		if v.queue[0].at > limit {
			v.mu.Unlock()
			return false
		}
		p := v.queue[0]
		v.queue = v.queue[1:]
		v.now = max(v.now, p.at)
		ev, fn = p.ev, p.fn
	case v.ticker != nil:
		if v.ticker.next > limit {
			v.mu.Unlock()
			return false
		}
		v.now = max(v.now, v.ticker.next)
		v.ticker.next += v.ticker.period
		ev = v.ticker.ev
	default:
		v.mu.Unlock()
		return false
	}
	dispatch := v.dispatch
	v.mu.Unlock()

	if fn != nil {
		ev = fn()
	}
	if dispatch != nil && ev != nil {
		dispatch(ev)
	}
	return true
}

// Advance moves the clock forward by d, delivering everything due.
func (v *VirtualScheduler) Advance(d time.Duration) {
	target := v.Elapsed() + d
	for v.Step(target) {
	}
	v.mu.Lock()
	v.now = max(v.now, target)
	v.mu.Unlock()
}

// RunUntilIdle delivers queued one-shot events, ignoring the ticker,
// until the queue is empty or limit events have been delivered. It returns
// the number delivered.
func (v *VirtualScheduler) RunUntilIdle(limit int) int {
	n := 0
	for n < limit {
		v.mu.Lock()
		if len(v.queue) == 0 {
			v.mu.Unlock()
			return n
		}
		p := v.queue[0]
		v.queue = v.queue[1:]
		v.now = max(v.now, p.at)
		dispatch := v.dispatch
		v.mu.Unlock()

		ev := p.ev
		if p.fn != nil {
			ev = p.fn()
		}
		if dispatch != nil && ev != nil {
			dispatch(ev)
		}
		n++
	}
	return n
}
