// sim/event.go
package sim

import "container/heap"

// timer is a scheduled callback, fired once the clock reaches its time.
// Timers are the scheduler's only unit of suspension: everything a logical
// process "waits" on (a fixed delay, a fuel clock, a max-wait clock, a
// periodic sample) is one of these under the hood.
type timer struct {
	time      float64
	seq       int
	cancelled bool
	raceLoser bool
	fire      func(now float64)
}

// timerHeap orders timers by (time, raceLoser, seq): at the same simulated
// instant, a timer armed as the losing side of a request-vs-timeout race
// (see AfterTimeout) always fires after every ordinary timer, so a grant
// that lands at the same instant as its paired timeout is always resolved
// before the timeout runs. Within the same (time, raceLoser) pair, timers
// fire in the order they were inserted.
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	if h[i].raceLoser != h[j].raceLoser {
		return h[j].raceLoser
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Scheduler is the discrete-event core: a clock that only moves forward,
// and a priority queue of pending timers keyed by simulated time with
// insertion order breaking ties.
type Scheduler struct {
	now     float64
	nextSeq int
	timers  timerHeap
}

// NewScheduler returns a scheduler with the clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() float64 { return s.now }

// After schedules fire to run once the clock advances by d (d >= 0) and
// returns a handle that can be cancelled before it fires. This is the
// engine's sole primitive for "wait(d)"; resource grants never go through
// the heap directly (see PriorityResource), but the timer that later
// triggers one — a service-completion release — is armed with After.
func (s *Scheduler) After(d float64, fire func(now float64)) *timer {
	return s.schedule(d, false, fire)
}

// AfterTimeout is for arming the losing side of a request-vs-timeout race
// (a fuel clock or a max-wait clock): if it lands at the exact same
// simulated instant as a timer armed with After, the After timer fires
// first, so a grant always wins a same-instant tie against its own
// timeout rather than the outcome depending on which was armed first.
func (s *Scheduler) AfterTimeout(d float64, fire func(now float64)) *timer {
	return s.schedule(d, true, fire)
}

func (s *Scheduler) schedule(d float64, raceLoser bool, fire func(now float64)) *timer {
	if d < 0 {
		d = 0
	}
	t := &timer{time: s.now + d, seq: s.nextSeq, raceLoser: raceLoser, fire: fire}
	s.nextSeq++
	heap.Push(&s.timers, t)
	return t
}

// Cancel prevents a not-yet-fired timer from running. Cancelling an
// already-fired timer is a no-op.
func (s *Scheduler) Cancel(t *timer) {
	if t != nil {
		t.cancelled = true
	}
}

// Run advances the clock by processing timers in (time, raceLoser, seq)
// order, stopping once the clock first reaches or exceeds until. No timer
// scheduled strictly after until is fired by this call. If the queue runs
// dry before until, the clock jumps straight to until.
func (s *Scheduler) Run(until float64) {
	for s.timers.Len() > 0 {
		next := s.timers[0]
		if next.time > until {
			break
		}
		heap.Pop(&s.timers)
		if next.cancelled {
			continue
		}
		s.now = next.time
		next.fire(s.now)
	}
	if s.now < until {
		s.now = until
	}
}
