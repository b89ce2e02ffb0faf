package sim

import (
	"sync"
	"time"
)

type pendingTick struct {
	handle Handle
	fn     TickFunc
}

// FrameQueue is a Scheduler for hosts with a per-frame callback of their own
// (a window loop, a terminal program's tick message). The host calls
// RunFrame once per display refresh.
//
// Posted events run before the frame's tick callbacks, on the goroutine that
// calls RunFrame, so resize handling never overlaps a tick.
type FrameQueue struct {
	mu        sync.Mutex
	next      Handle
	pending   []pendingTick
	events    []func()
	cancelled map[Handle]struct{}
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{cancelled: make(map[Handle]struct{})}
}

// ScheduleNextTick queues fn for the next RunFrame. A callback scheduled
// from inside a tick waits for the following frame.
func (q *FrameQueue) ScheduleNextTick(fn TickFunc) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending = append(q.pending, pendingTick{handle: q.next, fn: fn})
	return q.next
}

func (q *FrameQueue) CancelScheduledTick(h Handle) {
	if h == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, p := range q.pending {
		if p.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// may belong to the frame currently being dispatched
	q.cancelled[h] = struct{}{}
}

// Post runs fn on the frame goroutine at the start of the next frame.
// Safe to call from any goroutine.
func (q *FrameQueue) Post(fn func()) {
	q.mu.Lock()
	q.events = append(q.events, fn)
	q.mu.Unlock()
}

// Pending reports how many tick callbacks wait for the next frame.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// RunFrame drains posted events, then fires every tick callback that was
// pending when the frame began. It returns the number of callbacks fired.
func (q *FrameQueue) RunFrame(now time.Duration) int {
	q.mu.Lock()
	events := q.events
	q.events = nil
	q.mu.Unlock()

	for _, fn := range events {
		fn()
	}

	q.mu.Lock()
	ticks := q.pending
	q.pending = nil
	q.mu.Unlock()

	fired := 0
	for _, t := range ticks {
		q.mu.Lock()
		_, gone := q.cancelled[t.handle]
		q.mu.Unlock()
		if gone {
			continue
		}
		t.fn(now)
		fired++
	}

	q.mu.Lock()
	clear(q.cancelled)
	q.mu.Unlock()
	return fired
}

// Manual is a FrameQueue with its own clock, advanced by hand. It stands in
// for a display in tests and drives deterministic offscreen renders.
type Manual struct {
	*FrameQueue
	now time.Duration
}

func NewManual() *Manual {
	return &Manual{FrameQueue: NewFrameQueue()}
}

func (m *Manual) Now() time.Duration { return m.now }

// Advance moves the clock forward by d and runs one frame.
func (m *Manual) Advance(d time.Duration) int {
	m.now += d
	return m.RunFrame(m.now)
}
