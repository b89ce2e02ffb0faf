package sim

import (
	"testing"
	"time"
)

func TestFrameQueueOrder(t *testing.T) {
	q := NewFrameQueue()
	var got []string

	q.ScheduleNextTick(func(now time.Duration) { got = append(got, "tick") })
	q.Post(func() { got = append(got, "event") })

	if n := q.RunFrame(time.Millisecond); n != 1 {
		t.Errorf("expected 1 callback fired, got %d", n)
	}
	if len(got) != 2 || got[0] != "event" || got[1] != "tick" {
		t.Errorf("events must run before ticks, got %v", got)
	}
}

func TestFrameQueueRescheduleWaitsForNextFrame(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var fn TickFunc
	fn = func(now time.Duration) {
		calls++
		q.ScheduleNextTick(fn)
	}
	q.ScheduleNextTick(fn)

	q.RunFrame(1)
	q.RunFrame(2)
	if calls != 2 {
		t.Errorf("expected one call per frame, got %d", calls)
	}
	if q.Pending() != 1 {
		t.Errorf("expected 1 pending, got %d", q.Pending())
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	fired := 0
	h := q.ScheduleNextTick(func(time.Duration) { fired++ })
	q.CancelScheduledTick(h)
	q.CancelScheduledTick(h)
	q.CancelScheduledTick(0)

	if q.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", q.Pending())
	}
	q.RunFrame(1)
	if fired != 0 {
		t.Error("cancelled callback ran")
	}
}

func TestFrameQueueCancelWithinFrame(t *testing.T) {
	q := NewFrameQueue()
	var second Handle
	ran := false
	q.ScheduleNextTick(func(time.Duration) { q.CancelScheduledTick(second) })
	second = q.ScheduleNextTick(func(time.Duration) { ran = true })

	if n := q.RunFrame(1); n != 1 {
		t.Errorf("expected 1 callback fired, got %d", n)
	}
	if ran {
		t.Error("callback cancelled earlier in the same frame still ran")
	}
}

func TestManualAdvance(t *testing.T) {
	m := NewManual()
	var seen []time.Duration
	var fn TickFunc
	fn = func(now time.Duration) {
		seen = append(seen, now)
		m.ScheduleNextTick(fn)
	}
	m.ScheduleNextTick(fn)

	m.Advance(10 * time.Millisecond)
	m.Advance(5 * time.Millisecond)

	if m.Now() != 15*time.Millisecond {
		t.Errorf("expected clock at 15ms, got %v", m.Now())
	}
	if len(seen) != 2 || seen[0] != 10*time.Millisecond || seen[1] != 15*time.Millisecond {
		t.Errorf("unexpected timestamps %v", seen)
	}
}
