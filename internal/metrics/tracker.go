package metrics

import (
	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/surface"
)

// History keeps the most recent values of a series.
type History struct {
	values   []float64
	capacity int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{values: make([]float64, 0, capacity), capacity: capacity}
}

func (h *History) Push(v float64) {
	if len(h.values) == h.capacity {
		copy(h.values, h.values[1:])
		h.values = h.values[:len(h.values)-1]
	}
	h.values = append(h.values, v)
}

// Values returns a copy, oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}

func (h *History) Last() float64 {
	if len(h.values) == 0 {
		return 0
	}
	return h.values[len(h.values)-1]
}

func (h *History) Len() int { return len(h.values) }
func (h *History) Reset()   { h.values = h.values[:0] }

// Tracker observes a simulation every tick and records each metric's value.
type Tracker struct {
	metrics []Metric
	history map[string]*History
	ticks   int
}

func NewTracker(capacity int, metrics ...Metric) *Tracker {
	t := &Tracker{
		metrics: metrics,
		history: make(map[string]*History, len(metrics)),
	}
	for _, m := range metrics {
		t.history[m.Name()] = NewHistory(capacity)
	}
	return t
}

// Default tracks the metrics shown by the terminal and stats views.
func Default(capacity int) *Tracker {
	return NewTracker(capacity,
		NewKineticEnergy(),
		NewEnergyDrift(),
		NewMeanAnchorDistance(),
		NewCrossing(),
		NewMaxSpeed(),
	)
}

func (t *Tracker) OnTick(tick int, particles []galaxy.Particle, _ surface.Surface) {
	t.ticks = tick
	for _, m := range t.metrics {
		m.Observe(particles)
		t.history[m.Name()].Push(m.Value())
	}
}

func (t *Tracker) Ticks() int        { return t.ticks }
func (t *Tracker) Metrics() []Metric { return t.metrics }

func (t *Tracker) History(name string) *History { return t.history[name] }

// Values returns the latest value of every metric by name.
func (t *Tracker) Values() map[string]float64 {
	out := make(map[string]float64, len(t.metrics))
	for _, m := range t.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (t *Tracker) Reset() {
	t.ticks = 0
	for _, m := range t.metrics {
		m.Reset()
		t.history[m.Name()].Reset()
	}
}
