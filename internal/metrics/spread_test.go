package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/surface"
)

func TestMeanAnchorDistance(t *testing.T) {
	m := NewMeanAnchorDistance()
	m.Observe(nil)
	if m.Value() != 0 {
		t.Error("expected 0 for empty collection")
	}
	m.Observe([]galaxy.Particle{particle(3, 4, 0, 0), particle(0, 10, 0, 0)})
	if math.Abs(m.Value()-7.5) > 1e-12 {
		t.Errorf("expected 7.5, got %f", m.Value())
	}
}

func TestCrossing(t *testing.T) {
	left, right := galaxy.Vec2{X: 0}, galaxy.Vec2{X: 100}
	ps := []galaxy.Particle{
		{Pos: galaxy.Vec2{X: 10}, Anchor: left},
		{Pos: galaxy.Vec2{X: 70}, Anchor: left},
		{Pos: galaxy.Vec2{X: 90}, Anchor: right},
		{Pos: galaxy.Vec2{X: 40}, Anchor: right},
	}
	c := NewCrossing()
	c.Observe(ps)
	if c.Value() != 0.5 {
		t.Errorf("expected half crossed, got %f", c.Value())
	}

	single := []galaxy.Particle{{Pos: galaxy.Vec2{X: 500}, Anchor: left}}
	c.Observe(single)
	if c.Value() != 0 {
		t.Errorf("a lone galaxy cannot cross, got %f", c.Value())
	}
}

func TestMaxSpeed(t *testing.T) {
	m := NewMaxSpeed()
	m.Observe([]galaxy.Particle{particle(0, 0, 3, 4), particle(0, 0, 1, 1)})
	if m.Value() != 5 {
		t.Errorf("expected 5, got %f", m.Value())
	}
}

func TestHistoryRing(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(float64(i))
	}
	got := h.Values()
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("expected [3 4 5], got %v", got)
	}
	if h.Last() != 5 || h.Len() != 3 {
		t.Errorf("unexpected last=%f len=%d", h.Last(), h.Len())
	}
	h.Reset()
	if h.Len() != 0 || h.Last() != 0 {
		t.Error("reset should empty the history")
	}
}

func TestTrackerObservesTicks(t *testing.T) {
	tr := Default(10)
	ps := galaxy.Collide(galaxy.NewSource(4), 800, 400, 60, galaxy.DefaultDrift, galaxy.DefaultShape())
	rec := surface.NewRecorder(800, 400)

	for tick := 1; tick <= 15; tick++ {
		galaxy.Step(ps)
		tr.OnTick(tick, ps, rec)
	}

	if tr.Ticks() != 15 {
		t.Errorf("expected 15 ticks, got %d", tr.Ticks())
	}
	for _, m := range tr.Metrics() {
		h := tr.History(m.Name())
		if h.Len() != 10 {
			t.Errorf("%s: expected 10 samples, got %d", m.Name(), h.Len())
		}
		if h.Last() != m.Value() {
			t.Errorf("%s: history out of sync", m.Name())
		}
	}
	vals := tr.Values()
	if vals["kinetic_energy"] <= 0 {
		t.Error("expected positive kinetic energy")
	}

	tr.Reset()
	if tr.Ticks() != 0 || tr.History("crossing").Len() != 0 {
		t.Error("reset should clear ticks and history")
	}
}
