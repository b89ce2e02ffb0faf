package metrics

import (
	"github.com/san-kum/galaxysim/internal/galaxy"
)

// MeanAnchorDistance is the average distance of particles from their own
// galaxy center at the latest observation.
type MeanAnchorDistance struct {
	value float64
}

func NewMeanAnchorDistance() *MeanAnchorDistance { return &MeanAnchorDistance{} }

func (m *MeanAnchorDistance) Name() string { return "mean_anchor_distance" }

func (m *MeanAnchorDistance) Observe(particles []galaxy.Particle) {
	if len(particles) == 0 {
		m.value = 0
		return
	}
	sum := 0.0
	for i := range particles {
		sum += particles[i].AnchorDistance()
	}
	m.value = sum / float64(len(particles))
}

func (m *MeanAnchorDistance) Value() float64 { return m.value }
func (m *MeanAnchorDistance) Reset()         { m.value = 0 }

// Crossing is the fraction of particles currently nearer to another
// galaxy's center than to their own: how far the two discs interpenetrate.
type Crossing struct {
	value float64
}

func NewCrossing() *Crossing { return &Crossing{} }

func (c *Crossing) Name() string { return "crossing" }

func (c *Crossing) Observe(particles []galaxy.Particle) {
	if len(particles) == 0 {
		c.value = 0
		return
	}
	anchors := make([]galaxy.Vec2, 0, 2)
	seen := make(map[galaxy.Vec2]bool, 2)
	for i := range particles {
		if a := particles[i].Anchor; !seen[a] {
			seen[a] = true
			anchors = append(anchors, a)
		}
	}

	crossed := 0
	for i := range particles {
		p := &particles[i]
		own := p.AnchorDistance()
		for _, a := range anchors {
			if a != p.Anchor && a.Sub(p.Pos).Len() < own {
				crossed++
				break
			}
		}
	}
	c.value = float64(crossed) / float64(len(particles))
}

func (c *Crossing) Value() float64 { return c.value }
func (c *Crossing) Reset()         { c.value = 0 }

// MaxSpeed is the fastest particle at the latest observation.
type MaxSpeed struct {
	value float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(particles []galaxy.Particle) {
	m.value = 0
	for i := range particles {
		if s := particles[i].Speed(); s > m.value {
			m.value = s
		}
	}
}

func (m *MaxSpeed) Value() float64 { return m.value }
func (m *MaxSpeed) Reset()         { m.value = 0 }
