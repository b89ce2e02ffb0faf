package metrics

import (
	"github.com/san-kum/galaxysim/internal/galaxy"
)

// Stability is the fraction of observations in which every particle was
// finite and within threshold of its anchor.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(particles []galaxy.Particle) {
	s.samples++
	for i := range particles {
		p := &particles[i]
		if !p.Finite() || p.AnchorDistance() > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
