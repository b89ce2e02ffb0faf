package metrics

import (
	"math"

	"github.com/san-kum/galaxysim/internal/galaxy"
)

// Metric reduces a particle collection to one number per observation.
type Metric interface {
	Name() string
	Observe(particles []galaxy.Particle)
	Value() float64
	Reset()
}

func kinetic(particles []galaxy.Particle) float64 {
	total := 0.0
	for i := range particles {
		v := particles[i].Vel
		total += 0.5 * particles[i].Mass * (v.X*v.X + v.Y*v.Y)
	}
	return total
}

// KineticEnergy is the total kinetic energy at the latest observation.
type KineticEnergy struct {
	name  string
	value float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(particles []galaxy.Particle) {
	k.value = kinetic(particles)
}

func (k *KineticEnergy) Value() float64 { return k.value }
func (k *KineticEnergy) Reset()         { k.value = 0 }

// EnergyDrift is the relative change of kinetic energy since the first
// observation. Damping makes it drift down over long runs.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	currentEnergy float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(particles []galaxy.Particle) {
	energy := kinetic(particles)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
}

func (e *EnergyDrift) Value() float64 {
	if e.initialEnergy == 0 {
		return 0
	}
	return (e.currentEnergy - e.initialEnergy) / math.Abs(e.initialEnergy)
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}
