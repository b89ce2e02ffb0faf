package galaxy

import "math"

const (
	Softening = 50.0
	Damping   = 0.999
)

// Advance moves p forward one tick: pull toward its anchor, integrate
// position with the updated velocity, then damp.
//
// The softening term keeps the squared distance at or above Softening, so the
// division is always defined, even when p sits exactly on its anchor.
func Advance(p *Particle) {
	d := p.Anchor.Sub(p.Pos)
	distSq := d.X*d.X + d.Y*d.Y + Softening
	force := G * p.Mass / distSq
	dist := math.Sqrt(distSq)

	p.Vel.X += force * d.X / dist
	p.Vel.Y += force * d.Y / dist

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y

	p.Vel.X *= Damping
	p.Vel.Y *= Damping
}

// Step advances every particle once, in collection order.
func Step(particles []Particle) {
	for i := range particles {
		Advance(&particles[i])
	}
}
