package galaxy

import (
	"image/color"
	"math"
)

const (
	G        = 0.1
	CoreMass = 100.0

	SpiralTightness = 0.3
	SpiralSpan      = 4 * math.Pi

	OrbitScale  = 0.8
	OrbitOffset = 10.0

	RadialJitter   = 20.0
	PositionJitter = 15.0
	VelocityJitter = 0.05

	MinStarRadius = 1.2
	MaxStarRadius = 4.2
	ParticleMass  = 1.0

	DefaultArms   = 4
	DefaultRadius = 120.0
	DefaultCount  = 250
	DefaultDrift  = 0.3

	LeftCenter  = 0.3
	RightCenter = 0.7
)

// Shape describes the spiral structure of a generated galaxy.
type Shape struct {
	Arms    int
	Radius  float64
	Palette []color.RGBA
}

func DefaultShape() Shape {
	return Shape{
		Arms:    DefaultArms,
		Radius:  DefaultRadius,
		Palette: Violet,
	}
}

func (s Shape) normalized() Shape {
	if s.Arms <= 0 {
		s.Arms = DefaultArms
	}
	if len(s.Palette) == 0 {
		s.Palette = Violet
	}
	return s
}

// OrbitalSpeed is the Keplerian-like circular speed at dist from a galaxy
// center. The offset keeps it finite at the center.
func OrbitalSpeed(dist float64) float64 {
	return math.Sqrt(G*CoreMass/(dist+OrbitOffset)) * OrbitScale
}

// Generate creates count particles laid out along the arms of a logarithmic
// spiral centered on center, all moving with the bulk drift velocity.
// Every particle is anchored to center.
func Generate(rng Source, center, drift Vec2, count int, shape Shape) []Particle {
	if count <= 0 {
		return []Particle{}
	}
	shape = shape.normalized()

	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		particles = append(particles, spawn(rng, center, drift, shape))
	}
	return particles
}

// spawn draws, in order: arm, spiral parameter, radial jitter, x/y position
// jitter, x/y velocity jitter, palette index, star radius.
func spawn(rng Source, center, drift Vec2, shape Shape) Particle {
	arm := rng.IntN(shape.Arms)
	armAngle := float64(arm) * 2 * math.Pi / float64(shape.Arms)

	t := rng.Float64() * SpiralSpan
	r := t/SpiralSpan*shape.Radius + uniform(rng, 0, RadialJitter)
	angle := armAngle + t*SpiralTightness

	jx := uniform(rng, -PositionJitter, PositionJitter)
	jy := uniform(rng, -PositionJitter, PositionJitter)
	pos := Vec2{
		X: center.X + r*math.Cos(angle) + jx,
		Y: center.Y + r*math.Sin(angle) + jy,
	}

	offset := pos.Sub(center)
	dist := offset.Len()

	// tangential direction is undefined at the center itself
	var tangent Vec2
	if dist > 0 {
		tangent = offset.Scale(1 / dist).Perp()
	}

	vjx := uniform(rng, -VelocityJitter, VelocityJitter)
	vjy := uniform(rng, -VelocityJitter, VelocityJitter)
	vel := tangent.Scale(OrbitalSpeed(dist)).Add(drift).Add(Vec2{X: vjx, Y: vjy})

	c := shape.Palette[rng.IntN(len(shape.Palette))]
	size := uniform(rng, MinStarRadius, MaxStarRadius)

	return Particle{
		Pos:    pos,
		Vel:    vel,
		Color:  c,
		Anchor: center,
		Mass:   ParticleMass,
		Radius: size,
	}
}

// Collide builds the two-galaxy collection for a width x height surface:
// one galaxy at 30% width drifting right, one at 70% drifting left, both
// vertically centered. The left galaxy's particles come first.
func Collide(rng Source, width, height float64, count int, drift float64, shape Shape) []Particle {
	left := Vec2{X: width * LeftCenter, Y: height * 0.5}
	right := Vec2{X: width * RightCenter, Y: height * 0.5}

	particles := Generate(rng, left, Vec2{X: drift}, count, shape)
	return append(particles, Generate(rng, right, Vec2{X: -drift}, count, shape)...)
}
