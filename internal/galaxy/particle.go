package galaxy

import (
	"image/color"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Perp() Vec2           { return Vec2{-v.Y, v.X} }
func (v Vec2) IsFinite() bool       { return finite(v.X) && finite(v.Y) }

func (v Vec2) Equal(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Particle is one star. Anchor, Color, Mass and Radius are fixed at creation;
// Pos and Vel change every tick.
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Color  color.RGBA
	Anchor Vec2
	Mass   float64
	Radius float64
}

func (p *Particle) Speed() float64 { return p.Vel.Len() }

func (p *Particle) AnchorDistance() float64 { return p.Anchor.Sub(p.Pos).Len() }

// Finite reports whether every numeric field is neither NaN nor Inf.
func (p *Particle) Finite() bool {
	return p.Pos.IsFinite() && p.Vel.IsFinite() && p.Anchor.IsFinite() &&
		finite(p.Mass) && finite(p.Radius)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
