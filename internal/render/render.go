// Package render paints a particle collection onto a surface.
package render

import (
	"image/color"

	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/surface"
)

const GlowBlur = 8.0

// Background is the deep purple the scene is cleared to.
var Background = color.RGBA{R: 0x13, G: 0x13, B: 0x22, A: 0xff}

// Render clears s to background and draws every particle as a glowing disc
// in collection order. Glow is only on during the disc pass.
func Render(s surface.Surface, particles []galaxy.Particle, background color.RGBA) {
	w, h := s.Size()

	s.SetGlow(0, background)
	s.SetFillColor(background)
	s.FillRect(0, 0, float64(w), float64(h))

	for i := range particles {
		p := &particles[i]
		s.BeginPath()
		s.SetGlow(GlowBlur, p.Color)
		s.SetFillColor(p.Color)
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius)
	}

	s.SetGlow(0, background)
}
