// Package surface defines the 2D drawing surface the renderer paints on and
// the implementations that do not belong to a particular host.
package surface

import (
	"errors"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidSize = errors.New("surface: width and height must be positive")

// Surface is a canvas-like immediate-mode drawing target. Fill color and glow
// are sticky state, applied to every subsequent fill until changed.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)

	SetFillColor(c color.RGBA)
	FillRect(x, y, w, h float64)

	BeginPath()
	// SetGlow sets a blurred halo of the given color around later fills.
	// A blur of 0 disables it.
	SetGlow(blur float64, c color.RGBA)
	FillCircle(x, y, r float64)
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ParseHex parses #rrggbb (or #rgb) into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
