package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/galaxysim/internal/surface"
	"github.com/san-kum/galaxysim/internal/viz"
)

// SVG is a surface that records drawing calls as SVG elements. Glowing
// discs reference a Gaussian blur filter per blur radius.
type SVG struct {
	width, height int
	fill          color.RGBA
	glow          float64
	filters       map[float64]string
	body          strings.Builder
}

func NewSVG(width, height int) (*SVG, error) {
	if width <= 0 || height <= 0 {
		return nil, surface.ErrInvalidSize
	}
	return &SVG{width: width, height: height, filters: make(map[float64]string)}, nil
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

// Resize starts a fresh document.
func (s *SVG) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.body.Reset()
}

func (s *SVG) SetFillColor(c color.RGBA) { s.fill = c }

func (s *SVG) BeginPath() {}

func (s *SVG) SetGlow(blur float64, _ color.RGBA) { s.glow = blur }

func (s *SVG) FillRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= float64(s.width) && y+h >= float64(s.height) {
		s.body.Reset()
	}
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, w, h, surface.Hex(s.fill))
}

func (s *SVG) FillCircle(x, y, r float64) {
	if s.glow > 0 {
		fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" filter="url(#%s)"/>
`, x, y, r, surface.Hex(s.fill), s.filter(s.glow))
		return
	}
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x, y, r, surface.Hex(s.fill))
}

func (s *SVG) filter(blur float64) string {
	id, ok := s.filters[blur]
	if !ok {
		id = fmt.Sprintf("glow%d", len(s.filters))
		s.filters[blur] = id
	}
	return id
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.width, s.height, s.width, s.height))

	if len(s.filters) > 0 {
		sb.WriteString("<defs>\n")
		for blur, id := range s.filters {
			// Canvas shadow blur is roughly twice the Gaussian deviation.
			sb.WriteString(fmt.Sprintf(`<filter id="%s" x="-200%%" y="-200%%" width="500%%" height="500%%">
<feGaussianBlur in="SourceGraphic" stdDeviation="%.1f" result="halo"/>
<feMerge><feMergeNode in="halo"/><feMergeNode in="SourceGraphic"/></feMerge>
</filter>
`, id, blur/2))
		}
		sb.WriteString("</defs>\n")
	}

	sb.WriteString(s.body.String())
	sb.WriteString("</svg>")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// CanvasToSVG converts a Braille canvas to SVG, one colored dot per lit
// braille dot, scale pixels apart.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, surface.Hex(canvas.Background)))

	dotRadius := scale * 0.4

	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			fill := surface.Hex(canvas.Colors[y/4][x/2])
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
