package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/galaxysim/internal/surface"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a colored braille grid. It implements surface.Surface in logical
// pixels, where each braille dot covers Scale x Scale logical pixels.
type Canvas struct {
	Width, Height int
	Scale         int
	Grid          [][]rune
	Colors        [][]color.RGBA
	Glow          [][]bool
	Background    color.RGBA

	fill color.RGBA
	glow float64
}

func NewCanvas(w, h int) *Canvas {
	return NewScaledCanvas(w, h, 1)
}

func NewScaledCanvas(w, h, scale int) *Canvas {
	if scale < 1 {
		scale = 1
	}
	c := &Canvas{Scale: scale}
	c.allocate(w, h)
	return c
}

func (c *Canvas) allocate(w, h int) {
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]color.RGBA, h)
	c.Glow = make([][]bool, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.RGBA, w)
		c.Glow[i] = make([]bool, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Set sets a dot at (x, y) in dot coordinates.
// The canvas size in dots is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.plot(x, y, c.fill, c.glow > 0)
}

func (c *Canvas) plot(x, y int, col color.RGBA, glow bool) {
	if x < 0 || y < 0 {
		return
	}

	cell, row := x/2, y/4
	if cell >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cell] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cell] = col
	c.Glow[row][cell] = glow
}

// Unset clears a dot
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	cell, row := x/2, y/4
	if cell >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cell] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][cell] == blank {
		c.Glow[row][cell] = false
	}
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Dots counts the lit dots.
func (c *Canvas) Dots() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for bits := r - blank; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Glow[i][j] = false
		}
	}
}

func (c *Canvas) Size() (int, int) {
	return c.Width * 2 * c.Scale, c.Height * 4 * c.Scale
}

// Resize reallocates the grid to cover width x height logical pixels,
// discarding its contents.
func (c *Canvas) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cols := ceilDiv(width, 2*c.Scale)
	rows := ceilDiv(height, 4*c.Scale)
	if cols == c.Width && rows == c.Height {
		return
	}
	c.allocate(cols, rows)
}

func (c *Canvas) SetFillColor(col color.RGBA) { c.fill = col }

func (c *Canvas) BeginPath() {}

func (c *Canvas) SetGlow(blur float64, _ color.RGBA) { c.glow = blur }

// FillRect clears the covered dots. Covering the whole canvas also sets the
// background color.
func (c *Canvas) FillRect(x, y, w, h float64) {
	s := float64(c.Scale)
	x0, y0 := int(math.Floor(x/s)), int(math.Floor(y/s))
	x1, y1 := int(math.Ceil((x+w)/s)), int(math.Ceil((y+h)/s))

	if x0 <= 0 && y0 <= 0 && x1 >= c.Width*2 && y1 >= c.Height*4 {
		c.Background = c.fill
		c.Clear()
		return
	}
	for dy := max(y0, 0); dy < min(y1, c.Height*4); dy++ {
		for dx := max(x0, 0); dx < min(x1, c.Width*2); dx++ {
			c.Unset(dx, dy)
		}
	}
}

// FillCircle lights every dot whose center lies inside the circle, and at
// least the dot containing its center.
func (c *Canvas) FillCircle(x, y, r float64) {
	s := float64(c.Scale)
	cx, cy, dr := x/s, y/s, r/s
	glow := c.glow > 0

	c.plot(int(math.Floor(cx)), int(math.Floor(cy)), c.fill, glow)
	if dr < 1 {
		return
	}
	for dy := int(math.Floor(cy - dr)); dy <= int(math.Ceil(cy+dr)); dy++ {
		for dx := int(math.Floor(cx - dr)); dx <= int(math.Ceil(cx+dr)); dx++ {
			ox, oy := float64(dx)+0.5-cx, float64(dy)+0.5-cy
			if ox*ox+oy*oy <= dr*dr {
				c.plot(dx, dy, c.fill, glow)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the grid with per-cell foreground colors on the background.
// Glowing cells are bold.
func (c *Canvas) Render() string {
	bg := lipgloss.Color(surface.Hex(c.Background))
	var b strings.Builder
	for row := range c.Grid {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.Width; {
			end := col + 1
			for end < c.Width && c.sameStyle(row, col, end) {
				end++
			}
			b.WriteString(c.style(row, col).Background(bg).Render(string(c.Grid[row][col:end])))
			col = end
		}
	}
	return b.String()
}

func (c *Canvas) sameStyle(row, a, b int) bool {
	ea, eb := c.Grid[row][a] == blank, c.Grid[row][b] == blank
	if ea || eb {
		return ea == eb
	}
	return c.Colors[row][a] == c.Colors[row][b] && c.Glow[row][a] == c.Glow[row][b]
}

func (c *Canvas) style(row, col int) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.Grid[row][col] == blank {
		return st
	}
	return st.Foreground(lipgloss.Color(surface.Hex(c.Colors[row][col]))).Bold(c.Glow[row][col])
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
