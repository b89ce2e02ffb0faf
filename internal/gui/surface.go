package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/galaxysim/internal/surface"
)

// haloRings approximates a blurred glow with translucent rings.
const haloRings = 3

// Surface draws into a render texture that persists between window frames,
// so frames where the simulation does not tick still show the last scene.
// Texture mode is entered lazily by the first draw call of a frame and left
// by Flush.
type Surface struct {
	target        rl.RenderTexture2D
	width, height int
	active        bool

	fill      rl.Color
	glow      float64
	glowColor rl.Color
}

func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, surface.ErrInvalidSize
	}
	return &Surface{
		target: rl.LoadRenderTexture(int32(width), int32(height)),
		width:  width,
		height: height,
	}, nil
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

// Resize reallocates the texture, discarding its contents.
func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return
	}
	s.Flush()
	rl.UnloadRenderTexture(s.target)
	s.target = rl.LoadRenderTexture(int32(width), int32(height))
	s.width, s.height = width, height
}

func (s *Surface) begin() {
	if !s.active {
		rl.BeginTextureMode(s.target)
		s.active = true
	}
}

// Flush ends texture mode if a draw call started it.
func (s *Surface) Flush() {
	if s.active {
		rl.EndTextureMode()
		s.active = false
	}
}

func (s *Surface) SetFillColor(c color.RGBA) { s.fill = toColor(c) }

func (s *Surface) FillRect(x, y, w, h float64) {
	s.begin()
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), s.fill)
}

func (s *Surface) BeginPath() {}

func (s *Surface) SetGlow(blur float64, c color.RGBA) {
	s.glow = blur
	s.glowColor = toColor(c)
}

func (s *Surface) FillCircle(x, y, r float64) {
	s.begin()
	center := rl.NewVector2(float32(x), float32(y))
	if s.glow > 0 {
		for i := haloRings; i >= 1; i-- {
			spread := float32(s.glow/2) * float32(i) / haloRings
			rl.DrawCircleV(center, float32(r)+spread, rl.Fade(s.glowColor, 0.15))
		}
	}
	rl.DrawCircleV(center, float32(r), s.fill)
}

// Draw blits the texture to the screen. Render textures are stored upside
// down, hence the negative source height.
func (s *Surface) Draw() {
	src := rl.NewRectangle(0, 0, float32(s.width), -float32(s.height))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(0, 0), rl.White)
}

func (s *Surface) Unload() {
	s.Flush()
	rl.UnloadRenderTexture(s.target)
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
