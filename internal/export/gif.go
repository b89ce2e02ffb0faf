package export

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/render"
	"github.com/san-kum/galaxysim/internal/surface"
)

var ErrNoFrames = errors.New("export: no frames captured")

// Imager is a surface backed by an RGBA image.
type Imager interface {
	Image() *image.RGBA
}

// GIFRecorder is a simulation observer that captures every Nth frame into an
// animated GIF. Surfaces without a backing image are redrawn into a private
// raster first.
type GIFRecorder struct {
	Every     int
	MaxFrames int

	delay      int
	background color.RGBA
	palette    color.Palette

	mu      sync.Mutex
	anim    gif.GIF
	scratch *surface.Raster
}

func NewGIFRecorder(fps, every int, background color.RGBA, stars []color.RGBA) *GIFRecorder {
	if every < 1 {
		every = 1
	}
	if fps < 1 {
		fps = 60
	}
	return &GIFRecorder{
		Every:      every,
		delay:      max(1, 100*every/fps),
		background: background,
		palette:    GlowPalette(background, stars, 8),
	}
}

func (g *GIFRecorder) OnTick(tick int, particles []galaxy.Particle, s surface.Surface) {
	if tick%g.Every != 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.MaxFrames > 0 && len(g.anim.Image) >= g.MaxFrames {
		return
	}
	img := g.source(particles, s)
	if img == nil {
		return
	}

	frame := image.NewPaletted(img.Bounds(), g.palette)
	draw.FloydSteinberg.Draw(frame, img.Bounds(), img, img.Bounds().Min)
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.delay)
}

func (g *GIFRecorder) source(particles []galaxy.Particle, s surface.Surface) *image.RGBA {
	if im, ok := s.(Imager); ok {
		return im.Image()
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	if g.scratch == nil {
		r, err := surface.NewRaster(w, h)
		if err != nil {
			return nil
		}
		g.scratch = r
	}
	g.scratch.Resize(w, h)
	render.Render(g.scratch, particles, g.background)
	return g.scratch.Image()
}

func (g *GIFRecorder) Frames() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.anim.Image)
}

func (g *GIFRecorder) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.anim = gif.GIF{}
}

// Encode writes the captured frames as a looping GIF.
func (g *GIFRecorder) Encode(w io.Writer) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}
	// Frames may differ in size after a resize.
	g.anim.Config = image.Config{}
	for _, frame := range g.anim.Image {
		b := frame.Bounds()
		g.anim.Config.Width = max(g.anim.Config.Width, b.Max.X)
		g.anim.Config.Height = max(g.anim.Config.Height, b.Max.Y)
	}
	g.anim.LoopCount = 0
	return gif.EncodeAll(w, &g.anim)
}

func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// GlowPalette builds a GIF palette holding the background plus levels shades
// of each star color fading into it, capped at 256 entries.
func GlowPalette(background color.RGBA, stars []color.RGBA, levels int) color.Palette {
	pal := color.Palette{background}
	bg, _ := colorful.MakeColor(background)
	for _, s := range stars {
		c, ok := colorful.MakeColor(s)
		if !ok {
			continue
		}
		for i := 1; i <= levels && len(pal) < 256; i++ {
			r, gr, b := bg.BlendLab(c, float64(i)/float64(levels)).Clamped().RGB255()
			pal = append(pal, color.RGBA{R: r, G: gr, B: b, A: 0xff})
		}
	}
	if len(pal) < 256 {
		pal = append(pal, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}
	return pal
}
