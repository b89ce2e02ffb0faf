package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/render"
	"github.com/san-kum/galaxysim/internal/surface"
	"github.com/san-kum/galaxysim/internal/viz"
)

var _ surface.Surface = (*SVG)(nil)

func testParticles() []galaxy.Particle {
	return []galaxy.Particle{
		{Pos: galaxy.Vec2{X: 10, Y: 10}, Radius: 2, Color: galaxy.Violet[0]},
		{Pos: galaxy.Vec2{X: 30, Y: 20}, Radius: 3, Color: galaxy.Violet[5]},
	}
}

func TestNewSVGInvalidSize(t *testing.T) {
	if _, err := NewSVG(0, 10); !errors.Is(err, surface.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestSVGRender(t *testing.T) {
	s, err := NewSVG(40, 30)
	if err != nil {
		t.Fatal(err)
	}

	render.Render(s, testParticles(), render.Background)
	render.Render(s, testParticles(), render.Background)
	out := s.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Error("expected a complete svg document")
	}
	if n := strings.Count(out, "<rect"); n != 1 {
		t.Errorf("each frame should replace the last, got %d rects", n)
	}
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if !strings.Contains(out, `fill="#131322"`) {
		t.Error("expected background fill")
	}
	if !strings.Contains(out, `filter="url(#glow0)"`) || !strings.Contains(out, `<filter id="glow0"`) {
		t.Error("expected glowing circles to reference a blur filter")
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil || buf.String() != out {
		t.Error("WriteTo should write the document")
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1) != "" {
		t.Error("nil canvas should produce nothing")
	}

	c := viz.NewCanvas(4, 2)
	c.SetFillColor(color.RGBA{R: 255, A: 255})
	c.Set(0, 0)
	c.Set(5, 6)

	out := CanvasToSVG(c, 3)
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(out, `fill="#ff0000"`) {
		t.Error("dots should keep their color")
	}
}

func TestGlowPalette(t *testing.T) {
	pal := GlowPalette(render.Background, galaxy.Violet, 8)
	if len(pal) != 1+len(galaxy.Violet)*8+1 {
		t.Errorf("unexpected palette size %d", len(pal))
	}
	if pal[0] != render.Background {
		t.Error("background should be the first entry")
	}

	big := GlowPalette(render.Background, galaxy.Violet, 100)
	if len(big) != 256 {
		t.Errorf("palette should be capped at 256, got %d", len(big))
	}
}

func TestGIFRecorder(t *testing.T) {
	raster, err := surface.NewRaster(40, 30)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGIFRecorder(60, 2, render.Background, galaxy.Violet)

	var buf bytes.Buffer
	if err := g.Encode(&buf); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}

	for tick := 1; tick <= 6; tick++ {
		render.Render(raster, testParticles(), render.Background)
		g.OnTick(tick, testParticles(), raster)
	}
	if g.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", g.Frames())
	}

	// Surfaces without pixels are rasterized privately.
	g.OnTick(8, testParticles(), surface.NewRecorder(20, 10))
	if g.Frames() != 4 {
		t.Fatalf("expected 4 frames, got %d", g.Frames())
	}

	if err := g.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 4 {
		t.Errorf("expected 4 decoded frames, got %d", len(anim.Image))
	}
	if anim.Delay[0] != 3 {
		t.Errorf("expected delay 3, got %d", anim.Delay[0])
	}
	if b := anim.Image[3].Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("unexpected scratch frame size %v", b)
	}

	g.Reset()
	if g.Frames() != 0 {
		t.Error("reset should drop frames")
	}
}

func TestGIFRecorderMaxFrames(t *testing.T) {
	g := NewGIFRecorder(60, 1, render.Background, galaxy.Violet)
	g.MaxFrames = 2
	s := surface.NewRecorder(8, 8)
	for tick := 0; tick < 5; tick++ {
		g.OnTick(tick, nil, s)
	}
	if g.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", g.Frames())
	}
}

func TestSavePNG(t *testing.T) {
	raster, err := surface.NewRaster(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	render.Render(raster, testParticles(), render.Background)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(path, raster.Image()); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("expected width 16, got %d", img.Bounds().Dx())
	}
}
