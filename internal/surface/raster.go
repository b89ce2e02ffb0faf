package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// Raster draws into an in-memory RGBA image using a software canvas, with
// real shadow blur for glow.
type Raster struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	width   int
	height  int
}

func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	r := &Raster{}
	r.allocate(width, height)
	return r, nil
}

// allocate replaces the backing image. Like an HTML canvas, resizing
// discards the previous contents.
func (r *Raster) allocate(width, height int) {
	r.backend = softwarebackend.New(width, height)
	r.cv = canvas.New(r.backend)
	r.width, r.height = width, height
}

func (r *Raster) Size() (int, int) { return r.width, r.height }

func (r *Raster) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == r.width && height == r.height) {
		return
	}
	r.allocate(width, height)
}

func (r *Raster) SetFillColor(c color.RGBA) { r.cv.SetFillStyle(Hex(c)) }

func (r *Raster) FillRect(x, y, w, h float64) { r.cv.FillRect(x, y, w, h) }

func (r *Raster) BeginPath() { r.cv.BeginPath() }

func (r *Raster) SetGlow(blur float64, c color.RGBA) {
	r.cv.SetShadowBlur(blur)
	if blur > 0 {
		r.cv.SetShadowColor(Hex(c))
	}
}

func (r *Raster) FillCircle(x, y, radius float64) {
	r.cv.Arc(x, y, radius, 0, 2*math.Pi, false)
	r.cv.Fill()
}

// Image returns the live backing image; it is replaced on resize.
func (r *Raster) Image() *image.RGBA { return r.backend.Image }
