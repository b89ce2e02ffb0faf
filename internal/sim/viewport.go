package sim

import (
	"fmt"

	"github.com/san-kum/galaxysim/internal/surface"
)

// SurfaceFactory allocates a surface of the given pixel size.
type SurfaceFactory func(width, height int) (surface.Surface, error)

// RasterFactory allocates offscreen software surfaces.
func RasterFactory(width, height int) (surface.Surface, error) {
	r, err := surface.NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	return r, nil
}

type listener struct {
	id int
	fn func(width, height int)
}

// Viewport is a Container whose size is pushed in by its host.
type Viewport struct {
	width, height int
	factory       SurfaceFactory
	listeners     []listener
	nextID        int
}

func NewViewport(width, height int, factory SurfaceFactory) *Viewport {
	return &Viewport{width: width, height: height, factory: factory}
}

func (v *Viewport) Size() (int, int) { return v.width, v.height }

// Surface allocates a surface matching the current size.
func (v *Viewport) Surface() (surface.Surface, error) {
	if v.factory == nil {
		return nil, fmt.Errorf("%w: viewport has no surface factory", ErrNoSurface)
	}
	if v.width <= 0 || v.height <= 0 {
		return nil, fmt.Errorf("%w: viewport is %dx%d", ErrNoSurface, v.width, v.height)
	}
	s, err := v.factory(v.width, v.height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSurface, err)
	}
	if s == nil {
		return nil, ErrNoSurface
	}
	return s, nil
}

// OnResize registers fn for size changes. The returned func removes it and
// may be called more than once.
func (v *Viewport) OnResize(fn func(width, height int)) func() {
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetSize updates the size and notifies listeners if it changed.
func (v *Viewport) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	for _, l := range append([]listener(nil), v.listeners...) {
		l.fn(width, height)
	}
}

func (v *Viewport) Listeners() int { return len(v.listeners) }
