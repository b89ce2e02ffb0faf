package sim

import (
	"image/color"
	"io"
	"log"
	"time"

	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/render"
	"github.com/san-kum/galaxysim/internal/surface"
)

// Handle identifies a scheduled tick. The zero Handle is never issued.
type Handle uint64

// TickFunc receives the host's frame timestamp, measured from an arbitrary
// fixed origin.
type TickFunc func(now time.Duration)

type Scheduler interface {
	ScheduleNextTick(fn TickFunc) Handle
	CancelScheduledTick(h Handle)
}

// Container is whatever hosts the drawing surface: a window, a terminal
// pane, an offscreen buffer.
type Container interface {
	Size() (width, height int)
	Surface() (surface.Surface, error)
	OnResize(fn func(width, height int)) (unsubscribe func())
}

// Observer is notified after every rendered tick.
type Observer interface {
	OnTick(tick int, particles []galaxy.Particle, s surface.Surface)
}

type ObserverFunc func(tick int, particles []galaxy.Particle, s surface.Surface)

func (f ObserverFunc) OnTick(tick int, particles []galaxy.Particle, s surface.Surface) {
	f(tick, particles, s)
}

type Options struct {
	ParticlesPerGalaxy int
	Shape              galaxy.Shape
	Drift              float64
	TargetFPS          int
	Background         color.RGBA
	// Source defaults to an entropy-seeded generator.
	Source galaxy.Source
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		ParticlesPerGalaxy: galaxy.DefaultCount,
		Shape:              galaxy.DefaultShape(),
		Drift:              galaxy.DefaultDrift,
		TargetFPS:          60,
		Background:         render.Background,
	}
}

func (o Options) frameInterval() time.Duration {
	fps := o.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Stats counts what the loop has done since it was created.
type Stats struct {
	Wakeups  int
	Ticks    int
	Skipped  int
	Resizes  int
	Starts   int
	LastTick time.Duration
}
