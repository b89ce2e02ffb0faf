package sim

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/render"
	"github.com/san-kum/galaxysim/internal/surface"
)

type Simulation struct {
	opts     Options
	sched    Scheduler
	rng      galaxy.Source
	log      *log.Logger
	interval time.Duration

	state       State
	container   Container
	surf        surface.Surface
	particles   []galaxy.Particle
	handle      Handle
	generation  uint64
	unsubscribe func()
	last        time.Duration

	stats     Stats
	observers []Observer
}

func New(sched Scheduler, opts Options) (*Simulation, error) {
	if sched == nil {
		return nil, ErrNilScheduler
	}
	rng := opts.Source
	if rng == nil {
		rng = galaxy.NewSource(0)
	}
	return &Simulation{
		opts:      opts,
		sched:     sched,
		rng:       rng,
		log:       opts.logger(),
		interval:  opts.frameInterval(),
		observers: make([]Observer, 0),
	}, nil
}

func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulation) State() State             { return s.state }
func (s *Simulation) Running() bool            { return s.state == Running }
func (s *Simulation) Stats() Stats             { return s.stats }
func (s *Simulation) Interval() time.Duration  { return s.interval }
func (s *Simulation) Surface() surface.Surface { return s.surf }
func (s *Simulation) Container() Container     { return s.container }

// Particles returns a copy of the current collection.
func (s *Simulation) Particles() []galaxy.Particle {
	out := make([]galaxy.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Start generates both galaxies for the container's current size and begins
// scheduling ticks. Starting again on the same container is a no-op; starting
// on a different one restarts there.
//
// If the container cannot supply a surface nothing happens and the returned
// error wraps ErrNoSurface.
func (s *Simulation) Start(c Container) error {
	if c == nil {
		return fmt.Errorf("%w: nil container", ErrNoSurface)
	}
	if s.state == Running {
		if s.container == c {
			return nil
		}
		s.Stop()
	}

	surf, err := c.Surface()
	if err != nil {
		s.log.Printf("start aborted: %v", err)
		if errors.Is(err, ErrNoSurface) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrNoSurface, err)
	}

	w, h := surf.Size()
	s.particles = galaxy.Collide(s.rng, float64(w), float64(h),
		s.opts.ParticlesPerGalaxy, s.opts.Drift, s.opts.Shape)
	s.surf = surf
	s.container = c
	s.unsubscribe = c.OnResize(s.resize)
	s.last = 0
	s.generation++
	s.state = Running
	s.stats.Starts++
	s.schedule()

	s.log.Printf("started: %d particles on %dx%d at %v/frame", len(s.particles), w, h, s.interval)
	return nil
}

// Stop cancels the pending tick, drops the resize listener and discards the
// particles. Stopping a stopped simulation does nothing.
func (s *Simulation) Stop() {
	if s.state != Running {
		return
	}
	s.sched.CancelScheduledTick(s.handle)
	s.handle = 0
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.generation++
	s.state = Stopped
	s.particles = nil
	s.surf = nil
	s.container = nil
	s.log.Printf("stopped after %d ticks", s.stats.Ticks)
}

func (s *Simulation) schedule() {
	gen := s.generation
	s.handle = s.sched.ScheduleNextTick(func(now time.Duration) {
		s.tick(gen, now)
	})
}

func (s *Simulation) tick(gen uint64, now time.Duration) {
	// hosts that cannot cancel may still deliver a callback from a previous run
	if s.state != Running || gen != s.generation {
		return
	}
	s.stats.Wakeups++

	if now-s.last < s.interval {
		s.stats.Skipped++
		s.schedule()
		return
	}
	s.last = now

	galaxy.Step(s.particles)
	render.Render(s.surf, s.particles, s.opts.Background)

	s.stats.Ticks++
	s.stats.LastTick = now
	for _, o := range s.observers {
		o.OnTick(s.stats.Ticks, s.particles, s.surf)
	}

	// an observer may have stopped us
	if s.state == Running && gen == s.generation {
		s.schedule()
	}
}

// resize follows the container. Particle coordinates are left alone, so the
// scene may shift relative to the visible area.
func (s *Simulation) resize(width, height int) {
	if s.state != Running {
		return
	}
	s.surf.Resize(width, height)
	s.stats.Resizes++
	s.log.Printf("surface resized to %dx%d", width, height)
}
