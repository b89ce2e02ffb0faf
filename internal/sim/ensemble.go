package sim

import (
	"context"
	"sync"
	"time"

	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/surface"
)

// CountingFactory allocates Recorders that count draw calls without storing
// them, for runs that need no pixels.
func CountingFactory(width, height int) (surface.Surface, error) {
	r := surface.NewRecorder(width, height)
	r.KeepOps = false
	return r, nil
}

// Drive advances m by step for the given number of frames, stopping early if
// ctx is done or s stops.
func Drive(ctx context.Context, m *Manual, s *Simulation, frames int, step time.Duration) error {
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !s.Running() {
			return nil
		}
		m.Advance(step)
	}
	return nil
}

type RunResult struct {
	Seed      uint64
	Stats     Stats
	Particles []galaxy.Particle
}

// Ensemble runs independent offscreen simulations with consecutive seeds,
// one goroutine per run. Each run is single-threaded on its own Manual clock.
type Ensemble struct {
	opts          Options
	width, height int
	numRuns       int
	seedStart     uint64
}

func NewEnsemble(opts Options, width, height, numRuns int, seedStart uint64) *Ensemble {
	return &Ensemble{opts: opts, width: width, height: height, numRuns: numRuns, seedStart: seedStart}
}

// Run steps every simulation for ticks rendered frames. observers, if not
// nil, supplies per-run observers.
func (e *Ensemble) Run(ctx context.Context, ticks int, observers func(run int) []Observer) ([]*RunResult, error) {
	results := make([]*RunResult, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + uint64(idx)
			opts := e.opts
			opts.Source = galaxy.NewSource(seed)
			opts.Logger = nil

			m := NewManual()
			s, err := New(m, opts)
			if err != nil {
				errs[idx] = err
				return
			}
			if observers != nil {
				for _, o := range observers(idx) {
					s.AddObserver(o)
				}
			}
			vp := NewViewport(e.width, e.height, CountingFactory)
			if err := s.Start(vp); err != nil {
				errs[idx] = err
				return
			}
			err = Drive(ctx, m, s, ticks, s.Interval())
			results[idx] = &RunResult{Seed: seed, Stats: s.Stats(), Particles: s.Particles()}
			s.Stop()
			errs[idx] = err
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
