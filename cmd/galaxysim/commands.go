package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/galaxysim/internal/config"
	"github.com/san-kum/galaxysim/internal/export"
	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/metrics"
	"github.com/san-kum/galaxysim/internal/sim"
	"github.com/san-kum/galaxysim/internal/surface"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// offscreen is a simulation on a manual clock, started on a viewport of the
// configured size.
type offscreen struct {
	manual *sim.Manual
	sim    *sim.Simulation
}

func newOffscreen(cfg *config.Config, logger *log.Logger, factory sim.SurfaceFactory, observers ...sim.Observer) (*offscreen, error) {
	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, err
	}
	m := sim.NewManual()
	s, err := sim.New(m, opts)
	if err != nil {
		return nil, err
	}
	for _, o := range observers {
		s.AddObserver(o)
	}
	if err := s.Start(sim.NewViewport(cfg.Width, cfg.Height, factory)); err != nil {
		return nil, err
	}
	return &offscreen{manual: m, sim: s}, nil
}

func (o *offscreen) run(ctx context.Context, n int) error {
	defer o.sim.Stop()
	return sim.Drive(ctx, o.manual, o.sim, n, o.sim.Interval())
}

func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func renderGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	shape, err := cfg.Shape()
	if err != nil {
		return err
	}
	rec := export.NewGIFRecorder(cfg.TargetFPS, every, cfg.BackgroundColor(), shape.Palette)

	o, err := newOffscreen(cfg, logger, sim.RasterFactory, rec)
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()

	start := time.Now()
	if err := o.run(ctx, frames); err != nil {
		return err
	}
	if err := rec.Save(gifPath); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames (%dx%d) to %s in %v\n", rec.Frames(), cfg.Width, cfg.Height, gifPath, time.Since(start).Round(time.Millisecond))
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if snapshotTicks < 1 {
		return fmt.Errorf("--ticks must be at least 1")
	}
	logger, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	ext := strings.ToLower(filepath.Ext(snapshotPath))
	factory := sim.RasterFactory
	if ext == ".svg" {
		factory = func(w, h int) (surface.Surface, error) {
			svg, err := export.NewSVG(w, h)
			if err != nil {
				return nil, err
			}
			return svg, nil
		}
	} else if ext != ".png" {
		return fmt.Errorf("unsupported snapshot format %q (use .svg or .png)", ext)
	}

	var last surface.Surface
	capture := sim.ObserverFunc(func(_ int, _ []galaxy.Particle, s surface.Surface) { last = s })

	o, err := newOffscreen(cfg, logger, factory, capture)
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()
	if err := o.run(ctx, snapshotTicks); err != nil {
		return err
	}

	switch s := last.(type) {
	case *export.SVG:
		f, err := os.Create(snapshotPath)
		if err != nil {
			return err
		}
		if _, err := s.WriteTo(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	case export.Imager:
		if err := export.SavePNG(snapshotPath, s.Image()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("nothing rendered")
	}
	fmt.Printf("wrote %s after %d ticks\n", snapshotPath, snapshotTicks)
	return nil
}

func newRunTracker(cfg *config.Config, capacity int) *metrics.Tracker {
	return metrics.NewTracker(capacity,
		metrics.NewKineticEnergy(),
		metrics.NewEnergyDrift(),
		metrics.NewMeanAnchorDistance(),
		metrics.NewCrossing(),
		metrics.NewMaxSpeed(),
		metrics.NewStability(4*cfg.GalaxyRadius),
	)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns < 1 || statsTicks < 1 {
		return fmt.Errorf("--runs and --ticks must be at least 1")
	}
	opts, err := cfg.Options(nil)
	if err != nil {
		return err
	}

	seedStart := cfg.Seed
	if seedStart == 0 {
		seedStart = 1
	}

	trackers := make([]*metrics.Tracker, numRuns)
	for i := range trackers {
		trackers[i] = newRunTracker(cfg, statsTicks)
	}

	ctx, cancel := interruptible()
	defer cancel()

	start := time.Now()
	ens := sim.NewEnsemble(opts, cfg.Width, cfg.Height, numRuns, seedStart)
	results, err := ens.Run(ctx, statsTicks, func(run int) []sim.Observer {
		return []sim.Observer{trackers[run]}
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%d runs x %d ticks, %d particles each, %v\n\n", numRuns, statsTicks, 2*cfg.ParticlesPerGalaxy, elapsed.Round(time.Millisecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tTICKS\tKINETIC\tDRIFT\tSPREAD\tCROSSING\tMAX SPEED\tSTABLE")
	for i, r := range results {
		v := trackers[i].Values()
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%+.2f%%\t%.1f\t%.1f%%\t%.3f\t%.0f%%\n",
			r.Seed, r.Stats.Ticks, v["kinetic_energy"], v["energy_drift"]*100,
			v["mean_anchor_distance"], v["crossing"]*100, v["max_speed"], v["stability"]*100)
	}
	w.Flush()

	if mean := meanSeries(trackers, "kinetic_energy"); len(mean) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(mean, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("mean kinetic energy")))
	}

	return nil
}

func meanSeries(trackers []*metrics.Tracker, name string) []float64 {
	var sum []float64
	for _, t := range trackers {
		values := t.History(name).Values()
		if sum == nil {
			sum = make([]float64, len(values))
		}
		for i := 0; i < len(sum) && i < len(values); i++ {
			sum[i] += values[i]
		}
	}
	for i := range sum {
		sum[i] /= float64(len(trackers))
	}
	return sum
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if benchTicks < 1 {
		return fmt.Errorf("--ticks must be at least 1")
	}

	counts := []int{100, 250, 500, 1000, 2000}
	fmt.Printf("benchmarking %d ticks at %dx%d\n\n", benchTicks, cfg.Width, cfg.Height)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tSURFACE\tTIME\tTICKS/SEC\tPARTICLE-STEPS/SEC")

	ctx, cancel := interruptible()
	defer cancel()

	for _, n := range counts {
		for _, surfaceName := range []string{"counting", "raster"} {
			c := cfg.Clone()
			c.ParticlesPerGalaxy = n
			c.Seed = 42

			factory := sim.CountingFactory
			if surfaceName == "raster" {
				factory = sim.RasterFactory
			}
			o, err := newOffscreen(c, nil, factory)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := o.run(ctx, benchTicks); err != nil {
				return err
			}
			elapsed := time.Since(start)

			tps := float64(benchTicks) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%s\t%v\t%.0f\t%.0f\n", 2*n, surfaceName, elapsed.Round(time.Millisecond), tps, tps*float64(2*n))
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARTICLES\tARMS\tRADIUS\tDRIFT\tFPS")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f\t%.2f\t%d\n", name, 2*p.ParticlesPerGalaxy, p.Arms, p.GalaxyRadius, p.Drift, p.TargetFPS)
	}
	return w.Flush()
}

func configInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
