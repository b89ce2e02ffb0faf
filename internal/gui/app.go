// Package gui hosts the galaxy collision in a resizable raylib window.
package gui

import (
	"fmt"
	"io"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/galaxysim/internal/config"
	"github.com/san-kum/galaxysim/internal/export"
	"github.com/san-kum/galaxysim/internal/metrics"
	"github.com/san-kum/galaxysim/internal/render"
	"github.com/san-kum/galaxysim/internal/sim"
	"github.com/san-kum/galaxysim/internal/surface"
)

var (
	ColText    = rl.NewColor(224, 195, 252, 255)
	ColTextDim = rl.NewColor(110, 100, 140, 255)
	ColPanel   = rl.NewColor(0, 0, 0, 120)
)

type Options struct {
	Logger *log.Logger
	// SnapshotPath receives a PNG when S is pressed.
	SnapshotPath string
}

type App struct {
	cfg  *config.Config
	opts Options
	log  *log.Logger

	queue    *sim.FrameQueue
	viewport *sim.Viewport
	sim      *sim.Simulation
	surf     *Surface
	tracker  *metrics.Tracker

	paused  bool
	showHUD bool
	quit    bool
	status  string
}

// initWindow opens a resizable window at the configured size and hands exit
// handling to the app.
func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "galaxysim")
	rl.SetTargetFPS(int32(cfg.RefreshHz))
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if opts.SnapshotPath == "" {
		opts.SnapshotPath = "galaxysim.png"
	}
	simOpts, err := cfg.Options(logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		opts:    opts,
		log:     logger,
		queue:   sim.NewFrameQueue(),
		tracker: metrics.Default(1),
		showHUD: true,
	}
	a.viewport = sim.NewViewport(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()), a.newSurface)

	a.sim, err = sim.New(a.queue, simOpts)
	if err != nil {
		return nil, err
	}
	a.sim.AddObserver(a.tracker)
	return a, nil
}

func (a *App) newSurface(width, height int) (surface.Surface, error) {
	if a.surf != nil {
		a.surf.Unload()
	}
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	a.surf = s
	return s, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, opts Options) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	app, err := NewApp(cfg, opts)
	if err != nil {
		return err
	}
	if err := app.sim.Start(app.viewport); err != nil {
		return err
	}
	app.RunLoop()
	app.sim.Stop()
	if app.surf != nil {
		app.surf.Unload()
	}
	return nil
}

func (a *App) RunLoop() {
	origin := rl.GetTime()
	for !rl.WindowShouldClose() && !a.quit {
		a.Update(time.Duration((rl.GetTime() - origin) * float64(time.Second)))
		a.Draw()
	}
}

func (a *App) Update(now time.Duration) {
	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		a.quit = true
		return
	case rl.IsKeyPressed(rl.KeySpace):
		a.paused = !a.paused
	case rl.IsKeyPressed(rl.KeyR):
		a.sim.Stop()
		if err := a.sim.Start(a.viewport); err != nil {
			a.status = err.Error()
		}
		a.tracker.Reset()
	case rl.IsKeyPressed(rl.KeyH):
		a.showHUD = !a.showHUD
	case rl.IsKeyPressed(rl.KeyS):
		a.snapshot()
	}

	if rl.IsWindowResized() {
		w, h := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
		a.queue.Post(func() { a.viewport.SetSize(w, h) })
	}

	if !a.paused {
		a.queue.RunFrame(now)
		if a.surf != nil {
			a.surf.Flush()
		}
	}
}

// snapshot renders the current particles offscreen and saves them as PNG.
func (a *App) snapshot() {
	w, h := a.viewport.Size()
	r, err := surface.NewRaster(w, h)
	if err == nil {
		render.Render(r, a.sim.Particles(), a.cfg.BackgroundColor())
		err = export.SavePNG(a.opts.SnapshotPath, r.Image())
	}
	if err != nil {
		a.status = fmt.Sprintf("snapshot failed: %v", err)
		a.log.Printf("snapshot: %v", err)
		return
	}
	a.status = "saved " + a.opts.SnapshotPath
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(a.cfg.BackgroundColor()))

	if a.surf != nil {
		a.surf.Draw()
	}
	if a.showHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	stats := a.sim.Stats()
	values := a.tracker.Values()

	rl.DrawRectangle(16, 16, 250, 112, ColPanel)
	rl.DrawText("galaxysim", 28, 26, 20, ColText)

	status := "RUNNING"
	if a.paused {
		status = "PAUSED"
	}
	rl.DrawText(status, 180, 30, 12, ColTextDim)
	rl.DrawText(fmt.Sprintf("ticks %d  skipped %d", stats.Ticks, stats.Skipped), 28, 56, 12, ColTextDim)
	rl.DrawText(fmt.Sprintf("kinetic %.1f  drift %+.2f%%", values["kinetic_energy"], values["energy_drift"]*100), 28, 74, 12, ColTextDim)
	rl.DrawText(fmt.Sprintf("crossing %.0f%%  %d FPS", values["crossing"]*100, rl.GetFPS()), 28, 92, 12, ColTextDim)

	h := int32(rl.GetScreenHeight())
	rl.DrawText("[SPACE] PAUSE  [R] RESTART  [S] SNAPSHOT  [H] HUD  [Q] QUIT", 16, h-24, 12, ColTextDim)
	if a.status != "" {
		rl.DrawText(a.status, 16, h-42, 12, ColText)
	}
}
