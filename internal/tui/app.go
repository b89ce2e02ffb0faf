// Package tui hosts the galaxy collision in a terminal with Bubble Tea.
package tui

import (
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/galaxysim/internal/config"
	"github.com/san-kum/galaxysim/internal/export"
	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/metrics"
	"github.com/san-kum/galaxysim/internal/sim"
	"github.com/san-kum/galaxysim/internal/surface"
	"github.com/san-kum/galaxysim/internal/viz"
)

const (
	sidebarWidth    = 36
	chromeRows      = 3
	historyCapacity = 240
	recordEvery     = 2
	maxRecorded     = 900
)

type Options struct {
	// Theme overrides the configured palette and sky when set.
	Theme string
	// Scale is logical pixels per braille dot.
	Scale      int
	RecordPath string
	Logger     *log.Logger
}

type frameMsg time.Time

// Model runs one simulation on a braille canvas. Frames arrive as Bubble Tea
// tick messages at the configured refresh rate and drive a sim.FrameQueue;
// the simulation decides which of them become ticks.
type Model struct {
	cfg   *config.Config
	opts  Options
	theme viz.Theme
	// themed is set once a theme replaces the configured palette.
	themed bool
	log    *log.Logger

	queue    *sim.FrameQueue
	viewport *sim.Viewport
	sim      *sim.Simulation
	canvas   *viz.Canvas
	tracker  *metrics.Tracker
	recorder *export.GIFRecorder

	clock  func() time.Duration
	width  int
	height int

	paused   bool
	showHelp bool
	status   string
	err      error
}

func NewModel(cfg *config.Config, opts Options) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Scale < 1 {
		opts.Scale = 4
	}
	if opts.RecordPath == "" {
		opts.RecordPath = "galaxysim.gif"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	start := time.Now()
	m := &Model{
		cfg:     cfg,
		opts:    opts,
		theme:   viz.GetTheme(opts.Theme),
		themed:  opts.Theme != "",
		log:     logger,
		queue:   sim.NewFrameQueue(),
		tracker: metrics.Default(historyCapacity),
		clock:   func() time.Duration { return time.Since(start) },
	}
	m.viewport = sim.NewViewport(0, 0, m.newCanvas)
	if err := m.rebuild(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) newCanvas(width, height int) (surface.Surface, error) {
	s := m.opts.Scale
	m.canvas = viz.NewScaledCanvas((width+2*s-1)/(2*s), (height+4*s-1)/(4*s), s)
	return m.canvas, nil
}

func (m *Model) simOptions() (sim.Options, error) {
	opts, err := m.cfg.Options(m.log)
	if err != nil {
		return sim.Options{}, err
	}
	if m.themed {
		opts.Shape.Palette = m.theme.Colors()
		opts.Background = m.theme.Background()
	}
	return opts, nil
}

// rebuild replaces the simulation, keeping the viewport, and starts it if the
// terminal size is already known.
func (m *Model) rebuild() error {
	opts, err := m.simOptions()
	if err != nil {
		return err
	}
	if m.sim != nil {
		m.sim.Stop()
	}
	s, err := sim.New(m.queue, opts)
	if err != nil {
		return err
	}
	s.AddObserver(m.tracker)
	s.AddObserver(sim.ObserverFunc(m.record))
	m.sim = s
	m.tracker.Reset()

	if w, h := m.viewport.Size(); w > 0 && h > 0 {
		return m.start()
	}
	return nil
}

func (m *Model) start() error {
	m.tracker.Reset()
	if err := m.sim.Start(m.viewport); err != nil {
		m.err = err
		return err
	}
	m.err = nil
	return nil
}

func (m *Model) record(tick int, particles []galaxy.Particle, s surface.Surface) {
	if m.recorder != nil {
		m.recorder.OnTick(tick, particles, s)
	}
}

// canvasSize converts a terminal size into logical pixels for the canvas.
func (m *Model) canvasSize(cols, rows int) (int, int) {
	cols -= sidebarWidth + 2
	rows -= chromeRows
	if cols < 1 || rows < 1 {
		return 0, 0
	}
	s := m.opts.Scale
	return cols * 2 * s, rows * 4 * s
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.RefreshHz), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		if !m.paused {
			m.queue.RunFrame(m.clock())
		}
		return m, m.nextFrame()
	}
	return m, nil
}

func (m *Model) resize(cols, rows int) {
	m.width, m.height = cols, rows
	w, h := m.canvasSize(cols, rows)

	if !m.sim.Running() {
		m.viewport.SetSize(w, h)
		if w > 0 && h > 0 {
			m.start()
		}
		return
	}
	// applied on the frame goroutine ahead of the next tick
	m.queue.Post(func() { m.viewport.SetSize(w, h) })
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.Close()
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		m.sim.Stop()
		m.start()
		m.status = "restarted"
		m.log.Printf("restarted by user")
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.themed = true
		if err := m.rebuild(); err != nil {
			m.err = err
		}
		m.status = "theme " + m.theme.Name
	case "g":
		m.toggleRecording()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		opts, err := m.simOptions()
		if err != nil {
			m.err = err
			return
		}
		m.recorder = export.NewGIFRecorder(m.cfg.TargetFPS, recordEvery, opts.Background, opts.Shape.Palette)
		m.recorder.MaxFrames = maxRecorded
		m.status = "recording"
		return
	}

	rec := m.recorder
	m.recorder = nil
	if err := rec.Save(m.opts.RecordPath); err != nil {
		m.status = fmt.Sprintf("recording failed: %v", err)
		m.log.Printf("save %s: %v", m.opts.RecordPath, err)
		return
	}
	m.status = fmt.Sprintf("saved %d frames to %s", rec.Frames(), m.opts.RecordPath)
	m.log.Printf("saved %d frames to %s", rec.Frames(), m.opts.RecordPath)
}

// Close stops the simulation and flushes an active recording.
func (m *Model) Close() {
	if m.recorder != nil {
		m.toggleRecording()
	}
	m.sim.Stop()
}

func (m *Model) Simulation() *sim.Simulation { return m.sim }
func (m *Model) Canvas() *viz.Canvas         { return m.canvas }
func (m *Model) Paused() bool                { return m.paused }
func (m *Model) Recording() bool             { return m.recorder != nil }

// Run blocks until the user quits.
func Run(cfg *config.Config, opts Options) error {
	m, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	m.Close()
	return err
}
