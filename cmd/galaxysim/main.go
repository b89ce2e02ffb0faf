package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/galaxysim/internal/config"
	"github.com/san-kum/galaxysim/internal/gui"
	"github.com/san-kum/galaxysim/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       uint64
	logFile    string
	// Terminal view
	theme      string
	scale      int
	recordPath string
	// Offscreen output
	width         int
	height        int
	frames        int
	every         int
	gifPath       string
	snapshotTicks int
	snapshotPath  string
	pngPath       string
	numRuns       int
	statsTicks    int
	benchTicks    int
)

// main registers the commands and runs the terminal view when no subcommand
// is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "galaxysim",
		Short:        "two spiral galaxies colliding, in your terminal or a window",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml, or gcfg/ini)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	flags.StringVar(&logFile, "log", "", "append log output to this file")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&theme, "theme", "", "color theme (violet, ember, ice, mono)")
		c.Flags().IntVar(&scale, "scale", 4, "pixels per braille dot")
		c.Flags().StringVar(&recordPath, "record", "galaxysim.gif", "where G saves recordings")
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a resizable window",
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&pngPath, "snapshot", "galaxysim.png", "where S saves snapshots")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render an animated GIF offscreen",
		RunE:  renderGIF,
	}
	renderCmd.Flags().IntVar(&frames, "frames", 600, "simulation ticks to run")
	renderCmd.Flags().IntVar(&every, "every", 2, "capture every nth tick")
	renderCmd.Flags().StringVarP(&gifPath, "out", "o", "galaxysim.gif", "output file")
	addSizeFlags(renderCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a single frame as SVG or PNG",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshotTicks, "ticks", 300, "ticks to run before capturing")
	snapshotCmd.Flags().StringVarP(&snapshotPath, "out", "o", "galaxysim.svg", "output file (.svg or .png)")
	addSizeFlags(snapshotCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run seeded simulations in parallel and summarize them",
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&numRuns, "runs", 4, "number of runs")
	statsCmd.Flags().IntVar(&statsTicks, "ticks", 600, "ticks per run")
	addSizeFlags(statsCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark ticks per second at several particle counts",
		RunE:  bench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 300, "ticks per measurement")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "work with config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  configInit,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, guiCmd, renderCmd, snapshotCmd, statsCmd, benchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 0, "surface width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "surface height (default from config)")
}

// loadConfig builds the effective configuration: defaults, then the preset,
// then the config file, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if f := cmd.Flags().Lookup("width"); f != nil && f.Changed {
		cfg.Width = width
	}
	if f := cmd.Flags().Lookup("height"); f != nil && f.Changed {
		cfg.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLog returns a logger writing to --log, or one that discards.
func openLog() (*log.Logger, func(), error) {
	if logFile == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "galaxysim ", log.LstdFlags), func() { f.Close() }, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var logger *log.Logger
	if logFile != "" {
		// the terminal is taken, so the standard logger goes to the file
		f, err := tea.LogToFile(logFile, "galaxysim")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.Default()
	}

	return tui.Run(cfg, tui.Options{
		Theme:      theme,
		Scale:      scale,
		RecordPath: recordPath,
		Logger:     logger,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	return gui.Run(cfg, gui.Options{Logger: logger, SnapshotPath: pngPath})
}
