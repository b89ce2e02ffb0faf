package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/sim"
	"github.com/san-kum/galaxysim/internal/surface"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = 60
	DefaultRefreshHz  = 120
	DefaultWidth      = 960
	DefaultHeight     = 540
	DefaultBackground = "#131322"
)

type Config struct {
	ParticlesPerGalaxy int      `yaml:"particles_per_galaxy"`
	Arms               int      `yaml:"arms"`
	GalaxyRadius       float64  `yaml:"galaxy_radius"`
	Drift              float64  `yaml:"drift"`
	Palette            []string `yaml:"palette,omitempty"`
	TargetFPS          int      `yaml:"target_fps"`
	Background         string   `yaml:"background"`
	Seed               uint64   `yaml:"seed"`
	Width              int      `yaml:"width"`
	Height             int      `yaml:"height"`
	RefreshHz          int      `yaml:"refresh_hz"`
}

func DefaultConfig() *Config {
	return &Config{
		ParticlesPerGalaxy: galaxy.DefaultCount,
		Arms:               galaxy.DefaultArms,
		GalaxyRadius:       galaxy.DefaultRadius,
		Drift:              galaxy.DefaultDrift,
		TargetFPS:          DefaultFPS,
		Background:         DefaultBackground,
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		RefreshHz:          DefaultRefreshHz,
	}
}

// Load reads a YAML file, or an INI-style file when the extension is .gcfg
// or .ini. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gcfg", ".ini":
		return loadGcfg(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Palette = append([]string(nil), c.Palette...)
	return &cp
}

func (c *Config) Validate() error {
	if c.ParticlesPerGalaxy < 0 {
		return fmt.Errorf("config: particles_per_galaxy must not be negative, got %d", c.ParticlesPerGalaxy)
	}
	if c.Arms < 1 {
		return fmt.Errorf("config: arms must be at least 1, got %d", c.Arms)
	}
	if c.GalaxyRadius < 0 {
		return fmt.Errorf("config: galaxy_radius must not be negative, got %f", c.GalaxyRadius)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("config: target_fps must be positive, got %d", c.TargetFPS)
	}
	if c.RefreshHz <= 0 {
		return fmt.Errorf("config: refresh_hz must be positive, got %d", c.RefreshHz)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := surface.ParseHex(c.Background); err != nil {
		return fmt.Errorf("config: background %q: %w", c.Background, err)
	}
	if len(c.Palette) > 0 {
		if _, err := galaxy.ParsePalette(c.Palette); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

func (c *Config) BackgroundColor() color.RGBA {
	bg, err := surface.ParseHex(c.Background)
	if err != nil {
		return color.RGBA{R: 0x13, G: 0x13, B: 0x22, A: 0xff}
	}
	return bg
}

func (c *Config) Shape() (galaxy.Shape, error) {
	shape := galaxy.Shape{Arms: c.Arms, Radius: c.GalaxyRadius, Palette: galaxy.Violet}
	if len(c.Palette) > 0 {
		p, err := galaxy.ParsePalette(c.Palette)
		if err != nil {
			return galaxy.Shape{}, err
		}
		shape.Palette = p
	}
	return shape, nil
}

// Options validates c and converts it into simulation options.
func (c *Config) Options(logger *log.Logger) (sim.Options, error) {
	if err := c.Validate(); err != nil {
		return sim.Options{}, err
	}
	shape, err := c.Shape()
	if err != nil {
		return sim.Options{}, err
	}
	return sim.Options{
		ParticlesPerGalaxy: c.ParticlesPerGalaxy,
		Shape:              shape,
		Drift:              c.Drift,
		TargetFPS:          c.TargetFPS,
		Background:         c.BackgroundColor(),
		Source:             galaxy.NewSource(c.Seed),
		Logger:             logger,
	}, nil
}
