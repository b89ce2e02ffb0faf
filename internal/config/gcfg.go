package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// iniFile is the INI layout. Colors must be quoted since # starts a comment:
//
//	[galaxy]
//	particles = 250
//	palette = "#d0bfff"
//	palette = "#b19cd9"
//
//	[render]
//	background = "#131322"
//	refresh-hz = 120
type iniFile struct {
	Galaxy struct {
		Particles int
		Arms      int
		Radius    float64
		Drift     float64
		Palette   []string
	}
	Render struct {
		FPS        int `gcfg:"fps"`
		Background string
		Width      int
		Height     int
		RefreshHz  int `gcfg:"refresh-hz"`
		Seed       uint64
	}
}

func fromConfig(c *Config) *iniFile {
	f := &iniFile{}
	f.Galaxy.Particles = c.ParticlesPerGalaxy
	f.Galaxy.Arms = c.Arms
	f.Galaxy.Radius = c.GalaxyRadius
	f.Galaxy.Drift = c.Drift
	f.Render.FPS = c.TargetFPS
	f.Render.Background = c.Background
	f.Render.Width = c.Width
	f.Render.Height = c.Height
	f.Render.RefreshHz = c.RefreshHz
	f.Render.Seed = c.Seed
	return f
}

func (f *iniFile) toConfig() *Config {
	return &Config{
		ParticlesPerGalaxy: f.Galaxy.Particles,
		Arms:               f.Galaxy.Arms,
		GalaxyRadius:       f.Galaxy.Radius,
		Drift:              f.Galaxy.Drift,
		Palette:            f.Galaxy.Palette,
		TargetFPS:          f.Render.FPS,
		Background:         f.Render.Background,
		Seed:               f.Render.Seed,
		Width:              f.Render.Width,
		Height:             f.Render.Height,
		RefreshHz:          f.Render.RefreshHz,
	}
}

func loadGcfg(path string) (*Config, error) {
	f := fromConfig(DefaultConfig())
	if err := gcfg.ReadFileInto(f, path); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f.toConfig(), nil
}

// ParseGcfg reads INI-style configuration from a string.
func ParseGcfg(src string) (*Config, error) {
	f := fromConfig(DefaultConfig())
	if err := gcfg.ReadStringInto(f, src); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return f.toConfig(), nil
}
