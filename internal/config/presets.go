package config

import "sort"

func preset(edit func(c *Config)) *Config {
	c := DefaultConfig()
	edit(c)
	return c
}

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"dense": preset(func(c *Config) {
		c.ParticlesPerGalaxy = 500
		c.GalaxyRadius = 150
	}),
	"sparse": preset(func(c *Config) {
		c.ParticlesPerGalaxy = 80
	}),
	"headon": preset(func(c *Config) {
		c.Drift = 0.6
	}),
	"pinwheel": preset(func(c *Config) {
		c.Arms = 2
		c.GalaxyRadius = 140
	}),
	"slowmo": preset(func(c *Config) {
		c.TargetFPS = 30
		c.Drift = 0.15
	}),
	"terminal": preset(func(c *Config) {
		c.ParticlesPerGalaxy = 150
		c.GalaxyRadius = 90
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
