package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ParticlesPerGalaxy != 250 {
		t.Errorf("expected 250 particles per galaxy, got %d", cfg.ParticlesPerGalaxy)
	}
	if cfg.TargetFPS != 60 {
		t.Errorf("expected 60 fps, got %d", cfg.TargetFPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pinwheel")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Arms != 2 {
		t.Errorf("expected 2 arms, got %d", cfg.Arms)
	}

	cfg.Arms = 9
	if Presets["pinwheel"].Arms != 2 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if err := Presets[name].Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"negative count": func(c *Config) { c.ParticlesPerGalaxy = -1 },
		"no arms":        func(c *Config) { c.Arms = 0 },
		"zero fps":       func(c *Config) { c.TargetFPS = 0 },
		"zero refresh":   func(c *Config) { c.RefreshHz = 0 },
		"zero width":     func(c *Config) { c.Width = 0 },
		"bad background": func(c *Config) { c.Background = "violet" },
		"bad palette":    func(c *Config) { c.Palette = []string{"#zzzzzz"} },
	}
	for name, edit := range cases {
		cfg := DefaultConfig()
		edit(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSaveLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Palette = []string{"#ff0000", "#00ff00"}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Seed != 42 || len(got.Palette) != 2 {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	if err := os.WriteFile(path, []byte("arms: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Arms != 3 {
		t.Errorf("expected 3 arms, got %d", cfg.Arms)
	}
	if cfg.ParticlesPerGalaxy != 250 || cfg.Background != DefaultBackground {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

const sampleGcfg = `
[galaxy]
particles = 100
radius = 80.5
palette = "#ff0000"
palette = "#0000ff"

[render]
fps = 30
background = "#000000"
refresh-hz = 90
seed = 7
`

func TestParseGcfg(t *testing.T) {
	cfg, err := ParseGcfg(sampleGcfg)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ParticlesPerGalaxy != 100 {
		t.Errorf("expected 100 particles, got %d", cfg.ParticlesPerGalaxy)
	}
	if cfg.GalaxyRadius != 80.5 {
		t.Errorf("expected radius 80.5, got %f", cfg.GalaxyRadius)
	}
	if cfg.TargetFPS != 30 || cfg.RefreshHz != 90 || cfg.Seed != 7 {
		t.Errorf("render section not applied: %+v", cfg)
	}
	if len(cfg.Palette) != 2 || cfg.Palette[1] != "#0000ff" {
		t.Errorf("unexpected palette %v", cfg.Palette)
	}
	if cfg.Arms != 4 || cfg.Width != DefaultWidth {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadGcfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.gcfg")
	if err := os.WriteFile(path, []byte(sampleGcfg), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Background != "#000000" {
		t.Errorf("expected #000000 background, got %s", cfg.Background)
	}
}

func TestParseGcfgUnknownVariable(t *testing.T) {
	if _, err := ParseGcfg("[galaxy]\nwobble = 3\n"); err == nil {
		t.Error("expected error for unknown variable")
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.Palette = []string{"#ffffff"}

	opts, err := cfg.Options(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.ParticlesPerGalaxy != cfg.ParticlesPerGalaxy || opts.TargetFPS != 60 {
		t.Errorf("unexpected options %+v", opts)
	}
	if len(opts.Shape.Palette) != 1 || opts.Shape.Palette[0].R != 0xff {
		t.Errorf("palette not applied: %v", opts.Shape.Palette)
	}
	if opts.Background.R != 0x13 || opts.Background.B != 0x22 {
		t.Errorf("unexpected background %v", opts.Background)
	}

	cfg.Arms = 0
	if _, err := cfg.Options(nil); err == nil {
		t.Error("expected invalid config to fail")
	}
}
