package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BeeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if want := DefaultBeeConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BeeConfig)
	}{
		{"zero bee width", func(c *BeeConfig) { c.Bee.Width = 0 }},
		{"x ratio out of range", func(c *BeeConfig) { c.Bee.XRatio = 1.5 }},
		{"zero pillar width", func(c *BeeConfig) { c.Pillars.Width = 0 }},
		{"inverted gaps", func(c *BeeConfig) { c.Pillars.MinGapSize = 12; c.Pillars.MaxGapSize = 5 }},
		{"zero interval", func(c *BeeConfig) { c.Pillars.SpawnIntervalMS = 0 }},
		{"bad direction", func(c *BeeConfig) { c.Pillars.Direction = "up" }},
		{"negative clouds", func(c *BeeConfig) { c.Clouds.Count = -1 }},
		{"zero fall clamp", func(c *BeeConfig) { c.Physics.MaxFallSpeed = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBeeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadBeeCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bee.yaml")
	data := []byte("physics:\n  gravity: 30\npillars:\n  direction: left\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBee(path)
	if err != nil {
		t.Fatalf("LoadBee: %v", err)
	}
	if cfg.Physics.Gravity != 30 {
		t.Errorf("gravity = %v, want 30", cfg.Physics.Gravity)
	}
	if cfg.Pillars.Direction != DirectionLeft {
		t.Errorf("direction = %q, want left", cfg.Pillars.Direction)
	}
	// Untouched keys keep their defaults.
	if cfg.Pillars.Width != DefaultBeeConfig().Pillars.Width {
		t.Errorf("pillar width = %d, want default", cfg.Pillars.Width)
	}
}

func TestLoadBeeCustomErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadBee(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pillars:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBee(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadBee(invalid) = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadBeeSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "none"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	work := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })

	// Nothing on disk: embedded defaults.
	cfg, err := LoadBee("")
	if err != nil {
		t.Fatalf("LoadBee: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBeeConfig()) {
		t.Error("expected embedded defaults")
	}

	// Local ./configs beats embedded.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "bee.yaml"), []byte("clouds:\n  count: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBee("")
	if cfg.Clouds.Count != 2 {
		t.Errorf("clouds = %d, want 2 from ./configs", cfg.Clouds.Count)
	}

	// User config beats local.
	userDir := filepath.Join(home, AppName)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "bee.yaml"), []byte("clouds:\n  count: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBee("")
	if cfg.Clouds.Count != 5 {
		t.Errorf("clouds = %d, want 5 from user config", cfg.Clouds.Count)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q): %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyBeePreset(t *testing.T) {
	cfg := DefaultBeeConfig()
	ApplyBeePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}

	ApplyBeePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyBeePreset(&cfg, "")
	if !reflect.DeepEqual(before, cfg) {
		t.Error("empty preset should not modify config")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultBeeConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, want 0", got)
	}
	if got := dm.Level(cfg.Progression.MaxAt*2, 0); got != 1 {
		t.Errorf("Level(past max) = %v, want 1", got)
	}

	if got := dm.Speed(10, cfg.Progression.MaxAt, 0); got != 10*(1+cfg.Scaling.SpeedMultiplier) {
		t.Errorf("Speed at max = %v", got)
	}
	if got := dm.GapSize(5, cfg.Progression.MaxAt, 0); got != minGapSize {
		t.Errorf("GapSize clamp = %d, want %d", got, minGapSize)
	}
	if got := dm.Interval(time.Second, cfg.Progression.MaxAt, 0); got != minSpawnInterval {
		t.Errorf("Interval clamp = %v, want %v", got, minSpawnInterval)
	}
	if got := dm.Interval(2500*time.Millisecond, 0, 0); got != 2500*time.Millisecond {
		t.Errorf("Interval at level 0 = %v", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.5)
	if got := dm.Level(cfg.Progression.MaxAt, 0); got != 0.5 {
		t.Errorf("disabled Level = %v, want 0.5", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := dm.Level(1000, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, want 0.5", got)
	}
}
