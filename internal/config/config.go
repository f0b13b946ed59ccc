// Package config provides YAML-based game tuning, difficulty progression and
// the on-disk locations (config, data, state) the game uses.
package config

import (
	"errors"
	"fmt"
)

// AppName names the XDG subdirectories the game reads and writes.
const AppName = "tui-bee"

// Scroll directions for pillars.
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// BeeConfig contains all tuning for the bee game.
type BeeConfig struct {
	Physics    BeePhysics       `yaml:"physics"`
	Pillars    BeePillars       `yaml:"pillars"`
	Bee        BeeSprite        `yaml:"bee"`
	Clouds     BeeClouds        `yaml:"clouds"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BeePhysics defines the bee's vertical motion. Units are cells and seconds;
// positive is downward.
type BeePhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MaxRiseSpeed float64 `yaml:"max_rise_speed"`
}

// BeePillars defines the obstacle pairs.
type BeePillars struct {
	Speed           float64 `yaml:"speed"` // cells per second
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	Width           int     `yaml:"width"`
	MinGapSize      int     `yaml:"min_gap_size"`
	MaxGapSize      int     `yaml:"max_gap_size"`
	GapOffsetRange  int     `yaml:"gap_offset_range"` // total wobble of the gap center
	Direction       string  `yaml:"direction"`        // "left" or "right"
	EdgeMargin      int     `yaml:"edge_margin"`      // off-screen distance for spawn and despawn
}

// BeeSprite defines the player sprite and its idle wander.
type BeeSprite struct {
	XRatio           float64 `yaml:"x_ratio"` // home column as a fraction of screen width
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	WanderWidth      float64 `yaml:"wander_width"`
	WanderIntervalMS int     `yaml:"wander_interval_ms"`
	WanderRate       float64 `yaml:"wander_rate"`
	AnimFrameMS      int     `yaml:"anim_frame_ms"`
}

// BeeClouds defines the background decoration.
type BeeClouds struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Margin   int     `yaml:"margin"`
}

// AudioConfig selects optional sound files. Empty paths use synthesized sounds.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // beep volume exponent, 0 = unchanged
	JumpWAV    string  `yaml:"jump_wav"`
	AmbientWAV string  `yaml:"ambient_wav"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`
	GapReduction        int     `yaml:"gap_reduction"`
	IntervalReductionMS int     `yaml:"interval_reduction_ms"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the tuning describes a playable game.
func (c BeeConfig) Validate() error {
	switch {
	case c.Bee.Width <= 0 || c.Bee.Height <= 0:
		return fmt.Errorf("%w: bee size must be positive", ErrInvalidConfig)
	case c.Bee.XRatio < 0 || c.Bee.XRatio > 1:
		return fmt.Errorf("%w: bee x_ratio must be within [0, 1]", ErrInvalidConfig)
	case c.Pillars.Width <= 0:
		return fmt.Errorf("%w: pillar width must be positive", ErrInvalidConfig)
	case c.Pillars.MinGapSize <= 0:
		return fmt.Errorf("%w: min_gap_size must be positive", ErrInvalidConfig)
	case c.Pillars.MinGapSize > c.Pillars.MaxGapSize:
		return fmt.Errorf("%w: min_gap_size %d exceeds max_gap_size %d",
			ErrInvalidConfig, c.Pillars.MinGapSize, c.Pillars.MaxGapSize)
	case c.Pillars.SpawnIntervalMS <= 0:
		return fmt.Errorf("%w: spawn_interval_ms must be positive", ErrInvalidConfig)
	case c.Pillars.Speed <= 0:
		return fmt.Errorf("%w: pillar speed must be positive", ErrInvalidConfig)
	case c.Pillars.Direction != DirectionLeft && c.Pillars.Direction != DirectionRight:
		return fmt.Errorf("%w: unknown pillar direction %q", ErrInvalidConfig, c.Pillars.Direction)
	case c.Physics.MaxFallSpeed <= 0 || c.Physics.MaxRiseSpeed <= 0:
		return fmt.Errorf("%w: speed clamps must be positive", ErrInvalidConfig)
	case c.Clouds.Count < 0:
		return fmt.Errorf("%w: cloud count must not be negative", ErrInvalidConfig)
	case c.Clouds.MinSpeed > c.Clouds.MaxSpeed:
		return fmt.Errorf("%w: cloud min_speed exceeds max_speed", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string means
// "keep the config's own settings".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyBeePreset modifies the config for a difficulty preset.
func ApplyBeePreset(cfg *BeeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
