package config

import (
	"math"
	"time"
)

// Lower bounds that keep the game playable at level 1.0.
const (
	minGapSize       = 4
	minSpawnInterval = 800 * time.Millisecond
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base speed from base to base*(1+speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks a gap as difficulty increases, never below a playable size.
func (d *DifficultyManager) GapSize(baseGap int, score int, ticks int) int {
	level := d.Level(score, ticks)
	result := baseGap - int(level*float64(d.cfg.Scaling.GapReduction))
	if result < minGapSize {
		result = minGapSize
	}
	return result
}

// Interval shortens the pillar spawn interval as difficulty increases.
func (d *DifficultyManager) Interval(base time.Duration, score int, ticks int) time.Duration {
	level := d.Level(score, ticks)
	reduction := time.Duration(level*float64(d.cfg.Scaling.IntervalReductionMS)) * time.Millisecond
	result := base - reduction
	if result < minSpawnInterval {
		result = minSpawnInterval
	}
	return result
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
