package config

import (
	_ "embed"
)

//go:embed defaults/bee.yaml
var defaultBeeYAML []byte

// DefaultBeeConfig returns the built-in tuning. It mirrors defaults/bee.yaml
// and is used when the embedded file cannot be parsed.
func DefaultBeeConfig() BeeConfig {
	return BeeConfig{
		Physics: BeePhysics{
			Gravity:      45,
			JumpImpulse:  -16,
			MaxFallSpeed: 20,
			MaxRiseSpeed: 18,
		},
		Pillars: BeePillars{
			Speed:           16,
			SpawnIntervalMS: 2500,
			Width:           4,
			MinGapSize:      7,
			MaxGapSize:      11,
			GapOffsetRange:  8,
			Direction:       DirectionRight,
			EdgeMargin:      2,
		},
		Bee: BeeSprite{
			XRatio:           0.75,
			Width:            3,
			Height:           2,
			WanderWidth:      6,
			WanderIntervalMS: 4000,
			WanderRate:       0.8,
			AnimFrameMS:      500,
		},
		Clouds: BeeClouds{
			Count:    10,
			MinSpeed: 3,
			MaxSpeed: 9,
			Margin:   12,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.8,
				GapReduction:        3,
				IntervalReductionMS: 900,
			},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultBeeYAML
}
