package config

import (
	_ "embed"
)

//go:embed defaults/zoo.yaml
var defaultZooYAML []byte

// DefaultZooConfig returns the default zoo configuration.
func DefaultZooConfig() ZooConfig {
	return ZooConfig{
		Timing: ZooTiming{
			LerpSpeed:        0.15,
			ReadyLerpSpeed:   0.117,
			SpawnInterval:    0.15,
			PopulateRowDelay: 0.2,
		},
		Gameplay: ZooGameplay{
			PointsPerTile: 10,
			TimeLimit:     90,
			TimeBonus:     2,
		},
		Input: ZooInput{
			DragThreshold: 0.1,
		},
		Layout: ZooLayout{
			CellWidth:  6,
			CellHeight: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				BonusReduction: 0.75,
			},
		},
	}
}
