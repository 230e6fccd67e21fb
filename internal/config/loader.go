package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadZoo loads the zoo configuration.
// Search order: customPath -> ~/.zoo/configs/zoo.yaml -> ./configs/zoo.yaml -> embedded default
func LoadZoo(customPath string) (ZooConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultZooConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("zoo.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return Sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/zoo.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return Sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultZooYAML, &cfg); err != nil {
		return DefaultZooConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Sanitize(cfg), nil
}

// Sanitize replaces unusable values with defaults.
func Sanitize(cfg ZooConfig) ZooConfig {
	def := DefaultZooConfig()
	if cfg.Timing.LerpSpeed <= 0 {
		cfg.Timing.LerpSpeed = def.Timing.LerpSpeed
	}
	if cfg.Timing.ReadyLerpSpeed <= 0 {
		cfg.Timing.ReadyLerpSpeed = def.Timing.ReadyLerpSpeed
	}
	if cfg.Timing.SpawnInterval <= 0 {
		cfg.Timing.SpawnInterval = def.Timing.SpawnInterval
	}
	if cfg.Timing.PopulateRowDelay <= 0 {
		cfg.Timing.PopulateRowDelay = def.Timing.PopulateRowDelay
	}
	if cfg.Gameplay.PointsPerTile <= 0 {
		cfg.Gameplay.PointsPerTile = def.Gameplay.PointsPerTile
	}
	if cfg.Gameplay.TimeLimit <= 0 {
		cfg.Gameplay.TimeLimit = def.Gameplay.TimeLimit
	}
	if cfg.Gameplay.TimeBonus < 0 {
		cfg.Gameplay.TimeBonus = 0
	}
	if cfg.Input.DragThreshold <= 0 {
		cfg.Input.DragThreshold = def.Input.DragThreshold
	}
	if cfg.Layout.CellWidth < 3 {
		cfg.Layout.CellWidth = def.Layout.CellWidth
	}
	if cfg.Layout.CellHeight < 1 {
		cfg.Layout.CellHeight = def.Layout.CellHeight
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zoo", "configs", filename)
}

// ApplyZooPreset modifies the config based on a difficulty preset.
func ApplyZooPreset(cfg *ZooConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust round length and refill pace based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.TimeLimit = 150
		cfg.Gameplay.TimeBonus = 3
		cfg.Timing.SpawnInterval = 0.12
	case DifficultyHard:
		cfg.Gameplay.TimeLimit = 60
		cfg.Gameplay.TimeBonus = 1
		cfg.Timing.SpawnInterval = 0.2
	}
}
