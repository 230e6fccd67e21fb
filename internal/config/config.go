// Package config provides YAML-based game configuration loading and
// difficulty management for the zoo puzzle.
package config

// ZooConfig contains all configuration for the zoo match puzzle.
// Board size is fixed by the game and cannot be configured.
type ZooConfig struct {
	Timing     ZooTiming        `yaml:"timing"`
	Gameplay   ZooGameplay      `yaml:"gameplay"`
	Input      ZooInput         `yaml:"input"`
	Layout     ZooLayout        `yaml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ZooTiming defines animation and spawn timing, in seconds.
type ZooTiming struct {
	LerpSpeed        float64 `yaml:"lerp_speed"`       // seconds per cell while filling
	ReadyLerpSpeed   float64 `yaml:"ready_lerp_speed"` // seconds per cell once the board is ready
	SpawnInterval    float64 `yaml:"spawn_interval"`
	PopulateRowDelay float64 `yaml:"populate_row_delay"`
}

// ZooGameplay defines scoring and round length.
type ZooGameplay struct {
	PointsPerTile int     `yaml:"points_per_tile"`
	TimeLimit     float64 `yaml:"time_limit"` // seconds, timed mode only
	TimeBonus     float64 `yaml:"time_bonus"` // seconds added per match, timed mode only
}

// ZooInput defines pointer gesture parameters.
type ZooInput struct {
	DragThreshold float64 `yaml:"drag_threshold"` // in cells
}

// ZooLayout defines how big a board cell is drawn on screen.
type ZooLayout struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BonusReduction float64 `yaml:"bonus_reduction"` // Fraction of the time bonus lost at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
