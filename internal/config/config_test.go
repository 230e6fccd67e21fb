package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ZooConfig
	if err := yaml.Unmarshal(defaultZooYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultZooConfig() {
		t.Errorf("embedded defaults differ from DefaultZooConfig():\n%+v\n%+v", cfg, DefaultZooConfig())
	}
}

func TestLoadZooCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoo.yaml")
	data := []byte("gameplay:\n  points_per_tile: 25\n  time_limit: 45\ntiming:\n  spawn_interval: 0.3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadZoo(path)
	if err != nil {
		t.Fatalf("LoadZoo() failed: %v", err)
	}

	if cfg.Gameplay.PointsPerTile != 25 || cfg.Gameplay.TimeLimit != 45 || cfg.Timing.SpawnInterval != 0.3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unset fields keep their defaults
	if cfg.Timing.LerpSpeed != 0.15 || cfg.Layout.CellWidth != 6 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadZooErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.yaml")},
		{"malformed", bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadZoo(tt.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	cfg := Sanitize(ZooConfig{
		Gameplay: ZooGameplay{TimeBonus: -1},
		Layout:   ZooLayout{CellWidth: 2},
	})
	def := DefaultZooConfig()

	if cfg.Timing != def.Timing {
		t.Errorf("zero timing should become defaults, got %+v", cfg.Timing)
	}
	if cfg.Gameplay.TimeBonus != 0 {
		t.Errorf("negative bonus should clamp to 0, got %v", cfg.Gameplay.TimeBonus)
	}
	if cfg.Layout.CellWidth != def.Layout.CellWidth || cfg.Input.DragThreshold != def.Input.DragThreshold {
		t.Errorf("unusable values not replaced: %+v", cfg)
	}
}

func TestApplyZooPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		level     float64
		timeLimit float64
	}{
		{"", true, 0.0, 90},
		{DifficultyEasy, true, 0.0, 150},
		{DifficultyNormal, true, 0.3, 90},
		{DifficultyHard, true, 0.7, 60},
		{DifficultyFixed, false, 0.0, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultZooConfig()
			ApplyZooPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Gameplay.TimeLimit != tt.timeLimit {
				t.Errorf("TimeLimit = %v, expected %v", cfg.Gameplay.TimeLimit, tt.timeLimit)
			}
		})
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultZooConfig().Difficulty

	tests := []struct {
		name  string
		typ   string
		score int
		ticks int
		want  float64
	}{
		{"score start", "score", 0, 0, 0},
		{"score half", "score", 1000, 0, 0.5},
		{"score capped", "score", 5000, 0, 1},
		{"time half", "time", 0, 1000, 0.5},
		{"none", "none", 5000, 5000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Progression.Type = tt.typ
			d := NewDifficultyManager(c)
			if got := d.Level(tt.score, tt.ticks); got != tt.want {
				t.Errorf("Level(%d, %d) = %v, expected %v", tt.score, tt.ticks, got, tt.want)
			}
		})
	}
}

func TestTimeBonus(t *testing.T) {
	d := NewDifficultyManager(DefaultZooConfig().Difficulty)

	if got := d.TimeBonus(2, 0, 0); got != 2 {
		t.Errorf("full bonus at level 0, got %v", got)
	}
	if got := d.TimeBonus(2, 2000, 0); got != 0.5 {
		t.Errorf("bonus at max level should be 0.5, got %v", got)
	}

	fixed := DefaultZooConfig()
	ApplyZooPreset(&fixed, DifficultyFixed)
	d = NewDifficultyManager(fixed.Difficulty)
	if got := d.TimeBonus(2, 2000, 0); got != 2 {
		t.Errorf("disabled progression keeps the full bonus, got %v", got)
	}
}
