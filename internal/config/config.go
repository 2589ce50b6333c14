// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the magma arcade.
package config

// MagmaConfig contains all tunable gameplay parameters.
type MagmaConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Player  PlayerConfig  `yaml:"player"`
}

// BoardConfig defines the grid dimensions and spawn cell.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"`
	SpawnZ int `yaml:"spawn_z"`
}

// TimingConfig defines the clock constants driving patterns and the
// progression sequence. All values are milliseconds.
type TimingConfig struct {
	BaseSpeedMs        int `yaml:"base_speed_ms"`        // level 1 pattern cadence
	SpeedDecreaseMs    int `yaml:"speed_decrease_ms"`    // cadence reduction per level
	MinSpeedMs         int `yaml:"min_speed_ms"`         // cadence floor
	HopDurationMs      int `yaml:"hop_duration_ms"`      // one hop animation
	InvincibilityMs    int `yaml:"invincibility_ms"`     // post-respawn window
	CountdownStepMs    int `yaml:"countdown_step_ms"`    // each of 3, 2, 1
	CountdownGoMs      int `yaml:"countdown_go_ms"`      // the GO flash
	CompleteDelayMs    int `yaml:"complete_delay_ms"`    // score popup before transition
	CompleteBannerMs   int `yaml:"complete_banner_ms"`   // level-complete banner hold
	EndlessSpeedupMs   int `yaml:"endless_speedup_ms"`   // extra cadence cut per endless cycle
}

// ScoringConfig defines the time-mission score economy.
type ScoringConfig struct {
	MaxLevelScore int `yaml:"max_level_score"`
	GracePeriodMs int `yaml:"grace_period_ms"`
	DecayWindowMs int `yaml:"decay_window_ms"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Lives int `yaml:"lives"`
}

// DifficultyPreset names a tuning adjustment applied on top of the config.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the timing constants for a difficulty preset.
// Easy slows the level-1 cadence, hard tightens it, and fixed disables the
// per-level speedup entirely.
func ApplyPreset(cfg *MagmaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseSpeedMs += 120
	case DifficultyHard:
		cfg.Timing.BaseSpeedMs -= 120
	case DifficultyFixed:
		cfg.Timing.SpeedDecreaseMs = 0
	}
}
