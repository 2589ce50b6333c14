package config

import (
	_ "embed"
)

//go:embed defaults/magma.yaml
var defaultMagmaYAML []byte

// DefaultMagmaConfig returns the hardcoded default configuration, used as
// the last fallback if the embedded YAML fails to parse.
func DefaultMagmaConfig() MagmaConfig {
	return MagmaConfig{
		Board: BoardConfig{
			Width:  12,
			Height: 16,
			SpawnX: 6,
			SpawnZ: 14,
		},
		Timing: TimingConfig{
			BaseSpeedMs:      900,
			SpeedDecreaseMs:  40,
			MinSpeedMs:       200,
			HopDurationMs:    100,
			InvincibilityMs:  2500,
			CountdownStepMs:  800,
			CountdownGoMs:    400,
			CompleteDelayMs:  300,
			CompleteBannerMs: 1200,
			EndlessSpeedupMs: 60,
		},
		Scoring: ScoringConfig{
			MaxLevelScore: 10,
			GracePeriodMs: 10000,
			DecayWindowMs: 20000,
		},
		Player: PlayerConfig{
			Lives: 3,
		},
	}
}
