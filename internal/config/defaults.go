package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the classic invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Board: BoardConfig{
			Width:  39,
			Height: 21,
		},
		Wave: WaveConfig{
			Rows:     2,
			Cols:     6,
			HSpacing: 5,
			VSpacing: 4,
			OffsetX:  2,
			OffsetY:  2,
		},
		Player: PlayerConfig{
			Lives:      3,
			ShotCap:    10,
			KillPoints: 10,
		},
		Timing: TimingConfig{
			SimTickMS:      200,
			FireIntervalMS: 750,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
