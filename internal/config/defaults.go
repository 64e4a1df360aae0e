package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the default maze chase configuration.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		Speeds: ChompSpeeds{
			Player: 2,
			Ghost:  2,
		},
		PowerPellet: ChompPowerPellet{
			Duration: 600,
		},
		Lives: ChompLives{
			Starting: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				GhostSpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChompYAML
}
