// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// ChompConfig contains all configuration for the maze chase game.
type ChompConfig struct {
	Speeds      ChompSpeeds      `yaml:"speeds"`
	PowerPellet ChompPowerPellet `yaml:"power_pellet"`
	Lives       ChompLives       `yaml:"lives"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// ChompSpeeds defines movement speeds in pixels per tick.
type ChompSpeeds struct {
	Player float64 `yaml:"player"`
	Ghost  float64 `yaml:"ghost"`
}

// ChompPowerPellet defines the frightened-window parameters.
type ChompPowerPellet struct {
	Duration int `yaml:"duration"`
}

// ChompLives defines the life counter parameters.
type ChompLives struct {
	Starting int `yaml:"starting"`
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
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GhostSpeedMultiplier float64 `yaml:"ghost_speed_multiplier"` // Multiplier added to ghost speed at max difficulty
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
