// Package config provides YAML-based game configuration loading and
// difficulty management for Geometry Wars.
package config

import "time"

// GeowarsConfig contains all configuration for the game.
// Distances are world units, speeds are units per second.
type GeowarsConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Particles  ParticleConfig   `yaml:"particles"`
	Levels     LevelConfig      `yaml:"levels"`
	Advisor    AdvisorConfig    `yaml:"advisor"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the world size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Radius          float64       `yaml:"radius"`
	Speed           float64       `yaml:"speed"`
	Lives           int           `yaml:"lives"`
	FireCooldown    time.Duration `yaml:"fire_cooldown"`
	Invulnerability time.Duration `yaml:"invulnerability"` // After being hit
}

// ProjectileConfig defines player shots.
type ProjectileConfig struct {
	Radius   float64       `yaml:"radius"`
	Speed    float64       `yaml:"speed"`
	Lifetime time.Duration `yaml:"lifetime"`
}

// EnemyConfig defines enemy spawning and chasing.
type EnemyConfig struct {
	Radius        float64       `yaml:"radius"`
	MinSpeed      float64       `yaml:"min_speed"`
	MaxSpeed      float64       `yaml:"max_speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	MaxCount      int           `yaml:"max_count"`
	SafeRadius    float64       `yaml:"safe_radius"` // No spawns this close to the player
	Points        int           `yaml:"points"`
}

// ParticleConfig defines explosion bursts.
type ParticleConfig struct {
	Radius      float64       `yaml:"radius"`
	Lifetime    time.Duration `yaml:"lifetime"`
	MinSpeed    float64       `yaml:"min_speed"`
	MaxSpeed    float64       `yaml:"max_speed"`
	Damping     float64       `yaml:"damping"` // Fraction of velocity kept per second
	BurstMin    int           `yaml:"burst_min"`
	BurstMax    int           `yaml:"burst_max"`
	HitBurstMax int           `yaml:"hit_burst_max"`
}

// LevelConfig defines level progression.
type LevelConfig struct {
	KillsPerLevel int `yaml:"kills_per_level"`
}

// AdvisorConfig defines the AI observer.
type AdvisorConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Model       string        `yaml:"model"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	Cooldown    time.Duration `yaml:"cooldown"`
	Timeout     time.Duration `yaml:"timeout"`
	Display     time.Duration `yaml:"display"`
	PromptOnHit bool          `yaml:"prompt_on_hit"`
	Prefix      string        `yaml:"prefix"`
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
	Type  string `yaml:"type"`   // "score", "kills", "time" or "none"
	MaxAt int    `yaml:"max_at"` // Points, kills or seconds at which difficulty peaks
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn interval removed at max difficulty
	MaxCountBonus   int     `yaml:"max_count_bonus"`  // Extra enemies allowed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown names yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

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
