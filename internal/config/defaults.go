package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/geowars.yaml
var defaultGeowarsYAML []byte

// DefaultGeowarsConfig returns the built-in configuration.
// It matches defaults/geowars.yaml and is used when the embedded file
// cannot be parsed.
func DefaultGeowarsConfig() GeowarsConfig {
	return GeowarsConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius:          10,
			Speed:           300,
			Lives:           3,
			FireCooldown:    200 * time.Millisecond,
			Invulnerability: time.Second,
		},
		Projectile: ProjectileConfig{
			Radius:   2.5,
			Speed:    420,
			Lifetime: 3 * time.Second,
		},
		Enemies: EnemyConfig{
			Radius:        10,
			MinSpeed:      60,
			MaxSpeed:      180,
			SpawnInterval: time.Second,
			MaxCount:      20,
			SafeRadius:    120,
			Points:        10,
		},
		Particles: ParticleConfig{
			Radius:      2,
			Lifetime:    500 * time.Millisecond,
			MinSpeed:    60,
			MaxSpeed:    240,
			Damping:     0.05,
			BurstMin:    5,
			BurstMax:    15,
			HitBurstMax: 30,
		},
		Levels: LevelConfig{
			KillsPerLevel: 10,
		},
		Advisor: AdvisorConfig{
			Enabled:     true,
			Model:       "gemini-2.5-flash",
			APIKeyEnv:   "GEMINI_API_KEY",
			Cooldown:    10 * time.Second,
			Timeout:     8 * time.Second,
			Display:     5 * time.Second,
			PromptOnHit: true,
			Prefix:      "Observer: ",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				SpawnReduction:  0.6,
				MaxCountBonus:   15,
			},
		},
	}
}
