package config

import (
	"time"
)

// Progress is how far a run has come.
type Progress struct {
	Score   int
	Kills   int
	Elapsed time.Duration // Time spent playing, pauses excluded
}

// EnemyTuning is the enemy setup at one point of a run.
type EnemyTuning struct {
	SpawnInterval time.Duration
	MaxCount      int
	SpeedScale    float64 // Multiplier for the rolled chase speed
}

// Difficulty maps run progress to a level in [0, 1] and tunes enemies by it.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty curve. InitialLevel is clamped to [0, 1].
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return Difficulty{cfg: cfg}
}

// Progressive reports whether the level moves during a run.
func (d Difficulty) Progressive() bool {
	switch d.cfg.Progression.Type {
	case "score", "kills", "time":
		return d.cfg.Enabled
	default:
		return false
	}
}

// Level interpolates from the initial level to 1 as the run reaches
// progression.max_at (points, kills or seconds).
func (d Difficulty) Level(p Progress) float64 {
	start := d.cfg.InitialLevel
	if !d.Progressive() {
		return start
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	var done float64
	switch d.cfg.Progression.Type {
	case "score":
		done = float64(p.Score)
	case "kills":
		done = float64(p.Kills)
	case "time":
		done = p.Elapsed.Seconds()
	}

	return start + clampF(done/maxAt, 0, 1)*(1-start)
}

// Enemies tunes spawning for the current progress. The spawn interval
// never drops below a tenth of the configured one.
func (d Difficulty) Enemies(base EnemyConfig, p Progress) EnemyTuning {
	level := d.Level(p)
	s := d.cfg.Scaling
	return EnemyTuning{
		SpawnInterval: time.Duration(float64(base.SpawnInterval) * (1 - level*clampF(s.SpawnReduction, 0, 0.9))),
		MaxCount:      base.MaxCount + int(level*float64(s.MaxCountBonus)),
		SpeedScale:    1 + level*s.SpeedMultiplier,
	}
}

func clampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
