package geowars

import (
	"math"

	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/entity"
)

// spawnAttempts bounds the rejection sampling of enemy positions.
const spawnAttempts = 16

// spawn adds an enemy whenever the spawn timer runs out.
func (w *World) spawn(dt float64) {
	w.spawnTimer -= dt
	if w.spawnTimer > 0 {
		return
	}

	tune := w.diff.Enemies(w.cfg.Enemies, w.progress())
	interval := tune.SpawnInterval.Seconds()
	w.spawnTimer += interval
	if w.spawnTimer <= 0 {
		w.spawnTimer = interval
	}

	if w.Enemies() >= tune.MaxCount {
		return
	}

	lo, hi := w.cfg.Enemies.MinSpeed, w.cfg.Enemies.MaxSpeed
	speed := (lo + w.rng.Float64()*(hi-lo)) * tune.SpeedScale

	w.store.Add(entity.Entity{
		Kind:   entity.KindEnemy,
		Pos:    w.spawnPoint(w.cfg.Enemies.Radius),
		Radius: w.cfg.Enemies.Radius,
		Color:  enemyPalette[w.rng.Intn(len(enemyPalette))],
		Enemy:  entity.EnemyData{Speed: speed},
	})
}

// spawnPoint picks a uniformly random point inside the playfield that is
// at least safe_radius away from the player. After spawnAttempts misses it
// falls back to the corner farthest from the player.
func (w *World) spawnPoint(radius float64) core.Vec2 {
	area := w.bounds.Inset(radius)
	p, ok := w.Player()
	if !ok {
		return core.V(
			area.Min.X+w.rng.Float64()*area.Width(),
			area.Min.Y+w.rng.Float64()*area.Height(),
		)
	}

	for range spawnAttempts {
		pos := core.V(
			area.Min.X+w.rng.Float64()*area.Width(),
			area.Min.Y+w.rng.Float64()*area.Height(),
		)
		if pos.Dist(p.Pos) >= w.cfg.Enemies.SafeRadius {
			return pos
		}
	}

	best := area.Min
	for _, c := range area.Corners() {
		if c.Dist(p.Pos) > best.Dist(p.Pos) {
			best = c
		}
	}
	return best
}

// burstSize picks a particle count in [burst_min, hi].
func (w *World) burstSize(hi int) int {
	lo := max(w.cfg.Particles.BurstMin, 0)
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

// burst scatters n particles from pos in random directions.
func (w *World) burst(pos core.Vec2, n int, color core.Color) {
	lifetime := w.cfg.Particles.Lifetime.Seconds()
	lo, hi := w.cfg.Particles.MinSpeed, w.cfg.Particles.MaxSpeed
	for range n {
		angle := w.rng.Float64() * 2 * math.Pi
		speed := lo + w.rng.Float64()*(hi-lo)
		w.store.Add(entity.Entity{
			Kind:   entity.KindParticle,
			Pos:    pos,
			Vel:    core.V(math.Cos(angle), math.Sin(angle)).Scale(speed),
			Radius: w.cfg.Particles.Radius,
			Color:  color,
			Spark:  entity.SparkData{Remaining: lifetime, Total: lifetime},
		})
	}
}
