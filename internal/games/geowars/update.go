package geowars

import (
	"fmt"
	"math"

	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/entity"
)

// Update advances the world by dt seconds.
//
// A zero dt resolves collisions only. Negative or non-finite values return
// ErrInvalidDelta and leave the world untouched. Outside PhasePlaying the
// call is a no-op.
func (w *World) Update(dt float64, cmd Command) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	w.events = nil
	if w.phase != PhasePlaying {
		return nil
	}

	w.dropMalformed()

	if dt > 0 {
		w.tick++
		w.elapsed += dt
		w.countDown(dt)
		w.settle(dt, cmd.Move)
		w.integrate(dt)
		w.fire(cmd)
	}

	w.collide()

	if dt > 0 {
		w.expire(dt)
	}

	w.updateLevel()

	if dt > 0 {
		w.spawn(dt)
	}

	if w.lives <= 0 {
		w.lives = 0
		w.phase = PhaseGameOver
		pos := w.bounds.Center()
		if p, ok := w.Player(); ok {
			pos = p.Pos
		}
		w.emit(core.EventGameOver, pos)
		w.log.Info("game over", "score", w.score, "kills", w.kills, "level", w.level)
	}

	w.store.Sweep()
	return nil
}

// dropMalformed removes entities with a non-finite position or a negative
// radius. The player is re-centred instead so exactly one always exists.
func (w *World) dropMalformed() {
	w.store.ForEach(func(e *entity.Entity) {
		if !e.Alive || e.Valid() {
			return
		}
		if e.Kind == entity.KindPlayer {
			w.log.Debug("resetting malformed player", "pos", e.Pos, "radius", e.Radius)
			e.Pos = w.bounds.Center()
			e.Vel = core.Vec2{}
			e.Radius = max(e.Radius, 0)
			return
		}
		w.log.Debug("dropping malformed entity", "id", e.ID, "kind", e.Kind, "pos", e.Pos, "radius", e.Radius)
		e.Alive = false
	})
}

func (w *World) countDown(dt float64) {
	w.fireCooldown = max(w.fireCooldown-dt, 0)
	w.invulnerable = max(w.invulnerable-dt, 0)
}

// settle sets every velocity used by this frame's integration.
func (w *World) settle(dt float64, move core.Vec2) {
	player, hasPlayer := w.Player()
	damping := math.Pow(w.cfg.Particles.Damping, dt)

	w.store.ForEach(func(e *entity.Entity) {
		if !e.Alive {
			return
		}
		switch e.Kind {
		case entity.KindPlayer:
			vel := move.Normalize().Scale(w.cfg.Player.Speed)
			// Shorten the step so the ship stays inside the playfield.
			area := w.bounds.Inset(e.Radius)
			next := area.ClampPoint(e.Pos.Add(vel.Scale(dt)))
			e.Vel = next.Sub(e.Pos).Scale(1 / dt)
		case entity.KindEnemy:
			if hasPlayer {
				e.Vel = player.Pos.Sub(e.Pos).Normalize().Scale(e.Enemy.Speed)
			}
		case entity.KindProjectile:
			// Straight line.
		case entity.KindParticle:
			e.Vel = e.Vel.Scale(damping)
		}
	})
}

func (w *World) integrate(dt float64) {
	w.store.ForEach(func(e *entity.Entity) {
		if e.Alive {
			e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		}
	})
}

// fire launches a projectile toward the aim point when the cooldown allows.
// Aiming at the ship itself reuses the previous direction.
func (w *World) fire(cmd Command) {
	if !cmd.Fire || w.fireCooldown > 0 {
		return
	}
	p, ok := w.Player()
	if !ok {
		return
	}

	dir := cmd.Aim.Sub(p.Pos).Normalize()
	if dir == (core.Vec2{}) {
		dir = w.facing
	}
	w.facing = dir

	lifetime := w.cfg.Projectile.Lifetime.Seconds()
	w.store.Add(entity.Entity{
		Kind:   entity.KindProjectile,
		Pos:    p.Pos,
		Vel:    dir.Scale(w.cfg.Projectile.Speed),
		Radius: w.cfg.Projectile.Radius,
		Color:  core.ColorBrightYellow,
		Shot:   entity.ShotData{Remaining: lifetime},
	})
	w.fireCooldown = w.cfg.Player.FireCooldown.Seconds()
	w.emit(core.EventShot, p.Pos)
}

// expire ages projectiles and particles and removes anything that left
// the playfield.
func (w *World) expire(dt float64) {
	w.store.ForEach(func(e *entity.Entity) {
		if !e.Alive {
			return
		}
		switch e.Kind {
		case entity.KindPlayer:
			return
		case entity.KindProjectile:
			e.Shot.Remaining -= dt
			if e.Shot.Remaining <= 0 {
				e.Alive = false
				return
			}
		case entity.KindParticle:
			e.Spark.Remaining -= dt
			if e.Spark.Remaining <= 0 {
				e.Alive = false
				return
			}
		case entity.KindEnemy:
		}
		if !w.bounds.Contains(e.Pos) {
			e.Alive = false
		}
	})
}

func (w *World) updateLevel() {
	per := max(w.cfg.Levels.KillsPerLevel, 1)
	level := 1 + w.kills/per
	if level <= w.level {
		return
	}
	w.level = level
	w.emit(core.EventLevelUp, w.bounds.Center())
	w.log.Debug("level up", "level", level, "kills", w.kills)
}
