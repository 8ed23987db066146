package geowars

import (
	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/entity"
)

// pairRule is the outcome of two overlapping entities.
type pairRule int

const (
	ruleNone pairRule = iota
	ruleShotEnemy
	rulePlayerEnemy
)

// pairTable lists the rule for every ordered pair of kinds.
// Missing entries are ruleNone.
var pairTable = [len(entity.Kinds)][len(entity.Kinds)]pairRule{
	entity.KindPlayer: {
		entity.KindEnemy: rulePlayerEnemy,
	},
	entity.KindEnemy: {
		entity.KindPlayer:     rulePlayerEnemy,
		entity.KindProjectile: ruleShotEnemy,
	},
	entity.KindProjectile: {
		entity.KindEnemy: ruleShotEnemy,
	},
	entity.KindParticle: {},
}

func ruleFor(a, b entity.Kind) pairRule {
	if a < 0 || int(a) >= len(pairTable) || b < 0 || int(b) >= len(pairTable) {
		return ruleNone
	}
	return pairTable[a][b]
}

// collide resolves every overlapping pair once, in insertion order.
// An entity that dies stops taking part, so no pair is counted twice.
func (w *World) collide() {
	var alive []*entity.Entity
	w.store.ForEach(func(e *entity.Entity) {
		if e.Alive && e.Kind != entity.KindParticle {
			alive = append(alive, e)
		}
	})

	for i, a := range alive {
		for _, b := range alive[i+1:] {
			if !a.Alive {
				break
			}
			if !b.Alive {
				continue
			}
			rule := ruleFor(a.Kind, b.Kind)
			if rule == ruleNone || !core.CirclesOverlap(a.Pos, a.Radius, b.Pos, b.Radius) {
				continue
			}
			switch rule {
			case ruleShotEnemy:
				shot, enemy := a, b
				if a.Kind == entity.KindEnemy {
					shot, enemy = b, a
				}
				w.shotHitsEnemy(shot, enemy)
			case rulePlayerEnemy:
				player, enemy := a, b
				if a.Kind == entity.KindEnemy {
					player, enemy = b, a
				}
				w.enemyHitsPlayer(player, enemy)
			case ruleNone:
			}
		}
	}
}

func (w *World) shotHitsEnemy(shot, enemy *entity.Entity) {
	shot.Alive = false
	enemy.Alive = false
	w.score += w.cfg.Enemies.Points
	w.kills++
	w.burst(enemy.Pos, w.burstSize(w.cfg.Particles.BurstMax), enemy.Color)
	w.emit(core.EventEnemyDestroyed, enemy.Pos)
}

func (w *World) enemyHitsPlayer(player, enemy *entity.Entity) {
	if w.invulnerable > 0 {
		return
	}
	enemy.Alive = false
	w.lives = max(w.lives-1, 0)
	w.invulnerable = w.cfg.Player.Invulnerability.Seconds()
	w.burst(player.Pos, w.burstSize(w.cfg.Particles.HitBurstMax), player.Color)
	w.emit(core.EventPlayerHit, player.Pos)
	w.log.Debug("player hit", "lives", w.lives)
}
