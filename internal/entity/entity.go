// Package entity holds the game's entities in a single ordered store.
// Entity categories form a closed set; code that handles them switches
// over Kind exhaustively.
package entity

import "github.com/vovakirdan/geowars/internal/core"

// ID identifies an entity within a store. IDs are never reused.
type ID uint64

// Kind is the entity category.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindParticle
)

// Kinds lists every category in a stable order.
var Kinds = [...]Kind{KindPlayer, KindEnemy, KindProjectile, KindParticle}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// EnemyData is carried by KindEnemy entities.
type EnemyData struct {
	Speed float64 // Chase speed in units per second
}

// ShotData is carried by KindProjectile entities.
type ShotData struct {
	Remaining float64 // Seconds until the shot expires
}

// SparkData is carried by KindParticle entities.
type SparkData struct {
	Remaining float64 // Seconds left
	Total     float64 // Lifetime at spawn, for fading
}

// Entity is a single game object.
type Entity struct {
	ID     ID
	Kind   Kind
	Pos    core.Vec2 // World units
	Vel    core.Vec2 // Units per second
	Radius float64
	Alive  bool
	Color  core.Color

	Enemy EnemyData
	Shot  ShotData
	Spark SparkData
}

// Valid reports whether the entity has a finite position and a
// non-negative radius.
func (e *Entity) Valid() bool {
	return e.Radius >= 0 && e.Pos.IsFinite() && e.Vel.IsFinite()
}

// Fade returns the remaining life fraction of a particle in [0, 1].
// Other kinds always return 1.
func (e *Entity) Fade() float64 {
	if e.Kind != KindParticle || e.Spark.Total <= 0 {
		return 1
	}
	return core.ClampF(e.Spark.Remaining/e.Spark.Total, 0, 1)
}
