package geowars

import (
	"math"

	"github.com/vovakirdan/geowars/internal/entity"
)

// Snapshot captures the simulation state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Score   int
	Lives   int
	Kills   int
	Level   int
	Enemies int

	// Each entity is 5 values: Kind, X, Y, VX, VY
	EntityCount int
	EntityData  []float64

	SpawnTimer   float64
	FireCooldown float64
	Invulnerable float64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	var data []float64
	count := 0
	w.store.ForEach(func(e *entity.Entity) {
		if !e.Alive {
			return
		}
		count++
		data = append(data, float64(e.Kind), e.Pos.X, e.Pos.Y, e.Vel.X, e.Vel.Y)
	})

	return Snapshot{
		Tick:         w.tick,
		Phase:        w.phase,
		Score:        w.score,
		Lives:        w.lives,
		Kills:        w.kills,
		Level:        w.level,
		Enemies:      w.Enemies(),
		EntityCount:  count,
		EntityData:   data,
		SpawnTimer:   w.spawnTimer,
		FireCooldown: w.fireCooldown,
		Invulnerable: w.invulnerable,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Enemies)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation

	for _, v := range snap.EntityData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + math.Float64bits(snap.SpawnTimer)
	h = h*31 + math.Float64bits(snap.FireCooldown)
	h = h*31 + math.Float64bits(snap.Invulnerable)

	return h
}
