package geowars

import (
	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/entity"
)

// Scene is a read-only copy of everything a frontend needs to draw a frame.
type Scene struct {
	Bounds   core.Bounds
	Entities []entity.Entity // Alive entities in insertion order
	Phase    Phase
	Score    int
	Lives    int
	Level    int
	Kills    int
	Facing   core.Vec2
	Blink    bool // Ship hidden this frame

	Observer       string
	ObserverOnline bool
	APIKeyEnv      string
}

// Scene captures the current frame.
func (g *Game) Scene() Scene {
	w := g.world
	return Scene{
		Bounds:         w.Bounds(),
		Entities:       w.Store().Snapshot(),
		Phase:          w.Phase(),
		Score:          w.Score(),
		Lives:          w.Lives(),
		Level:          w.Level(),
		Kills:          w.Kills(),
		Facing:         w.Facing(),
		Blink:          g.playerBlink(),
		Observer:       g.observer.Text(),
		ObserverOnline: g.observer.Online(),
		APIKeyEnv:      g.cfg.Advisor.APIKeyEnv,
	}
}
