// Package geowars implements a Geometry Wars style arena shooter: the ship
// moves freely, shoots toward an aim point and survives homing enemies
// while an observer comments on the run.
package geowars

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geowars/internal/config"
	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "geowars"

// aimReach is how far ahead of the ship keyboard aiming points.
const aimReach = 100.0

// Minimum terminal size for the playfield.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// Game adapts a World to the platform's fixed-tick game interface.
type Game struct {
	deps    registry.Deps
	log     *log.Logger
	cfg     config.GeowarsConfig
	fixed   bool // cfg was supplied by the caller and is not reloaded
	runtime core.RuntimeConfig

	world    *World
	observer *observer
	layout   layout

	aim    core.Vec2 // Last pointer position in world units
	hasAim bool
}

// New creates a game that loads its configuration on Reset.
func New(deps registry.Deps) *Game {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{deps: deps, log: logger}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.GeowarsConfig, deps registry.Deps) *Game {
	g := New(deps)
	g.cfg = cfg
	g.fixed = true
	return g
}

func init() {
	registry.Register(ID, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Geometry Wars"
}

// Reset loads configuration and starts a fresh world on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadGeowars(g.deps.ConfigPath)
		if err != nil {
			g.log.Warn("using default config", "err", err)
			cfg = config.DefaultGeowarsConfig()
		}
		config.ApplyPreset(&cfg, config.ParsePreset(g.deps.Preset))
		g.cfg = cfg
	}

	if g.observer != nil {
		g.observer.reset()
	}
	g.world = NewWorld(g.cfg, runtime.Seed, g.log)
	g.observer = newObserver(g.deps.Advisor, g.cfg.Advisor, g.log)
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH)
	g.hasAim = false
}

// Resize recomputes the terminal layout without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout = newLayout(w, h)
}

// Config returns the active configuration.
func (g *Game) Config() config.GeowarsConfig {
	return g.cfg
}

// World exposes the simulation for read-only views.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.observer.poll()

	if g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	switch g.world.Phase() {
	case PhaseStart:
		if startsPlay(in) {
			g.world.Start()
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.world.SetPaused(true)
			break
		}
		dt := g.runtime.TickSeconds()
		if err := g.world.Update(dt, g.command(in)); err != nil {
			g.log.Error("update failed", "err", err)
			break
		}
		events = g.world.Events()
		g.observer.react(events, g.world)
		g.observer.advance(dt)

	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.world.SetPaused(false)
		}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// startsPlay reports whether input should leave the start screen.
// Quit and Back belong to the platform.
func startsPlay(in core.InputFrame) bool {
	for a, on := range in.Actions {
		if on && a != core.ActionQuit && a != core.ActionBack && a != core.ActionNone {
			return true
		}
	}
	return false
}

func (g *Game) restart() {
	g.world.Reset()
	g.observer.reset()
	g.hasAim = false
	g.log.Debug("restarted")
}

// command converts an input frame into a world command.
// Arrow keys fire in their direction; otherwise Fire shoots at the pointer.
func (g *Game) command(in core.InputFrame) Command {
	cmd := Command{Move: in.Move()}

	if in.Pointer.Valid {
		g.aim = g.pointerToWorld(in.Pointer)
		g.hasAim = true
	}

	p, ok := g.world.Player()
	if !ok {
		return cmd
	}

	if d := in.FireDir(); d != (core.Vec2{}) {
		cmd.Fire = true
		cmd.Aim = p.Pos.Add(d.Normalize().Scale(aimReach))
		return cmd
	}

	if in.Has(core.ActionFire) {
		cmd.Fire = true
		cmd.Aim = p.Pos
		if g.hasAim {
			cmd.Aim = g.aim
		}
	}
	return cmd
}

func (g *Game) pointerToWorld(ptr core.Pointer) core.Vec2 {
	if ptr.Space == core.PointerWorld {
		return core.V(ptr.X, ptr.Y)
	}
	return g.layout.toWorld(ptr.X, ptr.Y, g.world.Bounds())
}

// ObserverText returns the visible advisory line.
func (g *Game) ObserverText() string {
	return g.observer.Text()
}

// ObserverOnline reports whether advisories can be requested.
func (g *Game) ObserverOnline() bool {
	return g.observer.Online()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	phase := g.world.Phase()
	return core.GameState{
		Score:    g.world.Score(),
		Lives:    g.world.Lives(),
		Level:    g.world.Level(),
		Kills:    g.world.Kills(),
		Started:  phase != PhaseStart,
		GameOver: phase == PhaseGameOver,
		Paused:   phase == PhasePaused,
	}
}
