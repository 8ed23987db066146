package geowars

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geowars/internal/config"
	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/entity"
)

// ErrInvalidDelta is returned by Update for negative or non-finite deltas.
var ErrInvalidDelta = errors.New("geowars: invalid time delta")

// Phase is the game loop state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Command is the player's intent for one update.
type Command struct {
	Move core.Vec2 // Direction, any length; zero means stand still
	Fire bool
	Aim  core.Vec2 // World point to shoot toward
}

// Enemy colors, picked at random per spawn.
var enemyPalette = []core.Color{
	core.ColorRed,
	core.ColorMagenta,
	core.ColorGreen,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorBrightBlue,
}

// World is the complete simulation state of one run.
// It is owned by the game loop goroutine.
type World struct {
	cfg    config.GeowarsConfig
	bounds core.Bounds
	store  *entity.Store
	rng    *rand.Rand
	log    *log.Logger
	diff   config.Difficulty

	player entity.ID
	phase  Phase
	score  int
	lives  int
	kills  int
	level  int
	tick   uint64

	elapsed float64 // Seconds of play

	spawnTimer   float64 // Seconds until the next spawn attempt
	fireCooldown float64 // Seconds until the player may fire again
	invulnerable float64 // Seconds of remaining hit immunity
	facing       core.Vec2

	events []core.Event
}

// NewWorld creates a world on the start screen.
func NewWorld(cfg config.GeowarsConfig, seed int64, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:    cfg,
		bounds: core.NewBounds(cfg.Playfield.Width, cfg.Playfield.Height),
		store:  entity.NewStore(),
		rng:    rand.New(rand.NewSource(seed)),
		log:    logger,
		diff:   config.NewDifficulty(cfg.Difficulty),
	}
	w.Reset()
	return w
}

// Reset empties the store and returns to the start screen.
// The RNG keeps its sequence so consecutive runs differ.
func (w *World) Reset() {
	w.store.Clear()
	w.player = 0
	w.phase = PhaseStart
	w.score = 0
	w.lives = w.cfg.Player.Lives
	w.kills = 0
	w.level = 1
	w.tick = 0
	w.elapsed = 0
	w.spawnTimer = w.cfg.Enemies.SpawnInterval.Seconds()
	w.fireCooldown = 0
	w.invulnerable = 0
	w.facing = core.V(0, -1)
	w.events = nil
}

// Start places the player and begins play. It does nothing outside the
// start phase.
func (w *World) Start() {
	if w.phase != PhaseStart {
		return
	}
	w.player = w.store.Add(entity.Entity{
		Kind:   entity.KindPlayer,
		Pos:    w.bounds.Center(),
		Radius: w.cfg.Player.Radius,
		Color:  core.ColorBrightCyan,
	})
	w.phase = PhasePlaying
	w.log.Debug("run started", "lives", w.lives)
}

// SetPaused switches between playing and paused.
func (w *World) SetPaused(paused bool) {
	switch {
	case paused && w.phase == PhasePlaying:
		w.phase = PhasePaused
	case !paused && w.phase == PhasePaused:
		w.phase = PhasePlaying
	}
}

// Phase returns the current phase.
func (w *World) Phase() Phase { return w.phase }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Kills returns enemies destroyed this run.
func (w *World) Kills() int { return w.kills }

// Level returns the current level, starting at 1.
func (w *World) Level() int { return w.level }

// Tick returns the number of non-zero updates applied this run.
func (w *World) Tick() uint64 { return w.tick }

// progress feeds the difficulty curve.
func (w *World) progress() config.Progress {
	return config.Progress{
		Score:   w.score,
		Kills:   w.kills,
		Elapsed: time.Duration(w.elapsed * float64(time.Second)),
	}
}

// Bounds returns the playfield.
func (w *World) Bounds() core.Bounds { return w.bounds }

// Store returns the entity store. Callers outside the loop must only read.
func (w *World) Store() *entity.Store { return w.store }

// Facing returns the direction of the last shot.
func (w *World) Facing() core.Vec2 { return w.facing }

// Invulnerable reports whether the player is immune to hits.
func (w *World) Invulnerable() bool { return w.invulnerable > 0 }

// InvulnerableFor returns the remaining immunity in seconds.
func (w *World) InvulnerableFor() float64 { return max(w.invulnerable, 0) }

// Events returns what happened during the last Update.
func (w *World) Events() []core.Event { return w.events }

// Player returns the player entity.
func (w *World) Player() (*entity.Entity, bool) {
	if w.player == 0 {
		return nil, false
	}
	return w.store.Get(w.player)
}

// Enemies returns the number of alive enemies.
func (w *World) Enemies() int {
	return w.store.Count(entity.KindEnemy)
}

func (w *World) emit(k core.EventKind, pos core.Vec2) {
	w.events = append(w.events, core.Event{Kind: k, Pos: pos})
}
