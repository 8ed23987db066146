package geowars

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/geowars/internal/config"
	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/entity"
)

const frame = 1.0 / 60

// quietConfig returns the default config with timed spawning switched off.
func quietConfig() config.GeowarsConfig {
	cfg := config.DefaultGeowarsConfig()
	cfg.Enemies.SpawnInterval = time.Hour
	cfg.Difficulty.Enabled = false
	return cfg
}

func newPlayingWorld(t *testing.T, cfg config.GeowarsConfig) *World {
	t.Helper()
	w := NewWorld(cfg, 42, nil)
	w.Start()
	if w.Phase() != PhasePlaying {
		t.Fatalf("Start should enter playing, got %s", w.Phase())
	}
	return w
}

func addEnemy(w *World, pos core.Vec2, r float64) entity.ID {
	return w.Store().Add(entity.Entity{
		Kind:   entity.KindEnemy,
		Pos:    pos,
		Radius: r,
		Enemy:  entity.EnemyData{Speed: 100},
	})
}

func addShot(w *World, pos, vel core.Vec2, r float64) entity.ID {
	return w.Store().Add(entity.Entity{
		Kind:   entity.KindProjectile,
		Pos:    pos,
		Vel:    vel,
		Radius: r,
		Shot:   entity.ShotData{Remaining: 5},
	})
}

func hasEvent(events []core.Event, k core.EventKind) bool {
	for _, e := range events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func TestUpdateIntegratesPositions(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	addEnemy(w, core.V(50, 50), 10)
	addShot(w, core.V(600, 100), core.V(-420, 0), 2.5)
	w.burst(core.V(700, 500), 8, core.ColorRed)

	prior := make(map[entity.ID]core.Vec2)
	w.Store().ForEach(func(e *entity.Entity) {
		prior[e.ID] = e.Pos
	})

	cmd := Command{Move: core.V(1, 1)}
	if err := w.Update(frame, cmd); err != nil {
		t.Fatalf("Update: %v", err)
	}

	checked := 0
	w.Store().ForEach(func(e *entity.Entity) {
		before, ok := prior[e.ID]
		if !ok {
			return
		}
		want := before.Add(e.Vel.Scale(frame))
		if math.Abs(e.Pos.X-want.X) > 1e-9 || math.Abs(e.Pos.Y-want.Y) > 1e-9 {
			t.Errorf("%s %d: pos %v, expected %v", e.Kind, e.ID, e.Pos, want)
		}
		checked++
	})
	if checked < 4 {
		t.Errorf("only %d entities survived to check", checked)
	}
}

func TestUpdateRejectsInvalidDelta(t *testing.T) {
	for _, dt := range []float64{-frame, math.NaN(), math.Inf(1), math.Inf(-1)} {
		w := newPlayingWorld(t, quietConfig())
		addEnemy(w, core.V(20, 20), 10)
		before := w.Snapshot()

		err := w.Update(dt, Command{Move: core.V(1, 0), Fire: true})
		if !errors.Is(err, ErrInvalidDelta) {
			t.Errorf("Update(%v) err = %v, expected ErrInvalidDelta", dt, err)
		}
		after := w.Snapshot()
		if before.Hash() != after.Hash() {
			t.Errorf("Update(%v) changed the world", dt)
		}
	}
}

func TestZeroDeltaPlayerHit(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	p, _ := w.Player()
	p.Pos = core.V(100, 100)
	p.Radius = 5
	enemy := addEnemy(w, core.V(103, 100), 3)
	lives := w.Lives()

	if err := w.Update(0, Command{}); err != nil {
		t.Fatalf("Update(0): %v", err)
	}

	if _, ok := w.Store().Get(enemy); ok {
		t.Error("enemy should be removed")
	}
	if w.Lives() != lives-1 {
		t.Errorf("lives = %d, expected %d", w.Lives(), lives-1)
	}
	if p, ok := w.Player(); !ok || !p.Alive {
		t.Error("player should stay alive")
	}
	if p.Pos != core.V(100, 100) {
		t.Errorf("zero delta moved the player to %v", p.Pos)
	}
	if !hasEvent(w.Events(), core.EventPlayerHit) {
		t.Error("expected a PlayerHit event")
	}
	if !w.Invulnerable() {
		t.Error("player should be invulnerable after a hit")
	}
}

func TestShotAndEnemyBothDie(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	enemy := addEnemy(w, core.V(300, 300), 10)
	shot := addShot(w, core.V(305, 300), core.V(0, 0), 2.5)

	if err := w.Update(0, Command{}); err != nil {
		t.Fatal(err)
	}

	if _, ok := w.Store().Get(enemy); ok {
		t.Error("enemy should be destroyed")
	}
	if _, ok := w.Store().Get(shot); ok {
		t.Error("projectile should be consumed")
	}
	if w.Score() != 10 || w.Kills() != 1 {
		t.Errorf("score=%d kills=%d, expected 10 and 1", w.Score(), w.Kills())
	}
	if w.Store().Count(entity.KindParticle) == 0 {
		t.Error("destroying an enemy should leave particles")
	}
	if !hasEvent(w.Events(), core.EventEnemyDestroyed) {
		t.Error("expected an EnemyDestroyed event")
	}
}

func TestTwoShotsOneEnemyCountsOnce(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	addEnemy(w, core.V(300, 300), 10)
	first := addShot(w, core.V(302, 300), core.V(0, 0), 2.5)
	second := addShot(w, core.V(298, 300), core.V(0, 0), 2.5)

	if err := w.Update(0, Command{}); err != nil {
		t.Fatal(err)
	}

	if w.Kills() != 1 || w.Score() != 10 {
		t.Errorf("kills=%d score=%d, expected one kill", w.Kills(), w.Score())
	}
	_, firstAlive := w.Store().Get(first)
	_, secondAlive := w.Store().Get(second)
	if firstAlive || !secondAlive {
		t.Errorf("expected only the first projectile consumed, alive: first=%v second=%v", firstAlive, secondAlive)
	}
}

func TestTouchingCirclesDoNotCollide(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	enemy := addEnemy(w, core.V(300, 300), 10)
	addShot(w, core.V(312.5, 300), core.V(0, 0), 2.5)

	if err := w.Update(0, Command{}); err != nil {
		t.Fatal(err)
	}
	if _, ok := w.Store().Get(enemy); !ok {
		t.Error("circles exactly touching should not collide")
	}
}

func TestInvulnerabilityBlocksSecondHit(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	p, _ := w.Player()
	first := addEnemy(w, p.Pos, 10)
	second := addEnemy(w, p.Pos.Add(core.V(5, 0)), 10)

	if err := w.Update(0, Command{}); err != nil {
		t.Fatal(err)
	}

	if w.Lives() != w.cfg.Player.Lives-1 {
		t.Errorf("lives = %d, expected one life lost", w.Lives())
	}
	if _, ok := w.Store().Get(first); ok {
		t.Error("first enemy should be destroyed")
	}
	if _, ok := w.Store().Get(second); !ok {
		t.Error("second enemy should pass through the invulnerable ship")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	w.lives = 1
	p, _ := w.Player()
	addEnemy(w, p.Pos, 10)

	if err := w.Update(frame, Command{}); err != nil {
		t.Fatal(err)
	}

	if w.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", w.Lives())
	}
	if w.Phase() != PhaseGameOver {
		t.Errorf("phase = %s, expected gameover", w.Phase())
	}
	if !hasEvent(w.Events(), core.EventGameOver) {
		t.Error("expected a GameOver event")
	}

	// No further simulation
	before := w.Snapshot()
	addEnemy(w, p.Pos, 10)
	if err := w.Update(frame, Command{Move: core.V(1, 0)}); err != nil {
		t.Fatal(err)
	}
	if w.Lives() != 0 {
		t.Error("lives must never go negative")
	}
	if w.Tick() != before.Tick {
		t.Error("updates after game over should be ignored")
	}
}

func TestLevelUp(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels.KillsPerLevel = 2
	w := newPlayingWorld(t, cfg)

	for i := range 2 {
		pos := core.V(100+float64(i)*100, 500)
		addEnemy(w, pos, 10)
		addShot(w, pos, core.V(0, 0), 2.5)
	}
	if err := w.Update(0, Command{}); err != nil {
		t.Fatal(err)
	}

	if w.Level() != 2 {
		t.Errorf("level = %d, expected 2", w.Level())
	}
	if !hasEvent(w.Events(), core.EventLevelUp) {
		t.Error("expected a LevelUp event")
	}
}

func TestFireCooldown(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	p, _ := w.Player()

	shots := 0
	for range 60 {
		if err := w.Update(frame, Command{Fire: true, Aim: p.Pos.Add(core.V(0, -100))}); err != nil {
			t.Fatal(err)
		}
		if hasEvent(w.Events(), core.EventShot) {
			shots++
		}
	}
	// 200ms cooldown: one shot every 12 frames
	if shots != 5 {
		t.Errorf("fired %d shots in one second, expected 5", shots)
	}
}

func TestFireTowardAim(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	p, _ := w.Player()

	if err := w.Update(frame, Command{Fire: true, Aim: p.Pos.Add(core.V(100, 0))}); err != nil {
		t.Fatal(err)
	}
	shot, ok := w.Store().First(entity.KindProjectile)
	if !ok {
		t.Fatal("expected a projectile")
	}
	if shot.Vel.X <= 0 || math.Abs(shot.Vel.Y) > 1e-9 {
		t.Errorf("projectile velocity %v should point right", shot.Vel)
	}
	if math.Abs(shot.Vel.Len()-w.cfg.Projectile.Speed) > 1e-9 {
		t.Errorf("projectile speed %v, expected %v", shot.Vel.Len(), w.cfg.Projectile.Speed)
	}

	// Aiming at the ship keeps the last direction
	w.fireCooldown = 0
	if err := w.Update(frame, Command{Fire: true, Aim: p.Pos}); err != nil {
		t.Fatal(err)
	}
	if w.Facing() != core.V(1, 0) {
		t.Errorf("facing = %v, expected (1, 0)", w.Facing())
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	for range 400 {
		if err := w.Update(frame, Command{Move: core.V(-1, -1)}); err != nil {
			t.Fatal(err)
		}
	}
	p, _ := w.Player()
	r := p.Radius
	if p.Pos.X < r-1e-9 || p.Pos.Y < r-1e-9 {
		t.Errorf("player left the playfield: %v (radius %v)", p.Pos, r)
	}
	if p.Pos.X > r+1e-6 || p.Pos.Y > r+1e-6 {
		t.Errorf("player should be pinned in the corner, at %v", p.Pos)
	}
}

func TestProjectilesExpireAndLeaveBounds(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	short := w.Store().Add(entity.Entity{
		Kind:   entity.KindProjectile,
		Pos:    core.V(400, 500),
		Radius: 1,
		Shot:   entity.ShotData{Remaining: frame / 2},
	})
	leaving := addShot(w, core.V(799, 50), core.V(420, 0), 1)

	if err := w.Update(frame, Command{}); err != nil {
		t.Fatal(err)
	}
	if _, ok := w.Store().Get(short); ok {
		t.Error("expired projectile should be removed")
	}
	if _, ok := w.Store().Get(leaving); ok {
		t.Error("projectile outside the playfield should be removed")
	}
}

func TestParticlesFadeOut(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	w.burst(core.V(400, 300), 10, core.ColorRed)

	steps := int(w.cfg.Particles.Lifetime.Seconds()/frame) + 2
	for range steps {
		if err := w.Update(frame, Command{}); err != nil {
			t.Fatal(err)
		}
	}
	if n := w.Store().Count(entity.KindParticle); n != 0 {
		t.Errorf("%d particles outlived their lifetime", n)
	}
}

func TestEnemiesChasePlayer(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	p, _ := w.Player()
	id := addEnemy(w, core.V(50, p.Pos.Y), 10)
	before, _ := w.Store().Get(id)
	startDist := before.Pos.Dist(p.Pos)

	if err := w.Update(frame, Command{}); err != nil {
		t.Fatal(err)
	}
	e, _ := w.Store().Get(id)
	if e.Pos.Dist(p.Pos) >= startDist {
		t.Error("enemy should move toward the player")
	}
}

func TestMalformedEntitiesDropped(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	bad := addEnemy(w, core.V(math.NaN(), 10), 10)
	neg := addEnemy(w, core.V(10, 10), -1)

	if err := w.Update(frame, Command{}); err != nil {
		t.Fatal(err)
	}
	for _, id := range []entity.ID{bad, neg} {
		if _, ok := w.Store().Get(id); ok {
			t.Errorf("malformed entity %d should be removed", id)
		}
	}
	if _, ok := w.Player(); !ok {
		t.Error("player should survive")
	}
}

func TestUpdateOutsidePlayingIsNoop(t *testing.T) {
	w := NewWorld(quietConfig(), 1, nil)
	if err := w.Update(frame, Command{Move: core.V(1, 0)}); err != nil {
		t.Fatal(err)
	}
	if w.Store().Len() != 0 || w.Tick() != 0 {
		t.Error("start phase should not simulate")
	}

	w.Start()
	w.SetPaused(true)
	before := w.Snapshot()
	for range 30 {
		if err := w.Update(frame, Command{Move: core.V(1, 0), Fire: true}); err != nil {
			t.Fatal(err)
		}
	}
	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused updates changed the world")
	}
}

func TestResetClearsRun(t *testing.T) {
	w := newPlayingWorld(t, quietConfig())
	addEnemy(w, core.V(10, 10), 10)
	w.score = 50
	w.kills = 5

	w.Reset()

	if w.Phase() != PhaseStart || w.Score() != 0 || w.Kills() != 0 || w.Level() != 1 {
		t.Errorf("Reset left state behind: %+v", w.Snapshot())
	}
	if w.Store().Len() != 0 {
		t.Error("Reset should empty the store")
	}
	if w.Lives() != w.cfg.Player.Lives {
		t.Errorf("lives = %d, expected %d", w.Lives(), w.cfg.Player.Lives)
	}
}
