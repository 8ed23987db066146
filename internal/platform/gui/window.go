// Package gui runs the game in a desktop window with Ebitengine, drawing the
// scene with vector shapes instead of terminal cells.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/geowars/internal/audio"
	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/entity"
	"github.com/vovakirdan/geowars/internal/games/geowars"
	"github.com/vovakirdan/geowars/internal/storage"
)

// Window layout in logical pixels.
const (
	hudHeight  = 24
	footHeight = 20
	gridStep   = 40
	charWidth  = 6 // ebitenutil debug font
)

// Options are the collaborators of a window. Zero values are valid.
type Options struct {
	Store  *storage.Store
	Sound  *audio.SoundManager
	Logger *log.Logger
	Scale  float64 // Window size multiplier, default 1
}

// Window adapts a geowars.Game to ebiten.Game.
type Window struct {
	game       *geowars.Game
	runtime    core.RuntimeConfig
	opts       Options
	input      inputSource
	state      core.GameState
	scoreSaved bool
	width      int
	height     int
	field      *ebiten.Image // Playfield layer, allocated on first Draw
}

// NewWindow resets game for windowed play and wraps it.
func NewWindow(game *geowars.Game, runtime core.RuntimeConfig, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	runtime.ScreenW, runtime.ScreenH = 0, 0
	game.Reset(runtime)

	b := game.World().Bounds()
	return &Window{
		game:    game,
		runtime: runtime,
		opts:    opts,
		input:   ebitenInput{},
		width:   int(math.Ceil(b.Width())),
		height:  int(math.Ceil(b.Height())) + hudHeight + footHeight,
	}
}

// Update advances one tick. Quit ends the run loop with ebiten.Termination.
func (w *Window) Update() error {
	frame := readInput(w.input, hudHeight)
	if frame.Has(core.ActionQuit) || (frame.Has(core.ActionBack) && !w.state.Started) {
		return ebiten.Termination
	}

	result := w.game.Step(frame)
	w.state = result.State
	w.opts.Sound.PlayEvents(result.Events)

	if !w.state.Started {
		w.scoreSaved = false
	}
	if w.state.GameOver && !w.scoreSaved {
		w.saveRun()
		w.scoreSaved = true
	}
	return nil
}

func (w *Window) saveRun() {
	if w.opts.Store == nil || w.state.Score <= 0 {
		return
	}
	_, err := w.opts.Store.SaveRun(storage.Run{
		GameID: w.game.ID(),
		Score:  w.state.Score,
		Level:  w.state.Level,
		Kills:  w.state.Kills,
	})
	if err != nil {
		w.opts.Logger.Warn("could not save score", "err", err)
	}
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Draw renders the current scene.
func (w *Window) Draw(screen *ebiten.Image) {
	scene := w.game.Scene()
	screen.Fill(background)

	if w.field == nil {
		w.field = ebiten.NewImage(w.width, w.height-hudHeight-footHeight)
	}
	field := w.field
	field.Fill(background)
	drawGrid(field, scene.Bounds)
	for i := range scene.Entities {
		drawEntity(field, &scene.Entities[i], scene)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(field, op)

	w.drawHUD(screen, scene)
	w.drawFooter(screen, scene)
	w.drawOverlay(screen, scene)
}

// drawGrid draws the background lattice and the playfield frame.
func drawGrid(dst *ebiten.Image, b core.Bounds) {
	for x := b.Min.X; x <= b.Max.X; x += gridStep {
		vector.StrokeLine(dst, float32(x), float32(b.Min.Y), float32(x), float32(b.Max.Y), 1, gridColor, false)
	}
	for y := b.Min.Y; y <= b.Max.Y; y += gridStep {
		vector.StrokeLine(dst, float32(b.Min.X), float32(y), float32(b.Max.X), float32(y), 1, gridColor, false)
	}
	vector.StrokeRect(dst, float32(b.Min.X)+1, float32(b.Min.Y)+1,
		float32(b.Width())-2, float32(b.Height())-2, 2, frameColor, false)
}

// drawEntity draws one entity in world coordinates.
func drawEntity(dst *ebiten.Image, e *entity.Entity, scene geowars.Scene) {
	x, y, r := float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius)
	clr := rgba(e.Color)

	switch e.Kind {
	case entity.KindPlayer:
		if scene.Blink {
			return
		}
		drawShip(dst, e.Pos, scene.Facing, e.Radius, clr)

	case entity.KindEnemy:
		// Diamond outline with a dim core
		pts := [4]core.Vec2{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
		for i := range pts {
			a := e.Pos.Add(pts[i].Scale(e.Radius))
			b := e.Pos.Add(pts[(i+1)%len(pts)].Scale(e.Radius))
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
		}
		vector.DrawFilledCircle(dst, x, y, r/3, faded(clr, 0.5), true)

	case entity.KindProjectile:
		vector.DrawFilledCircle(dst, x, y, max(r, 2), clr, true)

	case entity.KindParticle:
		vector.DrawFilledCircle(dst, x, y, max(r, 1), faded(clr, e.Fade()), true)
	}
}

// drawShip draws a triangle pointing along facing.
func drawShip(dst *ebiten.Image, pos, facing core.Vec2, radius float64, clr color.RGBA) {
	if facing == (core.Vec2{}) {
		facing = core.V(0, -1)
	}
	f := facing.Normalize()
	side := core.V(-f.Y, f.X)

	nose := pos.Add(f.Scale(radius * 1.4))
	left := pos.Sub(f.Scale(radius)).Add(side.Scale(radius))
	right := pos.Sub(f.Scale(radius)).Sub(side.Scale(radius))

	for _, seg := range [3][2]core.Vec2{{nose, left}, {left, right}, {right, nose}} {
		vector.StrokeLine(dst, float32(seg[0].X), float32(seg[0].Y), float32(seg[1].X), float32(seg[1].Y), 2, clr, true)
	}
	vector.StrokeCircle(dst, float32(pos.X), float32(pos.Y), float32(radius)/3, 1, clr, true)
}

func (w *Window) drawHUD(screen *ebiten.Image, scene geowars.Scene) {
	vector.FillRect(screen, 0, 0, float32(w.width), hudHeight, hudColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", scene.Score), 8, 4)

	lives := "LIVES " + strings.Repeat("<3 ", max(scene.Lives, 0))
	ebitenutil.DebugPrintAt(screen, lives, (w.width-len(lives)*charWidth)/2, 4)

	level := fmt.Sprintf("LEVEL %d  KILLS %d", scene.Level, scene.Kills)
	ebitenutil.DebugPrintAt(screen, level, w.width-len(level)*charWidth-8, 4)
}

func (w *Window) drawFooter(screen *ebiten.Image, scene geowars.Scene) {
	y := float32(w.height - footHeight)
	vector.FillRect(screen, 0, y, float32(w.width), footHeight, hudColor, false)

	text := scene.Observer
	if text == "" {
		text = "WASD move  Arrows/Mouse fire  P pause  Q quit"
	}
	ebitenutil.DebugPrintAt(screen, text, 8, int(y)+3)
}

func (w *Window) drawOverlay(screen *ebiten.Image, scene geowars.Scene) {
	var lines []string
	switch scene.Phase {
	case geowars.PhaseStart:
		lines = []string{"GEOMETRY WARS", "", "Press any key or click to start"}
		if !scene.ObserverOnline {
			lines = append(lines, "", fmt.Sprintf("Observer offline: set %s", scene.APIKeyEnv))
		}
	case geowars.PhasePaused:
		lines = []string{"PAUSED", "", "Press P to resume"}
	case geowars.PhaseGameOver:
		lines = []string{
			"GAME OVER", "",
			fmt.Sprintf("Score: %d  Kills: %d  Level: %d", scene.Score, scene.Kills, scene.Level),
			"", "Press R to restart",
		}
	case geowars.PhasePlaying:
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l)*charWidth)
	}
	boxW += 40
	boxH := len(lines)*16 + 24
	x := (w.width - boxW) / 2
	y := (w.height - boxH) / 2

	vector.FillRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), shadeColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 2, frameColor, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, (w.width-len(l)*charWidth)/2, y+12+i*16)
	}
}

// Run opens the window and blocks until the player quits or closes it.
func Run(game *geowars.Game, runtime core.RuntimeConfig, opts Options) error {
	w := NewWindow(game, runtime, opts)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(float64(w.width)*w.opts.Scale), int(float64(w.height)*w.opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
