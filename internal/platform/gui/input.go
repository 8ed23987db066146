package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/geowars/internal/core"
)

// inputSource is the slice of ebiten's input state the window reads.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	MousePressed() bool
	Cursor() (int, int)
}

// ebitenInput reads the live ebiten state. Call it from Update only.
type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) MousePressed() bool            { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }
func (ebitenInput) Cursor() (int, int)            { return ebiten.CursorPosition() }

// held keys act every tick while down.
var heldKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionFireUp},
	{ebiten.KeyArrowDown, core.ActionFireDown},
	{ebiten.KeyArrowLeft, core.ActionFireLeft},
	{ebiten.KeyArrowRight, core.ActionFireRight},
	{ebiten.KeySpace, core.ActionFire},
}

// pressKeys act once per press.
var pressKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyQ, core.ActionQuit},
}

// readInput builds the frame for this tick. The cursor is converted from
// window pixels to world units by subtracting the HUD strip.
func readInput(src inputSource, hudHeight int) core.InputFrame {
	frame := core.NewInputFrame()
	for _, k := range heldKeys {
		if src.Pressed(k.key) {
			frame.Set(k.action)
		}
	}
	for _, k := range pressKeys {
		if src.JustPressed(k.key) {
			frame.Set(k.action)
		}
	}
	if src.MousePressed() {
		frame.Set(core.ActionFire)
	}

	x, y := src.Cursor()
	frame.Pointer = core.Pointer{
		X:     float64(x),
		Y:     float64(y - hudHeight),
		Space: core.PointerWorld,
		Valid: true,
	}
	return frame
}
