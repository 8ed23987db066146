package geowars

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/entity"
)

// Visual characters for rendering
const (
	EnemyChar     = '◆'
	ShotChar      = '•'
	SparkChar     = '*'
	SparkFadeChar = '·'
	GridChar      = '·'
	LifeChar      = '♥'
)

// Grid spacing in cells.
const (
	gridStepX = 8
	gridStepY = 4
)

// shipGlyph picks the ship character closest to the facing direction.
func shipGlyph(facing core.Vec2) rune {
	if math.Abs(facing.X) > math.Abs(facing.Y) {
		if facing.X < 0 {
			return '◀'
		}
		return '▶'
	}
	if facing.Y > 0 {
		return '▼'
	}
	return '▲'
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.layout.headless {
		return
	}

	if g.layout.tooSmall {
		msg := "Terminal too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.layout.box, core.ColorBlue)
	g.renderGrid(dst)
	g.renderEntities(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and level on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", w.Score()), core.ColorBrightYellow)

	lives := "LIVES " + strings.Repeat(string(LifeChar), w.Lives())
	dst.DrawTextCenteredColored(0, lives, core.ColorBrightRed)

	level := fmt.Sprintf("LEVEL %d", w.Level())
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(level)-1, 0, level, core.ColorBrightCyan)
}

// renderGrid draws the faint background lattice.
func (g *Game) renderGrid(dst *core.Screen) {
	f := g.layout.field
	for y := f.Y + gridStepY/2; y < f.Bottom(); y += gridStepY {
		for x := f.X + gridStepX/2; x < f.Right(); x += gridStepX {
			dst.SetColored(x, y, GridChar, core.ColorDarkGray)
		}
	}
}

// renderEntities draws particles first and the ship last so it stays visible.
func (g *Game) renderEntities(dst *core.Screen) {
	w := g.world
	b := w.Bounds()
	store := w.Store()

	for _, kind := range [...]entity.Kind{entity.KindParticle, entity.KindProjectile, entity.KindEnemy, entity.KindPlayer} {
		store.ForEach(func(e *entity.Entity) {
			if !e.Alive || e.Kind != kind {
				return
			}
			x, y := g.layout.toCell(e.Pos, b)
			switch e.Kind {
			case entity.KindParticle:
				ch := SparkChar
				if e.Fade() < 0.5 {
					ch = SparkFadeChar
				}
				dst.SetColored(x, y, ch, e.Color)
			case entity.KindProjectile:
				dst.SetColored(x, y, ShotChar, e.Color)
			case entity.KindEnemy:
				dst.SetColored(x, y, EnemyChar, e.Color)
			case entity.KindPlayer:
				if g.playerBlink() {
					return
				}
				dst.SetColored(x, y, shipGlyph(w.Facing()), e.Color)
			}
		})
	}
}

// playerBlink reports whether the ship is hidden this frame.
// The ship flashes at 10 Hz while invulnerable.
func (g *Game) playerBlink() bool {
	t := g.world.InvulnerableFor()
	return t > 0 && int(t*10)%2 == 1
}

// renderFooter draws the observer line, or a controls hint.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if text := g.observer.Text(); text != "" {
		dst.DrawTextColored(1, y, truncate(text, dst.Width()-2), core.ColorBrightCyan)
		return
	}
	hint := "WASD move  Arrows/Mouse fire  P pause  Q quit"
	dst.DrawTextCenteredColored(y, truncate(hint, dst.Width()), core.ColorGray)
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.world.Phase() {
	case PhaseStart:
		lines := []string{"Press any key to start"}
		if !g.observer.Online() {
			lines = append(lines, fmt.Sprintf("Observer offline: set %s", g.cfg.Advisor.APIKeyEnv))
		}
		g.drawCenteredBox(dst, "GEOMETRY WARS", lines...)

	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case PhaseGameOver:
		g.drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Kills: %d  Level: %d", g.world.Score(), g.world.Kills(), g.world.Level()),
			"Press R to restart")

	case PhasePlaying:
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW = min(boxW+4, dst.Width())
	boxH := 3 + len(lines)*2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(r, core.Cell{Rune: ' '})
	dst.DrawBox(r, core.ColorWhite)

	dst.DrawTextCenteredColored(boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i*2, truncate(l, boxW-2))
	}
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
