package geowars

import "github.com/vovakirdan/geowars/internal/core"

// layout maps the playfield onto terminal cells.
//
//	row 0         HUD
//	rows 1..h-2   boxed playfield
//	row h-1       observer line
type layout struct {
	screenW, screenH int
	box              core.Rect // Border
	field            core.Rect // Interior cells
	tooSmall         bool
	headless         bool // No terminal, e.g. the window frontend
}

func newLayout(w, h int) layout {
	if w <= 0 || h <= 0 {
		return layout{headless: true}
	}
	l := layout{
		screenW:  w,
		screenH:  h,
		tooSmall: w < MinScreenW || h < MinScreenH,
	}
	l.box = core.NewRect(0, 1, w, h-2)
	l.field = core.NewRect(1, 2, w-2, h-4)
	return l
}

// toCell converts a world point to a cell inside the field.
func (l layout) toCell(p core.Vec2, b core.Bounds) (int, int) {
	fx := (p.X - b.Min.X) / b.Width() * float64(l.field.W)
	fy := (p.Y - b.Min.Y) / b.Height() * float64(l.field.H)
	x := core.Clamp(int(fx), 0, l.field.W-1)
	y := core.Clamp(int(fy), 0, l.field.H-1)
	return l.field.X + x, l.field.Y + y
}

// toWorld converts a cell position to the world point at the cell's centre.
// Positions outside the field are clamped to its edge.
func (l layout) toWorld(cx, cy float64, b core.Bounds) core.Vec2 {
	if l.field.W <= 0 || l.field.H <= 0 {
		return b.Center()
	}
	fx := (cx - float64(l.field.X) + 0.5) / float64(l.field.W)
	fy := (cy - float64(l.field.Y) + 0.5) / float64(l.field.H)
	return b.ClampPoint(core.V(
		b.Min.X+fx*b.Width(),
		b.Min.Y+fy*b.Height(),
	))
}
