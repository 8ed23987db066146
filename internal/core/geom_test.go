package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v, expected (2, 6)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale = %v, expected (1.5, 2)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
	if got := V(0, 0).Dist(a); got != 5 {
		t.Errorf("Dist = %v, expected 5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero stays zero", V(0, 0), V(0, 0)},
		{"axis", V(0, -7), V(0, -1)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVecIsFinite(t *testing.T) {
	tests := []struct {
		v    Vec2
		want bool
	}{
		{V(1, 2), true},
		{V(math.NaN(), 0), false},
		{V(0, math.Inf(1)), false},
		{V(math.Inf(-1), 0), false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, expected %v", tt.v, got, tt.want)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		c1     Vec2
		r1     float64
		c2     Vec2
		r2     float64
		expect bool
	}{
		{"overlapping", V(100, 100), 5, V(103, 100), 3, true},
		{"touching is not overlap", V(0, 0), 5, V(10, 0), 5, false},
		{"apart", V(0, 0), 1, V(10, 10), 1, false},
		{"concentric", V(5, 5), 1, V(5, 5), 1, true},
		{"zero radius inside", V(0, 0), 2, V(1, 0), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.c1, tt.r1, tt.c2, tt.r2); got != tt.expect {
				t.Errorf("CirclesOverlap = %v, expected %v", got, tt.expect)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := NewBounds(800, 600)

	if b.Width() != 800 || b.Height() != 600 {
		t.Errorf("size = %vx%v, expected 800x600", b.Width(), b.Height())
	}
	if b.Center() != V(400, 300) {
		t.Errorf("Center = %v, expected (400, 300)", b.Center())
	}

	containTests := []struct {
		p      Vec2
		expect bool
	}{
		{V(0, 0), true},
		{V(800, 600), true},
		{V(400, 300), true},
		{V(-0.1, 10), false},
		{V(10, 600.1), false},
	}
	for _, tt := range containTests {
		if got := b.Contains(tt.p); got != tt.expect {
			t.Errorf("Contains(%v) = %v, expected %v", tt.p, got, tt.expect)
		}
	}

	in := b.Inset(10)
	if in.Min != V(10, 10) || in.Max != V(790, 590) {
		t.Errorf("Inset(10) = %+v", in)
	}

	if got := b.ClampPoint(V(-5, 700)); got != V(0, 600) {
		t.Errorf("ClampPoint = %v, expected (0, 600)", got)
	}

	corners := b.Corners()
	if corners[0] != V(0, 0) || corners[2] != V(800, 600) {
		t.Errorf("Corners = %v", corners)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
	if !r.Contains(10, 20) || r.Contains(40, 20) {
		t.Error("Contains should include top-left and exclude right edge")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		result := Clamp(tt.val, tt.lo, tt.hi)
		if result != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, result, tt.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}
