package geometry

import (
	"math"
	"testing"

	"tikzdraw/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func pointsAlmostEqual(a, b core.Point) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64
		enabled        bool
		step           float64
		wantX, wantY   float64
	}{
		{"Disabled", 13, 27, false, 10, 13, 27},
		{"NearestMultiple", 13, 27, true, 10, 10, 30},
		{"ExactMultiple", 40, 60, true, 20, 40, 60},
		{"HalfwayRoundsAwayFromZero", 25, 35, true, 10, 30, 40},
		{"NegativeHalfway", -25, -35, true, 10, -30, -40},
		{"ZeroStep", 13, 27, true, 0, 13, 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := Snap(tt.x, tt.y, tt.enabled, tt.step)
			if !almostEqual(gotX, tt.wantX) || !almostEqual(gotY, tt.wantY) {
				t.Errorf("Snap(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRotatePoint(t *testing.T) {
	pivot := core.Point{X: 0, Y: 0}

	// 90 degrees with y down turns (1,0) into (0,1)
	got := RotatePoint(core.Point{X: 1, Y: 0}, pivot, 90)
	if !pointsAlmostEqual(got, core.Point{X: 0, Y: 1}) {
		t.Errorf("RotatePoint 90deg = %v, want (0,1)", got)
	}

	// rotation about a non-origin pivot
	got = RotatePoint(core.Point{X: 2, Y: 1}, core.Point{X: 1, Y: 1}, 180)
	if !pointsAlmostEqual(got, core.Point{X: 0, Y: 1}) {
		t.Errorf("RotatePoint 180deg about (1,1) = %v, want (0,1)", got)
	}

	// unnormalized angles pass through: 450 == 90
	a := RotatePoint(core.Point{X: 3, Y: 4}, pivot, 450)
	b := RotatePoint(core.Point{X: 3, Y: 4}, pivot, 90)
	if !pointsAlmostEqual(a, b) {
		t.Errorf("RotatePoint(450) = %v, RotatePoint(90) = %v, want equal", a, b)
	}

	// rotation by -d inverts rotation by d
	p := core.Point{X: 5, Y: -2}
	back := RotatePoint(RotatePoint(p, pivot, 37), pivot, -37)
	if !pointsAlmostEqual(back, p) {
		t.Errorf("rotate then unrotate = %v, want %v", back, p)
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{450, 90},
		{359.5, 359.5},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeDeg(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("NormalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEllipsePolygon(t *testing.T) {
	c := core.Point{X: 10, Y: 20}
	pts := EllipsePolygon(c, 5, 3, 0, 96)
	if len(pts) != 96 {
		t.Fatalf("len = %d, want 96", len(pts))
	}
	// first sample lies on the positive x axis
	if !pointsAlmostEqual(pts[0], core.Point{X: 15, Y: 20}) {
		t.Errorf("pts[0] = %v, want (15,20)", pts[0])
	}
	// every sample satisfies the ellipse equation
	for i, p := range pts {
		dx := (p.X - c.X) / 5
		dy := (p.Y - c.Y) / 3
		if !almostEqual(dx*dx+dy*dy, 1) {
			t.Errorf("pts[%d] = %v not on ellipse", i, p)
		}
	}
}

func TestEllipsePolygonRotated(t *testing.T) {
	c := core.Point{X: 0, Y: 0}
	pts := EllipsePolygon(c, 4, 2, 90, 4)
	// with a 90-degree rotation the first sample (4,0) lands at (0,4)
	if !pointsAlmostEqual(pts[0], core.Point{X: 0, Y: 4}) {
		t.Errorf("rotated pts[0] = %v, want (0,4)", pts[0])
	}
	// a negligible angle must not rotate at all
	plain := EllipsePolygon(c, 4, 2, 0, 4)
	tiny := EllipsePolygon(c, 4, 2, 1e-12, 4)
	for i := range plain {
		if !pointsAlmostEqual(plain[i], tiny[i]) {
			t.Errorf("negligible angle moved pts[%d]: %v vs %v", i, plain[i], tiny[i])
		}
	}
}

func TestRectCorners(t *testing.T) {
	corners := RectCorners(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 6}, 0)
	want := [4]core.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 6}, {X: 0, Y: 6},
	}
	for i := range want {
		if !pointsAlmostEqual(corners[i], want[i]) {
			t.Errorf("corner %d = %v, want %v", i, corners[i], want[i])
		}
	}

	// corner order holds regardless of which corners are given
	swapped := RectCorners(core.Point{X: 10, Y: 6}, core.Point{X: 0, Y: 0}, 0)
	for i := range want {
		if !pointsAlmostEqual(swapped[i], want[i]) {
			t.Errorf("swapped corner %d = %v, want %v", i, swapped[i], want[i])
		}
	}
}

func TestRectCornersRotated(t *testing.T) {
	// a 90-degree rotation about the center maps the top-left corner of
	// a 10x6 rect at origin onto the rotated position (8,-2)
	corners := RectCorners(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 6}, 90)
	if !pointsAlmostEqual(corners[0], core.Point{X: 8, Y: -2}) {
		t.Errorf("rotated corner 0 = %v, want (8,-2)", corners[0])
	}
	// rotation preserves the center
	cx := (corners[0].X + corners[2].X) / 2
	cy := (corners[0].Y + corners[2].Y) / 2
	if !almostEqual(cx, 5) || !almostEqual(cy, 3) {
		t.Errorf("rotated center = (%v,%v), want (5,3)", cx, cy)
	}
}

func TestQuadPoints(t *testing.T) {
	p0 := core.Point{X: 0, Y: 0}
	c := core.Point{X: 5, Y: 10}
	p1 := core.Point{X: 10, Y: 0}
	pts := QuadPoints(p0, c, p1, 5)
	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	if !pointsAlmostEqual(pts[0], p0) || !pointsAlmostEqual(pts[4], p1) {
		t.Errorf("endpoints = %v, %v, want %v, %v", pts[0], pts[4], p0, p1)
	}
	// the curve midpoint of a quadratic is (p0 + 2c + p1)/4
	if !pointsAlmostEqual(pts[2], core.Point{X: 5, Y: 5}) {
		t.Errorf("midpoint = %v, want (5,5)", pts[2])
	}
}

func TestArcPolyline(t *testing.T) {
	c := core.Point{X: 0, Y: 0}

	pts := ArcPolyline(c, 10, 0, 90, 3)
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	if !pointsAlmostEqual(pts[0], core.Point{X: 10, Y: 0}) {
		t.Errorf("pts[0] = %v, want (10,0)", pts[0])
	}
	mid := core.Point{X: 10 * math.Cos(math.Pi/4), Y: 10 * math.Sin(math.Pi/4)}
	if !pointsAlmostEqual(pts[1], mid) {
		t.Errorf("pts[1] = %v, want %v", pts[1], mid)
	}
	if !pointsAlmostEqual(pts[2], core.Point{X: 0, Y: 10}) {
		t.Errorf("pts[2] = %v, want (0,10)", pts[2])
	}
}

func TestArcPolylineWrapsThroughZero(t *testing.T) {
	// 300 -> 30 spans 90 degrees through the zero crossing
	pts := ArcPolyline(core.Point{}, 10, 300, 30, 4)
	first := core.Point{X: 10 * math.Cos(300*math.Pi/180), Y: 10 * math.Sin(300*math.Pi/180)}
	last := core.Point{X: 10 * math.Cos(30*math.Pi/180), Y: 10 * math.Sin(30*math.Pi/180)}
	if !pointsAlmostEqual(pts[0], first) {
		t.Errorf("pts[0] = %v, want %v", pts[0], first)
	}
	if !pointsAlmostEqual(pts[3], last) {
		t.Errorf("pts[3] = %v, want %v", pts[3], last)
	}
}

func TestArcPolylineFullTurn(t *testing.T) {
	// coincident angles describe the whole circle
	pts := ArcPolyline(core.Point{}, 5, 90, 90, 9)
	if !pointsAlmostEqual(pts[0], pts[8]) {
		t.Errorf("full turn endpoints differ: %v vs %v", pts[0], pts[8])
	}
	if !pointsAlmostEqual(pts[4], core.Point{X: 0, Y: -5}) {
		t.Errorf("half-turn sample = %v, want (0,-5)", pts[4])
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 4}); !almostEqual(got, 5) {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Distance(core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 2}); !almostEqual(got, 0) {
		t.Errorf("Distance of identical points = %v, want 0", got)
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		p1   core.Point
		want float64
	}{
		{"East", core.Point{X: 1, Y: 0}, 0},
		{"SouthIsPositive", core.Point{X: 0, Y: 1}, 90}, // y grows downward
		{"West", core.Point{X: -1, Y: 0}, 180},
		{"NorthIsNegative", core.Point{X: 0, Y: -1}, -90},
	}
	origin := core.Point{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleBetween(origin, tt.p1); !almostEqual(got, tt.want) {
				t.Errorf("AngleBetween = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFmt(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{3.14159, "3.14"},
		{-12.5, "-12.50"},
	}
	for _, tt := range tests {
		if got := Fmt(tt.in); got != tt.want {
			t.Errorf("Fmt(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
