package render

import (
	"math"
	"testing"
)

func TestGroundGrid_ConvergingLines(t *testing.T) {
	lines := GroundGrid(0, 0)

	var converging []Line
	for _, l := range lines {
		if l.Y1 != l.Y2 {
			converging = append(converging, l)
		}
	}
	if len(converging) != 33 {
		t.Fatalf("converging lines = %d, want 33", len(converging))
	}
	for _, l := range converging {
		if l.Y1 != Horizon || l.Y2 != SurfaceHeight {
			t.Errorf("line %+v does not run from horizon to bottom", l)
		}
	}

	centre := converging[16]
	if centre.X1 != 400 || centre.X2 != 400 {
		t.Errorf("centre line = %+v, want vertical at x=400", centre)
	}
}

func TestGroundGrid_ScrollsWithX(t *testing.T) {
	a := GroundGrid(10, 0)
	b := GroundGrid(60, 0)
	if a[0] != b[0] {
		t.Errorf("grid should repeat every spacing: %+v vs %+v", a[0], b[0])
	}

	c := GroundGrid(0, 0)
	if c[0].X1-a[0].X1 != 10 {
		t.Errorf("moving 10 right shifted lines by %v", c[0].X1-a[0].X1)
	}
}

func TestGroundGrid_HorizontalLinesTightenWithAltitude(t *testing.T) {
	count := func(lines []Line) int {
		n := 0
		for _, l := range lines {
			if l.Y1 == l.Y2 {
				if l.Y1 <= Horizon || l.Y1 >= SurfaceHeight {
					t.Errorf("horizontal line at y=%v outside the ground", l.Y1)
				}
				n++
			}
		}
		return n
	}

	low := count(GroundGrid(0, 0))
	high := count(GroundGrid(0, 300))
	if low != 5 {
		t.Errorf("ground level horizontal lines = %d, want 5", low)
	}
	if high <= low {
		t.Errorf("horizontal lines at altitude 300 = %d, want more than %d", high, low)
	}
}

func TestLine_LengthAngle(t *testing.T) {
	l := Line{X1: 0, Y1: 0, X2: 3, Y2: 4}
	if l.Length() != 5 {
		t.Errorf("Length() = %v, want 5", l.Length())
	}
	if math.Abs(Line{X2: 0, Y2: 1}.Angle()-90) > 1e-9 {
		t.Errorf("Angle() = %v, want 90", Line{X2: 0, Y2: 1}.Angle())
	}
}

func TestPlaneShape(t *testing.T) {
	level := PlaneShape(0)
	if level[1] != [2]float64{400, 285} {
		t.Errorf("nose = %v, want (400, 285)", level[1])
	}

	rolled := PlaneShape(90)
	// A quarter turn puts the nose to the right of centre.
	if math.Abs(rolled[1][0]-415) > 1e-9 || math.Abs(rolled[1][1]-300) > 1e-9 {
		t.Errorf("rolled nose = %v, want (415, 300)", rolled[1])
	}
}

func TestPlaneGlyph(t *testing.T) {
	tests := []struct {
		bank float64
		want string
	}{
		{0, "-^-"},
		{9.9, "-^-"},
		{10, "-^."},
		{45, "`^."},
		{-10, ".^-"},
		{-45, ".^`"},
	}
	for _, tt := range tests {
		if got := PlaneGlyph(tt.bank); got != tt.want {
			t.Errorf("PlaneGlyph(%v) = %q, want %q", tt.bank, got, tt.want)
		}
	}
}
