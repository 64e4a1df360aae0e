package chomp

import "testing"

func TestDirectionOpposite(t *testing.T) {
	cases := []struct {
		dir, want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirNone, DirNone},
	}
	for _, c := range cases {
		if got := c.dir.Opposite(); got != c.want {
			t.Errorf("Opposite(%v) = %v, want %v", c.dir, got, c.want)
		}
		// Opposite is its own inverse
		if c.dir.Opposite().Opposite() != c.dir {
			t.Errorf("Opposite(Opposite(%v)) != %v", c.dir, c.dir)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	if dx, dy := DirUp.Delta(); dx != 0 || dy != -1 {
		t.Errorf("DirUp delta = (%d,%d)", dx, dy)
	}
	if dx, dy := DirDown.Delta(); dx != 0 || dy != 1 {
		t.Errorf("DirDown delta = (%d,%d)", dx, dy)
	}
	if dx, dy := DirLeft.Delta(); dx != -1 || dy != 0 {
		t.Errorf("DirLeft delta = (%d,%d)", dx, dy)
	}
	if dx, dy := DirRight.Delta(); dx != 1 || dy != 0 {
		t.Errorf("DirRight delta = (%d,%d)", dx, dy)
	}
	if dx, dy := DirNone.Delta(); dx != 0 || dy != 0 {
		t.Errorf("DirNone delta = (%d,%d)", dx, dy)
	}
}

func TestDirectionAxes(t *testing.T) {
	if !DirLeft.IsHorizontal() || !DirRight.IsHorizontal() {
		t.Error("Left and right should be horizontal")
	}
	if DirUp.IsHorizontal() || DirNone.IsHorizontal() {
		t.Error("Up and none should not be horizontal")
	}
	if !DirUp.IsVertical() || !DirDown.IsVertical() {
		t.Error("Up and down should be vertical")
	}
	if DirLeft.IsVertical() {
		t.Error("Left should not be vertical")
	}
}

func TestPositionGridConversion(t *testing.T) {
	p := Position{X: 45, Y: 61}
	g := p.ToGrid(20)
	if g.X != 2 || g.Y != 3 {
		t.Errorf("ToGrid(45,61) = (%d,%d), want (2,3)", g.X, g.Y)
	}

	back := FromGrid(GridPoint{X: 2, Y: 3}, 20)
	if back.X != 40 || back.Y != 60 {
		t.Errorf("FromGrid(2,3) = (%f,%f), want (40,60)", back.X, back.Y)
	}

	// Negative pixel coordinates floor toward minus infinity
	neg := Position{X: -1, Y: 0}.ToGrid(20)
	if neg.X != -1 {
		t.Errorf("ToGrid(-1,0).X = %d, want -1", neg.X)
	}
}

func TestPositionDistance(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 3, Y: 4}
	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo = %f, want 5", d)
	}
	if d := a.DistanceTo(a); d != 0 {
		t.Errorf("DistanceTo self = %f, want 0", d)
	}

	sum := a.Add(b)
	if sum.X != 3 || sum.Y != 4 {
		t.Errorf("Add = %v", sum)
	}
	diff := b.Sub(a)
	if diff.X != 3 || diff.Y != 4 {
		t.Errorf("Sub = %v", diff)
	}
}
