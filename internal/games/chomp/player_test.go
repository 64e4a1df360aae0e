package chomp

import "testing"

func newTestPlayer(m *Maze, gx, gy int) *Player {
	return NewPlayer(m.PixelPosition(gx, gy), m, 2)
}

func TestPlayerStartsStationary(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 3)

	p.Update()
	if p.IsMoving() {
		t.Error("Player should not move without a direction")
	}
	if p.Direction() != DirNone {
		t.Errorf("Direction = %v, want none", p.Direction())
	}
}

func TestPlayerMovesWhenQueued(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 3)
	start := p.Position()

	p.SetDirection(DirRight)
	p.Update()

	if !p.IsMoving() {
		t.Fatal("Player should be moving after a valid turn")
	}
	if p.Direction() != DirRight {
		t.Errorf("Direction = %v, want right", p.Direction())
	}
	if p.Position().X != start.X+2 {
		t.Errorf("X = %f, want %f", p.Position().X, start.X+2)
	}
}

func TestPlayerBlockedTurnIgnored(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 1)

	// (1,1) has walls above and to the left
	p.SetDirection(DirUp)
	p.Update()

	if p.IsMoving() {
		t.Error("Blocked turn should leave the player stationary")
	}
	if p.Direction() != DirNone {
		t.Errorf("Direction = %v, want none", p.Direction())
	}
}

func TestPlayerPerpendicularTurnWaitsForAlignment(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 3)

	p.SetDirection(DirRight)
	p.Update()

	// Mid-tile now. Queue a downward turn; it must not apply until the
	// player reaches a tile boundary with an open cell below.
	p.SetDirection(DirDown)
	p.Update()
	if p.Direction() != DirRight {
		t.Fatalf("Turn applied mid-tile: direction = %v", p.Direction())
	}

	// The first column right of spawn with an opening below is x=6.
	turned := false
	for i := 0; i < 80; i++ {
		p.Update()
		if p.Direction() == DirDown {
			turned = true
			break
		}
	}
	if !turned {
		t.Fatal("Queued turn never applied")
	}
	if g := p.GridPosition(); g.X != 6 {
		t.Errorf("Turned at column %d, want 6", g.X)
	}
}

func TestPlayerReversalAppliesImmediately(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 2, 3)

	p.SetDirection(DirRight)
	p.Update()

	// Reversal does not wait for grid alignment. The open corridor to
	// the left keeps the same Update from running into a wall after
	// the turn.
	p.SetDirection(DirLeft)
	p.Update()
	if p.Direction() != DirLeft {
		t.Errorf("Direction = %v, want left", p.Direction())
	}
	if !p.IsMoving() {
		t.Error("Player should keep moving after the reversal")
	}
	if want := float64(2*TileSize - 2); p.Position().X != want {
		t.Errorf("X = %f, want %f", p.Position().X, want)
	}
}

func TestPlayerWallStopStaysInCorridor(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 24, 3)

	// Head right into the dead end before the outer wall at column 27.
	// The stop must realign into the last corridor cell, never onto
	// the wall's corner.
	p.SetDirection(DirRight)
	for i := 0; i < 40; i++ {
		p.Update()
	}

	if p.IsMoving() || p.Direction() != DirNone {
		t.Error("Player should have stopped at the wall")
	}
	g := p.GridPosition()
	if g.X != 26 || g.Y != 3 {
		t.Errorf("Stopped at (%d,%d), want (26,3)", g.X, g.Y)
	}
	if m.IsWall(g.X, g.Y) {
		t.Error("Player realigned into a wall cell")
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 3)

	// Head up the short corridor toward the top wall
	p.SetDirection(DirUp)
	for i := 0; i < 60; i++ {
		p.Update()
	}

	if p.IsMoving() {
		t.Error("Player should have stopped at the wall")
	}
	if p.Direction() != DirNone {
		t.Errorf("Direction = %v, want none", p.Direction())
	}
	if g := p.GridPosition(); g.X != 1 || g.Y != 1 {
		t.Errorf("Stopped at (%d,%d), want (1,1)", g.X, g.Y)
	}
}

func TestPlayerCollectAt(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 1)
	s := NewScoreManager(StartingLives)
	s.InitializeLevel(1)

	dot, pellet := p.CollectAt(s)
	if !dot || pellet {
		t.Errorf("CollectAt = (%v,%v), want (true,false)", dot, pellet)
	}
	if s.Score() != DotPoints {
		t.Errorf("Score = %d, want %d", s.Score(), DotPoints)
	}
	if m.HasDot(1, 1) {
		t.Error("Dot should be removed from the maze")
	}
	if !s.IsLevelComplete() {
		t.Error("Collecting the only dot should complete the level")
	}

	// Second pass over the same cell picks up nothing
	dot, pellet = p.CollectAt(s)
	if dot || pellet {
		t.Error("Second CollectAt should find nothing")
	}
	if s.Score() != DotPoints {
		t.Errorf("Score changed on empty collect: %d", s.Score())
	}
}

func TestPlayerCollectPowerPellet(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 2)
	s := NewScoreManager(StartingLives)
	s.InitializeLevel(m.DotsRemaining())

	dot, pellet := p.CollectAt(s)
	if dot || !pellet {
		t.Errorf("CollectAt = (%v,%v), want (false,true)", dot, pellet)
	}
	if s.Score() != PowerPelletPoints {
		t.Errorf("Score = %d, want %d", s.Score(), PowerPelletPoints)
	}
}

func TestPlayerTunnelWrap(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 9)

	// Walk left through the tunnel; the player should reappear on the
	// right edge instead of stopping. Ten updates reach the tunnel
	// mouth, the eleventh steps off the edge.
	p.SetDirection(DirLeft)
	for i := 0; i < 11; i++ {
		p.Update()
	}

	if !p.IsMoving() {
		t.Fatal("Player should keep moving through the tunnel")
	}
	if g := p.GridPosition(); g.X != m.Width()-1 {
		t.Errorf("Expected wrap to column %d, at %d", m.Width()-1, g.X)
	}
	if g := p.GridPosition(); g.Y != 9 {
		t.Errorf("Wrap changed row: %d", g.Y)
	}
}

func TestPlayerResetPosition(t *testing.T) {
	m := NewMaze(TileSize)
	p := newTestPlayer(m, 1, 3)
	start := p.Position()

	p.SetDirection(DirRight)
	for i := 0; i < 10; i++ {
		p.Update()
	}

	p.ResetPosition()
	if p.Position() != start {
		t.Errorf("Position = %v, want %v", p.Position(), start)
	}
	if p.Direction() != DirNone || p.IsMoving() {
		t.Error("Reset player should be stationary")
	}

	// Queued input is cleared too
	p.Update()
	if p.IsMoving() {
		t.Error("Reset should drop the queued direction")
	}
}
