package chomp

import "testing"

// collisionFixture builds a player and roster stacked on the same cell
// so every Resolve call sees contact.
func collisionFixture(m *Maze) (*Player, []*Ghost) {
	player := newTestPlayer(m, 13, 9)
	ghosts := newTestRoster(m)
	for _, g := range ghosts {
		g.pos = player.Position()
	}
	return player, ghosts
}

func TestCollisionEatsVulnerableGhost(t *testing.T) {
	m := NewMaze(TileSize)
	player, ghosts := collisionFixture(m)
	scores := NewScoreManager(StartingLives)
	power := NewPowerPelletManager(100)
	cm := NewCollisionManager()

	power.Activate(ghosts)
	out := cm.Resolve(player, ghosts, scores, power)

	if !out.GhostEaten {
		t.Fatal("Expected a ghost to be eaten")
	}
	if out.PointsEarned != GhostBasePoints {
		t.Errorf("Points = %d, want %d", out.PointsEarned, GhostBasePoints)
	}
	if out.LifeLost {
		t.Error("Eating a ghost should not cost a life")
	}
	if ghosts[0].Mode() != ModeEaten {
		t.Errorf("First ghost mode = %v, want eaten", ghosts[0].Mode())
	}
}

func TestCollisionOneEatPerTick(t *testing.T) {
	m := NewMaze(TileSize)
	player, ghosts := collisionFixture(m)
	scores := NewScoreManager(StartingLives)
	power := NewPowerPelletManager(100)
	cm := NewCollisionManager()

	power.Activate(ghosts)
	cm.Resolve(player, ghosts, scores, power)

	eaten := 0
	for _, g := range ghosts {
		if g.Mode() == ModeEaten {
			eaten++
		}
	}
	if eaten != 1 {
		t.Errorf("Eaten %d ghosts in one pass, want 1", eaten)
	}

	// The next pass eats the next one at double points
	out := cm.Resolve(player, ghosts, scores, power)
	if !out.GhostEaten || out.PointsEarned != 2*GhostBasePoints {
		t.Errorf("Second eat = %+v", out)
	}
}

func TestCollisionLifeLossResets(t *testing.T) {
	m := NewMaze(TileSize)
	player, ghosts := collisionFixture(m)
	scores := NewScoreManager(StartingLives)
	power := NewPowerPelletManager(100)
	cm := NewCollisionManager()

	out := cm.Resolve(player, ghosts, scores, power)

	if !out.LifeLost {
		t.Fatal("Contact with a dangerous ghost should cost a life")
	}
	if out.GameOver {
		t.Error("First loss should not end the game")
	}
	if scores.Lives() != StartingLives-1 {
		t.Errorf("Lives = %d, want %d", scores.Lives(), StartingLives-1)
	}

	// Everyone returns to their spawn
	if player.Position() != player.startPos {
		t.Error("Player was not reset")
	}
	for i, g := range ghosts {
		if g.Position() != g.startPos {
			t.Errorf("Ghost %d was not reset", i)
		}
	}
	if power.Active() {
		t.Error("Power window should close on life loss")
	}
	if !cm.InGrace() {
		t.Error("Grace window should open on life loss")
	}
}

func TestCollisionGraceWindow(t *testing.T) {
	m := NewMaze(TileSize)
	player, ghosts := collisionFixture(m)
	scores := NewScoreManager(StartingLives)
	power := NewPowerPelletManager(100)
	cm := NewCollisionManager()

	cm.Resolve(player, ghosts, scores, power)

	// Restack everyone and keep resolving: contact is ignored for the
	// whole grace window.
	for _, g := range ghosts {
		g.pos = player.Position()
	}
	for i := 0; i < respawnGraceTicks; i++ {
		out := cm.Resolve(player, ghosts, scores, power)
		if out.LifeLost || out.GhostEaten {
			t.Fatalf("Contact applied during grace at tick %d", i)
		}
	}
	if cm.InGrace() {
		t.Error("Grace window should have closed")
	}

	// The first pass after grace hurts again
	out := cm.Resolve(player, ghosts, scores, power)
	if !out.LifeLost {
		t.Error("Contact after grace should cost a life")
	}
}

func TestCollisionGameOver(t *testing.T) {
	m := NewMaze(TileSize)
	player, ghosts := collisionFixture(m)
	scores := NewScoreManager(StartingLives)
	power := NewPowerPelletManager(100)
	cm := NewCollisionManager()

	// Player and ghosts respawn onto the same stack each time, so
	// clearing the grace window re-triggers the loss.
	var out CollisionOutcome
	for i := 0; i < StartingLives; i++ {
		for _, g := range ghosts {
			g.pos = player.Position()
		}
		out = cm.Resolve(player, ghosts, scores, power)
		cm.ResetGrace()
	}

	if !out.GameOver {
		t.Error("Losing the last life should end the game")
	}
	if !scores.IsGameOver() {
		t.Error("Score manager should latch game over")
	}
}

func TestCollisionOutOfRange(t *testing.T) {
	m := NewMaze(TileSize)
	player := newTestPlayer(m, 1, 1)
	ghosts := newTestRoster(m)
	scores := NewScoreManager(StartingLives)
	power := NewPowerPelletManager(100)
	cm := NewCollisionManager()

	out := cm.Resolve(player, ghosts, scores, power)
	if out.GhostEaten || out.LifeLost {
		t.Errorf("Distant ghosts collided: %+v", out)
	}
}
