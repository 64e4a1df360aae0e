package chomp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mazeworks/chomp/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must produce identical
	// snapshots at every step.
	g1 := New()
	g1.Reset(testConfig(12345))
	g2 := New()
	g2.Reset(testConfig(12345))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 5 {
			input.Set(core.ActionRight)
		}
		if i == 60 {
			input.Set(core.ActionDown)
		}
		if i == 150 {
			input.Set(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.PlayerX != snap2.PlayerX || snap1.PlayerY != snap2.PlayerY {
		t.Errorf("Player position mismatch: (%f,%f) vs (%f,%f)",
			snap1.PlayerX, snap1.PlayerY, snap2.PlayerX, snap2.PlayerY)
	}
	if snap1.Ghosts != snap2.Ghosts {
		t.Errorf("Ghost roster mismatch:\n%+v\n%+v", snap1.Ghosts, snap2.Ghosts)
	}
	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", snap1, snap2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.ID() != "chomp" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() != "Chomp" {
		t.Errorf("Title = %q", g.Title())
	}
	if g.Lives() != StartingLives {
		t.Errorf("Lives = %d, want %d", g.Lives(), StartingLives)
	}
	if g.Level() != 1 {
		t.Errorf("Level = %d, want 1", g.Level())
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, want 0", g.Score())
	}
	if len(g.Ghosts()) != 4 {
		t.Fatalf("Roster size = %d, want 4", len(g.Ghosts()))
	}
	if g.DotsRemaining() == 0 {
		t.Error("Fresh maze should hold dots")
	}
	if g.PowerActive() {
		t.Error("No power window should be open at start")
	}

	// The roster is built in fixed order
	want := []GhostPersonality{PersonalityBlinky, PersonalityPinky, PersonalityInky, PersonalitySue}
	for i, p := range want {
		if g.Ghosts()[i].Personality() != p {
			t.Errorf("Ghost %d = %v, want %v", i, g.Ghosts()[i].Personality(), p)
		}
	}

	// Inky's flanking handle points at the roster's Blinky
	if g.Ghosts()[2].blinky != g.Ghosts()[0] {
		t.Error("Inky should hold the roster's Blinky")
	}
}

func TestGameAdvanceIdempotentWithinTick(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)

	playerPos := g.Player().Position()
	ghostPos := g.Ghosts()[0].Position()

	// Re-running the phases inside the same tick must not move anyone.
	g.AdvancePlayer(DirRight)
	g.AdvanceGhosts()
	g.ResolveCollisions()

	if g.Player().Position() != playerPos {
		t.Error("Second AdvancePlayer moved the player")
	}
	if g.Ghosts()[0].Position() != ghostPos {
		t.Error("Second AdvanceGhosts moved a ghost")
	}

	// The next Step advances normally again.
	input.Clear()
	input.Set(core.ActionRight)
	g.Step(input)
	if g.Player().Position() == playerPos {
		t.Error("Player frozen across ticks")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)

	input.Clear()
	input.Set(core.ActionPause)
	res := g.Step(input)
	if !res.State.Paused {
		t.Fatal("Pause should toggle on")
	}

	pos := g.Player().Position()
	input.Clear()
	input.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.Player().Position() != pos {
		t.Error("Simulation advanced while paused")
	}

	input.Clear()
	input.Set(core.ActionPause)
	res = g.Step(input)
	if res.State.Paused {
		t.Error("Pause should toggle off")
	}
}

func TestGameTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("Expected the too-small latch")
	}

	// Stepping is a no-op but must not panic
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	pos := g.Player().Position()
	g.Step(input)
	if g.Player().Position() != pos {
		t.Error("Simulation advanced on a too-small screen")
	}

	// Rendering the fallback overlay must not panic either
	screen := core.NewScreen(10, 5)
	g.Render(screen)
}

func TestGamePlayerMovesOnInput(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	start := g.Player().Position()
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	input.Clear()
	for i := 0; i < 5; i++ {
		g.Step(input)
	}

	if g.Player().Position() == start {
		t.Error("Player did not move on directional input")
	}
	if g.Player().Direction() != DirLeft {
		t.Errorf("Direction = %v, want left", g.Player().Direction())
	}
}

func TestGameLevelAdvance(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	// Drain the maze down to one dot, then let the player eat it.
	pg := g.Player().GridPosition()
	for p := range g.maze.dots {
		if p == pg {
			continue
		}
		g.maze.RemoveDot(p.X, p.Y)
		g.scores.CollectDot()
	}
	for y := 0; y < g.maze.Height(); y++ {
		for x := 0; x < g.maze.Width(); x++ {
			if g.maze.RemovePowerPellet(x, y) {
				g.scores.CollectPowerPellet()
			}
		}
	}

	input := core.NewInputFrame()
	g.Step(input)

	if !g.levelCleared {
		t.Fatal("Eating the last dot should start the level-clear animation")
	}
	scoreAtClear := g.Score()

	for i := 0; i < levelClearDuration; i++ {
		g.Step(input)
	}

	if g.Level() != 2 {
		t.Errorf("Level = %d, want 2", g.Level())
	}
	if g.Score() != scoreAtClear+levelClearBonus {
		t.Errorf("Score = %d, want %d after the level 1 clear bonus",
			g.Score(), scoreAtClear+levelClearBonus)
	}
	if g.DotsRemaining() == 0 {
		t.Error("New level should refill the maze")
	}
	if g.levelCleared {
		t.Error("Level-clear latch should drop after the animation")
	}
	if g.Player().Position() != g.maze.PixelPosition(playerSpawn.X, playerSpawn.Y) {
		t.Error("Player should respawn on level change")
	}
}

func TestGameConfigFileLives(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chomp.yaml")
	data := []byte(`
speeds:
  player: 2
  ghost: 2
power_pellet:
  duration: 600
lives:
  starting: 5
difficulty:
  enabled: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	SetConfigPath(path)
	defer SetConfigPath("")

	g := New()
	g.Reset(testConfig(1))
	if g.Lives() != 5 {
		t.Errorf("Lives = %d, want the configured 5", g.Lives())
	}
}

func TestGameSnapshotShape(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, want 1", snap.Tick)
	}
	if snap.Lives != StartingLives {
		t.Errorf("Lives = %d", snap.Lives)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %v, want playing", snap.State)
	}
	for i, gs := range snap.Ghosts {
		if gs.Personality != g.Ghosts()[i].Personality() {
			t.Errorf("Ghost %d personality mismatch", i)
		}
	}
}
