package chomp

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// GhostSnapshot captures one ghost's state.
type GhostSnapshot struct {
	Personality GhostPersonality
	X           float64
	Y           float64
	Dir         Direction
	Mode        GhostMode
}

// Snapshot captures the complete game state for determinism testing
// and replay.
type Snapshot struct {
	Tick          uint64
	Score         int
	Lives         int
	Level         int
	DotsRemaining int
	PowerActive   bool
	PowerTimer    int
	PlayerX       float64
	PlayerY       float64
	PlayerDir     Direction
	Ghosts        [4]GhostSnapshot
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.scores.IsGameOver():
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	snap := Snapshot{
		Tick:          g.tick,
		Score:         g.scores.Score(),
		Lives:         g.scores.Lives(),
		Level:         g.scores.Level(),
		DotsRemaining: g.maze.DotsRemaining(),
		PowerActive:   g.power.Active(),
		PowerTimer:    g.power.Remaining(),
		PlayerX:       g.player.Position().X,
		PlayerY:       g.player.Position().Y,
		PlayerDir:     g.player.Direction(),
		State:         state,
	}

	for i, ghost := range g.ghosts {
		if i >= len(snap.Ghosts) {
			break
		}
		snap.Ghosts[i] = GhostSnapshot{
			Personality: ghost.Personality(),
			X:           ghost.Position().X,
			Y:           ghost.Position().Y,
			Dir:         ghost.Direction(),
			Mode:        ghost.Mode(),
		}
	}
	return snap
}
