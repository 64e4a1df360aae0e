package chomp

import (
	"math/rand"

	"github.com/mazeworks/chomp/internal/config"
	"github.com/mazeworks/chomp/internal/core"
	"github.com/mazeworks/chomp/internal/registry"
)

// TileSize is the edge length of one maze cell in pixels. All
// simulation distances are pixel-based; rendering maps one cell to one
// screen character.
const TileSize = 20

// Spawn cells.
var (
	playerSpawn = GridPoint{X: 13, Y: 15}
	ghostSpawns = map[GhostPersonality]GridPoint{
		PersonalityBlinky: {X: 13, Y: 9},
		PersonalityPinky:  {X: 14, Y: 9},
		PersonalityInky:   {X: 13, Y: 10},
		PersonalitySue:    {X: 14, Y: 10},
	}
	ghostHouse = GridPoint{X: 13, Y: 9}
)

const (
	levelClearDuration = 90

	// levelClearBonus is awarded per level number on finishing a level.
	levelClearBonus = 100
)

// Package-level variables for config/difficulty (like breakout pattern)
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the maze chase game.
type Game struct {
	cfg        config.ChompConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	maze       *Maze
	player     *Player
	ghosts     []*Ghost
	scores     *ScoreManager
	power      *PowerPelletManager
	collisions *CollisionManager
	schedule   *ModeSchedule

	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	paused       bool
	tooSmall     bool
	levelCleared bool

	levelClearTicks int

	// Per-tick phase guards for the external advance surface.
	playerTick     uint64
	ghostsTick     uint64
	collisionsTick uint64
}

// New creates a new maze chase game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chomp", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chomp"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chomp"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadChomp(configPath)
	if err != nil {
		gameCfg = config.DefaultChompConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChompPreset(&gameCfg, difficultyPreset)
	}
	g.cfg = gameCfg
	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.playerTick = 0
	g.ghostsTick = 0
	g.collisionsTick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.maze = NewMaze(TileSize)
	g.layoutScreen()

	g.scores = NewScoreManager(gameCfg.Lives.Starting)
	g.scores.InitializeLevel(g.maze.DotsRemaining())

	g.player = NewPlayer(g.maze.PixelPosition(playerSpawn.X, playerSpawn.Y), g.maze, gameCfg.Speeds.Player)

	g.schedule = NewModeSchedule()
	g.power = NewPowerPelletManager(gameCfg.PowerPellet.Duration)
	g.collisions = NewCollisionManager()

	g.spawnGhosts()
}

// spawnGhosts builds the roster. Blinky is created first so Inky's
// flanking strategy has a live handle to it.
func (g *Game) spawnGhosts() {
	house := g.maze.PixelPosition(ghostHouse.X, ghostHouse.Y)
	speed := g.ghostSpeed()

	order := [4]GhostPersonality{
		PersonalityBlinky, PersonalityPinky, PersonalityInky, PersonalitySue,
	}

	g.ghosts = g.ghosts[:0]
	var blinky *Ghost
	for _, p := range order {
		spawn := ghostSpawns[p]
		ghost := NewGhost(g.maze, p, GhostOptions{
			Start:    g.maze.PixelPosition(spawn.X, spawn.Y),
			House:    house,
			Speed:    speed,
			Schedule: g.schedule,
			Rand:     g.rng,
			Blinky:   blinky,
		})
		if p == PersonalityBlinky {
			blinky = ghost
		}
		g.ghosts = append(g.ghosts, ghost)
	}
}

func (g *Game) ghostSpeed() float64 {
	return g.difficulty.GhostSpeed(g.cfg.Speeds.Ghost, g.scores.Level(), g.scores.Score())
}

func (g *Game) layoutScreen() {
	requiredW := g.maze.Width()
	requiredH := g.maze.Height() + g.hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - g.maze.Width()) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the simulation one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.scores.IsGameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.scores.IsGameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDuration {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.AdvancePlayer(queuedDirection(input))
	g.AdvanceGhosts()
	g.ResolveCollisions()

	if g.scores.IsLevelComplete() {
		g.levelCleared = true
		g.levelClearTicks = 0
	}

	return core.StepResult{State: g.State()}
}

// queuedDirection maps the input frame to a single queued direction.
func queuedDirection(input core.InputFrame) Direction {
	switch {
	case input.Has(core.ActionUp):
		return DirUp
	case input.Has(core.ActionDown):
		return DirDown
	case input.Has(core.ActionLeft):
		return DirLeft
	case input.Has(core.ActionRight):
		return DirRight
	default:
		return DirNone
	}
}

// AdvancePlayer queues the direction, moves the player, collects any
// pickup under it, and decays the power window. Calling it twice in
// the same tick is a no-op on the second call.
func (g *Game) AdvancePlayer(queued Direction) {
	if g.playerTick == g.tick {
		return
	}
	g.playerTick = g.tick

	if queued != DirNone {
		g.player.SetDirection(queued)
	}
	g.player.Update()

	_, pellet := g.player.CollectAt(g.scores)
	if pellet {
		g.power.Activate(g.ghosts)
	}

	g.power.Update(g.scores)
}

// AdvanceGhosts moves every ghost against the player's current
// position. Idempotent within a tick.
func (g *Game) AdvanceGhosts() {
	if g.ghostsTick == g.tick {
		return
	}
	g.ghostsTick = g.tick

	pos := g.player.Position()
	dir := g.player.Direction()
	dots := g.scores.DotsCollected()
	for _, ghost := range g.ghosts {
		ghost.Update(pos, dir, dots)
	}
}

// ResolveCollisions applies player/ghost contact. Idempotent within a
// tick.
func (g *Game) ResolveCollisions() {
	if g.collisionsTick == g.tick {
		return
	}
	g.collisionsTick = g.tick

	g.collisions.Resolve(g.player, g.ghosts, g.scores, g.power)
}

// advanceLevel starts the next level: clear bonus, fresh pickups,
// reset positions, rewound timetable, and ghost speed rescaled by
// difficulty.
func (g *Game) advanceLevel() {
	g.scores.AddBonusPoints(levelClearBonus * g.scores.Level())
	g.maze.ResetCollectibles()
	g.scores.StartNewLevel(g.maze.DotsRemaining())

	g.player.ResetPosition()
	speed := g.ghostSpeed()
	for _, ghost := range g.ghosts {
		ghost.ResetSchedule()
		ghost.ResetPosition()
		ghost.SetSpeed(speed)
	}

	g.power.Deactivate()
	g.collisions.ResetGrace()
	g.levelCleared = false
	g.levelClearTicks = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scores.Score(),
		GameOver: g.scores.IsGameOver(),
		Paused:   g.paused,
	}
}

// --- Read-only query surface ---

// Score returns the current score.
func (g *Game) Score() int {
	return g.scores.Score()
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.scores.Lives()
}

// Level returns the current level number.
func (g *Game) Level() int {
	return g.scores.Level()
}

// LevelProgress returns the collected fraction of the level, 0 to 1.
func (g *Game) LevelProgress() float64 {
	return g.scores.LevelProgress()
}

// DotsRemaining returns how many dots the maze still holds.
func (g *Game) DotsRemaining() int {
	return g.maze.DotsRemaining()
}

// PowerActive reports whether a frightened window is open.
func (g *Game) PowerActive() bool {
	return g.power.Active()
}

// Player returns the player agent for drawing and inspection.
func (g *Game) Player() *Player {
	return g.player
}

// Ghosts returns the ghost roster for drawing and inspection.
func (g *Game) Ghosts() []*Ghost {
	return g.ghosts
}

// Maze returns the maze.
func (g *Game) Maze() *Maze {
	return g.maze
}
