package chomp

import (
	"math"
	"math/rand"

	"github.com/mazeworks/chomp/internal/core"
)

// GhostMode is a ghost's behavioral state.
type GhostMode int

const (
	// ModeNormal chases the player using the personality's strategy.
	ModeNormal GhostMode = iota
	// ModeScatter retreats to the personality's assigned corner.
	ModeScatter
	// ModeFrightened flees the player and can be eaten.
	ModeFrightened
	// ModeEaten is the post-capture countdown before respawn.
	ModeEaten
	// ModeInHouse holds the ghost inside the house pre-release.
	ModeInHouse
	// ModeExitingHouse walks the ghost from the house to its exit.
	ModeExitingHouse
)

// IsVulnerable reports whether the ghost can be eaten in this mode.
func (m GhostMode) IsVulnerable() bool {
	return m == ModeFrightened
}

// IsDangerous reports whether touching the ghost costs a life.
func (m GhostMode) IsDangerous() bool {
	return m == ModeNormal || m == ModeScatter
}

func (m GhostMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeScatter:
		return "scatter"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	case ModeInHouse:
		return "in-house"
	case ModeExitingHouse:
		return "exiting-house"
	default:
		return "unknown"
	}
}

// GhostPersonality selects a ghost's targeting strategy.
type GhostPersonality int

const (
	PersonalityBlinky GhostPersonality = iota
	PersonalityPinky
	PersonalityInky
	PersonalitySue
)

// Color returns the personality's rendering color.
func (p GhostPersonality) Color() core.Color {
	switch p {
	case PersonalityBlinky:
		return core.ColorRed
	case PersonalityPinky:
		return core.ColorBrightMagenta
	case PersonalityInky:
		return core.ColorCyan
	case PersonalitySue:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// modeState is the per-mode payload behind a ghost's mode machine.
// Each variant carries only the counters its mode needs, so a timer
// that belongs to one mode cannot be read while another is active.
type modeState interface {
	mode() GhostMode
}

type normalState struct{}
type scatterState struct{}
type frightenedState struct{ timer int }
type eatenState struct{ timer int }
type inHouseState struct{ exitTimer int }
type exitingHouseState struct{}

func (*normalState) mode() GhostMode       { return ModeNormal }
func (*scatterState) mode() GhostMode      { return ModeScatter }
func (*frightenedState) mode() GhostMode   { return ModeFrightened }
func (*eatenState) mode() GhostMode        { return ModeEaten }
func (*inHouseState) mode() GhostMode      { return ModeInHouse }
func (*exitingHouseState) mode() GhostMode { return ModeExitingHouse }

func (p GhostPersonality) String() string {
	switch p {
	case PersonalityBlinky:
		return "blinky"
	case PersonalityPinky:
		return "pinky"
	case PersonalityInky:
		return "inky"
	case PersonalitySue:
		return "sue"
	default:
		return "unknown"
	}
}

// houseExitDelay is the release timer in ticks. Blinky and Pinky leave
// immediately, Inky and Sue wait.
func (p GhostPersonality) houseExitDelay() int {
	switch p {
	case PersonalityInky:
		return 180
	case PersonalitySue:
		return 360
	default:
		return 0
	}
}

// houseDotThreshold is the alternative release trigger: total dots
// eaten by the player. Whichever of the two triggers first wins.
func (p GhostPersonality) houseDotThreshold() int {
	switch p {
	case PersonalityInky:
		return 30
	case PersonalitySue:
		return 60
	default:
		return 0
	}
}

const (
	frightenedDuration = 600
	eatenDuration      = 180

	directionCooldown = 10

	fleeDistance = 200.0

	pinkyLookAheadTiles = 4
	inkyLookAheadTiles  = 2
	suePatrolTiles      = 8

	ghostAnimFrames = 12
)

// Ghost is one maze chaser. Its behavior is a mode machine layered on
// top of grid movement identical to the player's; everything random
// flows through the injected rng so runs are reproducible.
type Ghost struct {
	maze *Maze
	rng  *rand.Rand

	personality GhostPersonality

	pos      Position
	startPos Position
	housePos Position
	speed    float64

	dir    Direction
	target Position

	state modeState

	// blinky is the roster handle Inky flanks around. Nil for every
	// other personality, and for Inky when no Blinky exists.
	blinky *Ghost

	schedule *ModeSchedule
	cursor   ScheduleCursor

	lastDirChange int

	animFrame int
	animTimer int
}

// GhostOptions carries the wiring a ghost needs beyond its own identity.
type GhostOptions struct {
	Start    Position
	House    Position
	Speed    float64
	Schedule *ModeSchedule
	Rand     *rand.Rand
	Blinky   *Ghost
}

// NewGhost creates a ghost. Blinky and Pinky start active, Inky and Sue
// start inside the house waiting for their release trigger.
func NewGhost(maze *Maze, personality GhostPersonality, opts GhostOptions) *Ghost {
	g := &Ghost{
		maze:        maze,
		rng:         opts.Rand,
		personality: personality,
		pos:         opts.Start,
		startPos:    opts.Start,
		housePos:    opts.House,
		speed:       opts.Speed,
		dir:         DirUp,
		target:      opts.Start,
		schedule:    opts.Schedule,
		blinky:      opts.Blinky,
	}
	if d := personality.houseExitDelay(); d > 0 {
		g.state = &inHouseState{exitTimer: d}
	} else {
		g.state = g.scheduledState()
	}
	return g
}

// scheduledState materializes the cursor's current timetable phase.
func (g *Ghost) scheduledState() modeState {
	if g.cursor.Mode(g.schedule) == ModeScatter {
		return &scatterState{}
	}
	return &normalState{}
}

// Update advances the ghost one tick. The player's position and facing
// feed targeting; dotsEaten is the player's cumulative dot count, used
// by the house release trigger.
func (g *Ghost) Update(playerPos Position, playerDir Direction, dotsEaten int) {
	g.updateTimers()
	g.updateHouseMechanics(dotsEaten)
	g.updateScheduleTimer()
	g.updateTarget(playerPos, playerDir)
	g.updateMovement()
	g.updateAnimation()
}

// SetFrightened puts the ghost into frightened mode for the given
// number of ticks. Entering from a non-frightened mode reverses the
// current direction; refreshing an already-frightened ghost only
// restarts the timer. Eaten ghosts are immune.
func (g *Ghost) SetFrightened(duration int) {
	if duration <= 0 {
		duration = frightenedDuration
	}
	switch st := g.state.(type) {
	case *eatenState:
		return
	case *frightenedState:
		st.timer = duration
	default:
		g.dir = g.dir.Opposite()
		g.state = &frightenedState{timer: duration}
	}
}

// SetEaten switches the ghost to the eaten countdown. When the
// countdown expires the ghost teleports back to its spawn point.
func (g *Ghost) SetEaten() {
	g.state = &eatenState{timer: eatenDuration}
	g.target = g.housePos
}

// EndFrightened reverts a still-frightened ghost to the scheduled mode.
// Ghosts in any other mode are left alone.
func (g *Ghost) EndFrightened() {
	if _, ok := g.state.(*frightenedState); !ok {
		return
	}
	g.state = g.scheduledState()
}

func (g *Ghost) updateTimers() {
	switch st := g.state.(type) {
	case *frightenedState:
		st.timer--
		if st.timer <= 0 {
			g.state = g.scheduledState()
		}
	case *eatenState:
		st.timer--
		if st.timer <= 0 {
			g.pos = g.startPos
			g.state = g.scheduledState()
		}
	}
}

func (g *Ghost) updateHouseMechanics(dotsEaten int) {
	switch st := g.state.(type) {
	case *inHouseState:
		if st.exitTimer > 0 {
			st.exitTimer--
		}
		if st.exitTimer <= 0 || dotsEaten >= g.personality.houseDotThreshold() {
			g.state = &exitingHouseState{}
		}
	case *exitingHouseState:
		if g.pos.DistanceTo(g.houseExit()) < float64(g.maze.TileSize()) {
			g.state = g.scheduledState()
		}
	}
}

// houseExit is the doorway cell above the house interior.
func (g *Ghost) houseExit() Position {
	return Position{X: g.housePos.X, Y: g.housePos.Y - 2*float64(g.maze.TileSize())}
}

// updateScheduleTimer ticks the shared scatter/chase timetable. The
// cursor is frozen outside the two scheduled modes and resumes where
// it stopped.
func (g *Ghost) updateScheduleTimer() {
	switch g.state.(type) {
	case *normalState, *scatterState:
	default:
		return
	}
	g.cursor.Tick(g.schedule)
	if g.cursor.Mode(g.schedule) != g.state.mode() {
		g.state = g.scheduledState()
	}
}

func (g *Ghost) updateTarget(playerPos Position, playerDir Direction) {
	switch g.state.(type) {
	case *normalState:
		g.target = g.chaseTarget(playerPos, playerDir)
	case *scatterState:
		g.target = g.scatterCorner()
	case *frightenedState:
		g.target = g.fleeTarget(playerPos)
	case *eatenState:
		g.target = g.housePos
	case *inHouseState:
		g.target = g.housePatrolTarget()
	case *exitingHouseState:
		g.target = g.houseExit()
	}
}

func (g *Ghost) chaseTarget(playerPos Position, playerDir Direction) Position {
	ts := float64(g.maze.TileSize())
	switch g.personality {
	case PersonalityBlinky:
		return playerPos

	case PersonalityPinky:
		dx, dy := playerDir.Delta()
		ahead := Position{
			X: playerPos.X + float64(dx)*pinkyLookAheadTiles*ts,
			Y: playerPos.Y + float64(dy)*pinkyLookAheadTiles*ts,
		}
		return g.clampToMaze(ahead)

	case PersonalityInky:
		if g.blinky == nil {
			return playerPos
		}
		dx, dy := playerDir.Delta()
		pivot := Position{
			X: playerPos.X + float64(dx)*inkyLookAheadTiles*ts,
			Y: playerPos.Y + float64(dy)*inkyLookAheadTiles*ts,
		}
		bp := g.blinky.Position()
		flank := Position{
			X: bp.X + 2*(pivot.X-bp.X),
			Y: bp.Y + 2*(pivot.Y-bp.Y),
		}
		return g.clampToMaze(flank)

	case PersonalitySue:
		if g.pos.DistanceTo(playerPos) > suePatrolTiles*ts {
			return playerPos
		}
		return g.scatterCorner()
	}
	return playerPos
}

// scatterCorner returns this personality's fixed home corner.
func (g *Ghost) scatterCorner() Position {
	maxX := float64((g.maze.Width() - 1) * g.maze.TileSize())
	maxY := float64((g.maze.Height() - 1) * g.maze.TileSize())
	switch g.personality {
	case PersonalityBlinky:
		return Position{X: maxX, Y: 0}
	case PersonalityPinky:
		return Position{X: 0, Y: 0}
	case PersonalityInky:
		return Position{X: maxX, Y: maxY}
	default:
		return Position{X: 0, Y: maxY}
	}
}

func (g *Ghost) fleeTarget(playerPos Position) Position {
	dx := g.pos.X - playerPos.X
	dy := g.pos.Y - playerPos.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		// Coincident with the player: run to a random corner.
		maxX := float64((g.maze.Width() - 1) * g.maze.TileSize())
		maxY := float64((g.maze.Height() - 1) * g.maze.TileSize())
		corners := [4]Position{
			{X: 0, Y: 0},
			{X: maxX, Y: 0},
			{X: 0, Y: maxY},
			{X: maxX, Y: maxY},
		}
		return corners[g.rng.Intn(len(corners))]
	}
	return g.clampToMaze(Position{
		X: g.pos.X + dx/dist*fleeDistance,
		Y: g.pos.Y + dy/dist*fleeDistance,
	})
}

// housePatrolTarget bobs the ghost between the top and bottom of the
// house interior while it waits for release.
func (g *Ghost) housePatrolTarget() Position {
	ts := float64(g.maze.TileSize())
	if g.pos.Y <= g.housePos.Y {
		return Position{X: g.housePos.X, Y: g.housePos.Y + ts}
	}
	return Position{X: g.housePos.X, Y: g.housePos.Y - ts}
}

func (g *Ghost) clampToMaze(p Position) Position {
	maxX := float64((g.maze.Width() - 1) * g.maze.TileSize())
	maxY := float64((g.maze.Height() - 1) * g.maze.TileSize())
	return Position{
		X: core.ClampF(p.X, 0, maxX),
		Y: core.ClampF(p.Y, 0, maxY),
	}
}

func (g *Ghost) updateMovement() {
	if g.shouldChangeDirection() {
		if next := g.chooseBestDirection(); next != DirNone {
			if next != g.dir {
				g.alignToGrid()
			}
			g.dir = next
			g.lastDirChange = 0
		}
	}

	g.moveInDirection()
	g.pos = g.maze.WrapPosition(g.pos)
	g.lastDirChange++
}

func (g *Ghost) shouldChangeDirection() bool {
	if g.dir == DirNone {
		return true
	}
	if !g.maze.CanMove(g.pos, g.dir) {
		return true
	}
	return g.atIntersection() && g.lastDirChange >= directionCooldown
}

// atIntersection reports whether the ghost sits on a tile boundary on
// both axes. Difficulty-scaled speeds need not divide the tile size,
// so anything within half a step of a boundary counts; alignToGrid
// removes the residue when a turn is actually taken.
func (g *Ghost) atIntersection() bool {
	ts := float64(g.maze.TileSize())
	return g.nearBoundary(g.pos.X, ts) && g.nearBoundary(g.pos.Y, ts)
}

func (g *Ghost) nearBoundary(v, ts float64) bool {
	m := math.Mod(v, ts)
	if m > ts/2 {
		m = ts - m
	}
	return m <= g.speed/2
}

// alignToGrid snaps the ghost to the nearest intersection so turns at
// fractional speeds leave no partial-tile drift. When the nearest
// intersection belongs to a wall cell, the ghost realigns to its
// current cell instead.
func (g *Ghost) alignToGrid() {
	g.pos = snapToGrid(g.pos, g.maze)
}

// chooseBestDirection picks the valid direction whose one-step-ahead
// position lies closest to the target. The reverse of the current
// direction is excluded unless it is the only way out. Ties keep the
// first candidate in up, down, left, right order.
func (g *Ghost) chooseBestDirection() Direction {
	moves := g.maze.ValidMoves(g.pos)
	if len(moves) == 0 {
		return DirNone
	}

	if len(moves) > 1 {
		opposite := g.dir.Opposite()
		filtered := moves[:0]
		for _, d := range moves {
			if d != opposite {
				filtered = append(filtered, d)
			}
		}
		moves = filtered
	}

	// Panic: a frightened ghost sometimes turns at random.
	if g.Mode() == ModeFrightened && g.rng.Float64() < 0.3 {
		return moves[g.rng.Intn(len(moves))]
	}

	ts := float64(g.maze.TileSize())
	best := DirNone
	bestDist := math.Inf(1)
	for _, d := range moves {
		dx, dy := d.Delta()
		next := Position{X: g.pos.X + float64(dx)*ts, Y: g.pos.Y + float64(dy)*ts}
		if dist := next.DistanceTo(g.target); dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

func (g *Ghost) moveInDirection() {
	if g.dir == DirNone {
		return
	}
	dx, dy := g.dir.Delta()
	next := Position{
		X: g.pos.X + float64(dx)*g.speed,
		Y: g.pos.Y + float64(dy)*g.speed,
	}
	if g.wouldCollide(next) {
		g.dir = DirNone
		return
	}
	g.pos = next
}

func (g *Ghost) wouldCollide(next Position) bool {
	cur := g.pos.ToGrid(g.maze.TileSize())
	if g.maze.IsTunnel(cur.X, cur.Y) {
		return false
	}
	n := next.ToGrid(g.maze.TileSize())
	return g.maze.IsWall(n.X, n.Y)
}

func (g *Ghost) updateAnimation() {
	g.animTimer++
	if g.animTimer >= ghostAnimFrames {
		g.animTimer = 0
		if g.Mode() == ModeFrightened {
			g.animFrame = (g.animFrame + 1) % 2
		} else {
			g.animFrame = (g.animFrame + 1) % 4
		}
	}
}

// Position returns the ghost's pixel position.
func (g *Ghost) Position() Position {
	return g.pos
}

// GridPosition returns the grid cell the ghost currently occupies.
func (g *Ghost) GridPosition() GridPoint {
	return g.pos.ToGrid(g.maze.TileSize())
}

// Center returns the ghost's center point for collision checks.
func (g *Ghost) Center() Position {
	half := float64(g.maze.TileSize() / 2)
	return Position{X: g.pos.X + half, Y: g.pos.Y + half}
}

// Mode returns the ghost's current behavioral mode.
func (g *Ghost) Mode() GhostMode {
	return g.state.mode()
}

// FrightenedRemaining returns the ticks left in the frightened window,
// or zero outside it.
func (g *Ghost) FrightenedRemaining() int {
	if st, ok := g.state.(*frightenedState); ok {
		return st.timer
	}
	return 0
}

// Personality returns the ghost's fixed personality.
func (g *Ghost) Personality() GhostPersonality {
	return g.personality
}

// Target returns the position the ghost is currently steering toward.
func (g *Ghost) Target() Position {
	return g.target
}

// Direction returns the ghost's current facing.
func (g *Ghost) Direction() Direction {
	return g.dir
}

// IsVulnerable reports whether the ghost can currently be eaten.
func (g *Ghost) IsVulnerable() bool {
	return g.Mode().IsVulnerable()
}

// IsDangerous reports whether the ghost currently costs a life on contact.
func (g *Ghost) IsDangerous() bool {
	return g.Mode().IsDangerous()
}

// AnimationFrame returns the current animation frame index.
func (g *Ghost) AnimationFrame() int {
	return g.animFrame
}

// ResetPosition puts the ghost back at its spawn with its initial mode,
// timers, and schedule cursor untouched except for the house hold,
// which restarts for the slow-release personalities.
func (g *Ghost) ResetPosition() {
	g.pos = g.startPos
	g.target = g.startPos
	g.dir = DirUp
	g.lastDirChange = 0
	g.animFrame = 0
	g.animTimer = 0
	if d := g.personality.houseExitDelay(); d > 0 {
		g.state = &inHouseState{exitTimer: d}
	} else {
		g.state = g.scheduledState()
	}
}

// SetSpeed adjusts the ghost's speed. Difficulty scaling applies this
// on level changes.
func (g *Ghost) SetSpeed(speed float64) {
	g.speed = speed
}

// ResetSchedule rewinds the ghost's cursor into the shared timetable.
// Used on level change and full game reset.
func (g *Ghost) ResetSchedule() {
	g.cursor.Reset()
}
