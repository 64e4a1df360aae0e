package chomp

import "math"

// Player is the player avatar. Movement is pixel-based over the maze
// grid: a held direction plus a queued one, with grid alignment gating
// perpendicular turns.
type Player struct {
	maze *Maze

	pos      Position
	startPos Position
	speed    float64

	dir     Direction
	nextDir Direction
	moving  bool

	animFrame int
	animTimer int
}

const playerAnimFrames = 8

// NewPlayer creates a player at the given pixel position.
func NewPlayer(start Position, maze *Maze, speed float64) *Player {
	return &Player{
		maze:     maze,
		pos:      start,
		startPos: start,
		speed:    speed,
	}
}

// SetDirection queues a direction change. The change is applied on a
// later Update once the maze allows it; queuing never fails.
func (p *Player) SetDirection(dir Direction) {
	p.nextDir = dir
}

// Update advances the player one tick: apply a queued turn if possible,
// then move along the current direction, stopping at walls.
func (p *Player) Update() {
	p.handleDirectionChange()
	p.updateMovement()
	p.updateAnimation()
}

func (p *Player) handleDirectionChange() {
	if p.nextDir == DirNone {
		return
	}
	if p.canChangeDirection() {
		p.dir = p.nextDir
		p.nextDir = DirNone
		p.alignToGrid()
	}
}

func (p *Player) canChangeDirection() bool {
	if p.nextDir == DirNone {
		return false
	}
	// Standing still: take the turn right away if the cell permits it.
	if p.dir == DirNone {
		return p.maze.CanMove(p.pos, p.nextDir)
	}
	// Reversals never need grid alignment.
	if p.nextDir == p.dir.Opposite() {
		return true
	}
	// Perpendicular turns only on a tile boundary.
	if p.alignedToGrid() {
		return p.maze.CanMove(p.pos, p.nextDir)
	}
	return false
}

func (p *Player) alignedToGrid() bool {
	ts := float64(p.maze.TileSize())
	return math.Mod(p.pos.X, ts) == 0 && math.Mod(p.pos.Y, ts) == 0
}

func (p *Player) alignToGrid() {
	p.pos = snapToGrid(p.pos, p.maze)
}

func (p *Player) updateMovement() {
	if p.dir == DirNone {
		p.moving = false
		return
	}

	dx, dy := p.dir.Delta()
	next := Position{
		X: p.pos.X + float64(dx)*p.speed,
		Y: p.pos.Y + float64(dy)*p.speed,
	}

	if p.wouldCollide(next) {
		p.dir = DirNone
		p.moving = false
		p.alignToGrid()
		return
	}

	p.pos = next
	p.moving = true
	p.pos = p.maze.WrapPosition(p.pos)
}

func (p *Player) wouldCollide(next Position) bool {
	cur := p.pos.ToGrid(p.maze.TileSize())
	if p.maze.IsTunnel(cur.X, cur.Y) {
		return false
	}
	g := next.ToGrid(p.maze.TileSize())
	return p.maze.IsWall(g.X, g.Y)
}

func (p *Player) updateAnimation() {
	if !p.moving {
		return
	}
	p.animTimer++
	if p.animTimer >= playerAnimFrames {
		p.animTimer = 0
		p.animFrame = (p.animFrame + 1) % 4
	}
}

// CollectAt removes any dot or power pellet under the player and
// credits the scores. The returned flags say what was picked up.
func (p *Player) CollectAt(scores *ScoreManager) (dot, pellet bool) {
	g := p.GridPosition()
	if p.maze.RemoveDot(g.X, g.Y) {
		dot = true
		scores.CollectDot()
	}
	if p.maze.RemovePowerPellet(g.X, g.Y) {
		pellet = true
		scores.CollectPowerPellet()
	}
	return dot, pellet
}

// Position returns the player's pixel position.
func (p *Player) Position() Position {
	return p.pos
}

// GridPosition returns the grid cell the player currently occupies.
func (p *Player) GridPosition() GridPoint {
	return p.pos.ToGrid(p.maze.TileSize())
}

// Center returns the player's center point for collision checks.
func (p *Player) Center() Position {
	half := float64(p.maze.TileSize() / 2)
	return Position{X: p.pos.X + half, Y: p.pos.Y + half}
}

// Direction returns the direction the player is currently moving in.
func (p *Player) Direction() Direction {
	return p.dir
}

// IsMoving reports whether the player advanced on the last Update.
func (p *Player) IsMoving() bool {
	return p.moving
}

// AnimationFrame returns the current animation frame index (0..3).
func (p *Player) AnimationFrame() int {
	return p.animFrame
}

// ResetPosition puts the player back at its spawn point with no motion
// and no queued input.
func (p *Player) ResetPosition() {
	p.pos = p.startPos
	p.dir = DirNone
	p.nextDir = DirNone
	p.moving = false
	p.animFrame = 0
	p.animTimer = 0
}
