package chomp

import "math"

// Position is a point in the game world in pixel coordinates. It is a
// plain value type: freely copied, never shared by pointer.
type Position struct {
	X, Y float64
}

// GridPoint is an integer (column, row) address of one maze cell.
type GridPoint struct {
	X, Y int
}

// ToGrid converts the pixel position to grid coordinates by truncating
// division with the given tile size.
func (p Position) ToGrid(tileSize int) GridPoint {
	return GridPoint{
		X: int(math.Floor(p.X / float64(tileSize))),
		Y: int(math.Floor(p.Y / float64(tileSize))),
	}
}

// FromGrid returns the pixel position of a grid cell's top-left corner.
func FromGrid(g GridPoint, tileSize int) Position {
	return Position{
		X: float64(g.X * tileSize),
		Y: float64(g.Y * tileSize),
	}
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference of two positions.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// DistanceTo returns the Euclidean distance to another position.
func (p Position) DistanceTo(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// snapToGrid returns the position snapped to the nearest tile
// intersection. When the nearest intersection is the corner of a wall
// cell, the position realigns to its current cell instead so a snap
// can never land an agent inside a wall.
func snapToGrid(pos Position, m *Maze) Position {
	ts := float64(m.TileSize())
	snapped := Position{
		X: math.Round(pos.X/ts) * ts,
		Y: math.Round(pos.Y/ts) * ts,
	}
	if g := snapped.ToGrid(m.TileSize()); m.IsWall(g.X, g.Y) {
		return FromGrid(pos.ToGrid(m.TileSize()), m.TileSize())
	}
	return snapped
}
