package chomp

// Tile is the immutable classification of one maze cell.
type Tile int

const (
	TilePath Tile = iota
	TileWall
	TileDot
	TilePowerPellet
	TileTunnel
)

// defaultLayout is the canonical hand-authored maze.
// 0 = path, 1 = wall, 2 = dot, 3 = power pellet, 4 = tunnel.
var defaultLayout = [][]Tile{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 3, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 2, 1, 1, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 3, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 1, 1, 1, 1, 2, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 2, 1, 1, 1, 1, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 1, 1, 2, 2, 2, 2, 1, 1, 2, 2, 2, 2, 1, 1, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 0, 1, 1, 0, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 1, 0, 0, 0, 0, 0},
	{1, 1, 1, 1, 1, 1, 2, 1, 1, 0, 1, 1, 0, 0, 0, 0, 1, 1, 0, 1, 1, 2, 1, 1, 1, 1, 1, 1},
	{4, 0, 0, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 0, 0, 4},
	{1, 1, 1, 1, 1, 1, 2, 1, 1, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 2, 1, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 2, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 2, 1, 0, 0, 0, 0, 0},
	{1, 1, 1, 1, 1, 1, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 2, 1, 1, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1},
	{1, 3, 2, 2, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 2, 2, 3, 1},
	{1, 1, 1, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 1, 1, 2, 2, 2, 2, 1, 1, 2, 2, 2, 2, 1, 1, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Maze is the static tile grid plus the mutable pickup state layered on
// top of it. The layout itself never changes after construction; only
// membership in the dot and power-pellet sets does.
type Maze struct {
	tileSize int
	width    int
	height   int
	layout   [][]Tile

	dots         map[GridPoint]struct{}
	powerPellets map[GridPoint]struct{}
}

// NewMaze creates a maze with the canonical layout and the given tile size.
func NewMaze(tileSize int) *Maze {
	m := &Maze{
		tileSize: tileSize,
		width:    len(defaultLayout[0]),
		height:   len(defaultLayout),
		layout:   defaultLayout,
	}
	m.loadCollectibles()
	return m
}

func (m *Maze) loadCollectibles() {
	m.dots = make(map[GridPoint]struct{})
	m.powerPellets = make(map[GridPoint]struct{})

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			switch m.layout[y][x] {
			case TileDot:
				m.dots[GridPoint{X: x, Y: y}] = struct{}{}
			case TilePowerPellet:
				m.powerPellets[GridPoint{X: x, Y: y}] = struct{}{}
			}
		}
	}
}

// TileSize returns the edge length of one cell in pixels.
func (m *Maze) TileSize() int {
	return m.tileSize
}

// Width returns the maze width in cells.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the maze height in cells.
func (m *Maze) Height() int {
	return m.height
}

// TileAt returns the immutable tile code at a grid cell.
// Out-of-bounds coordinates read as wall.
func (m *Maze) TileAt(gx, gy int) Tile {
	if !m.inBounds(gx, gy) {
		return TileWall
	}
	return m.layout[gy][gx]
}

// IsWall reports whether the grid cell is a wall.
// Everything outside the maze bounds counts as wall.
func (m *Maze) IsWall(gx, gy int) bool {
	if !m.inBounds(gx, gy) {
		return true
	}
	return m.layout[gy][gx] == TileWall
}

// IsTunnel reports whether the grid cell is a tunnel.
// Out-of-bounds cells are never tunnels.
func (m *Maze) IsTunnel(gx, gy int) bool {
	if !m.inBounds(gx, gy) {
		return false
	}
	return m.layout[gy][gx] == TileTunnel
}

func (m *Maze) inBounds(gx, gy int) bool {
	return gx >= 0 && gx < m.width && gy >= 0 && gy < m.height
}

// ValidMoves returns the directions whose target cell is walkable from
// the given position. A position inside a tunnel cell always permits
// both horizontal directions; that is how the wrap works.
func (m *Maze) ValidMoves(pos Position) []Direction {
	g := pos.ToGrid(m.tileSize)
	inTunnel := m.IsTunnel(g.X, g.Y)

	moves := make([]Direction, 0, 4)
	for _, dir := range cardinalDirections {
		dx, dy := dir.Delta()
		if inTunnel && dir.IsHorizontal() {
			moves = append(moves, dir)
		} else if !m.IsWall(g.X+dx, g.Y+dy) {
			moves = append(moves, dir)
		}
	}
	return moves
}

// CanMove is the single-direction form of ValidMoves.
func (m *Maze) CanMove(pos Position, dir Direction) bool {
	g := pos.ToGrid(m.tileSize)
	if m.IsTunnel(g.X, g.Y) && dir.IsHorizontal() {
		return true
	}
	dx, dy := dir.Delta()
	return !m.IsWall(g.X+dx, g.Y+dy)
}

// WrapPosition teleports a position that left the grid horizontally to
// the opposite edge. The y coordinate is untouched.
func (m *Maze) WrapPosition(pos Position) Position {
	g := pos.ToGrid(m.tileSize)
	if g.X < 0 {
		return Position{X: float64((m.width - 1) * m.tileSize), Y: pos.Y}
	}
	if g.X >= m.width {
		return Position{X: 0, Y: pos.Y}
	}
	return pos
}

// HasDot reports whether a dot remains at the grid cell.
func (m *Maze) HasDot(gx, gy int) bool {
	_, ok := m.dots[GridPoint{X: gx, Y: gy}]
	return ok
}

// HasPowerPellet reports whether a power pellet remains at the grid cell.
func (m *Maze) HasPowerPellet(gx, gy int) bool {
	_, ok := m.powerPellets[GridPoint{X: gx, Y: gy}]
	return ok
}

// RemoveDot removes the dot at the grid cell, reporting whether one was
// present. Removing twice is a no-op returning false the second time.
func (m *Maze) RemoveDot(gx, gy int) bool {
	p := GridPoint{X: gx, Y: gy}
	if _, ok := m.dots[p]; !ok {
		return false
	}
	delete(m.dots, p)
	return true
}

// RemovePowerPellet removes the power pellet at the grid cell, reporting
// whether one was present.
func (m *Maze) RemovePowerPellet(gx, gy int) bool {
	p := GridPoint{X: gx, Y: gy}
	if _, ok := m.powerPellets[p]; !ok {
		return false
	}
	delete(m.powerPellets, p)
	return true
}

// DotsRemaining returns the number of dots left to collect.
func (m *Maze) DotsRemaining() int {
	return len(m.dots)
}

// PowerPelletsRemaining returns the number of power pellets left.
func (m *Maze) PowerPelletsRemaining() int {
	return len(m.powerPellets)
}

// ResetCollectibles restores the dot and power-pellet sets to the
// layout's original state. Wall and tunnel geometry is unaffected.
func (m *Maze) ResetCollectibles() {
	m.loadCollectibles()
}

// PixelPosition returns the pixel position of a grid cell's top-left corner.
func (m *Maze) PixelPosition(gx, gy int) Position {
	return FromGrid(GridPoint{X: gx, Y: gy}, m.tileSize)
}
