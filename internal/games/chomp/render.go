package chomp

import (
	"fmt"

	"github.com/mazeworks/chomp/internal/core"
)

// Glyphs for the one-character-per-cell maze rendering.
const (
	glyphWall   = '█'
	glyphDot    = '·'
	glyphPellet = '●'
	glyphPlayer = 'C'
	glyphGhost  = 'M'
	glyphEyes   = '"'
)

// Render draws the full frame: HUD, maze, pickups, player, ghosts, and
// any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderPlayer(dst)
	g.renderGhosts(dst)

	switch {
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.scores.Level()), "Get ready")
	case g.scores.IsGameOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Chomp  Score: %d  Lives: %d  Level: %d  Dots: %d",
		g.scores.Score(), g.scores.Lives(), g.scores.Level(), g.maze.DotsRemaining())
	if g.power.Active() {
		hud += fmt.Sprintf("  POWER %d", g.power.Remaining())
	}
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// viewRect is the drawable screen area.
func viewRect(dst *core.Screen) core.Rect {
	return core.NewRect(0, 0, dst.Width(), dst.Height())
}

// renderMaze draws walls and the remaining pickups.
func (g *Game) renderMaze(dst *core.Screen) {
	view := viewRect(dst)
	for y := 0; y < g.maze.Height(); y++ {
		for x := 0; x < g.maze.Width(); x++ {
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			if !view.Contains(sx, sy) {
				continue
			}
			switch {
			case g.maze.IsWall(x, y):
				dst.SetCell(sx, sy, glyphWall, core.ColorBlue)
			case g.maze.HasPowerPellet(x, y):
				dst.SetCell(sx, sy, glyphPellet, core.ColorBrightYellow)
			case g.maze.HasDot(x, y):
				dst.SetCell(sx, sy, glyphDot, core.ColorWhite)
			}
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.player.GridPosition()
	sx := g.mapOffsetX + p.X
	sy := g.mapOffsetY + p.Y
	if viewRect(dst).Contains(sx, sy) {
		dst.SetCell(sx, sy, glyphPlayer, core.ColorYellow)
	}
}

func (g *Game) renderGhosts(dst *core.Screen) {
	view := viewRect(dst)
	for _, ghost := range g.ghosts {
		p := ghost.GridPosition()
		sx := g.mapOffsetX + p.X
		sy := g.mapOffsetY + p.Y
		if !view.Contains(sx, sy) {
			continue
		}
		switch ghost.Mode() {
		case ModeFrightened:
			// Blink in the final second of the window.
			glyph := rune(glyphGhost)
			if ghost.FrightenedRemaining() < 60 && ghost.animFrame%2 == 0 {
				glyph = ' '
			}
			dst.SetCell(sx, sy, glyph, core.ColorBrightBlue)
		case ModeEaten:
			dst.SetCell(sx, sy, glyphEyes, core.ColorWhite)
		default:
			dst.SetCell(sx, sy, glyphGhost, ghost.Personality().Color())
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom() && y < h; y++ {
		for x := box.X; x < box.Right() && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == box.Y || y == box.Bottom()-1
			isLeftOrRight := x == box.X || x == box.Right()-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
