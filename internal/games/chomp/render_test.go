package chomp

import (
	"strings"
	"testing"

	"github.com/mazeworks/chomp/internal/core"
)

func TestRenderFrame(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// HUD on the top row
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing from row 0: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "─") {
		t.Error("HUD separator missing from row 1")
	}

	// The maze border row is a solid wall run
	wallRow := screen.Row(g.mapOffsetY)
	if !strings.Contains(wallRow, strings.Repeat(string(glyphWall), g.maze.Width())) {
		t.Errorf("Top maze border not rendered: %q", wallRow)
	}

	// Player and ghost glyphs are on screen
	frame := screen.String()
	if !strings.ContainsRune(frame, glyphPlayer) {
		t.Error("Player glyph missing")
	}
	if !strings.ContainsRune(frame, glyphGhost) {
		t.Error("Ghost glyph missing")
	}
	if !strings.ContainsRune(frame, glyphDot) {
		t.Error("Dot glyphs missing")
	}
	if !strings.ContainsRune(frame, glyphPellet) {
		t.Error("Power pellet glyphs missing")
	}
}

func TestRenderGhostColors(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Blinky renders in its personality color at its grid cell
	blinky := g.Ghosts()[0]
	p := blinky.GridPosition()
	cell := screen.GetCell(g.mapOffsetX+p.X, g.mapOffsetY+p.Y)
	if cell.Color != core.ColorRed {
		t.Errorf("Blinky color = %v, want red", cell.Color)
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Paused") {
		t.Error("Paused overlay missing")
	}
}

func TestRenderPowerIndicator(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.power.Activate(g.ghosts)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "POWER") {
		t.Error("Power indicator missing from the HUD")
	}
}
