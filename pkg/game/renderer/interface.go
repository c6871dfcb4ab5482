// Package renderer composites rendered maze frames and defines the
// interface the display front-ends implement.
package renderer

import (
	"fmt"

	"mazecrawl/pkg/engine/input"
	"mazecrawl/pkg/game/dungeon"
	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/maze"
	"mazecrawl/pkg/game/state"
)

// Renderer defines the interface for game display backends
type Renderer interface {
	// Init prepares the display (colors, screen, etc.)
	Init() error

	// Close releases the display
	Close()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame:
	// the maze, the status line and the message log
	RenderFrame(v View)

	// GetInput blocks for the next command
	GetInput() (input.Intent, error)
}

// View is everything a front-end draws for one turn
type View struct {
	Frame   maze.Frame
	Game    state.Game
	Enemies int
}

// NewView renders the dungeon with its overlay layers kept separate
func NewView(g state.Game, d *dungeon.Dungeon) View {
	return View{
		Frame:   d.Render(1),
		Game:    g,
		Enemies: d.EnemyCount(),
	}
}

// StatusLines returns the text shown under the maze
func StatusLines(v View) []string {
	g := v.Game
	lines := []string{
		fmt.Sprintf(i18n.T("STATUS"), g.Moves, g.AttacksLeft, g.Score, v.Enemies),
		"",
		i18n.T("MESSAGES"),
	}
	for _, msg := range g.Messages {
		lines = append(lines, "  "+msg)
	}
	if g.Over() {
		lines = append(lines, "", fmt.Sprintf(i18n.T("FINAL_SCORE"), g.Score))
	}
	return lines
}

// StatusHeight is the most lines StatusLines can return
const StatusHeight = 3 + state.MaxMessages + 2
