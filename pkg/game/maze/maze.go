// Package maze ties a generated grid to a tracked position and renders it
// as box-drawing text.
package maze

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mazecrawl/pkg/engine/logging"
	"mazecrawl/pkg/engine/random"
	"mazecrawl/pkg/engine/world"
	"mazecrawl/pkg/game/generator"
)

// ErrBlocked is returned when a move runs into a wall
var ErrBlocked = errors.New("blocked")

// Maze is a rectangular grid of cells with one tracked occupant
type Maze struct {
	grid        *world.Grid
	exploration float64
	current     int

	generator generator.GridGenerator
	rng       random.Source
	logger    *slog.Logger
}

// Option configures a Maze at construction
type Option func(*Maze)

// WithLogger sets the logger used for generation events
func WithLogger(logger *slog.Logger) Option {
	return func(m *Maze) {
		m.logger = logger
	}
}

// New creates a sealed-off, not yet generated maze.
// Call Generate before moving or rendering.
func New(width, height int, exploration float64, rng random.Source, opts ...Option) (*Maze, error) {
	if exploration < 0 || exploration > 1 {
		return nil, fmt.Errorf("maze: exploration %v: %w", exploration, generator.ErrExploration)
	}
	if rng == nil {
		return nil, errors.New("maze: nil random source")
	}

	grid, err := world.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	m := &Maze{
		grid:        grid,
		exploration: exploration,
		current:     grid.StartID(),
		rng:         rng,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = logging.OrDiscard(m.logger)
	m.generator = &generator.DepthFirstGenerator{
		Exploration: exploration,
		Logger:      m.logger,
	}
	return m, nil
}

// Generate carves the maze and puts the tracked position back on the start.
// A generator that leaves the graph inconsistent is a programming defect and
// panics.
func (m *Maze) Generate() error {
	if err := m.generator.Generate(m.grid, m.rng); err != nil {
		return fmt.Errorf("maze: generate: %w", err)
	}
	if err := m.grid.Validate(); err != nil {
		panic(fmt.Sprintf("Generated invalid grid: %v", err))
	}
	m.current = m.grid.StartID()

	m.logger.Info("maze generated",
		"generator", m.generator.Name(),
		"width", m.grid.Width(),
		"height", m.grid.Height(),
		"passages", m.grid.OpenPassages(),
	)
	return nil
}

// Grid returns the underlying cell graph
func (m *Maze) Grid() *world.Grid {
	return m.grid
}

// Width returns the number of columns
func (m *Maze) Width() int {
	return m.grid.Width()
}

// Height returns the number of rows
func (m *Maze) Height() int {
	return m.grid.Height()
}

// Logger returns the logger the maze reports to
func (m *Maze) Logger() *slog.Logger {
	return m.logger
}

// Rand returns the random source shared by generation and gameplay
func (m *Maze) Rand() random.Source {
	return m.rng
}

// Exploration returns the curiosity the maze was built with
func (m *Maze) Exploration() float64 {
	return m.exploration
}

// Current returns the ID of the tracked position
func (m *Maze) Current() int {
	return m.current
}

// Start returns the ID of the upper left cell
func (m *Maze) Start() int {
	return m.grid.StartID()
}

// Goal returns the ID of the lower right cell
func (m *Maze) Goal() int {
	return m.grid.GoalID()
}

// Target returns the cell one step from the tracked position in dir, and
// whether that cell exists on the grid
func (m *Maze) Target(dir world.Direction) (int, bool) {
	return m.grid.Neighbor(m.current, dir)
}

// Move steps the tracked position one cell in dir.
// Returns ErrBlocked, leaving the position unchanged, if a wall is in the way.
func (m *Maze) Move(dir world.Direction) error {
	if !dir.IsValid() {
		return fmt.Errorf("direction %d: %w", dir, ErrBlocked)
	}
	target, ok := m.grid.Neighbor(m.current, dir)
	if !ok || !m.grid.CanAccess(m.current, target) {
		return ErrBlocked
	}
	m.current = target
	return nil
}

// String renders the maze with every glyph inline
func (m *Maze) String() string {
	return strings.Join(m.Render(0).Lines, "\n")
}
