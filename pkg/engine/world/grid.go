package world

import (
	"errors"
	"fmt"
)

// Grid owns every cell of a width x height maze, indexed row-major
type Grid struct {
	cells  []*Cell
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions.
// Every cell starts fully open to its neighbors.
func NewGrid(width, height int) (*Grid, error) {
	g := &Grid{}
	if err := g.Build(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Size returns the number of cells in the grid
func (g *Grid) Size() int {
	return len(g.cells)
}

// StartID returns the ID of the upper left cell
func (g *Grid) StartID() int {
	return 0
}

// GoalID returns the ID of the lower right cell
func (g *Grid) GoalID() int {
	return len(g.cells) - 1
}

// IsValidID checks if an ID names a cell of this grid
func (g *Grid) IsValidID(id int) bool {
	return id >= 0 && id < len(g.cells)
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Position returns the row and column of a cell ID
func (g *Grid) Position(id int) (row, col int) {
	return id / g.width, id % g.width
}

// ID returns the cell ID at a row/col position
func (g *Grid) ID(row, col int) int {
	return row*g.width + col
}

// GetCell returns the cell with the given ID, or nil if out of bounds
func (g *Grid) GetCell(id int) *Cell {
	if !g.IsValidID(id) {
		return nil
	}
	return g.cells[id]
}

// GetCellAt returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCellAt(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[g.ID(row, col)]
}

// Neighbor returns the ID of the cell next to id in the given direction.
// ok is false when that would step off the grid.
func (g *Grid) Neighbor(id int, dir Direction) (neighbor int, ok bool) {
	if !g.IsValidID(id) || !dir.IsValid() {
		return 0, false
	}
	row, col := g.Position(id)
	rowDelta, colDelta := dir.Delta()
	if !g.IsValidPosition(row+rowDelta, col+colDelta) {
		return 0, false
	}
	return g.ID(row+rowDelta, col+colDelta), true
}

// CanAccess returns true if there is a passage from a to b
func (g *Grid) CanAccess(a, b int) bool {
	c := g.GetCell(a)
	if c == nil {
		return false
	}
	return c.CanAccess(b)
}

// AdjacentIDs computes the in-bounds neighbors of a cell purely from its
// position: left and right unless on a column edge, up and down unless on a
// row edge.
func AdjacentIDs(id, width, height int) []int {
	row, col := id/width, id%width
	var adj []int
	if col > 0 {
		adj = append(adj, id-1)
	}
	if col < width-1 {
		adj = append(adj, id+1)
	}
	if row > 0 {
		adj = append(adj, id-width)
	}
	if row < height-1 {
		adj = append(adj, id+width)
	}
	return adj
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}

	g.width = width
	g.height = height
	g.cells = make([]*Cell, 0, width*height)

	for id := 0; id < width*height; id++ {
		adj := AdjacentIDs(id, width, height)

		// Start fully open; generation seals everything before carving.
		acc := make([]int, len(adj))
		copy(acc, adj)

		c, err := NewCell(id, adj, acc)
		if err != nil {
			return err
		}
		c.Row, c.Col = g.Position(id)
		g.cells = append(g.cells, c)
	}

	return nil
}

// InitializeWalls puts a wall between every pair of neighboring cells
func (g *Grid) InitializeWalls() {
	for _, c := range g.cells {
		for _, n := range c.Adjacent() {
			if n > c.ID {
				_ = g.MakeWallPair(c.ID, n)
			}
		}
	}
}

// MakeWallPair puts a wall between two cells, on both sides.
// Returns ErrAlreadyBlocked if the wall was already there.
func (g *Grid) MakeWallPair(a, b int) error {
	ca, cb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	errA := ca.BlockAccess(b)
	errB := cb.BlockAccess(a)
	if errA != nil && errB != nil {
		return ErrAlreadyBlocked
	}
	return nil
}

// RemoveWallPair opens a passage between two cells, on both sides.
// Fails without touching either cell if they are not adjacent.
// Returns ErrAlreadyOpen if the passage was already there.
func (g *Grid) RemoveWallPair(a, b int) error {
	ca, cb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	errA := ca.MakeAccess(b)
	errB := cb.MakeAccess(a)
	if errors.Is(errA, ErrAlreadyOpen) && errors.Is(errB, ErrAlreadyOpen) {
		return ErrAlreadyOpen
	}
	return nil
}

// pair resolves two cells that must be grid neighbors
func (g *Grid) pair(a, b int) (*Cell, *Cell, error) {
	ca, cb := g.GetCell(a), g.GetCell(b)
	if ca == nil {
		return nil, nil, &IntegrityError{CellID: a, Target: b, Err: ErrInvalidID}
	}
	if cb == nil {
		return nil, nil, &IntegrityError{CellID: a, Target: b, Err: ErrNotAdjacent}
	}
	if !ca.IsAdjacent(b) || !cb.IsAdjacent(a) {
		return nil, nil, &IntegrityError{CellID: a, Target: b, Err: ErrNotAdjacent}
	}
	return ca, cb, nil
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for _, c := range g.cells {
		fn(c.Row, c.Col, c)
	}
}

// OpenPassages counts the passages in the grid, each wall pair counted once
func (g *Grid) OpenPassages() int {
	total := 0
	for _, c := range g.cells {
		total += c.Openings()
	}
	return total / 2
}

// Reachable returns the number of cells reachable from start through passages
func (g *Grid) Reachable(start int) int {
	if !g.IsValidID(start) {
		return 0
	}
	visited := make([]bool, len(g.cells))
	visited[start] = true
	queue := []int{start}
	count := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		count++

		for _, n := range g.cells[current].Accessible() {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return count
}

// Validate checks the graph invariants and returns the first violation found
func (g *Grid) Validate() error {
	if g.width <= 0 || g.height <= 0 {
		return ErrInvalidDimensions
	}

	for _, c := range g.cells {
		for _, n := range c.Accessible() {
			if !c.IsAdjacent(n) {
				return &IntegrityError{CellID: c.ID, Target: n, Err: ErrNotAdjacent}
			}
			other := g.GetCell(n)
			if other == nil || !other.CanAccess(c.ID) {
				return &IntegrityError{CellID: c.ID, Target: n, Err: errAsymmetric}
			}
		}
	}

	return nil
}

var errAsymmetric = errors.New("passage is one-sided")
