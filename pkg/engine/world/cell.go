// Package world provides the 2D grid graph the maze is carved from.
// Cells know which neighbors they touch (adjacency, fixed) and which of those
// neighbors they can reach (accessibility, mutable through wall pairs).
package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// IDSet is a set of cell IDs
type IDSet = mapset.Set[int]

// Cell represents a single cell in the grid
type Cell struct {
	// Identification (row-major index)
	ID int

	// Grid position
	Row int
	Col int

	adjacent   IDSet
	accessible IDSet
}

// NewCell creates a cell with the given adjacency and accessibility.
// Every ID must be non-negative and every accessible ID must also be adjacent.
func NewCell(id int, adjacent, accessible []int) (*Cell, error) {
	if id < 0 {
		return nil, &IntegrityError{CellID: id, Target: id, Err: ErrInvalidID}
	}

	c := &Cell{
		ID:         id,
		adjacent:   mapset.New[int](),
		accessible: mapset.New[int](),
	}

	for _, a := range adjacent {
		if a < 0 {
			return nil, &IntegrityError{CellID: id, Target: a, Err: ErrInvalidID}
		}
		c.adjacent.Put(a)
	}

	for _, a := range accessible {
		if a < 0 {
			return nil, &IntegrityError{CellID: id, Target: a, Err: ErrInvalidID}
		}
		if !c.adjacent.Has(a) {
			return nil, &IntegrityError{CellID: id, Target: a, Err: ErrNotAdjacent}
		}
		c.accessible.Put(a)
	}

	return c, nil
}

// IsAdjacent returns true if target shares a grid edge with this cell
func (c *Cell) IsAdjacent(target int) bool {
	return c.adjacent.Has(target)
}

// CanAccess returns true if there is no wall between this cell and target
func (c *Cell) CanAccess(target int) bool {
	return c.accessible.Has(target)
}

// BlockAccess puts a wall between this cell and target.
// Returns ErrAlreadyBlocked if there was no passage to remove.
func (c *Cell) BlockAccess(target int) error {
	if !c.accessible.Has(target) {
		return ErrAlreadyBlocked
	}
	c.accessible.Remove(target)
	return nil
}

// MakeAccess opens a passage from this cell to target.
// Opening towards a non-adjacent cell is an integrity error; opening an
// existing passage returns ErrAlreadyOpen.
func (c *Cell) MakeAccess(target int) error {
	if !c.adjacent.Has(target) {
		return &IntegrityError{CellID: c.ID, Target: target, Err: ErrNotAdjacent}
	}
	if c.accessible.Has(target) {
		return ErrAlreadyOpen
	}
	c.accessible.Put(target)
	return nil
}

// Adjacent returns the sorted IDs of all neighboring cells
func (c *Cell) Adjacent() []int {
	return sortedIDs(c.adjacent)
}

// Accessible returns the sorted IDs of all neighbors reachable without crossing a wall
func (c *Cell) Accessible() []int {
	return sortedIDs(c.accessible)
}

// Openings returns how many passages leave this cell
func (c *Cell) Openings() int {
	return c.accessible.Size()
}

func sortedIDs(s IDSet) []int {
	ids := make([]int, 0, s.Size())
	s.Each(func(id int) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}
