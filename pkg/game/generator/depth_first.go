package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"mazecrawl/pkg/engine/logging"
	"mazecrawl/pkg/engine/random"
	"mazecrawl/pkg/engine/world"
)

// ErrExploration is returned for an exploration outside [0, 1]
var ErrExploration = errors.New("exploration must be within [0, 1]")

// DepthFirstGenerator carves a maze with a randomized depth-first search.
//
// Exploration is the probability of stepping back into an already visited
// neighbor instead of descending into a fresh one while fresh ones remain.
// 0 yields a perfect maze (a spanning tree); higher values braid in loops.
type DepthFirstGenerator struct {
	Exploration float64
	Logger      *slog.Logger
}

// Name returns the name of this generator
func (g *DepthFirstGenerator) Name() string {
	return "Depth First"
}

// Generate seals the grid and carves it starting from the upper left cell.
// Every cell ends up reachable from the start.
func (g *DepthFirstGenerator) Generate(grid *world.Grid, rng random.Source) error {
	if g.Exploration < 0 || g.Exploration > 1 {
		return fmt.Errorf("%v: %w", g.Exploration, ErrExploration)
	}
	logger := logging.OrDiscard(g.Logger)

	grid.InitializeWalls()

	start := grid.StartID()
	unvisited := mapset.New[int]()
	for id := 0; id < grid.Size(); id++ {
		if id != start {
			unvisited.Put(id)
		}
	}

	c := &carver{
		grid:      grid,
		rng:       rng,
		unvisited: unvisited,
		stack:     []int{start},
		current:   start,
		// With exploration at 1 a fresh neighbor would never be chosen.
		maxIdle: 4*grid.Size() + 4,
	}

	steps := 0
	for c.unvisited.Size() > 0 {
		if err := c.step(g.Exploration); err != nil {
			return err
		}
		steps++
	}

	logger.Debug("maze carved",
		"generator", g.Name(),
		"width", grid.Width(),
		"height", grid.Height(),
		"exploration", g.Exploration,
		"steps", steps,
		"passages", grid.OpenPassages(),
		"restarts", c.restarts,
	)

	return nil
}

// carver holds the state of one depth-first run
type carver struct {
	grid      *world.Grid
	rng       random.Source
	unvisited world.IDSet
	stack     []int
	current   int

	idle     int
	maxIdle  int
	restarts int
}

// step runs one iteration of the search
func (c *carver) step(exploration float64) error {
	fresh, seen := c.neighbors()

	if len(fresh) == 0 {
		c.backtrack()
		return nil
	}

	r := c.rng.Float64()
	switch {
	case exploration <= 0 || r > exploration || c.idle >= c.maxIdle:
		return c.advance(random.Choice(c.rng, fresh))
	case len(seen) > 0:
		return c.advance(random.Choice(c.rng, seen))
	default:
		c.idle++
		return nil
	}
}

// neighbors splits the current cell's neighbors into unvisited and visited.
// The cell we arrived from is left out of the visited list.
func (c *carver) neighbors() (fresh, seen []int) {
	cell := c.grid.GetCell(c.current)
	previous := c.previous()

	for _, n := range cell.Adjacent() {
		if c.unvisited.Has(n) {
			fresh = append(fresh, n)
		} else if n != previous {
			seen = append(seen, n)
		}
	}
	return fresh, seen
}

// previous returns the cell below the current one on the stack, or -1
func (c *carver) previous() int {
	n := len(c.stack)
	switch {
	case n >= 2 && c.stack[n-1] == c.current:
		return c.stack[n-2]
	case n >= 1 && c.stack[n-1] != c.current:
		return c.stack[n-1]
	}
	return -1
}

// advance opens the wall to next and moves there
func (c *carver) advance(next int) error {
	err := c.grid.RemoveWallPair(c.current, next)
	if err != nil && !errors.Is(err, world.ErrAlreadyOpen) {
		return fmt.Errorf("carve %d -> %d: %w", c.current, next, err)
	}

	if c.unvisited.Has(next) {
		c.unvisited.Remove(next)
		c.idle = 0
	} else {
		c.idle++
	}

	c.stack = append(c.stack, next)
	c.current = next
	return nil
}

// backtrack pops the stack, or restarts next to the unvisited region once
// the stack is empty
func (c *carver) backtrack() {
	if len(c.stack) > 0 {
		c.current = c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		return
	}

	// Restart from a visited cell bordering the unvisited region so the new
	// branch stays connected to the start.
	var frontier []int
	c.unvisited.Each(func(id int) {
		for _, n := range c.grid.GetCell(id).Adjacent() {
			if !c.unvisited.Has(n) {
				frontier = append(frontier, id)
				return
			}
		}
	})
	if len(frontier) == 0 {
		return
	}
	slices.Sort(frontier)

	pocket := random.Choice(c.rng, frontier)
	var visited []int
	for _, n := range c.grid.GetCell(pocket).Adjacent() {
		if !c.unvisited.Has(n) {
			visited = append(visited, n)
		}
	}
	c.current = random.Choice(c.rng, visited)
	c.restarts++
}
