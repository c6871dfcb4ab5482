// Package generator carves passages into a sealed grid.
package generator

import (
	"mazecrawl/pkg/engine/random"
	"mazecrawl/pkg/engine/world"
)

// GridGenerator is an interface for maze carving algorithms
type GridGenerator interface {
	Generate(grid *world.Grid, rng random.Source) error
	Name() string
}

// DefaultExploration is the curiosity used by the bundled game
const DefaultExploration = 0.2

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = &DepthFirstGenerator{Exploration: DefaultExploration}
