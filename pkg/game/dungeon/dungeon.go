// Package dungeon layers enemies, rewards and melee attacks over a maze.
package dungeon

import (
	"errors"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"mazecrawl/pkg/engine/random"
	"mazecrawl/pkg/engine/world"
	"mazecrawl/pkg/game/maze"
)

var (
	// ErrCapacity is returned when more entities are requested than free cells exist
	ErrCapacity = errors.New("not enough free cells")
	// ErrNoSuchEnemy is returned for an enemy index outside the live enemy list
	ErrNoSuchEnemy = errors.New("no such enemy")
)

// Draw layers
const (
	RewardLayer = 1
	EnemyLayer  = 2
	PlayerLayer = 3
	GoalLayer   = 3
)

// Dungeon is a maze with roaming enemies and collectible rewards
type Dungeon struct {
	*maze.Maze

	// enemies is ordered; an index identifies an enemy until one before it dies
	enemies []int
	rewards world.IDSet
}

// New creates a dungeon over a fresh, not yet generated maze
func New(width, height int, exploration float64, rng random.Source, opts ...maze.Option) (*Dungeon, error) {
	m, err := maze.New(width, height, exploration, rng, opts...)
	if err != nil {
		return nil, err
	}
	return &Dungeon{
		Maze:    m,
		rewards: mapset.New[int](),
	}, nil
}

// Classify places the player, enemies, rewards and the goal
func (d *Dungeon) Classify(id int) maze.Classification {
	current := id == d.Current()
	enemy := d.EnemyAt(id)

	switch {
	case current && enemy:
		return maze.Classification{Occupant: maze.PlayerAndEnemy, Layer: PlayerLayer}
	case current:
		return maze.Classification{Occupant: maze.Player, Layer: PlayerLayer}
	case enemy:
		return maze.Classification{Occupant: maze.Enemy, Layer: EnemyLayer}
	case id == d.Goal():
		return maze.Classification{Occupant: maze.Goal, Layer: GoalLayer}
	case d.RewardAt(id):
		return maze.Classification{Occupant: maze.Reward, Layer: RewardLayer}
	default:
		return maze.Classification{}
	}
}

// Render draws the dungeon with its occupants
func (d *Dungeon) Render(layerOverride int) maze.Frame {
	return d.RenderWith(d, layerOverride)
}

// String renders the dungeon with every glyph inline
func (d *Dungeon) String() string {
	return strings.Join(d.Render(0).Lines, "\n")
}

// Enemies returns the positions of the live enemies, in index order
func (d *Dungeon) Enemies() []int {
	return slices.Clone(d.enemies)
}

// EnemyCount returns the number of live enemies
func (d *Dungeon) EnemyCount() int {
	return len(d.enemies)
}

// EnemyAt reports whether an enemy stands on the cell
func (d *Dungeon) EnemyAt(id int) bool {
	return slices.Contains(d.enemies, id)
}

// Rewards returns the unclaimed reward cells in ascending order
func (d *Dungeon) Rewards() []int {
	out := make([]int, 0, d.rewards.Size())
	d.rewards.Each(func(id int) {
		out = append(out, id)
	})
	slices.Sort(out)
	return out
}

// RewardCount returns the number of unclaimed rewards
func (d *Dungeon) RewardCount() int {
	return d.rewards.Size()
}

// RewardAt reports whether an unclaimed reward lies on the cell
func (d *Dungeon) RewardAt(id int) bool {
	return d.rewards.Has(id)
}

// PlayerCaught reports whether an enemy shares the player's cell
func (d *Dungeon) PlayerCaught() bool {
	return d.EnemyAt(d.Current())
}

// AtGoal reports whether the player stands on the goal
func (d *Dungeon) AtGoal() bool {
	return d.Current() == d.Goal()
}

