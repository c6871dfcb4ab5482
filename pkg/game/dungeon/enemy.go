package dungeon

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"mazecrawl/pkg/engine/random"
)

// MoveEnemy walks enemy i to a random accessible neighbor that no other
// enemy occupies. The enemy stays put when no such neighbor exists.
func (d *Dungeon) MoveEnemy(i int) (moved bool, err error) {
	if i < 0 || i >= len(d.enemies) {
		return false, fmt.Errorf("enemy %d of %d: %w", i, len(d.enemies), ErrNoSuchEnemy)
	}

	occupied := mapset.New[int]()
	for j, pos := range d.enemies {
		if j != i {
			occupied.Put(pos)
		}
	}

	var candidates []int
	for _, n := range d.Grid().GetCell(d.enemies[i]).Accessible() {
		if !occupied.Has(n) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return false, nil
	}

	d.enemies[i] = random.Choice(d.Rand(), candidates)
	return true, nil
}

// MoveEnemies gives every live enemy one step, in index order, and returns
// how many of them moved
func (d *Dungeon) MoveEnemies() int {
	moved := 0
	for i := range d.enemies {
		ok, err := d.MoveEnemy(i)
		if err != nil {
			// Indices come from the live list; this cannot happen.
			panic(err)
		}
		if ok {
			moved++
		}
	}
	return moved
}
