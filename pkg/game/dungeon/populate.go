package dungeon

import (
	"fmt"
)

// PopulateEnemies places n enemies on distinct free cells, never on the
// start, the goal, the player or another enemy.
// Returns ErrCapacity, placing nothing, when fewer than n cells are free.
func (d *Dungeon) PopulateEnemies(n int) error {
	free := d.freeCells(d.EnemyAt)
	picked, err := d.sample(free, n)
	if err != nil {
		return fmt.Errorf("populate %d enemies: %w", n, err)
	}
	d.enemies = append(d.enemies, picked...)

	d.Logger().Debug("enemies placed", "count", n, "total", len(d.enemies))
	return nil
}

// PopulateRewards places n rewards on distinct free cells, never on the
// start, the goal, the player or another reward.
// Returns ErrCapacity, placing nothing, when fewer than n cells are free.
func (d *Dungeon) PopulateRewards(n int) error {
	free := d.freeCells(d.RewardAt)
	picked, err := d.sample(free, n)
	if err != nil {
		return fmt.Errorf("populate %d rewards: %w", n, err)
	}
	for _, id := range picked {
		d.rewards.Put(id)
	}

	d.Logger().Debug("rewards placed", "count", n, "total", d.rewards.Size())
	return nil
}

// freeCells lists, in ascending order, the cells a new entity may spawn on
func (d *Dungeon) freeCells(taken func(id int) bool) []int {
	var free []int
	for id := 0; id < d.Grid().Size(); id++ {
		if id == d.Start() || id == d.Goal() || id == d.Current() || taken(id) {
			continue
		}
		free = append(free, id)
	}
	return free
}

// sample draws n distinct cells from free with a partial Fisher-Yates shuffle
func (d *Dungeon) sample(free []int, n int) ([]int, error) {
	if n < 0 || n > len(free) {
		return nil, fmt.Errorf("%d requested, %d free: %w", n, len(free), ErrCapacity)
	}
	rng := d.Rand()
	for k := 0; k < n; k++ {
		j := k + rng.Intn(len(free)-k)
		free[k], free[j] = free[j], free[k]
	}
	return free[:n], nil
}
