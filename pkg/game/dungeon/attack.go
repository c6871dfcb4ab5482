package dungeon

import (
	"fmt"
	"slices"

	"mazecrawl/pkg/engine/world"
)

// AttackResult is the outcome of a melee attack
type AttackResult int

// Attack results
const (
	NoEffect AttackResult = iota
	EnemyDefeated
	RewardClaimed
	WallBroken
)

// String returns a short description of the result
func (r AttackResult) String() string {
	switch r {
	case NoEffect:
		return "no effect"
	case EnemyDefeated:
		return "enemy defeated"
	case RewardClaimed:
		return "reward claimed"
	case WallBroken:
		return "wall broken"
	default:
		return "unknown"
	}
}

// Attack strikes the cell next to the player in dir.
//
// Through an open passage it defeats an enemy there, or else claims a
// reward there. Into an inner wall it knocks the wall down for good. The
// outer boundary cannot be broken and yields NoEffect.
func (d *Dungeon) Attack(dir world.Direction) (AttackResult, error) {
	current := d.Current()
	target, ok := d.Target(dir)
	if !ok {
		return NoEffect, nil
	}

	logger := d.Logger()
	if d.Grid().CanAccess(current, target) {
		if i := slices.Index(d.enemies, target); i >= 0 {
			d.enemies = slices.Delete(d.enemies, i, i+1)
			logger.Debug("enemy defeated", "cell", target, "left", len(d.enemies))
			return EnemyDefeated, nil
		}
		if d.rewards.Has(target) {
			d.rewards.Remove(target)
			logger.Debug("reward claimed", "cell", target, "left", d.rewards.Size())
			return RewardClaimed, nil
		}
		return NoEffect, nil
	}

	if err := d.Grid().RemoveWallPair(current, target); err != nil {
		return NoEffect, fmt.Errorf("attack %v from %d: %w", dir, current, err)
	}
	logger.Debug("wall broken", "from", current, "to", target)
	return WallBroken, nil
}
