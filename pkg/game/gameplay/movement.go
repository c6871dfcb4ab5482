package gameplay

import (
	"errors"
	"fmt"

	"mazecrawl/pkg/engine/world"
	"mazecrawl/pkg/game/dungeon"
	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/maze"
	"mazecrawl/pkg/game/state"
)

// MovePlayer steps the player one cell in dir
func MovePlayer(g state.Game, d *dungeon.Dungeon, dir world.Direction) state.Game {
	if err := d.Move(dir); errors.Is(err, maze.ErrBlocked) {
		return g.WithMessage(i18n.T("BLOCKED"))
	}
	return g
}

// AttackTowards spends one attack on the cell next to the player in dir and
// scores the result
func AttackTowards(g state.Game, d *dungeon.Dungeon, dir world.Direction) state.Game {
	if g.AttacksLeft <= 0 {
		return g.WithMessage(i18n.T("NO_ATTACKS_LEFT"))
	}
	g.AttacksLeft--

	res, err := d.Attack(dir)
	if err != nil {
		// Only a corrupted grid makes an attack fail.
		panic(fmt.Sprintf("attack %v: %v", dir, err))
	}

	switch res {
	case dungeon.EnemyDefeated:
		g.EnemiesDefeated++
		g.Score += EnemyPoints
		return g.WithMessage(i18n.T("ENEMY_DEFEATED"))
	case dungeon.RewardClaimed:
		g.RewardsClaimed++
		g.Score += RewardPoints
		return g.WithMessage(i18n.T("REWARD_CLAIMED"))
	case dungeon.WallBroken:
		g.WallsBroken++
		return g.WithMessage(i18n.T("WALL_BROKEN"))
	default:
		return g.WithMessage(i18n.T("ATTACK_NOTHING"))
	}
}
