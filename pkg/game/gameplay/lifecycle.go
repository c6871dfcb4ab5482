// Package gameplay provides the turn logic of the dungeon crawl.
package gameplay

import (
	"fmt"
	"log/slog"

	"mazecrawl/pkg/engine/random"
	"mazecrawl/pkg/game/config"
	"mazecrawl/pkg/game/dungeon"
	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/maze"
	"mazecrawl/pkg/game/state"
)

// Points awarded to the score
const (
	EnemyPoints  = 10
	RewardPoints = 25
	GoalPoints   = 100
)

// NewGame builds and populates a dungeon from the configuration and
// returns it with the state of the first turn
func NewGame(cfg config.Config, rng random.Source, logger *slog.Logger) (*dungeon.Dungeon, state.Game, error) {
	d, err := dungeon.New(cfg.Width, cfg.Height, cfg.Exploration, rng, maze.WithLogger(logger))
	if err != nil {
		return nil, state.Game{}, err
	}
	if err := d.Generate(); err != nil {
		return nil, state.Game{}, err
	}
	if err := d.PopulateEnemies(cfg.Enemies); err != nil {
		return nil, state.Game{}, fmt.Errorf("new game: %w", err)
	}
	if err := d.PopulateRewards(cfg.Rewards); err != nil {
		return nil, state.Game{}, fmt.Errorf("new game: %w", err)
	}

	g := state.NewGame(cfg.Attacks).
		WithMessage(i18n.T("HELP_MOVE")).
		WithMessage(i18n.T("HELP_ATTACK")).
		WithMessage(i18n.T("HELP_QUIT"))

	d.Logger().Info("game started",
		"width", cfg.Width,
		"height", cfg.Height,
		"enemies", d.EnemyCount(),
		"rewards", d.RewardCount(),
		"attacks", cfg.Attacks,
	)
	return d, g, nil
}

// BeginTurn lets every enemy take a step, once the player has made a move,
// and then settles whether the player died or escaped
func BeginTurn(g state.Game, d *dungeon.Dungeon) state.Game {
	if g.Over() {
		return g
	}
	if g.Moves > 0 {
		d.MoveEnemies()
	}
	return CheckOutcome(g, d)
}

// CheckOutcome ends the game if an enemy shares the player's cell or the
// player stands on the goal
func CheckOutcome(g state.Game, d *dungeon.Dungeon) state.Game {
	switch {
	case d.PlayerCaught():
		g.Outcome = state.Died
		g = g.WithMessage(i18n.T("DIED"))
	case d.AtGoal():
		g.Outcome = state.Escaped
		g.Score += GoalPoints
		g = g.WithMessage(i18n.T("ESCAPED"))
	default:
		return g
	}

	d.Logger().Info("game over",
		"outcome", g.Outcome.String(),
		"moves", g.Moves,
		"score", g.Score,
	)
	return g
}

// Advance applies one command and, if it was a move or an attack, starts
// the next turn
func Advance(g state.Game, d *dungeon.Dungeon, intent Intent) state.Game {
	next := ProcessIntent(g, d, intent)
	if next.Moves == g.Moves {
		return next
	}
	return BeginTurn(next, d)
}
