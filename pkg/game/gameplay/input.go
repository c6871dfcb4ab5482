package gameplay

import (
	"fmt"
	"strings"

	engineinput "mazecrawl/pkg/engine/input"
	"mazecrawl/pkg/game/dungeon"
	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/state"
)

// Intent is a player command from the tiered input system
type Intent = engineinput.Intent

// ProcessIntent handles a high-level input intent and returns the next state.
// Move and attack commands count as a move, even when blocked.
// Screenshots are taken by the caller and leave the state alone.
func ProcessIntent(g state.Game, d *dungeon.Dungeon, intent Intent) state.Game {
	if g.Over() {
		return g
	}

	action := intent.Action
	switch {
	case action == engineinput.ActionNone, action == engineinput.ActionScreenshot:
		return g

	case action == engineinput.ActionQuit:
		g.Outcome = state.Quit
		d.Logger().Info("game over", "outcome", g.Outcome.String(), "moves", g.Moves, "score", g.Score)
		return g.WithMessage(i18n.T("GOODBYE"))

	case action == engineinput.ActionHelp:
		return g.WithoutMessages().
			WithMessage(i18n.T("HELP_MOVE")).
			WithMessage(i18n.T("HELP_ATTACK")).
			WithMessage(i18n.T("HELP_QUIT")).
			WithMessage(bindingHelp(engineinput.ActionScreenshot))

	case action.IsMove():
		dir, _ := action.Direction()
		g.Moves++
		return MovePlayer(g, d, dir)

	case action.IsAttack():
		dir, _ := action.Direction()
		g.Moves++
		return AttackTowards(g, d, dir)
	}

	return g
}

// bindingHelp lists the keys bound to an action
func bindingHelp(act engineinput.Action) string {
	codes := engineinput.GetBindingsByAction()[act]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(act), codeText)
}
