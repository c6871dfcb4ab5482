package input

import (
	"sort"
	"time"

	"mazecrawl/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Melee
	ActionAttackNorth
	ActionAttackSouth
	ActionAttackWest
	ActionAttackEast

	// Meta / UI
	ActionHelp
	ActionScreenshot
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// For this turn‑based game each RawInput is already debounced by the
// terminal raw mode or tcell, but the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
// Lower case moves, upper case attacks.
var bindings = map[string]Action{
	// Movement (wasd, arrows, Vim)
	"w":           ActionMoveNorth,
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"s":           ActionMoveSouth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"a":           ActionMoveWest,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"d":           ActionMoveEast,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	// Attacks
	"W": ActionAttackNorth,
	"K": ActionAttackNorth,
	"S": ActionAttackSouth,
	"J": ActionAttackSouth,
	"A": ActionAttackWest,
	"H": ActionAttackWest,
	"D": ActionAttackEast,
	"L": ActionAttackEast,

	// Help
	"?": ActionHelp,

	// Developer tools
	"p": ActionScreenshot,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IsMove reports whether the action moves the player
func (a Action) IsMove() bool {
	return a >= ActionMoveNorth && a <= ActionMoveEast
}

// IsAttack reports whether the action is a melee attack
func (a Action) IsAttack() bool {
	return a >= ActionAttackNorth && a <= ActionAttackEast
}

// Direction returns the direction of a move or attack action.
// ok is false for actions without one.
func (a Action) Direction() (dir world.Direction, ok bool) {
	switch a {
	case ActionMoveNorth, ActionAttackNorth:
		return world.North, true
	case ActionMoveSouth, ActionAttackSouth:
		return world.South, true
	case ActionMoveWest, ActionAttackWest:
		return world.West, true
	case ActionMoveEast, ActionAttackEast:
		return world.East, true
	default:
		return 0, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionAttackNorth:
		return "Attack North"
	case ActionAttackSouth:
		return "Attack South"
	case ActionAttackWest:
		return "Attack West"
	case ActionAttackEast:
		return "Attack East"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so the help text doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
