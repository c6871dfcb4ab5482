package input

import (
	"strings"
	"testing"

	"mazecrawl/pkg/engine/world"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"letter", "w", "w"},
		{"upper case", "W", "W"},
		{"csi up", "\x1b[A", "arrow_up"},
		{"csi down", "\x1b[B", "arrow_down"},
		{"ss3 right", "\x1bOC", "arrow_right"},
		{"csi left", "\x1b[D", "arrow_left"},
		{"unknown csi", "\x1b[Z", ""},
		{"bare escape", "\x1b", "escape"},
		{"ctrl c", "\x03", "ctrl_c"},
		{"control byte", "\x01", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeKey(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("DecodeKey(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("DecodeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeKey_EOF(t *testing.T) {
	if _, err := DecodeKey(strings.NewReader("")); err == nil {
		t.Error("DecodeKey on empty input returned no error")
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"w", ActionMoveNorth},
		{"a", ActionMoveWest},
		{"s", ActionMoveSouth},
		{"d", ActionMoveEast},
		{"W", ActionAttackNorth},
		{"A", ActionAttackWest},
		{"S", ActionAttackSouth},
		{"D", ActionAttackEast},
		{"arrow_left", ActionMoveWest},
		{"k", ActionMoveNorth},
		{"L", ActionAttackEast},
		{"q", ActionQuit},
		{"escape", ActionQuit},
		{"?", ActionHelp},
		{"p", ActionScreenshot},
		{"x", ActionNone},
		{"", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: tt.code}))
			if got.Action != tt.want {
				t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    world.Direction
		move   bool
		attack bool
	}{
		{ActionMoveNorth, world.Up, true, false},
		{ActionMoveEast, world.Right, true, false},
		{ActionAttackSouth, world.Down, false, true},
		{ActionAttackWest, world.Left, false, true},
	}
	for _, tt := range tests {
		dir, ok := tt.action.Direction()
		if !ok || dir != tt.dir {
			t.Errorf("%s.Direction() = %v, %v; want %v, true", ActionName(tt.action), dir, ok, tt.dir)
		}
		if tt.action.IsMove() != tt.move || tt.action.IsAttack() != tt.attack {
			t.Errorf("%s: IsMove %v IsAttack %v", ActionName(tt.action), tt.action.IsMove(), tt.action.IsAttack())
		}
	}

	for _, a := range []Action{ActionNone, ActionHelp, ActionScreenshot, ActionQuit} {
		if _, ok := a.Direction(); ok {
			t.Errorf("%s has a direction", ActionName(a))
		}
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	got := GetBindingsByAction()[ActionMoveNorth]
	want := []string{"arrow_up", "k", "w"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("bindings for Move North = %v, want %v", got, want)
	}
}
