// Package gameplay tests the turn logic: movement, attacks, scoring and outcomes.
package gameplay

import (
	"errors"
	"testing"

	engineinput "mazecrawl/pkg/engine/input"
	"mazecrawl/pkg/engine/random"
	"mazecrawl/pkg/game/config"
	"mazecrawl/pkg/game/dungeon"
	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/state"
)

// makeCorridor creates a sealed width x 1 dungeon with only the given
// passages open. Placement and enemy moves draw from ints.
func makeCorridor(t *testing.T, width int, ints []int, passages ...[2]int) *dungeon.Dungeon {
	t.Helper()
	d, err := dungeon.New(width, 1, 0, random.NewScripted(nil, ints))
	if err != nil {
		t.Fatalf("dungeon.New: %v", err)
	}
	d.Grid().InitializeWalls()
	for _, p := range passages {
		if err := d.Grid().RemoveWallPair(p[0], p[1]); err != nil {
			t.Fatalf("RemoveWallPair(%d, %d): %v", p[0], p[1], err)
		}
	}
	return d
}

func intent(a engineinput.Action) Intent {
	return Intent{Action: a}
}

func lastMessage(g state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

func TestProcessIntent_ValidMoveUpdatesCurrent(t *testing.T) {
	d := makeCorridor(t, 3, nil, [2]int{0, 1})
	g := ProcessIntent(state.NewGame(5), d, intent(engineinput.ActionMoveEast))
	if d.Current() != 1 {
		t.Errorf("after MoveEast: Current = %d, want 1", d.Current())
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves)
	}
}

func TestProcessIntent_BlockedMoveKeepsPositionButCounts(t *testing.T) {
	d := makeCorridor(t, 3, nil, [2]int{0, 1})
	g := ProcessIntent(state.NewGame(5), d, intent(engineinput.ActionMoveNorth))
	if d.Current() != 0 {
		t.Errorf("blocked MoveNorth changed Current to %d", d.Current())
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d, want 1 (blocked moves still count)", g.Moves)
	}
	if lastMessage(g) != i18n.T("BLOCKED") {
		t.Errorf("last message = %q, want the blocked message", lastMessage(g))
	}
}

func TestProcessIntent_NoneIsIgnored(t *testing.T) {
	d := makeCorridor(t, 2, nil, [2]int{0, 1})
	before := state.NewGame(5)
	g := ProcessIntent(before, d, intent(engineinput.ActionNone))
	if g.Moves != 0 || len(g.Messages) != 0 {
		t.Errorf("ActionNone changed state: %+v", g)
	}
}

func TestAttack_BreaksWallAndSpendsAttack(t *testing.T) {
	d := makeCorridor(t, 3, nil, [2]int{0, 1})
	g := state.NewGame(2)
	g = ProcessIntent(g, d, intent(engineinput.ActionMoveEast))
	g = ProcessIntent(g, d, intent(engineinput.ActionAttackEast))

	if !d.Grid().CanAccess(1, 2) {
		t.Error("wall between 1 and 2 still standing")
	}
	if g.AttacksLeft != 1 || g.WallsBroken != 1 || g.Moves != 2 {
		t.Errorf("got AttacksLeft %d WallsBroken %d Moves %d; want 1 1 2", g.AttacksLeft, g.WallsBroken, g.Moves)
	}

	// An attack that hits nothing still costs one.
	g = ProcessIntent(g, d, intent(engineinput.ActionAttackWest))
	if g.AttacksLeft != 0 {
		t.Errorf("AttacksLeft = %d, want 0", g.AttacksLeft)
	}
	if lastMessage(g) != i18n.T("ATTACK_NOTHING") {
		t.Errorf("last message = %q", lastMessage(g))
	}
}

func TestAttack_NoneLeft(t *testing.T) {
	d := makeCorridor(t, 2, nil)
	g := ProcessIntent(state.NewGame(0), d, intent(engineinput.ActionAttackEast))

	if d.Grid().CanAccess(0, 1) {
		t.Error("attack without attacks left broke a wall")
	}
	if g.AttacksLeft != 0 || g.WallsBroken != 0 {
		t.Errorf("AttacksLeft %d WallsBroken %d, want 0 0", g.AttacksLeft, g.WallsBroken)
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves)
	}
	if lastMessage(g) != i18n.T("NO_ATTACKS_LEFT") {
		t.Errorf("last message = %q", lastMessage(g))
	}
}

func TestAttack_Scoring(t *testing.T) {
	d := makeCorridor(t, 3, nil, [2]int{0, 1}, [2]int{1, 2})
	if err := d.PopulateEnemies(1); err != nil {
		t.Fatal(err)
	}
	if err := d.PopulateRewards(1); err != nil {
		t.Fatal(err)
	}

	g := state.NewGame(5)
	g = ProcessIntent(g, d, intent(engineinput.ActionAttackEast))
	g = ProcessIntent(g, d, intent(engineinput.ActionAttackEast))

	if g.EnemiesDefeated != 1 || g.RewardsClaimed != 1 {
		t.Errorf("EnemiesDefeated %d RewardsClaimed %d, want 1 1", g.EnemiesDefeated, g.RewardsClaimed)
	}
	if want := EnemyPoints + RewardPoints; g.Score != want {
		t.Errorf("Score = %d, want %d", g.Score, want)
	}
}

func TestQuit(t *testing.T) {
	d := makeCorridor(t, 2, nil, [2]int{0, 1})
	g := ProcessIntent(state.NewGame(5), d, intent(engineinput.ActionQuit))
	if g.Outcome != state.Quit {
		t.Fatalf("Outcome = %v, want Quit", g.Outcome)
	}

	g = Advance(g, d, intent(engineinput.ActionMoveEast))
	if d.Current() != 0 || g.Moves != 0 {
		t.Error("a finished game accepted a move")
	}
}

func TestHelp(t *testing.T) {
	d := makeCorridor(t, 2, nil, [2]int{0, 1})
	g := state.NewGame(5).WithMessage("old").WithMessage("older")
	g = ProcessIntent(g, d, intent(engineinput.ActionHelp))
	if len(g.Messages) != 4 || g.Moves != 0 {
		t.Fatalf("help: %d messages, %d moves; want 4, 0", len(g.Messages), g.Moves)
	}
	if g.Messages[0] == "old" {
		t.Errorf("help kept the previous log: %q", g.Messages)
	}
	if last := g.Messages[len(g.Messages)-1]; last != "Screenshot: p" {
		t.Errorf("last help line = %q, want %q", last, "Screenshot: p")
	}
}

func TestBeginTurn_EnemiesWaitForFirstMove(t *testing.T) {
	// Enemy spawns on 1 and, once it moves, picks candidate 0 (the player).
	d := makeCorridor(t, 3, nil, [2]int{0, 1}, [2]int{1, 2})
	if err := d.PopulateEnemies(1); err != nil {
		t.Fatal(err)
	}

	g := BeginTurn(state.NewGame(5), d)
	if got := d.Enemies(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("enemy moved before the first player move: %v", got)
	}
	if g.Over() {
		t.Fatalf("game over on the first turn: %v", g.Outcome)
	}

	g.Moves = 1
	g = BeginTurn(g, d)
	if g.Outcome != state.Died {
		t.Errorf("Outcome = %v, want Died", g.Outcome)
	}
	if lastMessage(g) != i18n.T("DIED") {
		t.Errorf("last message = %q", lastMessage(g))
	}
}

func TestAdvance_Escape(t *testing.T) {
	d := makeCorridor(t, 2, nil, [2]int{0, 1})
	g := Advance(state.NewGame(5), d, intent(engineinput.ActionMoveEast))
	if g.Outcome != state.Escaped {
		t.Fatalf("Outcome = %v, want Escaped", g.Outcome)
	}
	if g.Score != GoalPoints {
		t.Errorf("Score = %d, want %d", g.Score, GoalPoints)
	}
}

func TestNewGame(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 6, 5
	cfg.Enemies, cfg.Rewards, cfg.Attacks = 4, 3, 7

	d, g, err := NewGame(cfg, random.New(8), nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if d.EnemyCount() != 4 || d.RewardCount() != 3 {
		t.Errorf("enemies %d rewards %d, want 4 3", d.EnemyCount(), d.RewardCount())
	}
	if g.AttacksLeft != 7 || g.Over() {
		t.Errorf("first turn state = %+v", g)
	}
	if reach := d.Grid().Reachable(d.Start()); reach != 30 {
		t.Errorf("reachable = %d, want 30", reach)
	}
}

func TestNewGame_SingleCell(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Enemies = 1, 1, 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	d, g, err := NewGame(cfg, random.New(2), nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	// Start and goal coincide, so the first turn already escapes.
	g = BeginTurn(g, d)
	if g.Outcome != state.Escaped {
		t.Errorf("Outcome = %v, want Escaped", g.Outcome)
	}
}

func TestNewGame_TooManyEnemies(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Enemies = 3, 1, 2

	_, _, err := NewGame(cfg, random.New(1), nil)
	if !errors.Is(err, dungeon.ErrCapacity) {
		t.Errorf("err = %v, want ErrCapacity", err)
	}
}

func TestAdvance_HelpIsFree(t *testing.T) {
	d := makeCorridor(t, 3, nil, [2]int{0, 1}, [2]int{1, 2})
	if err := d.PopulateEnemies(1); err != nil {
		t.Fatal(err)
	}
	g := state.NewGame(5)
	g.Moves = 3

	g = Advance(g, d, intent(engineinput.ActionHelp))
	g = Advance(g, d, intent(engineinput.ActionNone))
	if got := d.Enemies(); got[0] != 1 {
		t.Errorf("enemies moved on a free action: %v", got)
	}
	if g.Over() {
		t.Errorf("Outcome = %v", g.Outcome)
	}
}
