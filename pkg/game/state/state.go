// Package state holds the per-turn game state threaded through the loop.
package state

// Outcome describes whether the game is still running and how it ended
type Outcome int

// Outcomes
const (
	Playing Outcome = iota
	Died
	Escaped
	Quit
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "Playing"
	case Died:
		return "Died"
	case Escaped:
		return "Escaped"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MaxMessages is how many log lines a game keeps
const MaxMessages = 5

// Game is the state of one turn. Every turn produces a new value; methods
// never modify the receiver.
type Game struct {
	Moves           int
	AttacksLeft     int
	Score           int
	EnemiesDefeated int
	RewardsClaimed  int
	WallsBroken     int

	Outcome Outcome

	Messages []string
}

// NewGame creates the state of the first turn
func NewGame(attacks int) Game {
	return Game{
		AttacksLeft: attacks,
		Messages:    make([]string, 0),
	}
}

// Over reports whether the game has ended
func (g Game) Over() bool {
	return g.Outcome != Playing
}

// WithMessage returns a copy of g with msg appended to the message log,
// keeping only the last MaxMessages lines
func (g Game) WithMessage(msg string) Game {
	start := 0
	if len(g.Messages)+1 > MaxMessages {
		start = len(g.Messages) + 1 - MaxMessages
	}
	messages := make([]string, 0, MaxMessages)
	messages = append(messages, g.Messages[start:]...)
	g.Messages = append(messages, msg)
	return g
}

// WithoutMessages returns a copy of g with an empty message log
func (g Game) WithoutMessages() Game {
	g.Messages = make([]string, 0)
	return g
}
