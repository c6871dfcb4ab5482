package maze

// Occupant describes what a cell holds for rendering purposes
type Occupant int

// Occupant kinds
const (
	Empty Occupant = iota
	Player
	Enemy
	Reward
	PlayerAndEnemy
	Goal
)

var occupantGlyphs = [...]rune{
	Empty:          ' ',
	Player:         'x',
	Enemy:          'o',
	Reward:         '*',
	PlayerAndEnemy: '+',
	Goal:           'X',
}

// Glyph returns the single character drawn for the occupant
func (o Occupant) Glyph() rune {
	if o < Empty || int(o) >= len(occupantGlyphs) {
		return ' '
	}
	return occupantGlyphs[o]
}

// String returns the string representation of an occupant
func (o Occupant) String() string {
	switch o {
	case Empty:
		return "Empty"
	case Player:
		return "Player"
	case Enemy:
		return "Enemy"
	case Reward:
		return "Reward"
	case PlayerAndEnemy:
		return "PlayerAndEnemy"
	case Goal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Classification is what a classifier decides for one cell.
// Layer 0 draws inline with the walls; higher layers paint on top in
// ascending order.
type Classification struct {
	Occupant Occupant
	Layer    int
}

// Classifier decides the occupant and draw layer of each cell
type Classifier interface {
	Classify(id int) Classification
}

// ClassifierFunc adapts a plain function to the Classifier interface
type ClassifierFunc func(id int) Classification

// Classify calls f(id)
func (f ClassifierFunc) Classify(id int) Classification {
	return f(id)
}

// PlayerLayer is the layer the bare maze draws its tracked position on
const PlayerLayer = 1

// Classify marks the tracked position and nothing else
func (m *Maze) Classify(id int) Classification {
	if id == m.current {
		return Classification{Occupant: Player, Layer: PlayerLayer}
	}
	return Classification{}
}
