package maze

import (
	"strings"

	"mazecrawl/pkg/engine/world"
)

// junctions maps a 4-bit wall pattern to the box-drawing character drawn at
// the upper left corner of a cell.
//
//	bit 0: wall to the right of the corner (above the cell)
//	bit 1: wall below the corner (left of the cell)
//	bit 2: wall to the left of the corner (above the left neighbor)
//	bit 3: wall above the corner (left of the upper neighbor)
var junctions = [16]rune{
	' ', '─', '│', '┌',
	'─', '─', '┐', '┬',
	'│', '└', '│', '├',
	'┘', '┴', '┤', '┼',
}

const (
	wallRight = 1 << iota
	wallDown
	wallLeft
	wallUp
)

const (
	horizontalWall = '─'
	verticalWall   = '│'
	open           = ' '
)

// Glyph is one overlay character at a position in the rendered text
type Glyph struct {
	X    int
	Y    int
	Rune rune
}

// Frame is a rendered maze: the wall geometry as text lines plus the
// overlay glyphs, grouped by layer. Layers[0] holds layer 1.
type Frame struct {
	Lines  []string
	Layers [][]Glyph
}

// String returns the wall geometry lines joined by newlines
func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// CellPosition returns the text position of a cell's interior
func CellPosition(row, col int) (x, y int) {
	return 2*col + 1, 2*row + 1
}

// Render draws the maze using its own classifier
func (m *Maze) Render(layerOverride int) Frame {
	return m.RenderWith(m, layerOverride)
}

// RenderWith draws the maze, asking c what occupies each cell.
//
// Every classification layer is multiplied by layerOverride. A resulting
// layer of 0 writes the glyph inline; anything higher moves it to the
// overlay and leaves the cell blank in the lines. The frame always has
// 2*height+1 lines of 2*width+1 characters.
func (m *Maze) RenderWith(c Classifier, layerOverride int) Frame {
	g := m.grid
	width, height := g.Width(), g.Height()

	lines := make([][]rune, 2*height+1)
	for i := range lines {
		lines[i] = make([]rune, 0, 2*width+1)
	}
	var layers [][]Glyph

	// walled reports a wall on the dir side of id; the grid edge counts
	walled := func(id int, dir world.Direction) bool {
		n, ok := g.Neighbor(id, dir)
		return !ok || !g.CanAccess(id, n)
	}
	bit := func(set bool, mask int) int {
		if set {
			return mask
		}
		return 0
	}

	for row := 0; row < height; row++ {
		top, mid := 2*row, 2*row+1
		for col := 0; col < width; col++ {
			id := g.ID(row, col)
			above := walled(id, world.North)
			left := walled(id, world.West)

			var pattern int
			switch {
			case row == 0 && col == 0:
				pattern = wallRight | wallDown
			case row == 0:
				pattern = wallRight | wallLeft | bit(left, wallDown)
			case col == 0:
				pattern = bit(above, wallRight) | wallDown | wallUp
			default:
				diag := id - width - 1
				pattern = bit(above, wallRight) |
					bit(left, wallDown) |
					bit(walled(diag, world.South), wallLeft) |
					bit(walled(diag, world.East), wallUp)
			}

			lines[top] = append(lines[top], junctions[pattern], wallRune(above, horizontalWall))

			cls := c.Classify(id)
			glyph := cls.Occupant.Glyph()
			inline := glyph
			if layer := cls.Layer * layerOverride; layer > 0 {
				for len(layers) < layer {
					layers = append(layers, nil)
				}
				x, y := CellPosition(row, col)
				layers[layer-1] = append(layers[layer-1], Glyph{X: x, Y: y, Rune: glyph})
				inline = open
			}
			lines[mid] = append(lines[mid], wallRune(left, verticalWall), inline)
		}

		// Right boundary
		if row == 0 {
			lines[top] = append(lines[top], junctions[wallLeft|wallDown])
		} else {
			above := walled(g.ID(row, width-1), world.North)
			lines[top] = append(lines[top], junctions[wallDown|wallUp|bit(above, wallLeft)])
		}
		lines[mid] = append(lines[mid], verticalWall)
	}

	// Bottom boundary
	bottom := 2 * height
	for col := 0; col < width; col++ {
		if col == 0 {
			lines[bottom] = append(lines[bottom], junctions[wallUp|wallRight], horizontalWall)
			continue
		}
		id := g.ID(height-1, col)
		pattern := wallRight | wallLeft | bit(walled(id, world.West), wallUp)
		lines[bottom] = append(lines[bottom], junctions[pattern], horizontalWall)
	}
	lines[bottom] = append(lines[bottom], junctions[wallUp|wallLeft])

	frame := Frame{
		Lines:  make([]string, len(lines)),
		Layers: layers,
	}
	for i, l := range lines {
		frame.Lines[i] = string(l)
	}
	return frame
}

func wallRune(wall bool, r rune) rune {
	if wall {
		return r
	}
	return open
}
