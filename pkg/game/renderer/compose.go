package renderer

import "mazecrawl/pkg/game/maze"

// Canvas is a frame with its overlay layers painted in: one rune per text
// cell and the layer that rune came from (0 for the wall geometry)
type Canvas struct {
	Runes  [][]rune
	Layers [][]int
}

// Compose paints the overlay layers of a frame over its lines in ascending
// layer order, so higher layers win. Glyphs outside the lines are dropped.
func Compose(f maze.Frame) Canvas {
	c := Canvas{
		Runes:  make([][]rune, len(f.Lines)),
		Layers: make([][]int, len(f.Lines)),
	}
	for y, line := range f.Lines {
		c.Runes[y] = []rune(line)
		c.Layers[y] = make([]int, len(c.Runes[y]))
	}

	for i, layer := range f.Layers {
		for _, g := range layer {
			if g.Y < 0 || g.Y >= len(c.Runes) || g.X < 0 || g.X >= len(c.Runes[g.Y]) {
				continue
			}
			c.Runes[g.Y][g.X] = g.Rune
			c.Layers[g.Y][g.X] = i + 1
		}
	}
	return c
}

// Width returns the number of columns of the widest line
func (c Canvas) Width() int {
	w := 0
	for _, row := range c.Runes {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of lines
func (c Canvas) Height() int {
	return len(c.Runes)
}

// Lines returns the composited text
func (c Canvas) Lines() []string {
	out := make([]string, len(c.Runes))
	for i, row := range c.Runes {
		out[i] = string(row)
	}
	return out
}

// Span is a run of characters on one line that share a layer
type Span struct {
	Text  string
	Layer int
}

// Spans splits line y into runs of equal layer
func (c Canvas) Spans(y int) []Span {
	if y < 0 || y >= len(c.Runes) {
		return nil
	}
	row, layers := c.Runes[y], c.Layers[y]

	var spans []Span
	start := 0
	for x := 1; x <= len(row); x++ {
		if x == len(row) || layers[x] != layers[start] {
			spans = append(spans, Span{Text: string(row[start:x]), Layer: layers[start]})
			start = x
		}
	}
	return spans
}
