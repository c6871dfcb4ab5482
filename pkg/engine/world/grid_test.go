package world

import (
	"errors"
	"slices"
	"testing"
)

func newGrid(t *testing.T, width, height int) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	return g
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestNewGrid_AdjacencyFromPosition(t *testing.T) {
	// 3 wide, 2 high:
	// 0 1 2
	// 3 4 5
	g := newGrid(t, 3, 2)

	want := map[int][]int{
		0: {1, 3},
		1: {0, 2, 4},
		2: {1, 5},
		3: {0, 4},
		4: {1, 3, 5},
		5: {2, 4},
	}
	for id, adj := range want {
		c := g.GetCell(id)
		if c == nil {
			t.Fatalf("GetCell(%d) = nil", id)
		}
		if got := c.Adjacent(); !slices.Equal(got, adj) {
			t.Errorf("cell %d: Adjacent() = %v, want %v", id, got, adj)
		}
		// Freshly built cells are fully open.
		if got := c.Accessible(); !slices.Equal(got, adj) {
			t.Errorf("cell %d: Accessible() = %v, want %v", id, got, adj)
		}
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestNewGrid_AdjacencySymmetric(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {4, 4}, {7, 3}} {
		g := newGrid(t, dims[0], dims[1])
		g.ForEachCell(func(row, col int, c *Cell) {
			if c.ID != g.ID(row, col) {
				t.Errorf("%v: cell at %d,%d has id %d", dims, row, col, c.ID)
			}
			if len(c.Adjacent()) > 4 {
				t.Errorf("%v: cell %d has %d neighbors", dims, c.ID, len(c.Adjacent()))
			}
			for _, n := range c.Adjacent() {
				if !g.GetCell(n).IsAdjacent(c.ID) {
					t.Errorf("%v: %d -> %d is one-sided", dims, c.ID, n)
				}
			}
		})
	}
}

func TestInitializeWalls_SealsEverything(t *testing.T) {
	g := newGrid(t, 4, 3)
	g.InitializeWalls()

	if n := g.OpenPassages(); n != 0 {
		t.Errorf("OpenPassages() = %d, want 0", n)
	}
	g.ForEachCell(func(row, col int, c *Cell) {
		if len(c.Accessible()) != 0 || len(c.Adjacent()) == 0 {
			t.Errorf("cell %d: accessible %v, adjacent %v", c.ID, c.Accessible(), c.Adjacent())
		}
	})
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestWallPairRoundTrip(t *testing.T) {
	g := newGrid(t, 2, 2)
	g.InitializeWalls()

	if err := g.RemoveWallPair(0, 1); err != nil {
		t.Fatalf("RemoveWallPair: %v", err)
	}
	if !g.CanAccess(0, 1) || !g.CanAccess(1, 0) {
		t.Error("passage 0-1 not open on both sides")
	}
	if err := g.RemoveWallPair(1, 0); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("second RemoveWallPair = %v, want ErrAlreadyOpen", err)
	}

	if err := g.MakeWallPair(1, 0); err != nil {
		t.Fatalf("MakeWallPair: %v", err)
	}
	if g.CanAccess(0, 1) || g.CanAccess(1, 0) {
		t.Error("passage 0-1 still open after MakeWallPair")
	}
	if err := g.MakeWallPair(0, 1); !errors.Is(err, ErrAlreadyBlocked) {
		t.Errorf("second MakeWallPair = %v, want ErrAlreadyBlocked", err)
	}

	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestRemoveWallPair_NotAdjacent(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.InitializeWalls()

	tests := []struct {
		name string
		a, b int
	}{
		{"diagonal", 0, 4},
		{"row wrap", 2, 3},
		{"off the top", 0, -3},
		{"off the end", 8, 9},
		{"invalid source", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.RemoveWallPair(tt.a, tt.b); err == nil {
				t.Errorf("RemoveWallPair(%d, %d) succeeded", tt.a, tt.b)
			}
		})
	}
	if n := g.OpenPassages(); n != 0 {
		t.Errorf("OpenPassages() = %d, want 0", n)
	}
}

func TestNeighbor(t *testing.T) {
	g := newGrid(t, 3, 2)

	tests := []struct {
		name   string
		id     int
		dir    Direction
		want   int
		wantOk bool
	}{
		{"down", 1, South, 4, true},
		{"up", 3, North, 0, true},
		{"right edge", 2, East, 0, false},
		{"left edge", 3, West, 0, false},
		{"top edge", 0, North, 0, false},
		{"invalid direction", 0, Direction(7), 0, false},
		{"invalid id", 6, North, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Neighbor(tt.id, tt.dir)
			if ok != tt.wantOk || (ok && got != tt.want) {
				t.Errorf("Neighbor(%d, %v) = %d, %v; want %d, %v", tt.id, tt.dir, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestNeighbor_SingleColumn(t *testing.T) {
	// West and east must not wrap onto the rows above and below.
	g := newGrid(t, 1, 3)
	for _, dir := range []Direction{East, West} {
		if n, ok := g.Neighbor(1, dir); ok {
			t.Errorf("Neighbor(1, %v) = %d, want none", dir, n)
		}
	}
	if n, ok := g.Neighbor(1, North); !ok || n != 0 {
		t.Errorf("Neighbor(1, North) = %d, %v; want 0, true", n, ok)
	}
	if n, ok := g.Neighbor(1, South); !ok || n != 2 {
		t.Errorf("Neighbor(1, South) = %d, %v; want 2, true", n, ok)
	}
}

func TestReachable(t *testing.T) {
	g := newGrid(t, 3, 1)
	g.InitializeWalls()
	if n := g.Reachable(0); n != 1 {
		t.Errorf("sealed: Reachable(0) = %d, want 1", n)
	}

	if err := g.RemoveWallPair(0, 1); err != nil {
		t.Fatal(err)
	}
	if n := g.Reachable(0); n != 2 {
		t.Errorf("Reachable(0) = %d, want 2", n)
	}

	if err := g.RemoveWallPair(1, 2); err != nil {
		t.Fatal(err)
	}
	if n := g.Reachable(0); n != 3 {
		t.Errorf("Reachable(0) = %d, want 3", n)
	}
	if n := g.Reachable(7); n != 0 {
		t.Errorf("Reachable(7) = %d, want 0", n)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		row, col int
	}{
		{Up, -1, 0},
		{Right, 0, 1},
		{Down, 1, 0},
		{Left, 0, -1},
		{Direction(7), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			row, col := tt.dir.Delta()
			if row != tt.row || col != tt.col {
				t.Errorf("Delta() = %d, %d; want %d, %d", row, col, tt.row, tt.col)
			}
		})
	}
	if Direction(7).IsValid() {
		t.Error("Direction(7) is valid")
	}
}
