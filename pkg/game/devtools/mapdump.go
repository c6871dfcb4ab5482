// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazecrawl/pkg/game/dungeon"
)

// DumpMap writes a debug dump of the dungeon to w: metadata, legend, the
// flat rendering and the entity positions as row,col pairs.
// The format is plain "key: value" sections so dumps diff cleanly.
func DumpMap(w io.Writer, d *dungeon.Dungeon, seed int64) error {
	g := d.Grid()
	row, col := g.Position(d.Current())
	goalRow, goalCol := g.Position(d.Goal())

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "width: %d\n", g.Width())
	fmt.Fprintf(w, "height: %d\n", g.Height())
	fmt.Fprintf(w, "exploration: %v\n", d.Exploration())
	fmt.Fprintf(w, "passages: %d\n", g.OpenPassages())
	fmt.Fprintf(w, "loops: %d\n", g.OpenPassages()-(g.Size()-1))
	fmt.Fprintf(w, "reachable: %d/%d\n", g.Reachable(d.Start()), g.Size())
	fmt.Fprintf(w, "player_cell: %d,%d\n", row, col)
	fmt.Fprintf(w, "goal_cell: %d,%d\n", goalRow, goalCol)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "x = player  o = enemy  + = enemy on player  * = reward  X = goal")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	fmt.Fprintln(w, d.String())
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities ---")
	fmt.Fprintf(w, "Enemies (%d):\n", d.EnemyCount())
	for i, id := range d.Enemies() {
		r, c := g.Position(id)
		fmt.Fprintf(w, "  index: %d row: %d col: %d\n", i, r, c)
	}
	fmt.Fprintf(w, "Rewards (%d):\n", d.RewardCount())
	for _, id := range d.Rewards() {
		r, c := g.Position(id)
		_, err := fmt.Fprintf(w, "  row: %d col: %d\n", r, c)
		if err != nil {
			return err
		}
	}
	return nil
}

// DumpMapToFile writes DumpMap to path and returns its absolute path
func DumpMapToFile(path string, d *dungeon.Dungeon, seed int64) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, d, seed); err != nil {
		return "", err
	}
	return absPath, nil
}
