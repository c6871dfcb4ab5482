// Package tui is the line-oriented terminal front-end: it clears the screen,
// prints each frame with ANSI colors and reads single key presses.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"mazecrawl/pkg/engine/input"
	"mazecrawl/pkg/engine/terminal"
	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/renderer"
	"mazecrawl/pkg/game/state"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	// layerStyles[n] paints layer n; layer 0 is the wall geometry
	layerStyles []color.Style

	colorTitle  color.Style
	colorStatus color.Style
	colorSubtle color.Style
	colorDenied color.Style
	colorWin    color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	// Walls, rewards, enemies, then the player and the goal
	t.layerStyles = []color.Style{
		{color.FgGray},
		{color.FgYellow, color.OpBold},
		{color.FgRed, color.OpBold},
		{color.FgGreen, color.OpBold},
	}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorStatus = color.Style{color.FgCyan}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorWin = color.Style{color.FgGreen, color.OpBold}
	return nil
}

// Close is a no-op; the terminal is only in raw mode while reading a key
func (t *TUIRenderer) Close() {}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	_ = c.Run()
}

// RenderFrame renders a complete game frame sized to the terminal
func (t *TUIRenderer) RenderFrame(v renderer.View) {
	cols, rows := terminal.GetSize()
	fmt.Fprint(t.out, t.Draw(v, cols, rows))
}

// Draw returns the styled text of a frame for a terminal of cols x rows.
// When the maze does not fit, a resize notice replaces it.
func (t *TUIRenderer) Draw(v renderer.View, cols, rows int) string {
	var b strings.Builder

	b.WriteString(t.colorTitle.Sprint(i18n.T("TITLE")))
	b.WriteString("\n\n")

	canvas := renderer.Compose(v.Frame)
	need := canvas.Height() + renderer.StatusHeight + 2
	if !terminal.Fits(canvas.Width(), need, cols, rows) {
		b.WriteString(t.colorDenied.Sprint(fmt.Sprintf(i18n.T("RESIZE"), canvas.Width(), need, cols, rows)))
		b.WriteString("\n")
		return b.String()
	}

	for y := 0; y < canvas.Height(); y++ {
		for _, span := range canvas.Spans(y) {
			b.WriteString(t.layerStyle(span.Layer).Sprint(span.Text))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, line := range renderer.StatusLines(v) {
		switch {
		case i == 0:
			b.WriteString(t.colorStatus.Sprint(line))
		case v.Game.Over() && line != "" && !strings.HasPrefix(line, "  "):
			b.WriteString(t.outcomeStyle(v).Sprint(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (t *TUIRenderer) layerStyle(layer int) color.Style {
	if layer < 0 || layer >= len(t.layerStyles) {
		return t.colorSubtle
	}
	return t.layerStyles[layer]
}

func (t *TUIRenderer) outcomeStyle(v renderer.View) color.Style {
	if v.Game.Outcome == state.Escaped {
		return t.colorWin
	}
	return t.colorSubtle
}

// GetInput reads a single key from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	code, err := input.ReadKey()
	if err != nil {
		return input.Intent{}, err
	}
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   code,
		// Timestamp left zero; terminal input is inherently low frequency.
	}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}
