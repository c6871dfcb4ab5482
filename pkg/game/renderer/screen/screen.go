// Package screen is the full-screen tcell front-end. It paints the wall
// geometry first and each overlay layer on top in ascending order.
package screen

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mazecrawl/pkg/engine/input"
	"mazecrawl/pkg/engine/terminal"
	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/renderer"
)

// ErrClosed is returned by GetInput once the screen has been finalized
var ErrClosed = errors.New("screen closed")

// Renderer paints frames on a tcell screen
type Renderer struct {
	scr tcell.Screen

	layerStyles []tcell.Style
	titleStyle  tcell.Style
	statusStyle tcell.Style
	textStyle   tcell.Style
	alertStyle  tcell.Style
}

// New creates a renderer on the terminal tcell finds
func New() (*Renderer, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(scr), nil
}

// NewWithScreen creates a renderer on an existing screen
func NewWithScreen(scr tcell.Screen) *Renderer {
	return &Renderer{scr: scr}
}

// Init initializes the screen and the styles
func (r *Renderer) Init() error {
	if err := r.scr.Init(); err != nil {
		return err
	}

	base := tcell.StyleDefault
	r.layerStyles = []tcell.Style{
		base.Foreground(tcell.ColorGray),
		base.Foreground(tcell.ColorYellow).Bold(true),
		base.Foreground(tcell.ColorRed).Bold(true),
		base.Foreground(tcell.ColorGreen).Bold(true),
	}
	r.titleStyle = base.Foreground(tcell.ColorFuchsia).Bold(true)
	r.statusStyle = base.Foreground(tcell.ColorAqua)
	r.textStyle = base.Foreground(tcell.ColorSilver)
	r.alertStyle = base.Foreground(tcell.ColorRed).Bold(true)

	r.scr.SetStyle(base)
	r.scr.Clear()
	return nil
}

// Close restores the terminal
func (r *Renderer) Close() {
	r.scr.Fini()
}

// Clear clears the screen
func (r *Renderer) Clear() {
	r.scr.Clear()
}

// RenderFrame paints a frame, or a resize notice if the window is too small
func (r *Renderer) RenderFrame(v renderer.View) {
	r.scr.Clear()
	w, h := r.scr.Size()

	putText(r.scr, 0, 0, i18n.T("TITLE"), r.titleStyle)

	canvas := renderer.Compose(v.Frame)
	need := canvas.Height() + renderer.StatusHeight + 3
	if !terminal.Fits(canvas.Width(), need, w, h) {
		putText(r.scr, 0, 2, fmt.Sprintf(i18n.T("RESIZE"), canvas.Width(), need, w, h), r.alertStyle)
		r.scr.Show()
		return
	}

	const top = 2
	for y := range canvas.Runes {
		for x, ch := range canvas.Runes[y] {
			r.scr.SetContent(x, top+y, ch, nil, r.layerStyle(canvas.Layers[y][x]))
		}
	}

	y := top + canvas.Height() + 1
	for i, line := range renderer.StatusLines(v) {
		style := r.textStyle
		if i == 0 {
			style = r.statusStyle
		}
		putText(r.scr, 0, y+i, line, style)
	}
	r.scr.Show()
}

func (r *Renderer) layerStyle(layer int) tcell.Style {
	if layer < 0 || layer >= len(r.layerStyles) {
		return r.textStyle
	}
	return r.layerStyles[layer]
}

// GetInput waits for the next key. A resize repaints nothing by itself; it
// returns ActionNone so the caller redraws.
func (r *Renderer) GetInput() (input.Intent, error) {
	for {
		switch ev := r.scr.PollEvent().(type) {
		case nil:
			return input.Intent{}, ErrClosed
		case *tcell.EventResize:
			r.scr.Sync()
			return input.Intent{Action: input.ActionNone}, nil
		case *tcell.EventKey:
			raw := input.RawInput{
				Device:    input.DeviceKeyboard,
				Code:      keyCode(ev),
				Timestamp: ev.When(),
			}
			return input.MapToIntent(input.NewDebouncedInput(raw)), nil
		}
	}
}

// keyCode maps a tcell key event to a binding code
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// putText writes a string starting at (x, y), advancing by each rune's
// display width. It stops at the right edge of the screen.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, ch := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, ch, nil, st)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}
