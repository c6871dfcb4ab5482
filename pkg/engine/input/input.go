package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin cannot be put into raw mode
var ErrNotTerminal = errors.New("stdin is not a terminal")

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(r, buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence following
// an ESC byte. Returns the arrow code, or "escape" for anything else.
func tryReadArrowKey(r io.Reader) string {
	b2, err := readByte(r)
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte(r)
	if err != nil {
		return "escape"
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// DecodeKey reads one key press from r and returns its binding code.
// Printable keys map to themselves, arrows to "arrow_*", Ctrl+C to "ctrl_c".
// Unknown keys return "".
func DecodeKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return tryReadArrowKey(r), nil
	case b1 == 3:
		return "ctrl_c", nil
	case b1 >= 32 && b1 < 127:
		return string(rune(b1)), nil
	}
	return "", nil
}

// ReadKey puts the terminal into raw mode, reads a single key press from
// stdin and restores the terminal.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return DecodeKey(os.Stdin)
}
