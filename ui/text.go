package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"term-snake/game"
)

const clearScreen = "\x1b[H\x1b[2J"

// Text writes each frame as plain characters, framed by a border. With
// clear set it homes the cursor and clears the screen first.
type Text struct {
	w     *bufio.Writer
	clear bool
}

func NewText(w io.Writer, clear bool) *Text {
	return &Text{w: bufio.NewWriter(w), clear: clear}
}

func (t *Text) Present(s game.Snapshot) error {
	if t.clear {
		t.w.WriteString(clearScreen)
	}

	edge := "+" + strings.Repeat("-", s.Width) + "+\n"
	t.w.WriteString(edge)
	for _, row := range s.Rows() {
		t.w.WriteString("|")
		t.w.WriteString(row)
		t.w.WriteString("|\n")
	}
	t.w.WriteString(edge)
	fmt.Fprintln(t.w, StatusLine(s))

	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("text renderer: %w", err)
	}
	return nil
}

// StatusLine is the line shown under the board.
func StatusLine(s game.Snapshot) string {
	line := fmt.Sprintf("Score: %d  Length: %d", s.Score, s.Length)
	if s.Over {
		line += fmt.Sprintf("  GAME OVER (%s)", s.Cause)
	}
	return line
}

// Multi presents each frame to every renderer in order and stops at the
// first error.
type Multi []game.Renderer

func (m Multi) Present(s game.Snapshot) error {
	for _, r := range m {
		if err := r.Present(s); err != nil {
			return err
		}
	}
	return nil
}
