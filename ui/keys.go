package ui

import (
	"errors"

	"term-snake/game/types"
)

// ErrClosed is returned by a renderer whose window or screen was closed by
// the player. Callers treat it as a quit, not a failure.
var ErrClosed = errors.New("renderer closed")

// Action is what a key press asks for.
type Action int

const (
	ActionNone Action = iota
	ActionTurn
	ActionQuit
)

// runeDirections covers wasd and the vi keys.
var runeDirections = map[rune]types.Direction{
	'w': types.Up,
	'a': types.Left,
	's': types.Down,
	'd': types.Right,
	'k': types.Up,
	'h': types.Left,
	'j': types.Down,
	'l': types.Right,
}

// ActionForRune maps a printable key to an action.
func ActionForRune(r rune) (Action, types.Direction) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r == 'q' {
		return ActionQuit, types.None
	}
	if dir, ok := runeDirections[r]; ok {
		return ActionTurn, dir
	}
	return ActionNone, types.None
}
