package manager

import (
	"term-snake/game/types"
)

// State is the engine lifecycle. Over is terminal.
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

type StateManager struct {
	state State
	ticks int
	cause types.CollisionType
}

func NewStateManager() *StateManager {
	return &StateManager{state: Running}
}

// Step counts one executed tick. It reports false once the game is over.
func (sm *StateManager) Step() bool {
	if sm.state == Over {
		return false
	}
	sm.ticks++
	return true
}

// End moves to Over and records why. Later calls keep the first cause.
func (sm *StateManager) End(cause types.CollisionType) {
	if sm.state == Over {
		return
	}
	sm.state = Over
	sm.cause = cause
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) IsOver() bool {
	return sm.state == Over
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}

func (sm *StateManager) Cause() types.CollisionType {
	return sm.cause
}
