package entity

import (
	"term-snake/game/types"
)

// Snake owns the body and heading. It reports geometry only; the engine
// decides when it dies.
type Snake struct {
	body    []types.Cell // head first
	heading types.Direction
	score   int
	grew    bool
	dead    bool
}

func NewSnake(startPos types.Cell, heading types.Direction) *Snake {
	return &Snake{
		body:    []types.Cell{startPos},
		heading: heading,
	}
}

// NewSnakeWithBody builds a snake from a head-first body. The body is copied.
func NewSnakeWithBody(body []types.Cell, heading types.Direction) *Snake {
	if len(body) == 0 {
		panic("entity: snake body must not be empty")
	}
	b := make([]types.Cell, len(body))
	copy(b, body)
	return &Snake{body: b, heading: heading}
}

func (s *Snake) SetHeading(dir types.Direction) {
	s.heading = dir
}

func (s *Snake) Heading() types.Direction {
	return s.heading
}

// Advance returns where the head would be after one step. It does not move.
func (s *Snake) Advance() types.Cell {
	return s.Head().Move(s.heading)
}

// Contains reports whether any segment sits on c.
func (s *Snake) Contains(c types.Cell) bool {
	for _, part := range s.body {
		if part == c {
			return true
		}
	}
	return false
}

// OccupiedAfter returns the segments that stay occupied once this tick is
// committed: the tail is vacated unless the snake eats. The result is a copy.
func (s *Snake) OccupiedAfter(ate bool) []types.Cell {
	keep := s.body
	if !ate {
		keep = s.body[:len(s.body)-1]
	}
	occupied := make([]types.Cell, len(keep))
	copy(occupied, keep)
	return occupied
}

// Commit moves the head to next. Without food the tail is dropped so the
// length is unchanged; with food the snake grows by one and scores.
func (s *Snake) Commit(next types.Cell, ate bool) {
	if len(s.body) == 0 {
		panic("entity: commit on empty snake body")
	}

	body := make([]types.Cell, 0, len(s.body)+1)
	body = append(body, next)
	if ate {
		body = append(body, s.body...)
		s.score++
	} else {
		body = append(body, s.body[:len(s.body)-1]...)
	}
	s.body = body
	s.grew = ate
}

func (s *Snake) Kill() {
	s.dead = true
}

func (s *Snake) Dead() bool {
	return s.dead
}

func (s *Snake) Head() types.Cell {
	if len(s.body) == 0 {
		panic("entity: snake has no head")
	}
	return s.body[0]
}

func (s *Snake) Tail() types.Cell {
	if len(s.body) == 0 {
		panic("entity: snake has no tail")
	}
	return s.body[len(s.body)-1]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Cell {
	b := make([]types.Cell, len(s.body))
	copy(b, s.body)
	return b
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Score() int {
	return s.score
}

// Grew reports whether the last commit ate food.
func (s *Snake) Grew() bool {
	return s.grew
}
