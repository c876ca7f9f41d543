package entity

import (
	"testing"

	"term-snake/game/types"
)

func TestAdvanceIsPure(t *testing.T) {
	s := NewSnake(types.Cell{X: 5, Y: 2}, types.Right)

	next := s.Advance()
	if next != (types.Cell{X: 5, Y: 3}) {
		t.Fatalf("Advance() = %v, want (5,3)", next)
	}
	if s.Head() != (types.Cell{X: 5, Y: 2}) {
		t.Errorf("Advance moved the head to %v", s.Head())
	}
	if s.Advance() != next {
		t.Error("Advance is not repeatable")
	}
}

func TestCommitTranslationKeepsLength(t *testing.T) {
	for length := 1; length <= 5; length++ {
		body := make([]types.Cell, length)
		for i := range body {
			body[i] = types.Cell{X: 5, Y: 8 - i}
		}
		s := NewSnakeWithBody(body, types.Right)

		s.Commit(s.Advance(), false)

		if s.Len() != length {
			t.Errorf("length %d: after move got %d", length, s.Len())
		}
		if s.Head() != (types.Cell{X: 5, Y: 9}) {
			t.Errorf("length %d: head = %v", length, s.Head())
		}
		if s.Score() != 0 || s.Grew() {
			t.Errorf("length %d: score %d grew %v on plain move", length, s.Score(), s.Grew())
		}
	}
}

func TestCommitEatingGrowsAndScores(t *testing.T) {
	s := NewSnakeWithBody([]types.Cell{{X: 2, Y: 2}, {X: 2, Y: 1}}, types.Down)

	s.Commit(s.Advance(), true)

	want := []types.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if !s.Grew() {
		t.Error("Grew() should be true after eating")
	}

	s.Commit(s.Advance(), false)
	if s.Grew() {
		t.Error("Grew() should reset on the next plain move")
	}
}

func TestOccupiedAfterDropsTailUnlessEating(t *testing.T) {
	body := []types.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	s := NewSnakeWithBody(body, types.Down)

	if got := s.OccupiedAfter(false); len(got) != 3 || got[len(got)-1] != (types.Cell{X: 2, Y: 2}) {
		t.Errorf("OccupiedAfter(false) = %v", got)
	}
	if got := s.OccupiedAfter(true); len(got) != 4 {
		t.Errorf("OccupiedAfter(true) = %v", got)
	}
}

func TestBodyIsACopy(t *testing.T) {
	s := NewSnake(types.Cell{X: 1, Y: 1}, types.Up)
	b := s.Body()
	b[0] = types.Cell{X: 9, Y: 9}
	if s.Head() != (types.Cell{X: 1, Y: 1}) {
		t.Error("mutating Body() changed the snake")
	}
}

func TestOccupiedAfterIsACopy(t *testing.T) {
	body := []types.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}}
	s := NewSnakeWithBody(body, types.Up)

	for _, ate := range []bool{false, true} {
		occupied := s.OccupiedAfter(ate)
		occupied[0] = types.Cell{X: 9, Y: 9}
		if s.Head() != (types.Cell{X: 1, Y: 1}) {
			t.Errorf("mutating OccupiedAfter(%v) changed the snake", ate)
		}
	}
}

func TestContains(t *testing.T) {
	s := NewSnakeWithBody([]types.Cell{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}}, types.Right)
	if !s.Contains(types.Cell{X: 0, Y: 0}) {
		t.Error("tail should be contained")
	}
	if s.Contains(types.Cell{X: 1, Y: 0}) {
		t.Error("(1,0) is not part of the body")
	}
}

func TestEmptyBodyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty body")
		}
	}()
	NewSnakeWithBody(nil, types.Right)
}
