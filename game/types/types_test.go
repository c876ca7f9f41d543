package types

import (
	"errors"
	"testing"
)

func TestGridContainsBoundaries(t *testing.T) {
	g := Grid{Height: 10, Width: 8}

	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{9, 7}, true},
		{"last row first column", Cell{9, 0}, true},
		{"first row last column", Cell{0, 7}, true},
		{"row equals height", Cell{10, 3}, false},
		{"column equals width", Cell{3, 8}, false},
		{"row minus one", Cell{-1, 3}, false},
		{"column minus one", Cell{3, -1}, false},
		{"both past the corner", Cell{10, 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Contains(tt.cell); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestGridCellsRowMajor(t *testing.T) {
	g := Grid{Height: 2, Width: 3}
	var got []Cell
	g.Cells(func(c Cell) { got = append(got, c) })

	want := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
	if g.Size() != 6 {
		t.Errorf("Size() = %d, want 6", g.Size())
	}
}

func TestGridValidate(t *testing.T) {
	if err := (Grid{Height: 3, Width: 3}).Validate(); err != nil {
		t.Errorf("3x3 should be valid: %v", err)
	}
	err := (Grid{Height: 2, Width: 10}).Validate()
	if !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("2x10 should fail with ErrGridTooSmall, got %v", err)
	}
}

func TestDirectionAxisMapping(t *testing.T) {
	start := Cell{X: 5, Y: 5}

	tests := []struct {
		dir  Direction
		want Cell
	}{
		{Up, Cell{4, 5}},
		{Down, Cell{6, 5}},
		{Left, Cell{5, 4}},
		{Right, Cell{5, 6}},
		{None, Cell{5, 5}},
	}

	for _, tt := range tests {
		if got := start.Move(tt.dir); got != tt.want {
			t.Errorf("Move(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		back := Cell{}.Move(d).Move(d.Opposite())
		if back != (Cell{}) {
			t.Errorf("%v then %v should return to origin, got %v", d, d.Opposite(), back)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("double opposite of %v = %v", d, d.Opposite().Opposite())
		}
	}
	if None.Opposite() != None {
		t.Errorf("None.Opposite() = %v", None.Opposite())
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up":     Up,
		"Down":   Down,
		" left ": Left,
		"r":      Right,
	}
	for in, want := range tests {
		got, ok := ParseDirection(in)
		if !ok || got != want {
			t.Errorf("ParseDirection(%q) = %v,%v want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestCellKindRunes(t *testing.T) {
	seen := make(map[rune]CellKind)
	for _, k := range []CellKind{Empty, Food, SnakeBody, SnakeHead} {
		r := k.Rune()
		if other, dup := seen[r]; dup {
			t.Errorf("%v and %v share glyph %q", k, other, r)
		}
		seen[r] = k
	}
}

func TestDirectionText(t *testing.T) {
	for _, d := range []Direction{None, Up, Right, Down, Left} {
		b, err := d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Direction
		if err := got.UnmarshalText(b); err != nil || got != d {
			t.Errorf("round trip of %v = %v, %v", d, got, err)
		}
	}
	var d Direction
	if err := d.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("expected error for unknown direction")
	}
}
