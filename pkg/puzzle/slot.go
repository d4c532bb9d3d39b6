package puzzle

import "fmt"

// Direction is an enum representing the direction of a slot in a grid,
// either 'Across' or 'Down'.
type Direction int

const (
	DirectionAcross Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionAcross {
		return "across"
	}
	return "down"
}

// Slot is a maximal run of fillable cells in one orientation: a word blank
// in the grid.
//
// Slot is a value type. Two slots with the same position, direction and
// length are the same slot, so Slot is usable as a map key across the
// puzzle boundary.
type Slot struct {
	Row, Col int
	Dir      Direction
	Length   int
}

// Cell returns the grid coordinates of the slot's k-th character.
func (s Slot) Cell(k int) (row, col int) {
	if s.Dir == DirectionAcross {
		return s.Row, s.Col + k
	}
	return s.Row + k, s.Col
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d %s len=%d)", s.Row, s.Col, s.Dir, s.Length)
}

// Overlap records that character index I of one slot occupies the same
// grid cell as character index J of another.
type Overlap struct {
	I, J int
}
