package puzzle

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"crosswarped.com/xwfill/internal/wordlist"
)

// Puzzle is the in-memory model of one crossword fill problem: the grid
// structure, the slots derived from it, their overlap relation, and the
// vocabulary seeding every slot's candidate set.
//
// A Puzzle is immutable once constructed.
type Puzzle struct {
	Height, Width int

	// Slots holds across slots in row-major order followed by down slots in
	// column-major order. This order is the deterministic tie-break used by
	// the solver's slot selection.
	Slots []Slot

	// Words is the vocabulary, read-only.
	Words []string

	fillable  [][]bool
	overlaps  map[[2]Slot]Overlap
	neighbors map[Slot][]Slot
}

// Parse builds a puzzle from a structure description and a vocabulary.
//
// In the structure, '_' marks a fillable cell and any other rune marks a
// blocked one. Rows must all have the same width. Slots are maximal runs of
// at least two fillable cells.
//
// Words must consist of lowercase letters a-z only; anything else is an
// error. Use wordlist.Normalize to clean up raw input first.
func Parse(structure string, words []string) (*Puzzle, error) {
	rows := strings.Split(strings.TrimRight(structure, "\n"), "\n")
	if len(rows) == 0 || (len(rows) == 1 && rows[0] == "") {
		return nil, fmt.Errorf("structure is empty")
	}

	width := len([]rune(rows[0]))
	fillable := make([][]bool, len(rows))
	for i, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("structure row %d has width %d, want %d", i, len(cells), width)
		}
		fillable[i] = lo.Map(cells, func(r rune, _ int) bool {
			return r == '_'
		})
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	for _, word := range words {
		if err := wordlist.Validate(word); err != nil {
			return nil, err
		}
	}

	p := &Puzzle{
		Height:   len(rows),
		Width:    width,
		Words:    lo.Uniq(words),
		fillable: fillable,
	}
	p.deriveSlots()
	if len(p.Slots) == 0 {
		return nil, fmt.Errorf("structure has no slots")
	}
	p.deriveOverlaps()
	return p, nil
}

// Load reads a structure file and a newline-separated word list and builds
// the puzzle from them.
func Load(structurePath, wordsPath string) (*Puzzle, error) {
	structure, err := readFile(structurePath)
	if err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}
	words, err := wordlist.Load(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return Parse(structure, words)
}

// Fillable reports whether the cell at (row, col) accepts a letter.
func (p *Puzzle) Fillable(row, col int) bool {
	return p.fillable[row][col]
}

// Overlap returns the shared character indexes of two slots, if they
// intersect. The relation is symmetric: Overlap(x, y) = (i, j) implies
// Overlap(y, x) = (j, i).
func (p *Puzzle) Overlap(x, y Slot) (Overlap, bool) {
	o, ok := p.overlaps[[2]Slot{x, y}]
	return o, ok
}

// Neighbors returns the slots sharing a cell with x, in slot order.
func (p *Puzzle) Neighbors(x Slot) []Slot {
	return p.neighbors[x]
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (p *Puzzle) deriveSlots() {
	for row := range p.Height {
		for col := 0; col < p.Width; {
			if !p.fillable[row][col] {
				col++
				continue
			}
			length := 0
			for col+length < p.Width && p.fillable[row][col+length] {
				length++
			}
			if length >= 2 {
				p.Slots = append(p.Slots, Slot{Row: row, Col: col, Dir: DirectionAcross, Length: length})
			}
			col += length
		}
	}

	for col := range p.Width {
		for row := 0; row < p.Height; {
			if !p.fillable[row][col] {
				row++
				continue
			}
			length := 0
			for row+length < p.Height && p.fillable[row+length][col] {
				length++
			}
			if length >= 2 {
				p.Slots = append(p.Slots, Slot{Row: row, Col: col, Dir: DirectionDown, Length: length})
			}
			row += length
		}
	}
}

func (p *Puzzle) deriveOverlaps() {
	type cell struct{ row, col int }
	type occupant struct {
		slot Slot
		idx  int
	}

	occupants := make(map[cell][]occupant)
	for _, s := range p.Slots {
		for k := range s.Length {
			row, col := s.Cell(k)
			occupants[cell{row, col}] = append(occupants[cell{row, col}], occupant{slot: s, idx: k})
		}
	}

	p.overlaps = make(map[[2]Slot]Overlap)
	for _, occ := range occupants {
		// A cell hosts at most one across and one down slot.
		for _, a := range occ {
			for _, b := range occ {
				if a.slot == b.slot {
					continue
				}
				p.overlaps[[2]Slot{a.slot, b.slot}] = Overlap{I: a.idx, J: b.idx}
			}
		}
	}

	p.neighbors = make(map[Slot][]Slot, len(p.Slots))
	for _, x := range p.Slots {
		p.neighbors[x] = lo.Filter(p.Slots, func(y Slot, _ int) bool {
			_, ok := p.overlaps[[2]Slot{x, y}]
			return ok
		})
	}
}
