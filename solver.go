// Package xwfill fills a fixed crossword structure from a vocabulary. Every
// slot gets a word of matching length, all chosen words are distinct, and
// intersecting slots agree on the shared letter.
package xwfill

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill/internal/wordlist"
	"crosswarped.com/xwfill/pkg/primitives"
	"crosswarped.com/xwfill/pkg/puzzle"
)

var (
	// ErrNoSolution means the puzzle is proven unsolvable under the given
	// structure and vocabulary.
	ErrNoSolution = errors.New("no solution")

	// ErrAborted means the search was cut short by the caller's context
	// before it could prove anything either way.
	ErrAborted = errors.New("solve aborted")
)

// Assignment maps each slot to its chosen word. A complete, consistent
// assignment is a solution.
type Assignment map[puzzle.Slot]string

// Complete reports whether every slot of the puzzle has a word.
func (a Assignment) Complete(p *puzzle.Puzzle) bool {
	return len(a) == len(p.Slots)
}

// Arc is an ordered pair of overlapping slots, the unit of work for arc
// consistency: revising (X, Y) prunes X's domain against Y's.
type Arc struct {
	X, Y puzzle.Slot
}

// Solver owns the candidate domains for one solve run. A Solver is
// single-use and not safe for concurrent solves; construct a fresh one per
// run.
type Solver struct {
	puzzle  *puzzle.Puzzle
	domains map[puzzle.Slot]*primitives.Domain
}

// New seeds every slot's domain from the puzzle's vocabulary, bucketed by
// length so each slot starts node-consistent.
func New(p *puzzle.Puzzle) *Solver {
	buckets := wordlist.ByLength(p.Words)
	domains := make(map[puzzle.Slot]*primitives.Domain, len(p.Slots))
	for _, slot := range p.Slots {
		domains[slot] = primitives.NewDomain(buckets[slot.Length])
	}
	return &Solver{puzzle: p, domains: domains}
}

// Solve enforces node consistency, propagates arc consistency over all
// neighbor pairs, then searches for a complete assignment.
//
// It returns ErrNoSolution when the puzzle is proven unsolvable, and
// ErrAborted when ctx expires mid-search.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	s.EnforceNodeConsistency()
	if !s.Propagate(nil) {
		return nil, ErrNoSolution
	}

	remaining := 0
	for _, d := range s.domains {
		remaining += d.Size()
	}
	log.Debug().
		Int("slots", len(s.puzzle.Slots)).
		Int("candidates", remaining).
		Msg("domains-after-propagation")

	a, err := s.backtrack(ctx, Assignment{})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoSolution
	}
	return a, nil
}

// Domain exposes the solver's candidate set for a slot, so callers can
// shrink a domain by hand and re-check it with a seeded Propagate.
func (s *Solver) Domain(slot puzzle.Slot) *primitives.Domain {
	return s.domains[slot]
}

// EnforceNodeConsistency trims every domain to words of the slot's length.
// Must run before arc consistency, which indexes candidates by position.
// Idempotent; a no-op on domains as seeded by New, but it keeps the
// guarantee when a caller reshapes a domain through Domain.
func (s *Solver) EnforceNodeConsistency() {
	for _, slot := range s.puzzle.Slots {
		s.domains[slot].RestrictLength(slot.Length)
	}
}

// revise removes from x's domain every candidate with no compatible
// candidate in y's domain at the shared position, reporting whether anything
// was removed. Non-overlapping slots impose no constraint.
func (s *Solver) revise(x, y puzzle.Slot) bool {
	o, ok := s.puzzle.Overlap(x, y)
	if !ok {
		return false
	}

	support := primitives.DefaultCharSet()
	s.domains[y].CharsAt(support, o.J)
	return s.domains[x].RestrictAt(support, o.I)
}

// Propagate enforces arc consistency over the given arcs. An empty (or nil)
// seed means every neighbor pair in the puzzle. It returns false as soon as
// any domain empties, meaning the puzzle has no solution under the current
// domains.
//
// The worklist is LIFO; order affects the amount of redundant revision, not
// the result.
func (s *Solver) Propagate(arcs []Arc) bool {
	if len(arcs) == 0 {
		arcs = nil
		for _, x := range s.puzzle.Slots {
			for _, y := range s.puzzle.Neighbors(x) {
				arcs = append(arcs, Arc{X: x, Y: y})
			}
		}
	} else {
		arcs = slices.Clone(arcs)
	}

	for len(arcs) > 0 {
		arc := arcs[len(arcs)-1]
		arcs = arcs[:len(arcs)-1]

		if !s.revise(arc.X, arc.Y) {
			continue
		}
		if s.domains[arc.X].Size() == 0 {
			return false
		}
		// X shrank, so values in its other neighbors may have lost their
		// support; those arcs need re-revision.
		for _, z := range s.puzzle.Neighbors(arc.X) {
			if z == arc.Y {
				continue
			}
			arcs = append(arcs, Arc{X: z, Y: arc.X})
		}
	}
	return true
}

// consistent reports whether the partial assignment violates no constraint
// so far: lengths match, assigned words are pairwise distinct, and assigned
// overlapping slots agree on the shared letter. Unassigned slots impose
// nothing yet.
func (s *Solver) consistent(a Assignment) bool {
	seen := make(map[string]bool, len(a))
	for x, word := range a {
		if len(word) != x.Length {
			return false
		}
		if seen[word] {
			return false
		}
		seen[word] = true

		for _, y := range s.puzzle.Neighbors(x) {
			other, ok := a[y]
			if !ok {
				continue
			}
			o, _ := s.puzzle.Overlap(x, y)
			if word[o.I] != other[o.J] {
				return false
			}
		}
	}
	return true
}

// selectUnassignedSlot picks the next slot to branch on: smallest remaining
// domain first, ties broken by most neighbors, then by slot order so results
// are reproducible.
func (s *Solver) selectUnassignedSlot(a Assignment) puzzle.Slot {
	var best puzzle.Slot
	found := false
	for _, slot := range s.puzzle.Slots {
		if _, assigned := a[slot]; assigned {
			continue
		}
		if !found {
			best, found = slot, true
			continue
		}

		size, bestSize := s.domains[slot].Size(), s.domains[best].Size()
		if size < bestSize {
			best = slot
		} else if size == bestSize &&
			len(s.puzzle.Neighbors(slot)) > len(s.puzzle.Neighbors(best)) {
			best = slot
		}
	}
	return best
}

// orderDomainValues orders the slot's candidates least-constraining first:
// ascending by how many unassigned neighbors still hold the candidate in
// their own domain. Assigned neighbors are excluded from the count. The sort
// is stable, so domain order breaks ties.
func (s *Solver) orderDomainValues(slot puzzle.Slot, a Assignment) []string {
	words := slices.Clone(s.domains[slot].Words())

	neighbors := make([]*primitives.Domain, 0, len(s.puzzle.Neighbors(slot)))
	for _, y := range s.puzzle.Neighbors(slot) {
		if _, assigned := a[y]; assigned {
			continue
		}
		neighbors = append(neighbors, s.domains[y])
	}

	rulesOut := make(map[string]int, len(words))
	for _, w := range words {
		n := 0
		for _, d := range neighbors {
			if d.Contains(w) {
				n++
			}
		}
		rulesOut[w] = n
	}

	slices.SortStableFunc(words, func(p, q string) int {
		return rulesOut[p] - rulesOut[q]
	})
	return words
}

// backtrack runs depth-first search over partial assignments. It returns
// (nil, nil) when this branch is exhausted; the first complete consistent
// assignment wins.
func (s *Solver) backtrack(ctx context.Context, a Assignment) (Assignment, error) {
	if a.Complete(s.puzzle) {
		return a, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAborted, err)
	}

	slot := s.selectUnassignedSlot(a)
	for _, word := range s.orderDomainValues(slot, a) {
		a[slot] = word
		if s.consistent(a) {
			result, err := s.backtrack(ctx, a)
			if err != nil {
				delete(a, slot)
				return nil, err
			}
			if result != nil {
				return result, nil
			}
		}
		delete(a, slot)
	}
	return nil, nil
}
