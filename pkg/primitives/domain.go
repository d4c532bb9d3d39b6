package primitives

import (
	"slices"
	"strings"
)

// Domain is the mutable set of candidate words still possible for a single
// slot. A solve run owns its domains exclusively; once seeded, a domain only
// ever shrinks.
//
// Word order is insertion order and survives removals, so iteration is
// deterministic for a given vocabulary.
type Domain struct {
	words []string
}

// NewDomain seeds a domain with the given vocabulary. The slice is copied;
// the caller keeps ownership of its input.
func NewDomain(words []string) *Domain {
	return &Domain{words: slices.Clone(words)}
}

// Size returns the number of candidate words remaining.
func (d *Domain) Size() int {
	return len(d.words)
}

// Words returns the remaining candidates. The returned slice is the domain's
// backing storage and must not be mutated by the caller.
func (d *Domain) Words() []string {
	return d.words
}

// Contains checks if a word is still a candidate.
func (d *Domain) Contains(word string) bool {
	return slices.Contains(d.words, word)
}

// Remove drops a single word from the domain, reporting whether it was
// present.
func (d *Domain) Remove(word string) bool {
	before := len(d.words)
	d.words = slices.DeleteFunc(d.words, func(w string) bool {
		return w == word
	})
	return len(d.words) != before
}

// RestrictLength drops every candidate whose length differs from n,
// reporting whether anything was removed.
func (d *Domain) RestrictLength(n int) bool {
	before := len(d.words)
	d.words = slices.DeleteFunc(d.words, func(w string) bool {
		return len(w) != n
	})
	return len(d.words) != before
}

// RestrictAt drops every candidate whose letter at index is not in support,
// reporting whether anything was removed.
//
// Candidates shorter than index+1 are dropped too; callers are expected to
// have applied RestrictLength first so this never fires in practice.
func (d *Domain) RestrictAt(support *CharSet, index int) bool {
	if support.IsFull() {
		return false
	}

	before := len(d.words)
	d.words = slices.DeleteFunc(d.words, func(w string) bool {
		if index >= len(w) {
			return true
		}
		return !support.Contains(rune(w[index]))
	})
	return len(d.words) != before
}

// CharsAt adds to accumulate every letter that some remaining candidate has
// at the given index.
func (d *Domain) CharsAt(accumulate *CharSet, index int) {
	for _, w := range d.words {
		if accumulate.IsFull() {
			return
		}
		if index >= len(w) {
			continue
		}
		_ = accumulate.Add(rune(w[index]))
	}
}

// Clone returns an independent copy of the domain.
func (d *Domain) Clone() *Domain {
	return &Domain{words: slices.Clone(d.words)}
}

func (d *Domain) String() string {
	return "{" + strings.Join(d.words, " ") + "}"
}
