// Package pagerank estimates page importance in a link graph two ways: by
// sampling a damped random walk and by fixed-point iteration. It is
// self-contained and shares nothing with the crossword solver.
package pagerank

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"lukechampine.com/frand"
)

const (
	// DefaultDamping is the probability of following a link rather than
	// jumping to a random page.
	DefaultDamping = 0.85

	// DefaultSamples is the default random-walk length for Sample.
	DefaultSamples = 10000

	// convergenceThreshold stops Iterate once no rank moves by more.
	convergenceThreshold = 0.001
)

// Corpus maps each page to the pages it links to. Links always point at
// pages inside the corpus; self-links are excluded.
type Corpus map[string][]string

var hrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Crawl parses a directory of HTML pages into a corpus. Links to pages
// outside the directory and self-links are dropped.
func Crawl(dir string) (Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir: %w", err)
	}

	raw := make(map[string]map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile: %w", err)
		}

		links := make(map[string]bool)
		for _, m := range hrefPattern.FindAllStringSubmatch(string(contents), -1) {
			if m[1] != entry.Name() {
				links[m[1]] = true
			}
		}
		raw[entry.Name()] = links
	}

	corpus := make(Corpus, len(raw))
	for page, links := range raw {
		kept := lo.Filter(lo.Keys(links), func(link string, _ int) bool {
			_, ok := raw[link]
			return ok
		})
		slices.Sort(kept)
		corpus[page] = kept
	}
	return corpus, nil
}

// Transitions returns the probability distribution over which page a random
// surfer on the given page visits next. A page with no outgoing links is
// treated as linking to every page equally.
func Transitions(c Corpus, page string, damping float64) map[string]float64 {
	probabilities := make(map[string]float64, len(c))

	links := c[page]
	if len(links) == 0 {
		equal := 1 / float64(len(c))
		for p := range c {
			probabilities[p] = equal
		}
		return probabilities
	}

	base := (1 - damping) / float64(len(c))
	for p := range c {
		probabilities[p] = base
	}
	linkProbability := damping / float64(len(links))
	for _, link := range links {
		probabilities[link] += linkProbability
	}
	return probabilities
}

// Sample estimates ranks by walking the transition model for n steps from a
// random start. Returned ranks sum to 1.
func Sample(c Corpus, damping float64, n int) map[string]float64 {
	pages := sortedPages(c)
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		index[p] = i
	}

	visits := make([]float64, len(pages))
	current := pages[frand.Intn(len(pages))]

	for range n {
		visits[index[current]]++
		transitions := Transitions(c, current, damping)

		r := frand.Float64()
		acc := 0.0
		next := pages[len(pages)-1] // roundoff fallback
		for _, p := range pages {
			acc += transitions[p]
			if r <= acc {
				next = p
				break
			}
		}
		current = next
	}

	floats.Scale(1/floats.Sum(visits), visits)

	ranks := make(map[string]float64, len(pages))
	for i, p := range pages {
		ranks[p] = visits[i]
	}
	return ranks
}

// Iterate computes ranks by repeatedly applying the damped rank equation
// until no rank moves by more than the convergence threshold. Returned ranks
// sum to 1.
func Iterate(c Corpus, damping float64) map[string]float64 {
	pages := sortedPages(c)
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		index[p] = i
	}

	n := float64(len(pages))
	base := (1 - damping) / n

	ranks := make([]float64, len(pages))
	for i := range ranks {
		ranks[i] = 1 / n
	}

	updated := make([]float64, len(pages))
	for {
		for i, target := range pages {
			sum := 0.0
			for _, source := range pages {
				links := c[source]
				if len(links) == 0 {
					// A page with no links distributes its rank everywhere.
					sum += ranks[index[source]] / n
					continue
				}
				if slices.Contains(links, target) {
					sum += ranks[index[source]] / float64(len(links))
				}
			}
			updated[i] = base + damping*sum
		}

		converged := floats.Distance(ranks, updated, math.Inf(1)) <= convergenceThreshold
		copy(ranks, updated)
		if converged {
			break
		}
	}

	result := make(map[string]float64, len(pages))
	for i, p := range pages {
		result[p] = ranks[i]
	}
	return result
}

func sortedPages(c Corpus) []string {
	pages := lo.Keys(c)
	slices.Sort(pages)
	return pages
}
