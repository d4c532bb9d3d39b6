// Package wordlist loads and normalizes the vocabularies the solver is
// seeded with.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a newline-separated word list. Words are lowercased and
// trimmed; blank lines and lines starting with '#' are skipped. A word with
// a character outside a-z is an error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if err := Validate(word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// Normalize lowercases and trims the given words, dropping blanks. Words
// with characters outside a-z are an error.
func Normalize(words []string) ([]string, error) {
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if err := Validate(word); err != nil {
			return nil, err
		}
		out = append(out, word)
	}
	return out, nil
}

// ByLength buckets words by their length.
func ByLength(words []string) map[int][]string {
	buckets := make(map[int][]string)
	for _, word := range words {
		buckets[len(word)] = append(buckets[len(word)], word)
	}
	return buckets
}

// Validate checks that every character of the word is a lowercase letter
// a-z, the only alphabet candidate domains can represent.
func Validate(word string) error {
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
		}
	}
	return nil
}
