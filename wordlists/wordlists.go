// Package wordlists holds the vocabularies mnemonics are encoded with.
//
// Only the official English wordlist is embedded. Vocabularies for other
// languages are supplied by the caller, either as plain word slices or
// loaded from disk with FromFile, and registered with the bip39 package.
package wordlists

import (
	"fmt"
	"os"
	"strings"
)

// Size is the number of words a vocabulary must contain, one word per
// 11-bit index.
const Size = 2048

// Parse extracts a vocabulary from s, one word per line. Blank lines and
// surrounding whitespace are ignored. It fails unless exactly Size words
// remain.
func Parse(s string) ([]string, error) {
	words := make([]string, 0, Size)
	for _, line := range strings.Split(s, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if len(words) != Size {
		return nil, fmt.Errorf("expected %d words, got %d", Size, len(words))
	}
	return words, nil
}

// FromFile loads a vocabulary from the file at path with Parse.
func FromFile(path string) ([]string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	words, err := Parse(string(buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
