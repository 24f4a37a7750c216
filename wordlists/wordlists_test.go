package wordlists_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelpwallet/go-bip39/wordlists"
)

func TestEnglish(t *testing.T) {
	t.Parallel()

	require.Len(t, wordlists.English, wordlists.Size)
	require.Equal(t, "abandon", wordlists.English[0])
	require.Equal(t, "zoo", wordlists.English[wordlists.Size-1])
	require.True(t, sort.StringsAreSorted(wordlists.English))

	seen := make(map[string]struct{}, wordlists.Size)
	for _, word := range wordlists.English {
		_, ok := seen[word]
		require.False(t, ok, "duplicate word %q", word)
		seen[word] = struct{}{}
	}

	// the first four letters identify every word unambiguously.
	prefixes := make(map[string]struct{}, wordlists.Size)
	for _, word := range wordlists.English {
		prefix := word
		if len(prefix) > 4 {
			prefix = prefix[:4]
		}
		_, ok := prefixes[prefix]
		require.False(t, ok, "ambiguous prefix %q", prefix)
		prefixes[prefix] = struct{}{}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		words, err := wordlists.Parse(strings.Join(wordlists.English, "\n"))
		require.NoError(t, err)
		require.Equal(t, wordlists.English, words)

		// leading, trailing and embedded blank lines are skipped.
		padded := "\n\n" + strings.Join(wordlists.English, "\n\n") + "\n\n"
		words, err = wordlists.Parse(padded)
		require.NoError(t, err)
		require.Equal(t, wordlists.English, words)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		words, err := wordlists.Parse("abandon\nability\nable")
		require.Nil(t, words)
		require.EqualError(t, err, "expected 2048 words, got 3")
	})
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "english.txt")
		err := os.WriteFile(path, []byte(strings.Join(wordlists.English, "\n")), 0644)
		require.NoError(t, err)

		words, err := wordlists.FromFile(path)
		require.NoError(t, err)
		require.Equal(t, wordlists.English, words)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		words, err := wordlists.FromFile(filepath.Join(t.TempDir(), "nope.txt"))
		require.Nil(t, words)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
