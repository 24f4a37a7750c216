package bip39_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	bip39 "github.com/kelpwallet/go-bip39"
	"github.com/kelpwallet/go-bip39/wordlists"
)

// japaneseWords builds a syntactically valid Japanese-style vocabulary:
// the first four words are the official ones, so separator inference and
// the low indexes behave like the real list, the rest are filler.
func japaneseWords() []string {
	words := make([]string, bip39.WordlistSize)
	copy(words, []string{"あいこくしん", "あいさつ", "あいだ", "あおぞら"})
	for i := 4; i < len(words); i++ {
		words[i] = fmt.Sprintf("ことば%04d", i)
	}
	return words
}

func newJapaneseWordlist(t *testing.T) *bip39.Wordlist {
	t.Helper()

	wordlist, err := bip39.NewWordlist(bip39.NewWordlistArgs{
		Language: "JA",
		Words:    japaneseWords(),
	})
	require.NoError(t, err)
	return wordlist
}

func englishWordlist(t *testing.T) *bip39.Wordlist {
	t.Helper()

	wordlist, err := bip39.LookupWordlist(bip39.LanguageEnglish)
	require.NoError(t, err)
	return wordlist
}

func TestNewWordlist(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		wordlist, err := bip39.NewWordlist(bip39.NewWordlistArgs{
			Language: "TEST",
			Words:    wordlists.English,
		})
		require.NoError(t, err)
		require.NotNil(t, wordlist)
		require.Equal(t, "TEST", wordlist.Language())
		require.Equal(t, " ", wordlist.Separator())
		require.Len(t, wordlist.Words(), bip39.WordlistSize)

		index, ok := wordlist.Index("abandon")
		require.True(t, ok)
		require.Zero(t, index)

		index, ok = wordlist.Index("zoo")
		require.True(t, ok)
		require.Equal(t, bip39.WordlistSize-1, index)

		_, ok = wordlist.Index("notaword")
		require.False(t, ok)
	})

	t.Run("separator inference", func(t *testing.T) {
		t.Parallel()

		wordlist := newJapaneseWordlist(t)
		require.Equal(t, "　", wordlist.Separator())
	})

	t.Run("explicit separator", func(t *testing.T) {
		t.Parallel()

		wordlist, err := bip39.NewWordlist(bip39.NewWordlistArgs{
			Language:  "TEST",
			Words:     wordlists.English,
			Separator: "　",
		})
		require.NoError(t, err)
		require.Equal(t, "　", wordlist.Separator())

		mnemonic, err := bip39.EntropyToMnemonic(make([]byte, 16), wordlist)
		require.NoError(t, err)
		require.Contains(t, mnemonic, "　")
		require.NotContains(t, mnemonic, " ")

		entropy, err := bip39.MnemonicToEntropy(mnemonic, wordlist)
		require.NoError(t, err)
		require.Equal(t, strings.Repeat("00", 16), entropy)
	})

	t.Run("words are normalized", func(t *testing.T) {
		t.Parallel()

		words := japaneseWords()
		words[4] = "ばっじ" // precomposed dakuten
		wordlist, err := bip39.NewWordlist(bip39.NewWordlistArgs{
			Language: "JA",
			Words:    words,
		})
		require.NoError(t, err)

		// lookup succeeds with the decomposed form returned by Words.
		decomposed := wordlist.Words()[4]
		require.NotEqual(t, words[4], decomposed)

		index, ok := wordlist.Index(decomposed)
		require.True(t, ok)
		require.Equal(t, 4, index)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		tooShort := wordlists.English[:bip39.WordlistSize-1]
		duplicated := append([]string{}, wordlists.English...)
		duplicated[1] = duplicated[0]
		blank := append([]string{}, wordlists.English...)
		blank[7] = ""

		tests := []struct {
			name string
			args bip39.NewWordlistArgs
			err  error
		}{
			{
				name: "missing language",
				args: bip39.NewWordlistArgs{Words: wordlists.English},
				err:  bip39.ErrMissingLanguage,
			},
			{
				name: "wrong size",
				args: bip39.NewWordlistArgs{Language: "TEST", Words: tooShort},
				err:  bip39.ErrInvalidWordlist,
			},
			{
				name: "duplicate word",
				args: bip39.NewWordlistArgs{Language: "TEST", Words: duplicated},
				err:  bip39.ErrInvalidWordlist,
			},
			{
				name: "blank word",
				args: bip39.NewWordlistArgs{Language: "TEST", Words: blank},
				err:  bip39.ErrInvalidWordlist,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				wordlist, err := bip39.NewWordlist(tt.args)
				require.Nil(t, wordlist)
				require.ErrorIs(t, err, tt.err)
			})
		}
	})
}
