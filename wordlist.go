package bip39

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/kelpwallet/go-bip39/wordlists"
)

const (
	// WordlistSize is the number of words every wordlist must contain.
	WordlistSize = wordlists.Size

	asciiSpace       = " "
	ideographicSpace = "　"

	// japaneseFirstWord identifies the official Japanese wordlist, whose
	// mnemonics are joined with the ideographic space.
	japaneseFirstWord = "あいこくしん"
)

// Wordlist is an immutable, ordered 2048-word vocabulary for one language.
// A word's position in the list is its 11-bit index.
type Wordlist struct {
	language  string
	words     []string
	indexes   map[string]int
	separator string
}

// NewWordlistArgs bundles the arguments to create a Wordlist.
type NewWordlistArgs struct {
	// Language is the identifier the wordlist is known by, eg "EN".
	Language string
	// Words is the ordered vocabulary, exactly 2048 unique entries.
	Words []string
	// Separator joins the words of encoded mnemonics. When empty it is
	// inferred from the vocabulary: the ideographic space (U+3000) for the
	// official Japanese wordlist, the ASCII space for any other.
	Separator string
}

func (a NewWordlistArgs) validate() error {
	if a.Language == "" {
		return ErrMissingLanguage
	}
	if len(a.Words) != WordlistSize {
		return fmt.Errorf("%w, got %d words", ErrInvalidWordlist, len(a.Words))
	}
	return nil
}

// NewWordlist returns a Wordlist with every word NFKD-normalized and
// indexed for reverse lookup.
func NewWordlist(args NewWordlistArgs) (*Wordlist, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}

	words := make([]string, len(args.Words))
	indexes := make(map[string]int, len(args.Words))
	for i, word := range args.Words {
		word = norm.NFKD.String(word)
		if word == "" {
			return nil, fmt.Errorf("%w: blank word at index %d", ErrInvalidWordlist, i)
		}
		if _, ok := indexes[word]; ok {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrInvalidWordlist, word)
		}
		words[i] = word
		indexes[word] = i
	}

	separator := args.Separator
	if separator == "" {
		separator = asciiSpace
		if words[0] == japaneseFirstWord {
			separator = ideographicSpace
		}
	}

	return &Wordlist{
		language:  args.Language,
		words:     words,
		indexes:   indexes,
		separator: separator,
	}, nil
}

// Language returns the identifier the wordlist was created with.
func (w *Wordlist) Language() string {
	return w.language
}

// Words returns a copy of the ordered, NFKD-normalized vocabulary.
func (w *Wordlist) Words() []string {
	words := make([]string, len(w.words))
	copy(words, w.words)
	return words
}

// Separator returns the string joining the words of encoded mnemonics.
func (w *Wordlist) Separator() string {
	return w.separator
}

// Index returns the position of word in the vocabulary. The word must be
// NFKD-normalized, as returned by Words.
func (w *Wordlist) Index(word string) (int, bool) {
	index, ok := w.indexes[word]
	return index, ok
}
