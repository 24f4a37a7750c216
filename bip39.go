// Package bip39 implements mnemonic codes for deterministic key
// generation: a reversible mapping between raw entropy and a checksummed
// sequence of words drawn from a 2048-word vocabulary, plus seed
// derivation from a mnemonic and an optional passphrase.
//
// Mnemonics of any registered wordlist can be encoded, decoded and
// validated. The English wordlist is built in and acts as the package
// default; others are registered at runtime with RegisterWordlist.
package bip39

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// MinEntropySize and MaxEntropySize bound the entropy length in bytes.
	MinEntropySize = 16
	MaxEntropySize = 32

	// DefaultStrength is the entropy size in bits drawn by GenerateMnemonic
	// when none is given. It yields a 12-word mnemonic.
	DefaultStrength = 128

	wordBits = 11
)

// EntropyToMnemonic encodes entropy as a mnemonic: the entropy bits
// followed by their checksum, cut into 11-bit indexes into the wordlist
// and joined with its separator. Entropy must be a multiple of 4 bytes in
// the range [16, 32]. A nil wordlist selects the package default.
func EntropyToMnemonic(entropy []byte, wordlist *Wordlist) (string, error) {
	if !validEntropySize(len(entropy)) {
		return "", ErrInvalidEntropy
	}
	wordlist, err := resolveWordlist(wordlist)
	if err != nil {
		return "", err
	}

	bits := bytesToBinary(entropy) + deriveChecksumBits(entropy)
	words := make([]string, 0, len(bits)/wordBits)
	for i := 0; i < len(bits); i += wordBits {
		index := binaryToInt(bits[i : i+wordBits])
		words = append(words, wordlist.words[index])
	}
	return strings.Join(words, wordlist.separator), nil
}

// MnemonicToEntropy decodes a mnemonic back to the entropy it encodes,
// returned as a lowercase hex string. The mnemonic is NFKD-normalized and
// split at ASCII and ideographic spaces, so any registered language is
// accepted whatever separator it was encoded with. A nil wordlist selects
// the package default.
func MnemonicToEntropy(mnemonic string, wordlist *Wordlist) (string, error) {
	wordlist, err := resolveWordlist(wordlist)
	if err != nil {
		return "", err
	}

	words := splitMnemonic(norm.NFKD.String(mnemonic))
	if len(words)%3 != 0 {
		return "", ErrInvalidMnemonic
	}

	var bits strings.Builder
	bits.Grow(len(words) * wordBits)
	for _, word := range words {
		index, ok := wordlist.indexes[word]
		if !ok {
			return "", fmt.Errorf("%w: unknown word %q", ErrInvalidMnemonic, word)
		}
		bits.WriteString(intToBinary(index, wordBits))
	}

	entropyBits, checksumBits := splitChecksum(bits.String())
	entropy := make([]byte, 0, len(entropyBits)/8)
	for i := 0; i < len(entropyBits); i += 8 {
		entropy = append(entropy, byte(binaryToInt(entropyBits[i:i+8])))
	}
	if !validEntropySize(len(entropy)) {
		return "", ErrInvalidEntropy
	}
	if deriveChecksumBits(entropy) != checksumBits {
		return "", ErrInvalidChecksum
	}
	return hex.EncodeToString(entropy), nil
}

// ValidateMnemonic reports whether mnemonic decodes cleanly: a word count
// that is a multiple of 3, every word in the wordlist and a matching
// checksum. Use MnemonicToEntropy to learn why a mnemonic is rejected.
func ValidateMnemonic(mnemonic string, wordlist *Wordlist) bool {
	_, err := MnemonicToEntropy(mnemonic, wordlist)
	return err == nil
}

// GenerateMnemonicArgs bundles the arguments to generate a mnemonic from
// random entropy. The zero value yields a 12-word mnemonic drawn from
// crypto/rand encoded with the package default wordlist.
type GenerateMnemonicArgs struct {
	// Strength is the entropy size in bits, a multiple of 32 in the range
	// [128, 256]. Defaults to DefaultStrength.
	Strength int
	// Rand is the entropy source. Defaults to crypto/rand.Reader.
	Rand io.Reader
	// Wordlist overrides the package default wordlist.
	Wordlist *Wordlist
}

func (a GenerateMnemonicArgs) validate() error {
	if a.Strength < 0 || a.Strength%32 != 0 {
		return ErrInvalidEntropy
	}
	return nil
}

// GenerateMnemonic draws Strength/8 bytes from the entropy source and
// encodes them with EntropyToMnemonic.
func GenerateMnemonic(args GenerateMnemonicArgs) (string, error) {
	if err := args.validate(); err != nil {
		return "", err
	}
	if args.Strength == 0 {
		args.Strength = DefaultStrength
	}
	if args.Rand == nil {
		args.Rand = rand.Reader
	}

	entropy := make([]byte, args.Strength/8)
	if _, err := io.ReadFull(args.Rand, entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return EntropyToMnemonic(entropy, args.Wordlist)
}

func validEntropySize(size int) bool {
	return size >= MinEntropySize && size <= MaxEntropySize && size%4 == 0
}

// resolveWordlist substitutes the package default for a nil wordlist.
func resolveWordlist(wordlist *Wordlist) (*Wordlist, error) {
	if wordlist != nil {
		return wordlist, nil
	}
	wordlist, err := defaultRegistry.Default()
	if err != nil {
		return nil, ErrWordlistRequired
	}
	return wordlist, nil
}

// splitMnemonic cuts a mnemonic at every ASCII (U+0020) and ideographic
// (U+3000) space. Runs of separators produce empty segments that fail word
// lookup, so malformed spacing is rejected rather than glossed over.
func splitMnemonic(mnemonic string) []string {
	return strings.Split(strings.ReplaceAll(mnemonic, ideographicSpace, asciiSpace), asciiSpace)
}
