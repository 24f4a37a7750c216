package bip39

import "errors"

var (
	// ErrInvalidEntropy is returned when entropy is not a multiple of 4
	// bytes in the range [16, 32], or when a generation strength is not a
	// multiple of 32 bits.
	ErrInvalidEntropy = errors.New("entropy must be a multiple of 4 bytes in the range [16, 32]")
	// ErrInvalidMnemonic is returned when a mnemonic has a word count that
	// is not a multiple of 3 or contains words missing from the wordlist.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrInvalidChecksum is returned when a mnemonic decodes cleanly but
	// its checksum bits do not match its entropy.
	ErrInvalidChecksum = errors.New("invalid checksum")
	// ErrWordlistRequired is returned by codec operations called without a
	// wordlist when no default is set.
	ErrWordlistRequired = errors.New("a wordlist is required but none was given and no default is set")
	// ErrNoDefaultWordlist is returned when the default wordlist is
	// requested from a registry that has none selected.
	ErrNoDefaultWordlist = errors.New("no default wordlist set")
	// ErrUnknownWordlist is returned when looking up a language with no
	// registered wordlist.
	ErrUnknownWordlist = errors.New("unknown wordlist")

	ErrMissingWordlist = errors.New("missing wordlist")
	ErrMissingLanguage = errors.New("missing wordlist language")
	ErrInvalidWordlist = errors.New("wordlist must contain exactly 2048 unique words")
)
