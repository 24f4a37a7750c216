package bip39

import (
	"context"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length in bytes of a derived seed.
	SeedSize = 64

	seedIterations = 2048
	saltPrefix     = "mnemonic"
)

// MnemonicToSeed derives the 64-byte seed of a mnemonic and passphrase:
// PBKDF2-HMAC-SHA512 over the NFKD-normalized mnemonic with 2048
// iterations, salted with "mnemonic" followed by the normalized
// passphrase. The mnemonic is not validated against any wordlist; callers
// wanting strictness should check it with ValidateMnemonic first.
func MnemonicToSeed(mnemonic, password string) []byte {
	return pbkdf2.Key(
		[]byte(norm.NFKD.String(mnemonic)),
		[]byte(saltPrefix+norm.NFKD.String(password)),
		seedIterations, SeedSize, sha512.New,
	)
}

// MnemonicToSeedContext derives the same seed as MnemonicToSeed on a
// separate goroutine. It returns ctx.Err() if the context ends first; the
// derivation is all-or-nothing, no partial seed is ever returned.
func MnemonicToSeedContext(ctx context.Context, mnemonic, password string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan []byte, 1)
	go func() {
		done <- MnemonicToSeed(mnemonic, password)
	}()

	select {
	case seed := <-done:
		return seed, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
