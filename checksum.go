package bip39

import "crypto/sha256"

// deriveChecksumBits returns the checksum of entropy as a bit-string: the
// first len(entropy)*8/32 bits of its SHA-256 digest.
func deriveChecksumBits(entropy []byte) string {
	size := len(entropy) * 8 / 32
	hash := sha256.Sum256(entropy)
	return bytesToBinary(hash[:])[:size]
}
