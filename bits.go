package bip39

import "strings"

// bytesToBinary renders data as a bit-string of '0' and '1' runes, eight
// zero-left-padded digits per byte, preserving byte order.
func bytesToBinary(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			if b&(1<<uint(i)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// binaryToInt parses a bit-string as a base-2 unsigned integer. Inputs are
// at most 11 bits, so the result always fits an int.
func binaryToInt(bits string) int {
	v := 0
	for i := 0; i < len(bits); i++ {
		v <<= 1
		if bits[i] == '1' {
			v |= 1
		}
	}
	return v
}

// intToBinary renders v as a bit-string zero-left-padded to length digits.
func intToBinary(v, length int) string {
	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		if v&1 != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
		v >>= 1
	}
	return string(buf)
}

// splitChecksum cuts a decoded bit-string into its entropy and checksum
// parts. The boundary is the largest multiple of 32 bits, which separates
// ENT entropy bits from ENT/32 checksum bits for every valid word count.
func splitChecksum(bits string) (entropy, checksum string) {
	divider := len(bits) / 33 * 32
	return bits[:divider], bits[divider:]
}
