// Package utils holds byte/word conversions shared by the provers,
// verifiers and tests. ChaCha20 reads key, nonce, counter and text as
// little-endian 32-bit words (RFC 7539 section 2.3).
package utils

import "encoding/binary"

// BytesToUint32LE interprets b as little-endian 32-bit words. Panics if
// len(b) is not a multiple of 4.
func BytesToUint32LE(b []byte) []uint32 {
	if len(b)%4 != 0 {
		panic("byte length must be a multiple of 4")
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words
}

// Uint32ToBytesLE serializes words back to little-endian bytes.
func Uint32ToBytesLE(words []uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}
