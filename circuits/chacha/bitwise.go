package chacha

import "github.com/consensys/gnark/frontend"

// Add32 adds two bit-decomposed words modulo 2^32 with a bit-serial ripple
// carry. Per bit: sum = a ^ b ^ carry, carry' = (a & b) | ((a ^ b) & carry).
// The carry out of bit 31 is discarded, which is the 32-bit wraparound.
func Add32(api frontend.API, a, b, out *[BITS_PER_WORD]frontend.Variable) {
	carry := frontend.Variable(0)
	for i := 0; i < BITS_PER_WORD; i++ {
		axb := api.Xor(a[i], b[i])
		out[i] = api.Xor(axb, carry)
		if i < BITS_PER_WORD-1 {
			carry = api.Or(api.And(a[i], b[i]), api.And(axb, carry))
		}
	}
}

// Xor32 xors two bit-decomposed words position-wise.
func Xor32(api frontend.API, a, b, out *[BITS_PER_WORD]frontend.Variable) {
	for i := 0; i < BITS_PER_WORD; i++ {
		out[i] = api.Xor(a[i], b[i])
	}
}

// RotateLeft32 rotates a bit-decomposed word left by n positions. Output
// bit i is input bit (i-n) mod 32; bits are rewired, no constraint is
// emitted.
func RotateLeft32(in *[BITS_PER_WORD]frontend.Variable, n int) [BITS_PER_WORD]frontend.Variable {
	var out [BITS_PER_WORD]frontend.Variable
	for i := 0; i < BITS_PER_WORD; i++ {
		out[i] = in[(i+BITS_PER_WORD-n)%BITS_PER_WORD]
	}
	return out
}
