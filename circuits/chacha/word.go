package chacha

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

const BITS_PER_WORD = 32

// ToWord decomposes a field element into its full little-endian bit
// representation and keeps the low 32 bits. Each bit is constrained boolean,
// the weighted sum of all bits is constrained equal to the element and the
// bit string is constrained below the field modulus, so the decomposition is
// the canonical one and values >= 2^32 truncate to their low word. Keeping
// inputs below 2^32 is the caller's obligation.
func ToWord(api frontend.API, v frontend.Variable) [BITS_PER_WORD]frontend.Variable {
	var w [BITS_PER_WORD]frontend.Variable
	b := bits.ToBinary(api, v, bits.WithNbDigits(api.Compiler().FieldBitLen()))
	assertCanonical(api, b)
	copy(w[:], b[:BITS_PER_WORD])
	return w
}

// assertCanonical constrains a full-width little-endian bit string to read
// strictly below the field modulus. Without it the weighted-sum equality,
// taken mod p, is also satisfied by the bits of v+p, whose low 32 bits
// differ from v's.
func assertCanonical(api frontend.API, b []frontend.Variable) {
	bound := new(big.Int).Sub(api.Compiler().Field(), big.NewInt(1))

	// enforce b <= bound bit by bit from the most significant end: acc is 1
	// while every inspected bit of b matched a set bound bit, and wherever
	// bound has a zero bit, b may only have one if acc already dropped to 0
	acc := frontend.Variable(1)
	for i := len(b) - 1; i >= 0; i-- {
		if bound.Bit(i) == 0 {
			api.AssertIsEqual(api.Mul(acc, b[i]), 0)
		} else {
			acc = api.Mul(acc, b[i])
		}
	}
}

// FromWord re-weights 32 boolean signals by powers of two and sums them.
// The result is below 2^32, far under the field modulus, so no wraparound
// can occur.
func FromWord(api frontend.API, w *[BITS_PER_WORD]frontend.Variable) frontend.Variable {
	return bits.FromBinary(api, w[:])
}

// constWord returns the bit decomposition of a compile-time 32-bit constant.
func constWord(api frontend.API, v uint32) [BITS_PER_WORD]frontend.Variable {
	var w [BITS_PER_WORD]frontend.Variable
	b := bits.ToBinary(api, v, bits.WithNbDigits(BITS_PER_WORD))
	copy(w[:], b)
	return w
}
