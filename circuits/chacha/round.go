package chacha

import "github.com/consensys/gnark/frontend"

// QuarterRound applies the ChaCha20 ARX quarter round to state words
// a, b, c, d in place. Operand order and the rotation amounts 16, 12, 8, 7
// follow RFC 7539 section 2.1; both are load-bearing.
func QuarterRound(api frontend.API, s *[16][BITS_PER_WORD]frontend.Variable, a, b, c, d int) {
	var t [BITS_PER_WORD]frontend.Variable

	Add32(api, &s[a], &s[b], &t)
	s[a] = t
	Xor32(api, &s[d], &s[a], &t)
	s[d] = RotateLeft32(&t, 16)

	Add32(api, &s[c], &s[d], &t)
	s[c] = t
	Xor32(api, &s[b], &s[c], &t)
	s[b] = RotateLeft32(&t, 12)

	Add32(api, &s[a], &s[b], &t)
	s[a] = t
	Xor32(api, &s[d], &s[a], &t)
	s[d] = RotateLeft32(&t, 8)

	Add32(api, &s[c], &s[d], &t)
	s[c] = t
	Xor32(api, &s[b], &s[c], &t)
	s[b] = RotateLeft32(&t, 7)
}

// Round runs the 10 double rounds of the full 20-round ChaCha20 core
// permutation: quarter rounds down the columns, then down the diagonals of
// the updated state.
func Round(api frontend.API, state *[16][BITS_PER_WORD]frontend.Variable) {
	for i := 0; i < 10; i++ {
		QuarterRound(api, state, 0, 4, 8, 12)
		QuarterRound(api, state, 1, 5, 9, 13)
		QuarterRound(api, state, 2, 6, 10, 14)
		QuarterRound(api, state, 3, 7, 11, 15)

		QuarterRound(api, state, 0, 5, 10, 15)
		QuarterRound(api, state, 1, 6, 11, 12)
		QuarterRound(api, state, 2, 7, 8, 13)
		QuarterRound(api, state, 3, 4, 9, 14)
	}
}

// Block assembles the 16-word ChaCha20 state from the "expand 32-byte k"
// constants, key, counter and nonce, runs the core permutation and combines
// the permuted state with the original one to produce a keystream block.
// The combine uses the constrained Add32 gadget; a plain field addition here
// would leave the 32-bit wraparound unproven.
func Block(api frontend.API, key *[8][BITS_PER_WORD]frontend.Variable, nonce *[3][BITS_PER_WORD]frontend.Variable, counter *[BITS_PER_WORD]frontend.Variable) [16][BITS_PER_WORD]frontend.Variable {
	var state [16][BITS_PER_WORD]frontend.Variable

	state[0] = constWord(api, 0x61707865)
	state[1] = constWord(api, 0x3320646e)
	state[2] = constWord(api, 0x79622d32)
	state[3] = constWord(api, 0x6b206574)
	copy(state[4:12], key[:])
	state[12] = *counter
	copy(state[13:], nonce[:])

	original := state
	Round(api, &state)

	var keystream [16][BITS_PER_WORD]frontend.Variable
	for i := range state {
		Add32(api, &original[i], &state[i], &keystream[i])
	}
	return keystream
}
