package chacha

import "math/bits"

// NativeStep is the uint32 reference of the step circuit: same state
// layout, same transformation, bit-identical output. It exists to validate
// the circuit by equality check and is pure; nothing is persisted between
// calls.
func NativeStep(state *[StateLen]uint32, input *[ExternalInputLen]uint32) [StateLen]uint32 {
	var key [keyWords]uint32
	copy(key[:], state[:keyWords])
	var nonce [nonceWords]uint32
	copy(nonce[:], state[keyWords:counterIdx])

	keystream := NativeBlock(&key, &nonce, state[counterIdx])

	var next [StateLen]uint32
	copy(next[:], state[:])
	next[counterIdx] = state[counterIdx] + 1
	for i := 0; i < ExternalInputLen; i++ {
		next[outputIdx+i] = input[i] ^ keystream[i]
	}
	return next
}

// NativeBlock is the ChaCha20 block function on uint32 words.
func NativeBlock(key *[keyWords]uint32, nonce *[nonceWords]uint32, counter uint32) [16]uint32 {
	state := [16]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}
	copy(state[4:12], key[:])
	state[12] = counter
	copy(state[13:], nonce[:])

	working := state
	for i := 0; i < 10; i++ {
		nativeQuarterRound(&working, 0, 4, 8, 12)
		nativeQuarterRound(&working, 1, 5, 9, 13)
		nativeQuarterRound(&working, 2, 6, 10, 14)
		nativeQuarterRound(&working, 3, 7, 11, 15)

		nativeQuarterRound(&working, 0, 5, 10, 15)
		nativeQuarterRound(&working, 1, 6, 11, 12)
		nativeQuarterRound(&working, 2, 7, 8, 13)
		nativeQuarterRound(&working, 3, 4, 9, 14)
	}

	for i := range state {
		state[i] += working[i]
	}
	return state
}

func nativeQuarterRound(s *[16]uint32, a, b, c, d int) {
	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = bits.RotateLeft32(s[d], 16)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = bits.RotateLeft32(s[b], 12)

	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = bits.RotateLeft32(s[d], 8)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = bits.RotateLeft32(s[b], 7)
}
