// Package felica implements the S_PAD-0 deobfuscation recipe used to
// recover an access code from a FeliCa arcade card: a fixed chain of
// byte substitutions interleaved with a rotate-right-by-5 shuffle over
// a 15-byte prefix of the working block.
//
// The construction is dictated entirely by the card encoding. It is not
// configurable or versioned, and is not tunable by a caller: deviating by
// one index, one table, or one bit of shift produces garbage output
// rather than an error, so every step below reproduces spec.md §4.3
// bit-exactly.
package felica

const (
	nTables = 8
	iterAdd = 5
)

// Decrypt recovers the 10-byte access code from a 16-byte S_PAD-0
// ciphertext block. It is a pure function: the same input always
// produces the same output.
func Decrypt(ciphertext [16]byte) [10]byte {
	var s [16]byte
	for i, c := range ciphertext {
		s[i] = sBoxInv[nTables][c]
	}

	count := int(s[15]>>4) + 7
	table := int(s[15]) + iterAdd*count

	for i := 0; i < count; i++ {
		table -= iterAdd
		rotateRight5(&s)
		idx := ((table % nTables) + nTables) % nTables
		for j := 0; j < 15; j++ {
			s[j] = sBoxInv[idx][s[j]]
		}
	}

	var out [10]byte
	copy(out[:], s[6:16])
	return out
}

// rotateRight5 rotates the first 15 bytes of s right by 5 bits, treating
// them as a single big-endian 120-bit vector with wrap-around. The 16th
// byte (s[15], which seeds Decrypt's round count and table index and
// becomes the last access-code byte) is left
// untouched by this step, matching spec.md's "rotate the prefix S[0..15]"
// wording, which addresses the 15-byte region S[0] through S[14].
func rotateRight5(s *[16]byte) {
	prior := s[14]
	for i := 0; i < 15; i++ {
		cur := s[i]
		s[i] = (cur >> 5) | ((prior & 0x1F) << 3)
		prior = cur
	}
}
