package felica

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecodeHex(t *testing.T, s string) [10]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 10)
	var out [10]byte
	copy(out[:], b)
	return out
}

func TestDecrypt_ZeroBlock(t *testing.T) {
	var cipher [16]byte
	want := mustDecodeHex(t, "6d6d6d6d6d6d6d6d6d2a")
	assert.Equal(t, want, Decrypt(cipher))
}

func TestDecrypt_SequentialBlock(t *testing.T) {
	var cipher [16]byte
	for i := range cipher {
		cipher[i] = byte(i)
	}
	want := mustDecodeHex(t, "538742f4c8b20e3b9096")
	assert.Equal(t, want, Decrypt(cipher))
}

func TestDecrypt_AICSegaFixture(t *testing.T) {
	cipher := [16]byte{39, 151, 37, 8, 38, 25, 68, 71, 110, 60, 127, 196, 239, 232, 49, 137}
	want := mustDecodeHex(t, "5019d849108ec3dd666b")
	got := Decrypt(cipher)
	assert.Equal(t, want, got)
	assert.Equal(t, "501", hex.EncodeToString(got[:])[:3])
}

func TestDecrypt_IsDeterministic(t *testing.T) {
	cipher := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	first := Decrypt(cipher)
	second := Decrypt(cipher)
	assert.Equal(t, first, second)
}

func TestRotateRight5_TwentyFourTimesIsIdentity(t *testing.T) {
	original := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 99}
	s := original
	for i := 0; i < 24; i++ {
		rotateRight5(&s)
	}
	assert.Equal(t, original, s)
}

func TestRotateRight5_LeavesTailByteAlone(t *testing.T) {
	s := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0xAB}
	rotateRight5(&s)
	assert.Equal(t, byte(0xAB), s[15])
}
