package phc

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const b64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func TestB64AlphabetMapping(t *testing.T) {
	for x := uint32(0); x < 64; x++ {
		assert.Equal(t, b64Alphabet[x], b64ByteToChar(x), "value %d", x)
		assert.Equal(t, x, b64CharToByte(b64Alphabet[x]), "char %c", b64Alphabet[x])
	}
	// Everything outside the alphabet maps to 0xFF.
	for c := 0; c < 256; c++ {
		if bytes.IndexByte([]byte(b64Alphabet), byte(c)) >= 0 {
			continue
		}
		assert.Equal(t, uint32(0xFF), b64CharToByte(byte(c)), "byte %#x", c)
	}
}

// The encoder must agree with the stdlib unpadded encoding for every
// input length across all three trailing-group shapes.
func TestB64EncodeMatchesStdlib(t *testing.T) {
	for n := 0; n <= 80; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i*31 + 7)
		}
		dst := make([]byte, b64EncodedLen(n))
		w, err := b64Encode(dst, src)
		require.NoError(t, err, "length %d", n)
		require.Equal(t, len(dst), w, "length %d", n)
		assert.Equal(t, base64.RawStdEncoding.EncodeToString(src), string(dst), "length %d", n)
	}
}

func TestB64DecodeRoundTrip(t *testing.T) {
	for n := 0; n <= 80; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i*131 + 29)
		}
		enc := base64.RawStdEncoding.EncodeToString(src)
		dst := make([]byte, n)
		w, consumed, err := b64Decode(dst, enc)
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, len(enc), consumed, "length %d", n)
		assert.Equal(t, src, dst[:w], "length %d", n)
	}
}

func TestB64DecodeStopsAtTerminator(t *testing.T) {
	dst := make([]byte, 16)
	n, consumed, err := b64Decode(dst, "Hj5+dsK0$leftover")
	require.NoError(t, err)
	assert.Equal(t, 8, consumed, "should stop at the first non-alphabet character")
	assert.Equal(t, 6, n)

	n, consumed, err = b64Decode(dst, "")
	require.NoError(t, err)
	assert.Zero(t, consumed)
	assert.Zero(t, n)
}

func TestB64DecodeRejectsNonCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"length 1 mod 4, 6 leftover bits", "B"},
		{"length 1 mod 4, longer run", "AAAAB"},
		{"nonzero leftover bits, 2 chars", "AB"},
		{"nonzero leftover bits, 3 chars", "AAB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 16)
			_, _, err := b64Decode(dst, tt.in)
			assert.ErrorIs(t, err, ErrMalformedBase64)
		})
	}
}

// '=' is not part of the alphabet: it terminates the run rather than
// acting as padding. Rejecting it is the grammar's job.
func TestB64DecodePaddingTerminates(t *testing.T) {
	dst := make([]byte, 16)
	n, consumed, err := b64Decode(dst, "AA==")
	require.NoError(t, err)
	assert.Equal(t, 2, consumed)
	assert.Equal(t, 1, n)
}

func TestB64DecodeCapacity(t *testing.T) {
	dst := make([]byte, 2)
	_, _, err := b64Decode(dst, "AAAA") // 3 bytes into a 2-byte buffer
	assert.ErrorIs(t, err, ErrFieldTooLong)

	dst = make([]byte, 3)
	n, consumed, err := b64Decode(dst, "AAAA")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 4, consumed)
}

func TestB64EncodeCapacity(t *testing.T) {
	src := []byte{1, 2, 3}
	_, err := b64Encode(make([]byte, 3), src) // needs 4
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	n, err := b64Encode(make([]byte, 4), src)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestB64EncodedLen(t *testing.T) {
	want := []int{0, 2, 3, 4, 6, 7, 8, 10, 11, 12}
	for n, w := range want {
		assert.Equal(t, w, b64EncodedLen(n), "input length %d", n)
	}
}
