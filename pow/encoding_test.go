package pow

import (
	"crypto/sha256"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a hash.Hash that only remembers what was written.
type recorder struct {
	data []byte
}

func (r *recorder) Write(p []byte) (int, error) { r.data = append(r.data, p...); return len(p), nil }
func (r *recorder) Sum(b []byte) []byte         { return append(b, r.data...) }
func (r *recorder) Reset()                      { r.data = nil }
func (r *recorder) Size() int                   { return len(r.data) }
func (r *recorder) BlockSize() int              { return 1 }

func TestNonceEncodings(t *testing.T) {
	tests := []struct {
		encoding string
		nonce    uint64
		want     []byte
	}{
		{"be64", 0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{"be64", 0x0102, []byte{0, 0, 0, 0, 0, 0, 0x01, 0x02}},
		{"le64", 0x0102, []byte{0x02, 0x01, 0, 0, 0, 0, 0, 0}},
		{"be32", 0x01020304, []byte{0x01, 0x02, 0x03, 0x04}},
		{"legacy", 0, []byte{}},
		{"legacy", 3, []byte{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			enc, err := LookupEncoding(tt.encoding)
			require.NoError(t, err)
			r := &recorder{}
			enc.WriteNonce(r, tt.nonce, nil)
			assert.Equal(t, tt.want, append([]byte{}, r.data...))
		})
	}
}

func TestLegacyEncodingLargeNonce(t *testing.T) {
	enc, err := LookupEncoding("legacy")
	require.NoError(t, err)
	r := &recorder{}
	enc.WriteNonce(r, 10000, nil)
	assert.Len(t, r.data, 10000)
	for _, b := range r.data {
		require.Zero(t, b)
	}
}

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("")
	require.NoError(t, err)
	assert.Equal(t, DefaultEncoding, enc.Name())

	enc, err = LookupEncoding("LE64")
	require.NoError(t, err)
	assert.Equal(t, "le64", enc.Name())

	_, err = LookupEncoding("decimal")
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	assert.Equal(t, []string{"be32", "be64", "le64", "legacy"}, EncodingNames())
}

func TestCheckNonce(t *testing.T) {
	be32, err := LookupEncoding("be32")
	require.NoError(t, err)
	assert.NoError(t, CheckNonce(be32, math.MaxUint32))
	assert.ErrorIs(t, CheckNonce(be32, math.MaxUint32+1), ErrEncodingMismatch)

	be64, err := LookupEncoding("be64")
	require.NoError(t, err)
	assert.NoError(t, CheckNonce(be64, math.MaxUint64))

	legacy, err := LookupEncoding("legacy")
	require.NoError(t, err)
	assert.NoError(t, CheckNonce(legacy, LegacyMaxNonce))
	assert.ErrorIs(t, CheckNonce(legacy, LegacyMaxNonce+1), ErrEncodingMismatch)
}

func TestLegacyRejectsHugeNonceWithoutHashing(t *testing.T) {
	engine, err := NewProofOfWork(Config{Encoding: "legacy", Workers: 1})
	require.NoError(t, err)
	target, err := GenerateTarget(8)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := engine.Digest([]byte("hello"), 1<<40)
		assert.ErrorIs(t, err, ErrEncodingMismatch)
		assert.False(t, engine.Verify([]byte("hello"), math.MaxUint64, target))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("legacy verification of an oversized nonce did not return")
	}
}

func TestLegacyDigestMatchesReference(t *testing.T) {
	// The reference tool hashed input followed by bytearray(n), i.e. n zero bytes.
	engine, err := NewProofOfWork(Config{Encoding: "legacy", Workers: 1})
	require.NoError(t, err)

	input := []byte("hello")
	got, err := engine.Digest(input, 5)
	require.NoError(t, err)
	want := sha256.Sum256(append([]byte("hello"), 0, 0, 0, 0, 0))
	assert.Equal(t, want[:], got)
}
